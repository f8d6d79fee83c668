package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/fps"
	"github.com/gogpu/fxbench/host"
	"github.com/gogpu/fxbench/render"
	"github.com/gogpu/fxbench/scene"
)

// Environment supplies what the host would: a GPU device, a capability
// probe and a clock. The zero value uses render.Probe and the wall clock.
type Environment struct {
	Device render.DeviceHandle
	Probe  Prober
	Now    func() time.Time
}

func (e Environment) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// NewRenderer creates the benchmark renderer for canvas: no MSAA on the
// canvas, alpha, transparent black clear color, ACES filmic tone mapping,
// sRGB output and a pixel ratio capped at MaxPixelRatio.
func NewRenderer(canvas *render.Canvas, devicePixelRatio float32, workers int, device render.DeviceHandle) *render.Renderer {
	return render.NewRenderer(canvas,
		render.WithAntialias(false),
		render.WithAlpha(true),
		render.WithOutputColorSpace(render.SRGBColorSpace),
		render.WithToneMapping(render.ACESFilmicToneMapping),
		render.WithClearColor(scene.Color{}, 0),
		render.WithPixelRatio(min(devicePixelRatio, MaxPixelRatio)),
		render.WithWorkers(workers),
		render.WithDevice(device),
	)
}

// Run renders cfg.Frames frames and reports the achieved frame rate.
//
// The GPU check runs first. When it fails the fallback message is logged;
// with cfg.RequireGPU the run stops with ErrGPUUnavailable, otherwise it
// continues on the software renderer.
func Run(ctx context.Context, cfg Config, env Environment) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	log := fxbench.Logger()

	caps, err := CheckCapabilities(env.Device, env.Probe)
	if err != nil {
		log.Warn("bench: "+FallbackMessage, "error", err)
		if cfg.RequireGPU {
			return Report{}, err
		}
	}

	win := host.NewWindow(cfg.Width, cfg.Height, cfg.DevicePixelRatio)
	r := NewRenderer(win.Canvas(), win.DevicePixelRatio(), cfg.Workers, env.Device)
	defer r.Dispose()

	world := BuildScene(cfg.Scene, float32(cfg.Width)/float32(cfg.Height))
	passes := NewPassSet(world.Scene, world.Camera)
	pipeline := NewPipeline(cfg.Mode, r, world.Camera, passes)

	app := NewApp(world, pipeline, win, fps.WithClock(env.now))
	if cfg.HUD {
		hud, err := NewHUD(DefaultHUDSize)
		if err != nil {
			return Report{}, err
		}
		defer hud.Close()
		app.HUD = hud
	}

	loop := host.NewLoop(cfg.RefreshRate, cfg.Frames)
	loop.Now = env.now

	log.Info("bench: run started",
		"mode", cfg.Mode, "width", cfg.Width, "height", cfg.Height,
		"frames", cfg.Frames, "adapter", caps.AdapterName)

	start := env.now()
	runErr := loop.Run(ctx, func(frame int, _ time.Time) error {
		if cfg.ResizeEvery > 0 && frame > 0 && frame%cfg.ResizeEvery == 0 {
			w, h := resizeStep(cfg, frame/cfg.ResizeEvery)
			win.Resize(w, h)
		}
		return app.Frame()
	})
	elapsed := env.now().Sub(start)

	w, h := win.Size()
	info := r.Info().Memory
	report := Report{
		Mode:        cfg.Mode,
		Adapter:     caps.AdapterName,
		Width:       w,
		Height:      h,
		Frames:      loop.Frames(),
		Duration:    elapsed,
		Samples:     app.Average.Count(),
		AverageFPS:  app.Average.Value(),
		MinFPS:      app.Average.Min(),
		MaxFPS:      app.Average.Max(),
		FrameTime:   app.FrameTimes(),
		Builds:      pipeline.Builds(),
		LiveTargets: info.Targets,
		LiveBytes:   info.Bytes,
		Allocations: info.Allocations,
	}

	if cfg.Snapshot != "" && runErr == nil {
		if err := SaveSnapshot(cfg.Snapshot, win.Canvas()); err != nil {
			runErr = err
		}
	}

	pipeline.Dispose()
	passes.Dispose()
	report.Leaked = r.Info().Memory.Targets
	if report.Leaked != 0 {
		log.Warn("bench: render targets leaked", "targets", report.Leaked)
	}

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return report, fmt.Errorf("bench: run %s: %w", cfg.Mode, runErr)
	}
	log.Info("bench: run finished", "summary", report.Summary())
	return report, nil
}

// resizeStep returns the viewport size for the n-th resize: odd steps
// shrink the configured size by one eighth, even steps restore it.
func resizeStep(cfg Config, n int) (int, int) {
	if n%2 == 0 {
		return cfg.Width, cfg.Height
	}
	return max(cfg.Width-cfg.Width/8, 1), max(cfg.Height-cfg.Height/8, 1)
}

// Compare runs cfg once per mode, in fxbench.Modes order.
func Compare(ctx context.Context, cfg Config, env Environment) ([]Report, error) {
	reports := make([]Report, 0, len(fxbench.Modes))
	for _, mode := range fxbench.Modes {
		c := cfg
		c.Mode = mode
		report, err := Run(ctx, c, env)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}
