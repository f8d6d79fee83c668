package bench

import (
	"fmt"
	"time"

	"github.com/rcrowley/go-metrics"

	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/fps"
)

// Metric names registered by an App.
const (
	MetricFrameTime   = "frame.time.us"
	MetricFrames      = "frames"
	MetricLiveTargets = "targets.live"
)

// Sizer reports the current viewport size.
type Sizer interface {
	Size() (width, height int)
}

// App is the per-frame render step. All state it touches is passed in
// explicitly; Frame is the callback of the host animation loop.
type App struct {
	World    *World
	Pipeline *Pipeline
	Viewport Sizer

	Sampler *fps.Sampler
	Average fps.Average

	// HUD, when set, draws the average frame rate onto the canvas after
	// every frame.
	HUD *HUD

	registry  metrics.Registry
	frameTime metrics.Histogram
	frames    metrics.Counter
	live      metrics.Gauge
}

// NewApp creates an app with a fresh sampler and metrics registry.
func NewApp(world *World, pipeline *Pipeline, viewport Sizer, opts ...fps.Option) *App {
	a := &App{
		World:    world,
		Pipeline: pipeline,
		Viewport: viewport,
		Sampler:  fps.NewSampler(opts...),
		registry: metrics.NewRegistry(),
	}
	a.frameTime = metrics.NewHistogram(metrics.NewUniformSample(4096))
	a.frames = metrics.NewCounter()
	a.live = metrics.NewGauge()
	_ = a.registry.Register(MetricFrameTime, a.frameTime)
	_ = a.registry.Register(MetricFrames, a.frames)
	_ = a.registry.Register(MetricLiveTargets, a.live)
	return a
}

// Registry returns the metrics recorded by Frame.
func (a *App) Registry() metrics.Registry {
	return a.registry
}

// Frame renders one frame: acquire the bundle for the current viewport,
// advance the animation, render the composer between sampler Begin and End,
// and fold a new FPS sample into the average.
func (a *App) Frame() error {
	w, h := a.Viewport.Size()
	bundle, err := a.Pipeline.Acquire(w, h)
	if err != nil {
		return err
	}

	a.World.Group.Rotation[1] += RotationStep

	a.Sampler.Begin()
	err = bundle.Composer.Render(-1)
	a.frameTime.Update(a.Sampler.FrameTime().Microseconds())
	v := a.Sampler.End()
	if err != nil {
		return fmt.Errorf("bench: render frame: %w", err)
	}

	a.frames.Inc(1)
	a.live.Update(int64(a.Pipeline.renderer.Info().Memory.Targets))

	if v != fps.NoSample {
		a.Average.Add(v)
		fxbench.Logger().Debug("bench: fps sample", "fps", v, "average", a.Average.Value())
	}

	if a.HUD != nil {
		a.HUD.Draw(a.Pipeline.renderer.Canvas().Image(), FormatAverage(&a.Average))
	}
	return nil
}

// FrameTimes summarizes the recorded frame times.
func (a *App) FrameTimes() FrameTimeStats {
	s := a.frameTime.Snapshot()
	if s.Count() == 0 {
		return FrameTimeStats{}
	}
	ps := s.Percentiles([]float64{0.5, 0.95, 0.99})
	us := func(v float64) time.Duration { return time.Duration(v * float64(time.Microsecond)) }
	return FrameTimeStats{
		Mean: us(s.Mean()),
		P50:  us(ps[0]),
		P95:  us(ps[1]),
		P99:  us(ps[2]),
		Max:  time.Duration(s.Max()) * time.Microsecond,
	}
}
