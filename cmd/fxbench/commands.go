package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli"

	"github.com/gogpu/fxbench"
	"github.com/gogpu/fxbench/bench"
	"github.com/gogpu/fxbench/postfx"
	"github.com/gogpu/fxbench/render"
)

var runFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: 640,
		Usage: "viewport width in CSS pixels",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 480,
		Usage: "viewport height in CSS pixels",
	},
	cli.Float64Flag{
		Name:  "dpr",
		Value: 1,
		Usage: "device pixel ratio (capped at 2)",
	},
	cli.IntFlag{
		Name:  "frames, n",
		Value: 300,
		Usage: "number of frames to render",
	},
	cli.Float64Flag{
		Name:  "rate",
		Usage: "refresh rate in frames per second (0 = uncapped)",
	},
	cli.IntFlag{
		Name:  "resize-every",
		Usage: "toggle the viewport size every N frames (0 = never)",
	},
	cli.IntFlag{
		Name:  "workers, w",
		Value: 1,
		Usage: "goroutines for full-screen passes (0 = GOMAXPROCS)",
	},
	cli.BoolFlag{
		Name:  "no-hud",
		Usage: "do not draw the average FPS onto the canvas",
	},
	cli.StringFlag{
		Name:  "snapshot, o",
		Usage: "write the last frame to a PNG `FILE`",
	},
	cli.BoolFlag{
		Name:  "require-gpu",
		Usage: "fail when no GPU adapter is available",
	},
	cli.Uint64Flag{
		Name:  "seed",
		Value: 1,
		Usage: "random seed for the sphere scales",
	},
}

// loadConfig reads the --config file, or the defaults, and applies flags
// the user set explicitly.
func loadConfig(ctx *cli.Context) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = bench.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet("mode") {
		mode, err := fxbench.ParseMode(ctx.String("mode"))
		if err != nil {
			return cfg, err
		}
		cfg.Mode = mode
	}
	if ctx.IsSet("width") {
		cfg.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Height = ctx.Int("height")
	}
	if ctx.IsSet("dpr") {
		cfg.DevicePixelRatio = float32(ctx.Float64("dpr"))
	}
	if ctx.IsSet("frames") {
		cfg.Frames = ctx.Int("frames")
	}
	if ctx.IsSet("rate") {
		cfg.RefreshRate = ctx.Float64("rate")
	}
	if ctx.IsSet("resize-every") {
		cfg.ResizeEvery = ctx.Int("resize-every")
	}
	if ctx.IsSet("workers") {
		cfg.Workers = ctx.Int("workers")
	}
	if ctx.Bool("no-hud") {
		cfg.HUD = false
	}
	if ctx.IsSet("snapshot") {
		cfg.Snapshot = ctx.String("snapshot")
	}
	if ctx.Bool("require-gpu") {
		cfg.RequireGPU = true
	}
	if ctx.IsSet("seed") {
		cfg.Scene.Seed = ctx.Uint64("seed")
	}
	return cfg, cfg.Validate()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runBenchmark(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	sctx, cancel := signalContext()
	defer cancel()

	report, err := bench.Run(sctx, cfg, bench.Environment{})
	if err != nil {
		return exitError(err)
	}
	bench.WriteReports(os.Stdout, []bench.Report{report})
	fmt.Println(report.Summary())
	return nil
}

func compareModes(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}

	sctx, cancel := signalContext()
	defer cancel()

	reports, err := bench.Compare(sctx, cfg, bench.Environment{})
	if err != nil {
		return exitError(err)
	}
	bench.WriteReports(os.Stdout, reports)
	return nil
}

func probeGPU(_ *cli.Context) error {
	caps, err := bench.CheckCapabilities(nil, render.Probe)
	if err != nil {
		return exitError(err)
	}
	fmt.Printf("adapter:  %s\ntype:     %s\nbackend:  %s\nadapters: %d\n",
		caps.AdapterName, caps.DeviceType, caps.Backend, caps.Adapters)
	return nil
}

func compileShaders(_ *cli.Context) error {
	spirv, err := postfx.CompileShaders()
	for _, name := range postfx.ShaderNames() {
		if code, ok := spirv[name]; ok {
			fmt.Printf("%-8s %6d bytes\n", name, len(code))
		} else {
			fmt.Printf("%-8s failed\n", name)
		}
	}
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}
	return nil
}

func printConfig(ctx *cli.Context) error {
	cfg := bench.DefaultConfig()
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = bench.LoadConfig(path); err != nil {
			return cli.NewExitError(err.Error(), 2)
		}
	}
	return cfg.Encode(os.Stdout)
}

// exitError prints the fallback message for a missing GPU and maps err to
// an exit code.
func exitError(err error) error {
	if errors.Is(err, bench.ErrGPUUnavailable) {
		fmt.Fprintln(os.Stderr, bench.FallbackMessage)
		return cli.NewExitError(err.Error(), 3)
	}
	return cli.NewExitError(err.Error(), 1)
}
