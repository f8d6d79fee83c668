// Package bench measures the frame rate of a post-processing pipeline under
// two construction strategies.
//
// A Pipeline hands out the composer bundle for each frame. In
// fxbench.ModePerFrame a new composer and offscreen target are built on
// every frame and the previous ones are disposed; in fxbench.ModeCached the
// bundle is built once and only resized. Everything else, from the scene
// and pass set to the renderer and FPS sampler, is shared so that the
// difference between two reports is the construction cost.
//
// Basic usage:
//
//	cfg := bench.DefaultConfig()
//	cfg.Mode = fxbench.ModePerFrame
//	report, err := bench.Run(ctx, cfg, bench.Environment{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.Summary())
package bench
