// Package fxbench measures how the construction strategy of a
// post-processing pipeline affects the achieved frame rate.
//
// # Overview
//
// A small 3D scene (five spheres under a hemisphere light) is rendered every
// frame through a fixed pass chain:
//
//	RenderPass -> TAARenderPass (sample level 3) -> OutputPass
//
// The pass chain is owned by a composer bound to a multisampled offscreen
// render target. The harness builds that composer in one of two modes:
//
//   - [ModePerFrame]: a new composer and target are created on every frame
//   - [ModeCached]: the composer is created once and reused until its
//     dependencies change
//
// and reports a smoothed frames-per-second metric sampled every 100ms.
//
// # Quick Start
//
//	cfg := bench.DefaultConfig()
//	cfg.Mode = fxbench.ModeCached
//	report, err := bench.Run(ctx, cfg, bench.Environment{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(report.AverageFPS)
//
// # Packages
//
//   - fps: smoothed FPS sampler and running average
//   - scene: scene graph, geometry, materials, lights and cameras
//   - render: software renderer, render targets, canvas, GPU probe
//   - postfx: composer and passes (render, TAA, output)
//   - bench: pipeline builder, resize handler, render loop, reports
//   - host: headless canvas, viewport and animation loop
//
// # Logging
//
// fxbench produces no log output by default. Use [SetLogger] to enable it.
package fxbench
