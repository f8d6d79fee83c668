// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws 3D scenes on the CPU into a host canvas or into
// offscreen render targets.
//
// # Key Principle
//
// The renderer RECEIVES a GPU device from the host application when there is
// one; it never creates its own. GPU capability detection is a separate,
// one-shot Probe that enumerates adapters and releases them again.
//
// # Core Types
//
//   - Canvas: the host drawing buffer (*image.RGBA) plus its CSS style box
//   - Target: offscreen linear float render target, optionally multisampled,
//     allocated lazily and released with Dispose
//   - Renderer: size, pixel ratio, current target, clear state, tone mapping,
//     Render for scenes and Shade for full-screen passes
//   - Info: live render-target memory and work counters
//   - DeviceHandle: GPU device access from the host (gpucontext)
//
// # Usage
//
//	canvas := render.NewCanvas(800, 600)
//	r := render.NewRenderer(canvas,
//	    render.WithPixelRatio(2),
//	    render.WithToneMapping(render.ACESFilmicToneMapping))
//	defer r.Dispose()
//
//	rt := render.NewTarget(1600, 1200, render.WithSamples(8))
//	defer rt.Dispose()
//
//	r.SetRenderTarget(rt)
//	r.Render(sc, cam) // linear, multisampled, resolved
//	r.SetRenderTarget(nil)
//	r.Render(sc, cam) // tone mapped and sRGB encoded into canvas
//
// # Memory Accounting
//
// Every allocation of a Target is charged to the renderer that allocated it
// and released by Dispose. Info().Memory.Targets is the number of live
// targets; a pipeline that rebuilds its targets without disposing the old
// ones shows up as a growing count.
//
// # Thread Safety
//
// Renderers are NOT thread-safe. Each renderer should be used from a single
// goroutine. WithWorkers fans full-screen work out internally; calls still
// return only when all of it is done.
package render
