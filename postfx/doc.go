// Package postfx chains full-screen post-processing passes behind a scene
// render.
//
// A Composer owns two render targets used as ping-pong buffers. Passes run
// in insertion order; a pass reads the read buffer and writes the write
// buffer, and the buffers swap after every pass that sets NeedsSwap. The
// last enabled pass draws to the canvas instead of the write buffer.
//
//	composer := postfx.NewComposer(r, nil)
//	composer.AddPass(postfx.NewRenderPass(sc, cam))
//	taa := postfx.NewTAARenderPass(sc, cam, scene.Color{}, 0)
//	taa.SampleLevel = 3
//	composer.AddPass(taa)
//	composer.AddPass(postfx.NewOutputPass())
//	composer.Render(-1)
//
// Passes are not owned by the composer. Disposing a composer releases its
// buffers only, so the same passes can be added to a replacement composer.
//
// Each full-screen pass has a WGSL source (see Shaders); CompileShaders
// validates them with naga.
package postfx
