// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// MemoryInfo tracks render-target storage charged to a renderer.
type MemoryInfo struct {
	// Targets is the number of live allocated render targets.
	Targets int

	// Bytes is the device memory held by live targets.
	Bytes int64

	// Allocations counts every allocation since the renderer was created.
	Allocations int

	// Releases counts every Dispose of an allocated target.
	Releases int
}

// RenderInfo counts work submitted to a renderer.
type RenderInfo struct {
	// Calls is the number of Render and full-screen Shade calls.
	Calls int

	// Triangles is the number of triangles rasterized.
	Triangles int

	// Lines is the number of wireframe lines rasterized.
	Lines int
}

// Info reports memory and render statistics.
type Info struct {
	Memory MemoryInfo
	Render RenderInfo
}

func (i *Info) acquire(bytes int64) {
	i.Memory.Targets++
	i.Memory.Bytes += bytes
	i.Memory.Allocations++
}

func (i *Info) release(bytes int64) {
	i.Memory.Targets--
	i.Memory.Bytes -= bytes
	i.Memory.Releases++
}
