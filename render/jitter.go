// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// MaxJitterLevel is the highest supported jitter table.
const MaxJitterLevel = 5

// jitterTables holds sub-pixel offsets in 1/16 pixel units.
// Level n has 2^n entries. Levels 1 to 4 match the standard D3D
// multisample patterns.
var jitterTables = [MaxJitterLevel + 1][][2]int8{
	{
		{0, 0},
	},
	{
		{4, 4}, {-4, -4},
	},
	{
		{-2, -6}, {6, -2}, {-6, 2}, {2, 6},
	},
	{
		{1, -3}, {-1, 3}, {5, 1}, {-3, -5},
		{-5, 5}, {-7, -1}, {3, 7}, {7, -7},
	},
	{
		{1, 1}, {-1, -3}, {-3, 2}, {4, -1},
		{-5, -2}, {2, 5}, {5, 3}, {3, -5},
		{-2, 6}, {0, -7}, {-4, -6}, {-6, 4},
		{-8, 0}, {7, -4}, {6, 7}, {-7, -8},
	},
	{
		{-4, -7}, {-7, -5}, {-3, -5}, {-5, -4},
		{-1, -4}, {-2, -2}, {-6, -1}, {-4, 0},
		{-7, 1}, {-1, 2}, {-6, 3}, {-3, 3},
		{-7, 6}, {-3, 6}, {-5, 7}, {-1, 7},
		{5, -7}, {1, -6}, {6, -5}, {4, -4},
		{2, -3}, {7, -2}, {1, -1}, {4, -1},
		{2, 1}, {6, 2}, {0, 4}, {4, 4},
		{2, 5}, {7, 5}, {5, 6}, {3, 7},
	},
}

// JitterVectors returns the sub-pixel offsets for level, in pixels relative
// to the pixel center. level is clamped to [0, MaxJitterLevel].
func JitterVectors(level int) [][2]float32 {
	level = min(max(level, 0), MaxJitterLevel)
	table := jitterTables[level]
	out := make([][2]float32, len(table))
	for i, v := range table {
		out[i] = [2]float32{float32(v[0]) * 0.0625, float32(v[1]) * 0.0625}
	}
	return out
}

// NormalizeSamples rounds a requested sample count up to a supported one:
// 1, 2, 4, 8 or 16.
func NormalizeSamples(n int) int {
	s := 1
	for s < n && s < 16 {
		s <<= 1
	}
	return s
}

// samplePattern returns the positions of n samples inside a pixel, in
// [0,1) pixel coordinates. n must be a normalized sample count.
func samplePattern(n int) [][2]float32 {
	level := 0
	for 1<<level < n {
		level++
	}
	pattern := JitterVectors(level)
	for i := range pattern {
		pattern[i][0] += 0.5
		pattern[i][1] += 0.5
	}
	return pattern
}
