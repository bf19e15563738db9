// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

// Frame describes the frame being drawn.
type Frame struct {
	// Index counts frames since the loop started, from zero.
	Index uint64

	// Time is the frame timestamp in seconds.
	Time float64

	// Delta is the time since the previous frame in seconds.
	Delta float64
}

// Layer draws into the cleared, depth-tested framebuffer of a frame.
// Layers run on the render goroutine in the order they were added.
type Layer interface {
	DrawLayer(f Frame)
}

// LayerFunc adapts a function to Layer.
type LayerFunc func(f Frame)

// DrawLayer calls fn(f).
func (fn LayerFunc) DrawLayer(f Frame) { fn(f) }
