// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package geometry provides the screen-fill triangle used by the background pass.
//
// One oversized triangle covers the viewport with three vertices and no index
// buffer, and has no diagonal seam where two quad halves would meet:
//
//	          /\
//	         /  \
//	        /____\
//	       /|    |\
//	      / | vp | \
//	     /  |____|__\
//	    /      __/
//	   /   ___/
//	  /___/
//
// The vertex shader maps each position v to clip space as 1 - 2v, so the
// vertices (-2,0), (0,-2), (2,2) land at (5,1), (1,5), (-3,-3).
package geometry

// Vec2 is a 2D point.
type Vec2 struct {
	X, Y float32
}

// Triangle is three points in counter-clockwise or clockwise order.
type Triangle [3]Vec2

// screenFill holds the untransformed vertex positions.
var screenFill = Triangle{
	{X: -2, Y: 0},
	{X: 0, Y: -2},
	{X: 2, Y: 2},
}

// Viewport is the canonical clip-space square corners.
var Viewport = [4]Vec2{
	{X: -1, Y: -1},
	{X: -1, Y: 1},
	{X: 1, Y: -1},
	{X: 1, Y: 1},
}

// ScreenFill returns the untransformed screen-fill triangle.
func ScreenFill() Triangle { return screenFill }

// ToClip applies the vertex shader transform clip = 1 - 2v.
func ToClip(v Vec2) Vec2 {
	return Vec2{X: 1 - 2*v.X, Y: 1 - 2*v.Y}
}

// Map returns t with f applied to every vertex.
func (t Triangle) Map(f func(Vec2) Vec2) Triangle {
	return Triangle{f(t[0]), f(t[1]), f(t[2])}
}

// Floats flattens t into x0, y0, x1, y1, x2, y2.
func (t Triangle) Floats() []float32 {
	return []float32{t[0].X, t[0].Y, t[1].X, t[1].Y, t[2].X, t[2].Y}
}

// Contains reports whether p lies inside t or on its boundary.
func (t Triangle) Contains(p Vec2) bool {
	d0 := edge(t[0], t[1], p)
	d1 := edge(t[1], t[2], p)
	d2 := edge(t[2], t[0], p)

	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

// edge is the signed area of (a, b, p); its sign tells which side of ab p is on.
func edge(a, b, p Vec2) float32 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// CoversViewport reports whether the clip-space triangle t contains every
// corner of the viewport square. A triangle is convex, so containing the
// corners means containing the whole square.
func CoversViewport(t Triangle) bool {
	for _, c := range Viewport {
		if !t.Contains(c) {
			return false
		}
	}
	return true
}
