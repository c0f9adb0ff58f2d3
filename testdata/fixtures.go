// Package testdata provides synthetic stroke paths shared by package tests.
package testdata

import (
	"math"

	"github.com/ayusman/ambidraw/internal/geometry"
)

// Circle returns n points evenly spaced on a circle of radius r around (cx, cy).
func Circle(cx, cy, r float64, n int) []geometry.Point {
	points := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = geometry.Point{
			X: cx + r*math.Cos(theta),
			Y: cy + r*math.Sin(theta),
		}
	}
	return points
}

// WobblyCircle is Circle with the radius modulated by amp*cos(lobes*theta),
// so circularity falls as amp grows.
func WobblyCircle(cx, cy, r, amp float64, lobes, n int) []geometry.Point {
	points := make([]geometry.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		radius := r * (1 + amp*math.Cos(float64(lobes)*theta))
		points[i] = geometry.Point{
			X: cx + radius*math.Cos(theta),
			Y: cy + radius*math.Sin(theta),
		}
	}
	return points
}

// Polygon densifies the outline through vertices with perEdge points per edge.
// The outline is open; repeat the first vertex at the end to close it.
func Polygon(vertices []geometry.Point, perEdge int) []geometry.Point {
	return geometry.Densify(vertices, perEdge)
}

// Square traces the square (0,0),(size,0),(size,size),(0,size) as a closed
// stroke starting and ending at the middle of the top edge, so all four
// corners lie inside the path.
func Square(size float64, perEdge int) []geometry.Point {
	half := size / 2
	return Polygon([]geometry.Point{
		{X: half, Y: 0},
		{X: size, Y: 0},
		{X: size, Y: size},
		{X: 0, Y: size},
		{X: 0, Y: 0},
		{X: half, Y: 0},
	}, perEdge)
}

// Triangle traces a wide isosceles triangle with apex (100,0) and base from
// (0,100) to (200,100), starting and ending at the middle of the base.
func Triangle(perEdge int) []geometry.Point {
	return Polygon([]geometry.Point{
		{X: 100, Y: 100},
		{X: 0, Y: 100},
		{X: 100, Y: 0},
		{X: 200, Y: 100},
		{X: 100, Y: 100},
	}, perEdge)
}

// Zigzag returns an open stroke of turns+1 straight segments alternating
// between y=0 and y=height, spanning width horizontally. Every interior
// vertex is a sharp turn and the bounding box is exactly width × height.
func Zigzag(width, height float64, turns, perEdge int) []geometry.Point {
	segments := turns + 1
	vertices := make([]geometry.Point, segments+1)
	for i := range vertices {
		y := 0.0
		if i%2 == 1 {
			y = height
		}
		vertices[i] = geometry.Point{X: width * float64(i) / float64(segments), Y: y}
	}
	return Polygon(vertices, perEdge)
}

// Line returns a straight stroke of n points from a to b.
func Line(a, b geometry.Point, n int) []geometry.Point {
	return geometry.Resample([]geometry.Point{a, b}, n)
}
