// Package geometry provides the path features used for shape recognition:
// bounding boxes, centroids, circularity and windowed corner detection.
package geometry

import (
	"errors"
	"math"
)

// ErrEmptyPath is returned when a feature is requested for a path with no points.
var ErrEmptyPath = errors.New("empty path")

// Point is a canvas-local pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox is the axis-aligned extent of a point sequence.
type BoundingBox struct {
	MinX float64 `json:"minX"`
	MaxX float64 `json:"maxX"`
	MinY float64 `json:"minY"`
	MaxY float64 `json:"maxY"`
}

// BoundingBoxOf returns the bounding box of points.
// Returns ErrEmptyPath if points is empty.
func BoundingBoxOf(points []Point) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, ErrEmptyPath
	}

	box := BoundingBox{
		MinX: points[0].X,
		MaxX: points[0].X,
		MinY: points[0].Y,
		MaxY: points[0].Y,
	}

	for _, p := range points[1:] {
		if p.X < box.MinX {
			box.MinX = p.X
		}
		if p.X > box.MaxX {
			box.MaxX = p.X
		}
		if p.Y < box.MinY {
			box.MinY = p.Y
		}
		if p.Y > box.MaxY {
			box.MaxY = p.Y
		}
	}

	return box, nil
}

// Center returns the centroid of the box.
func (b BoundingBox) Center() Point {
	return Point{
		X: (b.MinX + b.MaxX) / 2,
		Y: (b.MinY + b.MaxY) / 2,
	}
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// AspectRatio returns width divided by height.
// A zero-height box yields +Inf so that it never falls inside a bounded range.
func (b BoundingBox) AspectRatio() float64 {
	h := b.Height()
	if h == 0 {
		return math.Inf(1)
	}
	return b.Width() / h
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PathLength returns the summed length of consecutive segments.
func PathLength(points []Point) float64 {
	var length float64
	for i := 1; i < len(points); i++ {
		length += Distance(points[i-1], points[i])
	}
	return length
}

// Circularity scores how uniform the radial distances from center are.
//
// With r_i the distance of point i from center, r̄ their mean and σ their
// population standard deviation, the score is max(0, 1 − σ/r̄) clamped to [0, 1].
// A perfect circle around center scores 1.0. Empty paths and paths whose
// mean radius is zero score 0.
func Circularity(points []Point, center Point) float64 {
	if len(points) == 0 {
		return 0
	}

	radii := make([]float64, len(points))
	var total float64
	for i, p := range points {
		radii[i] = Distance(p, center)
		total += radii[i]
	}

	mean := total / float64(len(points))
	if mean == 0 {
		return 0
	}

	var variance float64
	for _, r := range radii {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(points))

	score := 1 - math.Sqrt(variance)/mean
	return math.Max(0, math.Min(1, score))
}
