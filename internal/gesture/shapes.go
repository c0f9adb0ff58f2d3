// Package gesture classifies drawn strokes into shapes and decides whether a
// stroke satisfies a target shape at a given difficulty.
package gesture

import "fmt"

// Shape identifies a shape in the drawing vocabulary.
type Shape string

const (
	// ShapeNone means no shape was recognized.
	ShapeNone     Shape = "none"
	ShapeCircle   Shape = "circle"
	ShapeSquare   Shape = "square"
	ShapeTriangle Shape = "triangle"
	ShapeDiamond  Shape = "diamond"
	// ShapeStar and ShapeHeart are catalogued targets with no recognizer.
	ShapeStar  Shape = "star"
	ShapeHeart Shape = "heart"
)

// Info describes a shape in the catalog.
type Info struct {
	Shape     Shape  `json:"shape"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	MinPoints int    `json:"minPoints"`
	Corners   int    `json:"corners,omitempty"`
	Closed    bool   `json:"closed"`
}

var catalog = map[Shape]Info{
	ShapeCircle:   {Shape: ShapeCircle, Name: "Circle", Icon: "○", MinPoints: 20, Closed: true},
	ShapeSquare:   {Shape: ShapeSquare, Name: "Square", Icon: "□", MinPoints: 20, Corners: 4, Closed: true},
	ShapeTriangle: {Shape: ShapeTriangle, Name: "Triangle", Icon: "△", MinPoints: 15, Corners: 3, Closed: true},
	ShapeStar:     {Shape: ShapeStar, Name: "Star", Icon: "★", MinPoints: 30, Corners: 10, Closed: true},
	ShapeHeart:    {Shape: ShapeHeart, Name: "Heart", Icon: "♥", MinPoints: 25, Closed: true},
	ShapeDiamond:  {Shape: ShapeDiamond, Name: "Diamond", Icon: "◆", MinPoints: 20, Corners: 4, Closed: true},
}

// catalogOrder is the presentation order of Catalog.
var catalogOrder = []Shape{ShapeCircle, ShapeSquare, ShapeTriangle, ShapeStar, ShapeHeart, ShapeDiamond}

// Catalog returns every catalogued shape, including ones that cannot be recognized.
func Catalog() []Info {
	infos := make([]Info, 0, len(catalogOrder))
	for _, s := range catalogOrder {
		infos = append(infos, catalog[s])
	}
	return infos
}

// Lookup returns the catalog entry for s.
func Lookup(s Shape) (Info, bool) {
	info, ok := catalog[s]
	return info, ok
}

// ParseShape converts a name into a catalogued Shape.
func ParseShape(name string) (Shape, error) {
	s := Shape(name)
	if _, ok := catalog[s]; !ok {
		return ShapeNone, fmt.Errorf("unknown shape %q", name)
	}
	return s, nil
}

// Recognizable reports whether the classifier can ever produce s.
// Star and heart are catalogued but have no classification branch.
func (s Shape) Recognizable() bool {
	switch s {
	case ShapeCircle, ShapeSquare, ShapeTriangle, ShapeDiamond:
		return true
	}
	return false
}

func (s Shape) String() string {
	return string(s)
}
