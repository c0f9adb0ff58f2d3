package gesture

import (
	"github.com/ayusman/ambidraw/internal/geometry"
)

// Classification constants.
const (
	// MinPoints is the shortest path that is classified at all.
	MinPoints = 10
	// CircleThreshold is the circularity above which a path is a circle.
	CircleThreshold = 0.7
	// CornerConfidence is the fixed confidence of corner-based shapes.
	CornerConfidence = 0.8
	// DiamondMinAspect and DiamondMaxAspect bound the open aspect-ratio
	// interval that separates a diamond from a square.
	DiamondMinAspect = 0.6
	DiamondMaxAspect = 1.4
)

// Result is the outcome of classifying a path.
type Result struct {
	Shape      Shape   `json:"shape"`
	Confidence float64 `json:"confidence"` // 0-1
}

// Classifier maps a stroke to a shape using circularity and corner count.
//
// # Limitations
//
//   - Square and diamond are told apart by bounding-box aspect ratio only.
//     Rotation is invisible to this test, so an axis-aligned 1:1 square is
//     reported as a diamond and a 45° rotated square with the same box is
//     indistinguishable from it.
//   - Star and heart have no detector and are never returned.
//   - The corner window and angle are tuned for a specific sampling rate.
type Classifier struct {
	corners geometry.CornerConfig
}

// NewClassifier creates a Classifier with the default corner detector.
func NewClassifier() *Classifier {
	return &Classifier{corners: geometry.DefaultCornerConfig()}
}

// NewClassifierWithCorners creates a Classifier using a recalibrated corner detector.
func NewClassifierWithCorners(cfg geometry.CornerConfig) *Classifier {
	return &Classifier{corners: cfg}
}

// Classify returns the shape drawn by points.
//
// Circularity is checked strictly before corners, so a wobbly circle whose
// noise happens to produce four direction spikes is still a circle.
// Paths shorter than MinPoints are never classified.
func (c *Classifier) Classify(points []geometry.Point) Result {
	if len(points) < MinPoints {
		return Result{Shape: ShapeNone}
	}

	box, err := geometry.BoundingBoxOf(points)
	if err != nil {
		return Result{Shape: ShapeNone}
	}

	circularity := geometry.Circularity(points, box.Center())
	if circularity > CircleThreshold {
		return Result{Shape: ShapeCircle, Confidence: circularity}
	}

	return classifyByCorners(geometry.Corners(points, c.corners), box)
}

// classifyByCorners maps a corner count and bounding box to a shape.
func classifyByCorners(corners int, box geometry.BoundingBox) Result {
	switch corners {
	case 4:
		// Zero-height boxes have an infinite aspect ratio and fall through to square
		aspect := box.AspectRatio()
		if aspect > DiamondMinAspect && aspect < DiamondMaxAspect {
			return Result{Shape: ShapeDiamond, Confidence: CornerConfidence}
		}
		return Result{Shape: ShapeSquare, Confidence: CornerConfidence}
	case 3:
		return Result{Shape: ShapeTriangle, Confidence: CornerConfidence}
	}
	return classifyUnsupported(corners)
}

// classifyUnsupported is where star and heart detection would live.
// Neither shape has a detector, so every remaining path is unrecognized.
func classifyUnsupported(int) Result {
	return Result{Shape: ShapeNone}
}
