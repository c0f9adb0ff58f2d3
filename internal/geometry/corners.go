package geometry

import "math"

// Corner detection defaults. They are tuned for touch input sampled at
// roughly display refresh rate; slower or faster samplers need recalibration.
const (
	// DefaultCornerWindow is the number of points on each side of a candidate corner.
	DefaultCornerWindow = 5
	// DefaultCornerAngle is the direction change in degrees above which a corner is counted.
	DefaultCornerAngle = 30.0
	// DefaultCornerSkip is how many indices are skipped after a corner is counted.
	DefaultCornerSkip = 10
)

// CornerConfig holds the windowed corner detector parameters.
type CornerConfig struct {
	Window         int     // Points between the candidate and each neighbour
	AngleThreshold float64 // Degrees of direction change that count as a corner
	SkipAhead      int     // Indices skipped after a corner so one bend counts once
}

// DefaultCornerConfig returns the detector parameters used for classification.
func DefaultCornerConfig() CornerConfig {
	return CornerConfig{
		Window:         DefaultCornerWindow,
		AngleThreshold: DefaultCornerAngle,
		SkipAhead:      DefaultCornerSkip,
	}
}

// Corners counts sharp direction changes along a path.
//
// For every index i with Window <= i < len(points)-Window, the direction of the
// segment points[i-Window]→points[i] is compared to points[i]→points[i+Window].
// When the absolute difference, folded to at most 180 degrees, exceeds
// AngleThreshold a corner is counted and the scan jumps SkipAhead indices
// forward before continuing.
func Corners(points []Point, cfg CornerConfig) int {
	w := cfg.Window
	if w <= 0 {
		return 0
	}

	corners := 0
	for i := w; i < len(points)-w; i++ {
		prev := points[i-w]
		curr := points[i]
		next := points[i+w]

		a1 := math.Atan2(curr.Y-prev.Y, curr.X-prev.X)
		a2 := math.Atan2(next.Y-curr.Y, next.X-curr.X)

		delta := math.Abs(a2-a1) * 180 / math.Pi
		if delta > 180 {
			delta = 360 - delta
		}

		if delta > cfg.AngleThreshold {
			corners++
			i += cfg.SkipAhead
		}
	}

	return corners
}
