package geometry

// Resample returns a path with exactly n points, linearly interpolated by
// index over the input. Endpoints are preserved.
func Resample(points []Point, n int) []Point {
	if len(points) == 0 || n <= 0 {
		return nil
	}

	if len(points) == 1 || n == 1 {
		return []Point{points[0]}
	}

	result := make([]Point, n)
	for i := 0; i < n; i++ {
		// Map index i to a position in the original path
		t := float64(i) / float64(n-1)
		pos := t * float64(len(points)-1)

		idx := int(pos)
		if idx >= len(points)-1 {
			idx = len(points) - 2
		}
		frac := pos - float64(idx)

		p1 := points[idx]
		p2 := points[idx+1]
		result[i] = Point{
			X: p1.X + frac*(p2.X-p1.X),
			Y: p1.Y + frac*(p2.Y-p1.Y),
		}
	}

	return result
}

// Densify inserts perSegment-1 evenly spaced points between every pair of
// consecutive vertices. Vertices themselves are kept exactly.
func Densify(vertices []Point, perSegment int) []Point {
	if len(vertices) == 0 {
		return nil
	}
	if perSegment < 1 {
		perSegment = 1
	}

	out := make([]Point, 0, (len(vertices)-1)*perSegment+1)
	for j := 0; j < len(vertices)-1; j++ {
		a, b := vertices[j], vertices[j+1]
		for s := 0; s < perSegment; s++ {
			f := float64(s) / float64(perSegment)
			out = append(out, Point{
				X: a.X + f*(b.X-a.X),
				Y: a.Y + f*(b.Y-a.Y),
			})
		}
	}
	out = append(out, vertices[len(vertices)-1])

	return out
}
