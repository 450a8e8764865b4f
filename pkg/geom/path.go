package geom

import "math"

// circleSegments is the polyline resolution of a full circle
const circleSegments = 64

// ArcPoints approximates the arc starting at angle start (radians) and
// sweeping by sweep radians around center with a polyline.
func ArcPoints(center Position, r, start, sweep float64) []Position {
	n := int(math.Ceil(circleSegments * math.Abs(sweep) / (2 * math.Pi)))
	if n < 2 {
		n = 2
	}
	pts := make([]Position, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = Polar(center, r, start+sweep*float64(i)/float64(n))
	}
	return pts
}

// CirclePoints returns a closed polyline approximating a circle
func CirclePoints(center Position, r float64) []Position {
	return ArcPoints(center, r, 0, 2*math.Pi)
}

// Segment is a straight piece of a stroked path
type Segment struct {
	From Position
	To   Position
}

// DashSegments splits the segment a-b into the visible pieces of a dash
// pattern. An empty pattern returns the whole segment.
func DashSegments(a, b Position, pattern []float64) []Segment {
	total := a.Distance(b)
	period := 0.0
	for _, d := range pattern {
		period += d
	}
	if len(pattern) == 0 || period <= 0 || total == 0 {
		return []Segment{{From: a, To: b}}
	}

	dir := b.Sub(a).Scale(1 / total)
	var out []Segment
	pos := 0.0
	for i := 0; pos < total; i++ {
		l := pattern[i%len(pattern)]
		end := math.Min(pos+l, total)
		if i%2 == 0 && end > pos {
			out = append(out, Segment{
				From: a.Add(dir.Scale(pos)),
				To:   a.Add(dir.Scale(end)),
			})
		}
		pos = end
	}
	return out
}
