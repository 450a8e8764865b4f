package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBoxExpand(t *testing.T) {
	bb := NewBoundingBox()
	if !bb.IsEmpty() {
		t.Fatal("new bounding box should be empty")
	}

	bb.Expand(Pt(3, -2))
	bb.Expand(Pt(-1, 5))

	assert.Equal(t, Pt(-1, -2), bb.Min)
	assert.Equal(t, Pt(3, 5), bb.Max)
	assert.Equal(t, 4.0, bb.Width())
	assert.Equal(t, 7.0, bb.Height())
	assert.Equal(t, Pt(1, 1.5), bb.Center())
}

func TestBoundingBoxExpandBoxIgnoresEmpty(t *testing.T) {
	bb := CircleBounds(Pt(0, 0), 2)
	bb.ExpandBox(NewBoundingBox())

	assert.Equal(t, Pt(-2, -2), bb.Min)
	assert.Equal(t, Pt(2, 2), bb.Max)
	assert.True(t, bb.ContainsBox(CircleBounds(Pt(1, 1), 1)))
	assert.False(t, bb.ContainsBox(CircleBounds(Pt(1, 1), 2)))
}

func TestTransformRoundTrip(t *testing.T) {
	tr := Rotation(Pt(10, 20), 90)
	p := tr.Apply(Pt(5, 0))
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 25, p.Y, 1e-9)

	back := tr.ApplyInverse(p)
	assert.InDelta(t, 5, back.X, 1e-9)
	assert.InDelta(t, 0, back.Y, 1e-9)
}

func TestArcPointsStayOnCircle(t *testing.T) {
	c := Pt(4, -3)
	pts := ArcPoints(c, 7, Radians(30), Radians(200))
	if len(pts) < 3 {
		t.Fatalf("ArcPoints returned %d points, want at least 3", len(pts))
	}
	for i, p := range pts {
		assert.InDelta(t, 7, p.Distance(c), 1e-9, "point %d", i)
	}
	assert.InDelta(t, Polar(c, 7, Radians(230)).X, pts[len(pts)-1].X, 1e-9)
}

func TestDashSegments(t *testing.T) {
	tests := []struct {
		name    string
		pattern []float64
		want    int
		length  float64
	}{
		{name: "solid", pattern: nil, want: 1, length: 10},
		{name: "3,3", pattern: []float64{3, 3}, want: 2, length: 6},
		{name: "2,2", pattern: []float64{2, 2}, want: 3, length: 6},
		{name: "zero period", pattern: []float64{0, 0}, want: 1, length: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := DashSegments(Pt(0, 0), Pt(10, 0), tt.pattern)
			if len(segs) != tt.want {
				t.Fatalf("DashSegments() returned %d segments, want %d", len(segs), tt.want)
			}
			total := 0.0
			for _, s := range segs {
				total += s.From.Distance(s.To)
			}
			if math.Abs(total-tt.length) > 1e-9 {
				t.Errorf("visible length = %v, want %v", total, tt.length)
			}
		})
	}
}
