package template

import (
	"errors"
	"testing"

	"github.com/OpenTraceLab/routerjig/pkg/drawing"
	"github.com/OpenTraceLab/routerjig/pkg/geom"
	"github.com/OpenTraceLab/routerjig/pkg/jig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tally(d *drawing.Drawing) (lines, arcs, texts int) {
	for _, p := range d.Primitives() {
		switch p.(type) {
		case drawing.Line:
			lines++
		case drawing.Arc:
			arcs++
		case drawing.Text:
			texts++
		}
	}
	return lines, arcs, texts
}

func TestQuarterTemplate(t *testing.T) {
	p := DefaultParameters()
	d := drawing.New()
	require.NoError(t, Generate(d, p))

	radii := p.Steps() + 1
	assert.Equal(t, 20, radii)

	lines, arcs, texts := tally(d)
	assert.Equal(t, radii, arcs)
	assert.Equal(t, radii*len(Marks)*2+2, lines)
	assert.Equal(t, radii+radii*len(Marks), texts)

	first := d.Primitives()[0].(drawing.Arc)
	assert.True(t, first.Reverse)
	assert.Equal(t, geom.Pt(210, 210), first.Center)
	assert.Equal(t, 10.0, first.Radius)
}

func TestHalfTemplateTicksBothSides(t *testing.T) {
	p := DefaultParameters()
	p.Angles = 180
	p.MaxRadius = 50
	d := drawing.New()
	require.NoError(t, Generate(d, p))

	radii := p.Steps() + 1
	lines, arcs, texts := tally(d)
	assert.Equal(t, radii, arcs)
	assert.Equal(t, radii*2*len(Marks)*2+2, lines)
	assert.Equal(t, radii+radii*2*len(Marks), texts)

	prims := d.Primitives()
	last := prims[len(prims)-1].(drawing.Line)
	o := p.Origin()
	assert.InDelta(t, o.X-p.MaxRadius, last.To.X, 1e-9)
	assert.InDelta(t, o.Y, last.To.Y, 1e-9)
}

func TestFenceProfile(t *testing.T) {
	p := DefaultParameters()
	p.MaxRadius = 30
	p.Fence = true
	d := drawing.New()
	require.NoError(t, Generate(d, p))

	radii := p.Steps() + 1
	lines, _, _ := tally(d)
	ticks := radii * len(Marks) * 2
	assert.Equal(t, ticks+radii*5*2+3*2, lines)
}

func TestFenceEdgesPointInward(t *testing.T) {
	p := DefaultParameters()
	o := p.Origin()
	edges := p.edges()
	require.Len(t, edges, 2)

	tooth := geom.Pt(2.5, -1.25)
	lower := edges[0].Apply(tooth)
	assert.InDelta(t, o.X+2.5, lower.X, 1e-9)
	assert.InDelta(t, o.Y-1.25, lower.Y, 1e-9)

	left := edges[1].Apply(tooth)
	assert.InDelta(t, o.X+1.25, left.X, 1e-9)
	assert.InDelta(t, o.Y-2.5, left.Y, 1e-9)

	p.Angles = 180
	mirrored := p.edges()[1].Apply(tooth)
	assert.InDelta(t, o.X-2.5, mirrored.X, 1e-9)
	assert.InDelta(t, o.Y-1.25, mirrored.Y, 1e-9)
}

func TestTemplateErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Parameters)
	}{
		{"max below min", func(p *Parameters) { p.MaxRadius = 5 }},
		{"partial step", func(p *Parameters) { p.MaxRadius = 25; p.StepSize = 10; p.MinRadius = 10 }},
		{"min shorter than step", func(p *Parameters) { p.MinRadius = 5; p.MaxRadius = 25; p.StepSize = 10 }},
		{"zero step", func(p *Parameters) { p.StepSize = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.modify(&p)
			d := drawing.New()
			var de *jig.DomainError
			assert.True(t, errors.As(Generate(d, p), &de))
			assert.Zero(t, d.Len())
		})
	}

	p := DefaultParameters()
	p.Angles = 120
	var ce *jig.ConfigError
	assert.True(t, errors.As(p.Validate(), &ce))
}

func TestTemplateRenderCaption(t *testing.T) {
	p := DefaultParameters()
	p.MaxRadius = 20
	d, err := Render(p, []string{"rjig template --max-radius 2cm"})
	require.NoError(t, err)

	doc, err := d.Finalize()
	require.NoError(t, err)
	assert.Contains(t, string(doc), "rjig template --max-radius 2cm")
}
