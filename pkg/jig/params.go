package jig

import (
	"math"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/routerjig/pkg/geom"
	"github.com/OpenTraceLab/routerjig/pkg/units"
)

// Shape selects how (step, sub-step) indices map to pin-hole positions
type Shape int

const (
	Rectangle Shape = iota
	Narrow
	Wide
	Line
)

var shapeNames = map[Shape]string{
	Rectangle: "rectangle",
	Narrow:    "narrow",
	Wide:      "wide",
	Line:      "line",
}

// Shapes lists the shapes in display order
var Shapes = []Shape{Narrow, Wide, Rectangle, Line}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "shape(" + strconv.Itoa(int(s)) + ")"
}

// ParseShape converts a shape name to a Shape
func ParseShape(name string) (Shape, error) {
	for s, n := range shapeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, &ConfigError{Field: "shape", Input: name, Reason: "want narrow, wide, rectangle or line"}
}

// LayerMode selects whether a second jig layer is drawn and what it carries
type LayerMode int

const (
	Single LayerMode = iota
	Double
	Support
)

var layerNames = map[LayerMode]string{
	Single:  "single",
	Double:  "double",
	Support: "support",
}

// LayerModes lists the layer modes in display order
var LayerModes = []LayerMode{Single, Double, Support}

func (m LayerMode) String() string {
	if n, ok := layerNames[m]; ok {
		return n
	}
	return "layers(" + strconv.Itoa(int(m)) + ")"
}

// ParseLayerMode converts a layer mode name to a LayerMode
func ParseLayerMode(name string) (LayerMode, error) {
	for m, n := range layerNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return 0, &ConfigError{Field: "layers", Input: name, Reason: "want single, double or support"}
}

// ScrewHole is a router base screw relative to the jig center
type ScrewHole struct {
	X             float64
	Y             float64
	Diameter      float64
	OuterDiameter float64 // zero when no larger hole is given
}

// HasOuter reports whether the tuple carried a second, larger diameter
func (s ScrewHole) HasOuter() bool { return s.OuterDiameter > 0 }

// Rail describes curved screw slots at one or more angles
type Rail struct {
	Angles      []float64 // degrees
	InnerRadius float64
	OuterRadius float64
	Diameter    float64
	AltDiameter float64 // zero when no alternate diameter is given
}

// HasAlt reports whether an alternate (larger) slot width was given
func (r Rail) HasAlt() bool { return r.AltDiameter > 0 }

// RectangleSpacing is the vertical distance between sub-step holes of the
// rectangle shape
const RectangleSpacing = 8.0

// SupportRadius is the radius of the support boss drawn in support mode
const SupportRadius = 30.0

// Parameters configure one jig layout. All lengths are millimeters.
type Parameters struct {
	MinRadius float64
	BitRadius float64
	PinRadius float64
	CutRadius float64
	StepSize  float64
	Steps     int
	SubSteps  int
	StepAngle float64 // degrees between sub-steps

	Shape  Shape
	Layers LayerMode

	Screws []ScrewHole
	Rails  *Rail

	BigCircleRadius   float64
	SmallCircleRadius float64

	Units    units.System  // label display units
	Origin   geom.Position // center of the first layer
	LayerGap float64       // clearance between the layers
}

// DefaultParameters returns the stock jig: 6in minimum radius, 1in steps,
// four sub-steps 2 degrees apart, rectangle shape and a single layer.
func DefaultParameters() Parameters {
	return Parameters{
		MinRadius:         6 * units.Inch,
		BitRadius:         0.25 * units.Inch / 2,
		PinRadius:         1,
		CutRadius:         units.Inch / 2,
		StepSize:          units.Inch,
		Steps:             6,
		SubSteps:          4,
		StepAngle:         2,
		Shape:             Rectangle,
		Layers:            Single,
		BigCircleRadius:   2.5 * units.Inch,
		SmallCircleRadius: units.Inch,
		Units:             units.Metric,
		Origin:            geom.Pt(80, 80),
		LayerGap:          20,
	}
}

// CompRadius is the distance from the jig center to the pin hole of
// (step, subStep): the bit radius plus the cut radius it produces.
func (p Parameters) CompRadius(step, subStep int) float64 {
	return p.BitRadius + p.MinRadius + float64(step)*p.StepSize +
		float64(subStep)*p.StepSize/float64(p.SubSteps)
}

// SubStepAngle returns the fan-out angle of subStep in radians, centered on 0
func (p Parameters) SubStepAngle(subStep int) float64 {
	deg := float64(subStep)*p.StepAngle - float64(p.SubSteps-1)*p.StepAngle/2
	return geom.Radians(deg)
}

// SecondOrigin is the center of the second layer
func (p Parameters) SecondOrigin() geom.Position {
	return geom.Pt(p.Origin.X, p.Origin.Y+2*p.BigCircleRadius+p.LayerGap)
}

// MaxPins bounds steps*sub-steps; the document grows with the pin count
const MaxPins = 2500

// Validate checks every precondition of the layout before anything is drawn
func (p Parameters) Validate() error {
	if p.Steps < 1 {
		return &ConfigError{Field: "steps", Input: strconv.Itoa(p.Steps), Reason: "must be at least 1"}
	}
	if p.SubSteps < 1 {
		return &ConfigError{Field: "sub-steps", Input: strconv.Itoa(p.SubSteps), Reason: "must be at least 1"}
	}
	if p.Steps > MaxPins || p.SubSteps > MaxPins || p.Steps*p.SubSteps > MaxPins {
		return &ConfigError{
			Field:  "steps",
			Input:  strconv.Itoa(p.Steps) + "x" + strconv.Itoa(p.SubSteps),
			Reason: "more than " + strconv.Itoa(MaxPins) + " pin holes",
		}
	}
	if _, ok := shapeNames[p.Shape]; !ok {
		return &ConfigError{Field: "shape", Input: p.Shape.String(), Reason: "unknown shape"}
	}
	if _, ok := layerNames[p.Layers]; !ok {
		return &ConfigError{Field: "layers", Input: p.Layers.String(), Reason: "unknown layer mode"}
	}

	for _, v := range []Value{
		val("min-radius", p.MinRadius),
		val("step-size", p.StepSize),
		val("pin-radius", p.PinRadius),
		val("big-circle", p.BigCircleRadius),
		val("small-circle", p.SmallCircleRadius),
	} {
		if !(v.Value > 0) || math.IsInf(v.Value, 0) {
			return domainErr("parameters", v.Name+" must be a positive finite length", v)
		}
	}
	for _, v := range []Value{
		val("bit-radius", p.BitRadius),
		val("cut-radius", p.CutRadius),
		val("step-angle", p.StepAngle),
		val("layer-gap", p.LayerGap),
	} {
		if math.IsNaN(v.Value) || math.IsInf(v.Value, 0) || (v.Name != "step-angle" && v.Value < 0) {
			return domainErr("parameters", v.Name+" must be a finite non-negative value", v)
		}
	}

	if _, err := p.pinGrid(geom.Position{}); err != nil {
		return err
	}
	if _, err := p.TangentAngle(); err != nil {
		return err
	}
	if err := p.validateMounts(); err != nil {
		return err
	}
	if p.Layers != Single {
		if _, err := p.glueRadius(); err != nil {
			return err
		}
	}
	return nil
}
