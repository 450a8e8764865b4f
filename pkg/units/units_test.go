package units

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "inches", input: "6in", want: 152.4},
		{name: "fractional inches", input: "0.25in", want: 6.35},
		{name: "inch mark", input: `1"`, want: 25.4},
		{name: "millimeters", input: "2mm", want: 2},
		{name: "bare number", input: "30.5", want: 30.5},
		{name: "signed", input: "+30.5mm", want: 30.5},
		{name: "negative", input: "-57.5mm", want: -57.5},
		{name: "centimeters", input: "20cm", want: 200},
		{name: "meters", input: "1m", want: 1000},
		{name: "spaced", input: " 2.5 in ", want: 63.5},
		{name: "upper case", input: "1IN", want: 25.4},
		{name: "leading dot", input: ".5in", want: 12.7},
		{name: "unknown unit", input: "3ft", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "two numbers", input: "3 4", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("Parse(%q) error %T is not a *ParseError", tt.input, err)
				}
				return
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		system System
		mm     float64
		want   string
	}{
		{Imperial, 152.4, `6"`},
		{Imperial, 158.75, `6 1/4"`},
		{Imperial, 6.35, `1/4"`},
		{Imperial, 25.4 * 3 / 64, `3/64"`},
		{Imperial, -12.7, `-1/2"`},
		{Imperial, 10, `0.394"`},
		{Imperial, 0, `0"`},
		{Metric, 152.4, "152.4mm"},
		{Metric, 6.35, "6.35mm"},
		{Metric, 1.0 / 3.0, "0.33mm"},
		{Metric, 100, "100mm"},
	}

	for _, tt := range tests {
		got := tt.system.Format(tt.mm)
		if got != tt.want {
			t.Errorf("%s.Format(%v) = %q, want %q", tt.system, tt.mm, got, tt.want)
		}
	}
}

func TestSystemFor(t *testing.T) {
	if SystemFor(true) != Imperial {
		t.Error("SystemFor(true) should be Imperial")
	}
	if SystemFor(false) != Metric {
		t.Error("SystemFor(false) should be Metric")
	}
}
