package mountlang

import (
	"math"
	"testing"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	return p
}

func TestParseScrews(t *testing.T) {
	p := newTestParser(t)

	list, err := p.ParseScrews("-30.5mm,-30.5mm,6mm,10mm;-30.5mm,+30.5mm,6mm,10mm; 0mm, 75mm, 6mm")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	if len(list.Holes) != 3 {
		t.Fatalf("Expected 3 holes, got %d", len(list.Holes))
	}
	if n := len(list.Holes[0].Fields); n != 4 {
		t.Errorf("Expected 4 fields in first tuple, got %d", n)
	}
	if n := len(list.Holes[2].Fields); n != 3 {
		t.Errorf("Expected 3 fields in last tuple, got %d", n)
	}
	if got := list.Holes[1].Fields[1].MM(); got != 30.5 {
		t.Errorf("Expected y = 30.5, got %v", got)
	}
	if got := list.Holes[0].Fields[0].MM(); got != -30.5 {
		t.Errorf("Expected x = -30.5, got %v", got)
	}
}

func TestParseScrewsEmpty(t *testing.T) {
	p := newTestParser(t)

	list, err := p.ParseScrews("")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(list.Holes) != 0 {
		t.Errorf("Expected no holes, got %d", len(list.Holes))
	}
}

func TestParseRails(t *testing.T) {
	p := newTestParser(t)

	decl, err := p.ParseRails("0,90,180,270,120,240:25mm:47mm:6mm:10mm")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}

	wantAngles := []float64{0, 90, 180, 270, 120, 240}
	if len(decl.Angles) != len(wantAngles) {
		t.Fatalf("Expected %d angles, got %d", len(wantAngles), len(decl.Angles))
	}
	for i, want := range wantAngles {
		if decl.Angles[i] != want {
			t.Errorf("angle %d = %v, want %v", i, decl.Angles[i], want)
		}
	}

	wantFields := []float64{25, 47, 6, 10}
	if len(decl.Fields) != len(wantFields) {
		t.Fatalf("Expected %d fields, got %d", len(wantFields), len(decl.Fields))
	}
	for i, want := range wantFields {
		if math.Abs(decl.Fields[i].MM()-want) > 1e-9 {
			t.Errorf("field %d = %v, want %v", i, decl.Fields[i].MM(), want)
		}
	}
}

func TestParseRailsInches(t *testing.T) {
	p := newTestParser(t)

	decl, err := p.ParseRails("45:1in:2in:0.25in")
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if len(decl.Fields) != 3 {
		t.Fatalf("Expected 3 fields, got %d", len(decl.Fields))
	}
	if got := decl.Fields[2].MM(); math.Abs(got-6.35) > 1e-9 {
		t.Errorf("Expected diameter 6.35, got %v", got)
	}
}

func TestParseErrors(t *testing.T) {
	p := newTestParser(t)

	screwInputs := []string{
		"1,2,3;",
		"1,,3",
		"a,b,c",
		"1mm 2mm",
	}
	for _, in := range screwInputs {
		if _, err := p.ParseScrews(in); err == nil {
			t.Errorf("ParseScrews(%q) expected error", in)
		}
	}

	railInputs := []string{
		"",
		":25mm:47mm:6mm",
		"0mm:25mm:47mm:6mm",
		"0:25mm::6mm",
	}
	for _, in := range railInputs {
		if _, err := p.ParseRails(in); err == nil {
			t.Errorf("ParseRails(%q) expected error", in)
		}
	}
}
