package config

import (
	"image/color"
	"strings"
	"testing"

	"github.com/example/ultrapaint/internal/shape"
)

func TestParse(t *testing.T) {
	input := `
# written by hand
type polygon
FILLED TRUE
StrokeWidth 3.5
dashed true
DashLength 6
gradient = true
Colour1 255,0,0
color2: #00ff80
ExportDir /tmp/drawings

[notify]
save = true
export = false
copy = true
`
	r := strings.NewReader(input)
	cfg, err := Parse(r)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	s := cfg.Style
	if s.Kind != shape.KindPolygon {
		t.Errorf("Expected kind POLYGON, got %s", s.Kind)
	}
	if !s.Filled || !s.Dashed || !s.Gradient {
		t.Errorf("Expected filled, dashed and gradient, got %+v", s)
	}
	if s.StrokeWidth != 3.5 || s.DashLength != 6 {
		t.Errorf("Unexpected lengths: %v %v", s.StrokeWidth, s.DashLength)
	}
	if s.Color1 != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("Unexpected Colour1: %+v", s.Color1)
	}
	if s.Color2 != (color.RGBA{G: 255, B: 0x80, A: 255}) {
		t.Errorf("Unexpected Colour2: %+v", s.Color2)
	}
	if cfg.ExportDir != "/tmp/drawings" {
		t.Errorf("Expected export dir '/tmp/drawings', got '%s'", cfg.ExportDir)
	}
	if !cfg.Notify.Save || cfg.Notify.Export || !cfg.Notify.Copy {
		t.Errorf("Unexpected notify settings: %+v", cfg.Notify)
	}
}

func TestParseIgnoresMalformed(t *testing.T) {
	input := `type hexagon
filled maybe
strokewidth -4
dashlength 0
colour1 300,0,0
colour2 navy
bogus line here
lonely
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := DefaultStyle()
	want.Color2 = color.RGBA{B: 0x80, A: 255}
	if cfg.Style != want {
		t.Errorf("Expected %+v, got %+v", want, cfg.Style)
	}
}

func TestDefaultsWritten(t *testing.T) {
	want := `Type LINE
Filled false
StrokeWidth 1.000000
Dashed false
DashLength 1.000000
Gradient false
Colour1 0,0,0
Colour2 0,0,0
`
	if got := DefaultStyle().String(); got != want {
		t.Errorf("Unexpected settings layout:\n%s", got)
	}
}

func TestCircular(t *testing.T) {
	cfg := New()
	cfg.Style = Style{
		Kind:        shape.KindOval,
		Filled:      true,
		StrokeWidth: 2.25,
		Dashed:      true,
		DashLength:  7,
		Gradient:    true,
		Color1:      color.RGBA{R: 10, G: 20, B: 30, A: 255},
		Color2:      color.RGBA{R: 200, G: 100, B: 0, A: 255},
	}
	cfg.ExportDir = "/home/user/drawings"
	cfg.Theme = "dark"
	cfg.Notify = Notify{Save: true, Copy: true}

	// 1. Generate string representation
	generated := cfg.String()

	// 2. Parse generated string
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	// 3. Compare fields
	if cfg.Style != cfg2.Style {
		t.Errorf("Style mismatch: %+v vs %+v", cfg.Style, cfg2.Style)
	}
	if cfg.ExportDir != cfg2.ExportDir {
		t.Errorf("ExportDir mismatch: %q vs %q", cfg.ExportDir, cfg2.ExportDir)
	}
	if cfg.Theme != cfg2.Theme {
		t.Errorf("Theme mismatch: %q vs %q", cfg.Theme, cfg2.Theme)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
}

func TestCircularLengths(t *testing.T) {
	for _, v := range []float32{1, 2.5, 1.2345678, 1e-07, 0.0000123, 12345.678} {
		cfg := New()
		cfg.Style.StrokeWidth = v
		cfg.Style.DashLength = v
		cfg2, err := Parse(strings.NewReader(cfg.String()))
		if err != nil {
			t.Fatalf("parse %v: %v", v, err)
		}
		if cfg2.Style.StrokeWidth != v {
			t.Errorf("StrokeWidth %v came back as %v", v, cfg2.Style.StrokeWidth)
		}
		if cfg2.Style.DashLength != v {
			t.Errorf("DashLength %v came back as %v", v, cfg2.Style.DashLength)
		}
	}
	if got := formatLength(1); got != "1.000000" {
		t.Errorf("Expected six decimal layout, got %q", got)
	}
}

func TestSet(t *testing.T) {
	s := DefaultStyle()
	if err := s.Set("Type", "RECT"); err != nil {
		t.Fatalf("Set type: %v", err)
	}
	if s.Kind != shape.KindRectangle {
		t.Errorf("Expected RECTANGLE, got %s", s.Kind)
	}
	if err := s.Set("colour1", "Crimson"); err != nil {
		t.Fatalf("Set colour: %v", err)
	}
	if s.Color1 != (color.RGBA{R: 0xdc, G: 0x14, B: 0x3c, A: 0xff}) {
		t.Errorf("Unexpected colour %+v", s.Color1)
	}
	if err := s.Set("width", "3"); err == nil {
		t.Error("Expected an error for an unknown key")
	}
	if err := s.Set("strokewidth", "abc"); err == nil {
		t.Error("Expected an error for a bad number")
	}
}

func TestClamp(t *testing.T) {
	s := Style{Kind: shape.Kind(9), StrokeWidth: -1, Color1: color.RGBA{R: 1}}
	got := s.Clamp()
	if got.Kind != shape.KindLine || got.StrokeWidth != 1 || got.DashLength != 1 {
		t.Errorf("Unexpected clamp result %+v", got)
	}
	if got.Color1.A != 0xff || got.Color2.A != 0xff {
		t.Errorf("Expected opaque colours, got %+v", got)
	}
}

func TestShapeStyle(t *testing.T) {
	s := DefaultStyle()
	s.Kind = shape.KindPolygon
	s.DashLength = 4
	s.Filled = true
	k, st := s.ShapeStyle()
	if k != shape.KindPolygon {
		t.Errorf("Expected POLYGON, got %s", k)
	}
	if len(st.Dash) != 1 || st.Dash[0] != 4 || !st.Filled || st.StrokeWidth != 1 {
		t.Errorf("Unexpected shape style %+v", st)
	}
}
