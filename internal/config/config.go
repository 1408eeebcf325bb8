package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/example/ultrapaint/internal/shape"
)

// Style is the set of attributes applied to the next shape drawn.
type Style struct {
	Kind        shape.Kind
	Filled      bool
	StrokeWidth float32
	Dashed      bool
	DashLength  float32
	Gradient    bool
	Color1      color.RGBA
	Color2      color.RGBA
}

var black = color.RGBA{A: 0xff}

// DefaultStyle is a solid black one pixel line.
func DefaultStyle() Style {
	return Style{
		Kind:        shape.KindLine,
		StrokeWidth: 1,
		DashLength:  1,
		Color1:      black,
		Color2:      black,
	}
}

// Clamp replaces out of range values with their defaults.
func (s Style) Clamp() Style {
	if !(s.StrokeWidth > 0) {
		s.StrokeWidth = 1
	}
	if !(s.DashLength > 0) {
		s.DashLength = 1
	}
	if s.Kind < shape.KindLine || s.Kind > shape.KindPolygon {
		s.Kind = shape.KindLine
	}
	s.Color1.A = 0xff
	s.Color2.A = 0xff
	return s
}

// ShapeStyle returns the kind and shape attributes described by s.
func (s Style) ShapeStyle() (shape.Kind, shape.Style) {
	return s.Kind, shape.Style{
		Color1:      s.Color1,
		Color2:      s.Color2,
		StrokeWidth: s.StrokeWidth,
		Dash:        []float32{s.DashLength},
		Gradient:    s.Gradient,
		Dashed:      s.Dashed,
		Filled:      s.Filled,
	}
}

// String renders the style in settings file layout.
func (s Style) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Type %s\n", s.Kind)
	fmt.Fprintf(&sb, "Filled %t\n", s.Filled)
	fmt.Fprintf(&sb, "StrokeWidth %s\n", formatLength(s.StrokeWidth))
	fmt.Fprintf(&sb, "Dashed %t\n", s.Dashed)
	fmt.Fprintf(&sb, "DashLength %s\n", formatLength(s.DashLength))
	fmt.Fprintf(&sb, "Gradient %t\n", s.Gradient)
	fmt.Fprintf(&sb, "Colour1 %s\n", formatColor(s.Color1))
	fmt.Fprintf(&sb, "Colour2 %s\n", formatColor(s.Color2))
	return sb.String()
}

// formatLength keeps the six decimal layout when it reads back exactly and
// otherwise writes the shortest exact form.
func formatLength(v float32) string {
	fixed := fmt.Sprintf("%f", v)
	if f, err := strconv.ParseFloat(fixed, 32); err == nil && float32(f) == v {
		return fixed
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

func formatColor(c color.RGBA) string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Notify holds notification settings.
type Notify struct {
	Save   bool
	Export bool
	Copy   bool
}

// Config holds the application configuration.
type Config struct {
	Style     Style
	ExportDir string
	Theme     string
	Notify    Notify
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{Style: DefaultStyle()}
}

// String implements fmt.Stringer and returns the configuration in settings
// file format.
func (c *Config) String() string {
	var sb strings.Builder
	sb.WriteString(c.Style.String())
	if c.ExportDir != "" {
		fmt.Fprintf(&sb, "ExportDir %s\n", c.ExportDir)
	}
	if c.Theme != "" {
		fmt.Fprintf(&sb, "Theme %s\n", c.Theme)
	}
	sb.WriteString("\n[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "export = %v\n", c.Notify.Export)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	return sb.String()
}
