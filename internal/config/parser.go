package config

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/example/ultrapaint/internal/shape"
)

// ErrUnknownKey is returned by Set for keys it does not recognise.
var ErrUnknownKey = errors.New("unknown key")

// Parse reads configuration from an io.Reader. Unknown keys and malformed
// values are skipped; only read errors are returned.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]"))
			continue
		}

		key, value, ok := splitLine(line)
		if !ok {
			continue
		}

		switch currentSection {
		case "":
			_ = cfg.Set(key, value)
		case "notify":
			_ = setNotifyField(&cfg.Notify, key, value)
		}
	}

	return cfg, scanner.Err()
}

// splitLine accepts "key value", "key = value" and "key: value".
func splitLine(line string) (key, value string, ok bool) {
	i := strings.IndexAny(line, " \t=:")
	if i <= 0 {
		return "", "", false
	}
	key = line[:i]
	value = strings.TrimSpace(line[i:])
	if strings.HasPrefix(value, "=") || strings.HasPrefix(value, ":") {
		value = strings.TrimSpace(value[1:])
	}
	if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
		value = value[1 : len(value)-1]
	}
	return key, value, value != ""
}

// Set assigns one root level key.
func (c *Config) Set(key, value string) error {
	if strings.EqualFold(key, "exportdir") || strings.EqualFold(key, "export_dir") {
		c.ExportDir = value
		return nil
	}
	if strings.EqualFold(key, "theme") {
		c.Theme = value
		return nil
	}
	return c.Style.Set(key, value)
}

// Set assigns one style key, case-insensitively.
func (s *Style) Set(key, value string) error {
	value = strings.ToLower(strings.TrimSpace(value))
	switch strings.ToLower(key) {
	case "type", "kind":
		k, ok := shape.ParseKind(value)
		if !ok {
			return fmt.Errorf("invalid shape type %q", value)
		}
		s.Kind = k
	case "filled":
		return setBool(&s.Filled, key, value)
	case "dashed":
		return setBool(&s.Dashed, key, value)
	case "gradient":
		return setBool(&s.Gradient, key, value)
	case "strokewidth":
		return setLength(&s.StrokeWidth, key, value)
	case "dashlength":
		return setLength(&s.DashLength, key, value)
	case "colour1", "color1":
		return setColor(&s.Color1, key, value)
	case "colour2", "color2":
		return setColor(&s.Color2, key, value)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKey, key)
	}
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	*dst = b
	return nil
}

// setLength accepts a non-negative decimal. Zero becomes 1.
func setLength(dst *float32, key, value string) error {
	f, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	if f < 0 {
		return fmt.Errorf("invalid number for key %s: %s is negative", key, value)
	}
	if f == 0 {
		f = 1
	}
	*dst = float32(f)
	return nil
}

func setColor(dst *color.RGBA, key, value string) error {
	c, err := ParseColor(value)
	if err != nil {
		return fmt.Errorf("invalid color for key %s: %w", key, err)
	}
	*dst = c
	return nil
}

// ParseColor accepts "r,g,b" with components 0-255, "#rrggbb" or a CSS
// colour name. The result is opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.Contains(s, ","):
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return color.RGBA{}, fmt.Errorf("want r,g,b, got %q", s)
		}
		var rgb [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("component %d: %w", i+1, err)
			}
			rgb[i] = uint8(v)
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
	case strings.HasPrefix(s, "#"):
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, err
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		c.A = 0xff
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "save":
		n.Save = b
	case "export":
		n.Export = b
	case "copy":
		n.Copy = b
	}
	return nil
}
