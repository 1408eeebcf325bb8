// Package theme holds the colours of the drawing window's chrome.
package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes holds the built-in theme files.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the colour palette for the window around the drawing.
type Theme struct {
	Name string

	// Canvas is painted behind the shapes and used for exports.
	Canvas color.RGBA

	// Status bar
	StatusBackground color.RGBA
	StatusBorder     color.RGBA
	StatusText       color.RGBA

	// Transient message box
	MessageBackground color.RGBA
	MessageBorder     color.RGBA
	MessageText       color.RGBA
}

// Default returns the hardcoded light theme (fallback).
func Default() *Theme {
	return &Theme{
		Name:              "Default",
		Canvas:            color.RGBA{255, 255, 255, 255},
		StatusBackground:  color.RGBA{238, 238, 238, 255},
		StatusBorder:      color.RGBA{170, 170, 170, 255},
		StatusText:        color.RGBA{0, 0, 0, 255},
		MessageBackground: color.RGBA{255, 255, 255, 255},
		MessageBorder:     color.RGBA{0, 0, 0, 255},
		MessageText:       color.RGBA{0, 0, 0, 255},
	}
}
