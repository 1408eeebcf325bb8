// Package assets provides the application icon, drawn with the same shapes
// and renderer as user drawings.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"slices"
	"sync"

	"github.com/example/ultrapaint/internal/render"
	"github.com/example/ultrapaint/internal/shape"
)

// sizes lists the icon sizes the application ships.
var sizes = []int{16, 32, 64, 128}

var (
	iconMu    sync.Mutex
	pngImages = map[int]*image.RGBA{}
	pngData   = map[int][]byte{}
)

var (
	ink    = color.RGBA{0x1f, 0x3b, 0x73, 0xff}
	warm   = color.RGBA{0xf2, 0x99, 0x1f, 0xff}
	bright = color.RGBA{0xe8, 0x3f, 0x6f, 0xff}
	paper  = color.RGBA{0xfa, 0xf7, 0xf0, 0xff}
)

// iconShapes lays out the icon on a size x size grid.
type iconShapes []shape.Shape

func (s iconShapes) Render(sf shape.Surface) {
	for _, sh := range s {
		sh.Render(sf)
	}
}

func scaled(size int, v float32) int { return int(v * float32(size)) }

func compose(size int) iconShapes {
	at := func(x, y float32) shape.Point { return shape.Pt(scaled(size, x), scaled(size, y)) }
	width := max(float32(size)/16, 1)

	page := shape.NewRectangle(at(0.06, 0.06), at(0.94, 0.94), shape.Style{Color1: paper, StrokeWidth: 1, Filled: true})
	rect := shape.NewRectangle(at(0.16, 0.2), at(0.6, 0.62),
		shape.Style{Color1: ink, Color2: warm, StrokeWidth: 1, Filled: true, Gradient: true})
	oval := shape.NewOval(at(0.4, 0.38), at(0.86, 0.84), shape.Style{Color1: bright, StrokeWidth: width})
	line := shape.NewLine(at(0.16, 0.84), at(0.5, 0.74), shape.Style{Color1: ink, StrokeWidth: width})
	return iconShapes{page, rect, oval, line}
}

func ensureIcon(size int) error {
	if !slices.Contains(sizes, size) {
		return fmt.Errorf("icon %dpx not available", size)
	}
	if _, ok := pngImages[size]; ok {
		return nil
	}
	img, err := render.Image(compose(size), size, size, nil)
	if err != nil {
		return fmt.Errorf("render icon %dpx: %w", size, err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode icon %dpx: %w", size, err)
	}
	pngImages[size] = img
	pngData[size] = buf.Bytes()
	return nil
}

// IconImage returns the icon rendered at the requested size.
func IconImage(size int) (image.Image, error) {
	iconMu.Lock()
	defer iconMu.Unlock()
	if err := ensureIcon(size); err != nil {
		return nil, err
	}
	return pngImages[size], nil
}

// IconPNG returns a copy of the PNG encoded icon for the requested size.
func IconPNG(size int) ([]byte, error) {
	iconMu.Lock()
	defer iconMu.Unlock()
	if err := ensureIcon(size); err != nil {
		return nil, err
	}
	return bytes.Clone(pngData[size]), nil
}
