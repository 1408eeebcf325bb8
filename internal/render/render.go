package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/example/ultrapaint/internal/shape"
)

// Drawable is anything that can paint itself onto a shape.Surface, such as
// a canvas.
type Drawable interface {
	Render(shape.Surface)
}

func draw(d Drawable, w, h int, bg color.Color) (*gg.Context, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", w, h)
	}
	dc := gg.NewContext(w, h)
	if bg == nil {
		dc.ClearWithColor(gg.Transparent)
	} else {
		dc.ClearWithColor(gg.FromColor(bg))
	}
	s := NewSurface(dc)
	d.Render(s)
	if err := s.Err(); err != nil {
		dc.Close()
		return nil, fmt.Errorf("render: %w", err)
	}
	return dc, nil
}

// Image rasterises d onto a w x h image cleared to bg. A nil bg leaves the
// image transparent.
func Image(d Drawable, w, h int, bg color.Color) (*image.RGBA, error) {
	dc, err := draw(d, w, h, bg)
	if err != nil {
		return nil, err
	}
	defer dc.Close()
	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("render: unexpected image type %T", dc.Image())
	}
	return img, nil
}

// WritePNG rasterises d and writes it to w as PNG.
func WritePNG(w io.Writer, d Drawable, width, height int, bg color.Color) error {
	dc, err := draw(d, width, height, bg)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// PNG rasterises d and returns the encoded bytes.
func PNG(d Drawable, width, height int, bg color.Color) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, d, width, height, bg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
