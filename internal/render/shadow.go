package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow placed behind an exported
// drawing.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
	// Margin is extra space kept around the drawing and its shadow.
	Margin int
	// Background fills the frame. Nil leaves it transparent.
	Background color.Color
}

// DefaultShadowOptions returns a soft shadow below and to the right.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  12,
		Offset:  image.Pt(8, 8),
		Opacity: 0.45,
		Margin:  16,
	}
}

// WithShadow places img on a larger frame above a blurred copy of its
// rectangle. The drawing's top-left corner lands at the returned offset.
func WithShadow(img *image.RGBA, opts ShadowOptions) (*image.RGBA, image.Point) {
	if img == nil || img.Bounds().Empty() {
		return img, image.Point{}
	}
	opacity := min(max(opts.Opacity, 0), 1)
	radius := max(opts.Radius, 0)
	margin := max(opts.Margin, 0)

	src := img.Bounds().Sub(img.Bounds().Min)
	shadow := src.Add(opts.Offset).Inset(-radius)
	frame := src.Union(shadow).Inset(-margin)
	origin := image.Pt(-frame.Min.X, -frame.Min.Y)
	frame = frame.Add(origin)

	dst := image.NewRGBA(frame)
	if opts.Background != nil {
		draw.Draw(dst, frame, image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	if a := uint8(opacity*255 + 0.5); a > 0 {
		mask := image.NewAlpha(frame)
		draw.Draw(mask, src.Add(opts.Offset).Add(origin), image.Opaque, image.Point{}, draw.Src)
		soft := boxBlur(mask, radius)
		draw.DrawMask(dst, frame, image.NewUniform(color.RGBA{A: a}), image.Point{}, soft, image.Point{}, draw.Over)
	}
	draw.Draw(dst, src.Add(origin), img, img.Bounds().Min, draw.Over)
	return dst, origin
}

// boxBlur runs a horizontal then vertical running-sum box filter.
func boxBlur(src *image.Alpha, radius int) *image.Alpha {
	out := image.NewAlpha(src.Bounds())
	if radius == 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := make([]uint8, len(src.Pix))
	blur1D(src.Pix, tmp, w, h, 1, src.Stride, radius)
	blur1D(tmp, out.Pix, h, w, src.Stride, 1, radius)
	return out
}

// blur1D averages n samples spaced step apart along each of lines lines,
// each starting lineStep apart.
func blur1D(in, out []uint8, n, lines, step, lineStep, radius int) {
	sums := make([]int, n+1)
	for l := 0; l < lines; l++ {
		base := l * lineStep
		for i := 0; i < n; i++ {
			sums[i+1] = sums[i] + int(in[base+i*step])
		}
		for i := 0; i < n; i++ {
			lo := max(i-radius, 0)
			hi := min(i+radius, n-1)
			out[base+i*step] = uint8((sums[hi+1] - sums[lo]) / (hi - lo + 1))
		}
	}
}
