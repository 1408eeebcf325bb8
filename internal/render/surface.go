// Package render rasterises canvases with gg.
package render

import (
	"errors"
	"image"

	"github.com/gogpu/gg"

	"github.com/example/ultrapaint/internal/shape"
)

// Surface adapts a gg.Context to shape.Surface. Drawing errors are kept
// and reported by Err.
type Surface struct {
	dc  *gg.Context
	err error
}

var _ shape.Surface = (*Surface)(nil)

// NewSurface wraps dc. Fills use the even-odd rule.
func NewSurface(dc *gg.Context) *Surface {
	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.SetLineCap(gg.LineCapSquare)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Surface{dc: dc}
}

// Err returns every error reported while drawing.
func (s *Surface) Err() error { return s.err }

func (s *Surface) record(err error) {
	if err != nil {
		s.err = errors.Join(s.err, err)
	}
}

// SetPaint installs a cyclic linear gradient, or a solid brush when both
// colours match or the axis has no length.
func (s *Surface) SetPaint(p shape.Paint) {
	from := gg.FromColor(p.From)
	if p.Solid() || p.Start == p.End {
		s.dc.SetFillBrush(gg.Solid(from))
		return
	}
	b := gg.NewLinearGradientBrush(float64(p.Start.X), float64(p.Start.Y), float64(p.End.X), float64(p.End.Y)).
		AddColorStop(0, from).
		AddColorStop(1, gg.FromColor(p.To)).
		SetExtend(gg.ExtendReflect)
	s.dc.SetFillBrush(b)
}

func (s *Surface) SetStroke(st shape.Stroke) {
	s.dc.SetLineWidth(float64(st.Width))
	s.dc.SetLineCap(gg.LineCapSquare)
	s.dc.SetLineJoin(gg.LineJoinRound)
	if len(st.Dash) == 0 {
		s.dc.ClearDash()
		return
	}
	dash := make([]float64, len(st.Dash))
	for i, d := range st.Dash {
		dash[i] = float64(d)
	}
	// A single length means equal dashes and gaps.
	if len(dash) == 1 {
		dash = append(dash, dash[0])
	}
	s.dc.SetDash(dash...)
}

func (s *Surface) StrokeLine(a, b shape.Point) {
	s.dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	s.record(s.dc.Stroke())
}

func (s *Surface) rect(r image.Rectangle) {
	s.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
}

func (s *Surface) ellipse(r image.Rectangle) {
	rx, ry := float64(r.Dx())/2, float64(r.Dy())/2
	s.dc.DrawEllipse(float64(r.Min.X)+rx, float64(r.Min.Y)+ry, rx, ry)
}

func (s *Surface) StrokeRect(r image.Rectangle) {
	s.rect(r)
	s.record(s.dc.Stroke())
}

func (s *Surface) FillRect(r image.Rectangle) {
	s.rect(r)
	s.record(s.dc.Fill())
}

func (s *Surface) StrokeEllipse(r image.Rectangle) {
	s.ellipse(r)
	s.record(s.dc.Stroke())
}

func (s *Surface) FillEllipse(r image.Rectangle) {
	s.ellipse(r)
	s.record(s.dc.Fill())
}

func (s *Surface) path(pts []shape.Point) bool {
	if len(pts) == 0 {
		return false
	}
	s.dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	for _, p := range pts[1:] {
		s.dc.LineTo(float64(p.X), float64(p.Y))
	}
	return true
}

func (s *Surface) StrokePath(pts []shape.Point, closed bool) {
	if !s.path(pts) {
		return
	}
	if closed {
		s.dc.ClosePath()
	}
	s.record(s.dc.Stroke())
}

func (s *Surface) FillPath(pts []shape.Point) {
	if len(pts) < 3 || !s.path(pts) {
		return
	}
	s.record(s.dc.Fill())
}
