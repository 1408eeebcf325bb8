package app

import (
	"golang.org/x/mobile/event/mouse"

	"github.com/example/ultrapaint/internal/construct"
)

func buttonOf(b mouse.Button) construct.Button {
	switch b {
	case mouse.ButtonLeft:
		return construct.ButtonPrimary
	case mouse.ButtonRight:
		return construct.ButtonSecondary
	case mouse.ButtonMiddle:
		return construct.ButtonMiddle
	}
	return construct.ButtonNone
}

// handleMouse feeds a pointer event to the canvas and reports whether the
// window needs repainting. Motion with the primary button held drags.
func (a *App) handleMouse(e mouse.Event) bool {
	x, y := int(e.X), int(e.Y)
	switch e.Direction {
	case mouse.DirPress:
		b := buttonOf(e.Button)
		if a.held == construct.ButtonNone {
			a.held = b
		}
		a.Canvas.Press(x, y, b)
	case mouse.DirRelease:
		b := buttonOf(e.Button)
		if a.held == b {
			a.held = construct.ButtonNone
		}
		a.Canvas.Release(x, y, b)
	case mouse.DirNone:
		if a.held == construct.ButtonPrimary {
			a.Canvas.Drag(x, y)
		} else {
			a.Canvas.Move(x, y)
		}
	default:
		return false
	}
	return true
}
