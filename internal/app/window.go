package app

import (
	"context"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"sync"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/render"
	"github.com/example/ultrapaint/internal/theme"
)

// settingsEvent carries a reloaded settings file to the event loop.
type settingsEvent struct {
	cfg *config.Config
}

// messageEvent carries a status message from background work.
type messageEvent struct {
	text string
}

type paintState struct {
	width, height int
	drawing       *image.RGBA
	status        string
	message       string
	theme         theme.Theme
}

// Main runs the window event loop on s until the window closes.
func (a *App) Main(s screen.Screen) {
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  a.Width,
		Height: a.Height + statusHeight,
		Title:  "UltraPaint",
	})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()
	defer a.close()

	a.post = func(ev any) { w.Send(ev) }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if a.WatchPath != "" {
		go func() {
			err := config.Watch(ctx, a.WatchPath, func(c *config.Config) { w.Send(settingsEvent{cfg: c}) })
			if err != nil {
				log.Printf("watch settings: %v", err)
			}
		}()
	}

	var paintMu sync.Mutex
	var paintCancel context.CancelFunc
	paintCh := make(chan paintState, 1)
	defer close(paintCh)
	go func() {
		for st := range paintCh {
			pctx, pcancel := context.WithCancel(ctx)
			paintMu.Lock()
			paintCancel = pcancel
			paintMu.Unlock()
			drawFrame(pctx, s, w, st)
			paintMu.Lock()
			paintCancel = nil
			paintMu.Unlock()
			pcancel()
		}
	}()
	stopPaint := func() {
		paintMu.Lock()
		if paintCancel != nil {
			paintCancel()
		}
		paintMu.Unlock()
	}

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
				a.Canvas.ForceComplete()
				w.Send(paint.Event{})
			}
			if e.To == lifecycle.StageDead {
				stopPaint()
				return
			}
		case size.Event:
			a.Width = max(e.WidthPx, 1)
			a.Height = max(e.HeightPx-statusHeight, 1)
			w.Send(paint.Event{})
		case paint.Event:
			img, err := render.Image(a.Canvas, a.Width, a.Height, a.Theme.Canvas)
			if err != nil {
				log.Printf("paint: %v", err)
				continue
			}
			st := paintState{
				width:   a.Width,
				height:  a.Height,
				drawing: img,
				status:  a.status(),
				message: a.currentMessage(),
				theme:   *a.Theme,
			}
			stopPaint()
			select {
			case paintCh <- st:
			default:
				// Replace the queued frame with the newer one.
				select {
				case <-paintCh:
				default:
				}
				paintCh <- st
			}
		case mouse.Event:
			if a.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			handled, quit := a.handleKey(e)
			if quit {
				stopPaint()
				return
			}
			if handled {
				w.Send(paint.Event{})
			}
		case settingsEvent:
			a.Config = e.cfg
			a.Canvas.SetStyle(e.cfg.Style)
			a.flash("settings reloaded")
			w.Send(paint.Event{})
		case messageEvent:
			a.flash("%s", e.text)
			w.Send(paint.Event{})
		case error:
			log.Print(e)
		}
	}
}

func drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	b, err := s.NewBuffer(image.Point{st.width, st.height + statusHeight})
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()

	dst := b.RGBA()
	draw.Draw(dst, st.drawing.Bounds(), st.drawing, image.Point{}, draw.Src)
	if ctx.Err() != nil {
		return
	}

	bar := image.Rect(0, st.height, st.width, st.height+statusHeight)
	th := st.theme
	draw.Draw(dst, bar, image.NewUniform(th.StatusBackground), image.Point{}, draw.Src)
	draw.Draw(dst, image.Rect(0, st.height, st.width, st.height+1), image.NewUniform(th.StatusBorder), image.Point{}, draw.Src)
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.StatusText), Face: face}
	d.Dot = fixed.P(6, st.height+(statusHeight+face.Ascent)/2)
	d.DrawString(st.status)

	if st.message != "" {
		drawMessage(dst, st.width, st.height, st.message, &th)
	}
	if ctx.Err() != nil {
		return
	}

	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// drawMessage centres a boxed transient message over the drawing.
func drawMessage(dst *image.RGBA, width, height int, msg string, th *theme.Theme) {
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(th.MessageText), Face: face}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	descent := face.Metrics().Descent.Ceil()
	px := (width - wmsg) / 2
	py := (height-ascent-descent)/2 + ascent
	rect := image.Rect(px-8, py-ascent-8, px+wmsg+8, py+descent+8)
	draw.Draw(dst, rect, image.NewUniform(th.MessageBackground), image.Point{}, draw.Src)
	border := image.NewUniform(th.MessageBorder)
	for _, r := range []image.Rectangle{
		image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+2),
		image.Rect(rect.Min.X, rect.Max.Y-2, rect.Max.X, rect.Max.Y),
		image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+2, rect.Max.Y),
		image.Rect(rect.Max.X-2, rect.Min.Y, rect.Max.X, rect.Max.Y),
	} {
		draw.Draw(dst, r, border, image.Point{}, draw.Src)
	}
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}

func writePNGFile(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
