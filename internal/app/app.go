// Package app hosts a canvas in a desktop window.
package app

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/exp/shiny/driver"

	"github.com/example/ultrapaint/internal/canvas"
	"github.com/example/ultrapaint/internal/construct"
	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/notify"
	"github.com/example/ultrapaint/internal/theme"
)

const (
	defaultWidth  = 800
	defaultHeight = 600
	statusHeight  = 24
	messageTTL    = 2 * time.Second
)

// App holds the window state around a canvas.
type App struct {
	Canvas   *canvas.Canvas
	Config   *config.Config
	Loader   *config.Loader
	Notifier *notify.Notifier
	Theme    *theme.Theme
	Width    int
	Height   int
	// WatchPath, when set, is reloaded into the style whenever it changes.
	WatchPath string

	onClose func()
	now     func() time.Time
	// post delivers results from background work back to the event loop.
	// Nil runs the work inline.
	post func(any)

	held         construct.Button
	message      string
	messageUntil time.Time
}

// Option modifies an App during creation.
type Option func(*App)

// WithCanvas sets the canvas to draw on.
func WithCanvas(c *canvas.Canvas) Option { return func(a *App) { a.Canvas = c } }

// WithConfig sets the configuration used for export and notifications.
func WithConfig(c *config.Config) Option { return func(a *App) { a.Config = c } }

// WithLoader sets where settings are saved.
func WithLoader(l *config.Loader) Option { return func(a *App) { a.Loader = l } }

// WithNotifier sets the desktop notifier.
func WithNotifier(n *notify.Notifier) Option { return func(a *App) { a.Notifier = n } }

// WithTheme sets the window colours.
func WithTheme(t *theme.Theme) Option { return func(a *App) { a.Theme = t } }

// WithSize sets the initial drawing area size in pixels.
func WithSize(w, h int) Option { return func(a *App) { a.Width, a.Height = w, h } }

// WithWatch reloads the style from path when the file changes.
func WithWatch(path string) Option { return func(a *App) { a.WatchPath = path } }

// WithOnClose registers a callback run when the window closes.
func WithOnClose(fn func()) Option { return func(a *App) { a.onClose = fn } }

// New creates an App. Missing pieces get defaults.
func New(opts ...Option) *App {
	a := &App{Width: defaultWidth, Height: defaultHeight, now: time.Now}
	for _, o := range opts {
		o(a)
	}
	if a.Config == nil {
		a.Config = config.New()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Canvas == nil {
		a.Canvas = canvas.New(canvas.WithStyle(a.Config.Style))
	}
	return a
}

// Run executes the UI loop using shiny's driver.
func (a *App) Run() { driver.Main(a.Main) }

func (a *App) flash(format string, args ...any) {
	a.message = fmt.Sprintf(format, args...)
	a.messageUntil = a.now().Add(messageTTL)
	log.Print(a.message)
}

func (a *App) currentMessage() string {
	if a.message == "" || !a.now().Before(a.messageUntil) {
		return ""
	}
	return a.message
}

// status is the text shown in the status bar.
func (a *App) status() string {
	c := a.Canvas
	s := c.Style()
	cur := c.Cursor()
	flags := ""
	if s.Filled {
		flags += " filled"
	}
	if s.Dashed {
		flags += " dashed"
	}
	if s.Gradient {
		flags += " gradient"
	}
	return fmt.Sprintf("(%d, %d)  %s%s  width %g  undo %s  redo %s",
		cur.X, cur.Y, s.Kind, flags, s.StrokeWidth, onOff(c.CanUndo()), onOff(c.CanRedo()))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (a *App) close() {
	if a.onClose != nil {
		a.onClose()
	}
}
