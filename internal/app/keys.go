package app

import (
	"image/color"
	"os"
	"path/filepath"
	"unicode"

	"golang.org/x/image/colornames"
	"golang.org/x/mobile/event/key"

	"github.com/example/ultrapaint/internal/clipboard"
	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/render"
	"github.com/example/ultrapaint/internal/shape"
)

// KeyShortcut describes a key press bound to an action.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

type binding struct {
	name string
	keys []KeyShortcut
	run  func(a *App) (quit bool)
}

// paletteNames are cycled through by the colour keys.
var paletteNames = []string{"black", "red", "orange", "gold", "green", "teal", "blue", "purple", "gray", "white"}

func kindKey(k shape.Kind) func(*App) bool {
	return func(a *App) bool {
		a.updateStyle(func(s *config.Style) { s.Kind = k })
		return false
	}
}

func styleKey(fn func(*config.Style)) func(*App) bool {
	return func(a *App) bool {
		a.updateStyle(fn)
		return false
	}
}

var bindings = []binding{
	{"line", []KeyShortcut{{Rune: '1'}}, kindKey(shape.KindLine)},
	{"oval", []KeyShortcut{{Rune: '2'}}, kindKey(shape.KindOval)},
	{"rectangle", []KeyShortcut{{Rune: '3'}}, kindKey(shape.KindRectangle)},
	{"polygon", []KeyShortcut{{Rune: '4'}}, kindKey(shape.KindPolygon)},
	{"filled", []KeyShortcut{{Rune: 'f'}}, styleKey(func(s *config.Style) { s.Filled = !s.Filled })},
	{"dashed", []KeyShortcut{{Rune: 'd'}}, styleKey(func(s *config.Style) { s.Dashed = !s.Dashed })},
	{"gradient", []KeyShortcut{{Rune: 'g'}}, styleKey(func(s *config.Style) { s.Gradient = !s.Gradient })},
	{"wider", []KeyShortcut{{Rune: '+'}, {Rune: '='}}, styleKey(func(s *config.Style) { s.StrokeWidth++ })},
	{"thinner", []KeyShortcut{{Rune: '-'}}, styleKey(func(s *config.Style) { s.StrokeWidth = max(s.StrokeWidth-1, 1) })},
	{"longer-dash", []KeyShortcut{{Rune: ']'}}, styleKey(func(s *config.Style) { s.DashLength++ })},
	{"shorter-dash", []KeyShortcut{{Rune: '['}}, styleKey(func(s *config.Style) { s.DashLength = max(s.DashLength-1, 1) })},
	{"colour1", []KeyShortcut{{Rune: 'k'}}, styleKey(func(s *config.Style) { s.Color1 = nextColor(s.Color1) })},
	{"colour2", []KeyShortcut{{Rune: 'j'}}, styleKey(func(s *config.Style) { s.Color2 = nextColor(s.Color2) })},
	{"undo", []KeyShortcut{{Rune: 'u'}, {Rune: 'z', Modifiers: key.ModControl}}, func(a *App) bool {
		a.Canvas.Undo()
		return false
	}},
	{"redo", []KeyShortcut{{Rune: 'r'}, {Rune: 'y', Modifiers: key.ModControl}}, func(a *App) bool {
		a.Canvas.Redo()
		return false
	}},
	{"clear", []KeyShortcut{{Rune: 'c'}}, func(a *App) bool {
		a.Canvas.ClearAll()
		return false
	}},
	{"complete", []KeyShortcut{{Code: key.CodeEscape}}, func(a *App) bool {
		a.Canvas.ForceComplete()
		return false
	}},
	{"save", []KeyShortcut{{Rune: 's'}, {Rune: 's', Modifiers: key.ModControl}}, (*App).saveSettings},
	{"export", []KeyShortcut{{Rune: 'e'}}, (*App).export},
	{"copy", []KeyShortcut{{Rune: 'y'}, {Rune: 'c', Modifiers: key.ModControl}}, (*App).copyImage},
	{"quit", []KeyShortcut{{Rune: 'q'}}, func(*App) bool { return true }},
}

var keyboardAction = func() map[KeyShortcut]*binding {
	m := map[KeyShortcut]*binding{}
	for i := range bindings {
		for _, k := range bindings[i].keys {
			m[k] = &bindings[i]
		}
	}
	return m
}()

func shortcutOf(e key.Event) KeyShortcut {
	ks := KeyShortcut{Modifiers: e.Modifiers &^ key.ModShift}
	if e.Rune > 0 {
		ks.Rune = unicode.ToLower(e.Rune)
	} else {
		ks.Code = e.Code
	}
	return ks
}

// handleKey runs the action bound to e. It reports whether the event was
// bound and whether the window should close.
func (a *App) handleKey(e key.Event) (handled, quit bool) {
	if e.Direction != key.DirPress {
		return false, false
	}
	b, ok := keyboardAction[shortcutOf(e)]
	if !ok {
		return false, false
	}
	return true, b.run(a)
}

// updateStyle finishes any shape under construction before the style
// changes, as leaving the canvas for the controls does.
func (a *App) updateStyle(fn func(*config.Style)) {
	a.Canvas.ForceComplete()
	s := a.Canvas.Style()
	fn(&s)
	a.Canvas.SetStyle(s)
}

func nextColor(c color.RGBA) color.RGBA {
	for i, name := range paletteNames {
		if colornames.Map[name] == c {
			return colornames.Map[paletteNames[(i+1)%len(paletteNames)]]
		}
	}
	return colornames.Map[paletteNames[0]]
}

func (a *App) saveSettings() bool {
	if a.Loader == nil {
		a.flash("save: no settings location")
		return false
	}
	cfg := *a.Config
	cfg.Style = a.Canvas.Style()
	path, err := a.Loader.Save(&cfg)
	if err != nil {
		a.flash("save: %v", err)
		return false
	}
	a.Config.Style = cfg.Style
	a.Notifier.Save(path)
	a.flash("saved settings to %s", path)
	return false
}

func (a *App) exportPath() string {
	dir := a.Config.ExportDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "ultrapaint-"+a.now().Format("20060102-150405")+".png")
}

func (a *App) export() bool {
	path := a.exportPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		a.flash("export: %v", err)
		return false
	}
	img, err := render.Image(a.Canvas, a.Width, a.Height, a.Theme.Canvas)
	if err != nil {
		a.flash("export: %v", err)
		return false
	}
	if err := writePNGFile(path, img); err != nil {
		a.flash("export: %v", err)
		return false
	}
	a.Notifier.Export(path, img)
	a.flash("exported %s", path)
	return false
}

// copyImage renders on the event loop and publishes from the background.
func (a *App) copyImage() bool {
	data, err := render.PNG(a.Canvas, a.Width, a.Height, a.Theme.Canvas)
	if err != nil {
		a.flash("copy: %v", err)
		return false
	}
	publish := func() messageEvent {
		if err := clipboard.WritePNG(data); err != nil {
			return messageEvent{text: "copy: " + err.Error()}
		}
		a.Notifier.Copy("drawing")
		return messageEvent{text: "drawing copied to clipboard"}
	}
	if a.post == nil {
		a.flash("%s", publish().text)
		return false
	}
	go func() { a.post(publish()) }()
	return false
}
