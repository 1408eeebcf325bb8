// Package notify raises desktop notifications for file and clipboard
// actions.
package notify

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/ultrapaint/assets"
	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/platform"
)

// Event identifies a notification trigger.
type Event string

const (
	// EventSave fires when the settings file is written.
	EventSave Event = "save"
	// EventExport fires when a drawing is written as an image.
	EventExport Event = "export"
	// EventCopy fires when a drawing is copied to the clipboard.
	EventCopy Event = "copy"
)

// Preferences describes notification wording.
type Preferences struct {
	Title     string
	Templates map[Event]string
}

// DefaultPreferences returns the default notification settings.
func DefaultPreferences() Preferences {
	return Preferences{
		Title: platform.AppName,
		Templates: map[Event]string{
			EventSave:   "Saved settings to %s",
			EventExport: "Exported %s",
			EventCopy:   "Copied %s to clipboard",
		},
	}
}

// LoadPreferences applies ULTRAPAINT_NOTIFY_* environment overrides to the
// defaults.
func LoadPreferences() Preferences {
	prefs := DefaultPreferences()
	if v := strings.TrimSpace(os.Getenv("ULTRAPAINT_NOTIFY_TITLE")); v != "" {
		prefs.Title = v
	}
	for _, ev := range []Event{EventSave, EventExport, EventCopy} {
		key := "ULTRAPAINT_NOTIFY_" + strings.ToUpper(string(ev)) + "_TEXT"
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			prefs.Templates[ev] = v
		}
	}
	return prefs
}

// Notifier sends notifications for the events enabled on it. A nil
// Notifier is silent.
type Notifier struct {
	prefs   Preferences
	enabled map[Event]bool
	send    func(title, body string, opts platform.Options) error
}

// New creates a new Notifier using the provided preferences.
func New(prefs Preferences) *Notifier {
	cloned := Preferences{Title: prefs.Title, Templates: make(map[Event]string, len(prefs.Templates))}
	for k, v := range prefs.Templates {
		cloned.Templates[k] = v
	}
	return &Notifier{prefs: cloned, enabled: make(map[Event]bool), send: platform.Notify}
}

// FromConfig enables the events switched on in n.
func (n *Notifier) FromConfig(c config.Notify) *Notifier {
	n.Enable(EventSave, c.Save)
	n.Enable(EventExport, c.Export)
	n.Enable(EventCopy, c.Copy)
	return n
}

// Enable toggles the notifier for the provided event.
func (n *Notifier) Enable(event Event, enabled bool) {
	if n == nil {
		return
	}
	n.enabled[event] = enabled
}

// Save reports a written settings file.
func (n *Notifier) Save(path string) {
	if !n.enabledFor(EventSave) {
		return
	}
	n.dispatchIcon(EventSave, absPath(path), appIcon())
}

// Export reports a written image. When preview is non-nil it is shown as the
// notification icon; otherwise the exported file is used if it exists.
func (n *Notifier) Export(path string, preview image.Image) {
	if !n.enabledFor(EventExport) {
		return
	}
	detail := absPath(path)
	if preview != nil {
		n.dispatchImage(EventExport, detail, preview)
		return
	}
	opts := platform.Options{}
	if _, err := os.Stat(detail); err == nil {
		opts.IconPath = detail
	}
	n.dispatch(EventExport, detail, opts)
}

// Copy reports a clipboard copy.
func (n *Notifier) Copy(detail string) {
	if !n.enabledFor(EventCopy) {
		return
	}
	if strings.TrimSpace(detail) == "" {
		detail = "drawing"
	}
	n.dispatchIcon(EventCopy, detail, appIcon())
}

func absPath(path string) string {
	path = strings.TrimSpace(path)
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (n *Notifier) enabledFor(event Event) bool {
	return n != nil && n.enabled[event]
}

func (n *Notifier) dispatch(event Event, detail string, opts platform.Options) {
	if !n.enabledFor(event) {
		return
	}
	template := strings.TrimSpace(n.prefs.Templates[event])
	if template == "" {
		return
	}
	body := template
	if strings.Contains(template, "%") {
		body = fmt.Sprintf(template, strings.TrimSpace(detail))
	}
	if err := n.send(n.prefs.Title, strings.TrimSpace(body), opts); err != nil {
		log.Printf("notification %s: %v", event, err)
	}
}

// dispatchImage sends with img encoded as PNG into a temporary icon file.
func (n *Notifier) dispatchImage(event Event, detail string, img image.Image) {
	if !n.enabledFor(event) {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Printf("notification preview: %v", err)
		n.dispatch(event, detail, platform.Options{})
		return
	}
	n.dispatchIcon(event, detail, buf.Bytes())
}

// dispatchIcon sends with data written to a temporary icon file that is
// removed once the notification has been handed off.
func (n *Notifier) dispatchIcon(event Event, detail string, data []byte) {
	if !n.enabledFor(event) {
		return
	}
	opts := platform.Options{}
	if len(data) > 0 {
		icon, cleanup, err := writeIcon(data)
		if err != nil {
			log.Printf("notification icon: %v", err)
		} else {
			defer cleanup()
			opts.IconPath = icon
		}
	}
	n.dispatch(event, detail, opts)
}

func appIcon() []byte {
	data, err := assets.IconPNG(64)
	if err != nil {
		log.Printf("notification icon: %v", err)
		return nil
	}
	return data
}

func writeIcon(data []byte) (string, func(), error) {
	f, err := os.CreateTemp("", "ultrapaint-preview-*.png")
	if err != nil {
		return "", nil, err
	}
	path := f.Name()
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", nil, err
	}
	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove preview: %v", err)
		}
	}
	return path, cleanup, nil
}
