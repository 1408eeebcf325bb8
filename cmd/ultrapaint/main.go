package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/notify"
	"github.com/example/ultrapaint/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs           *flag.FlagSet
	program      string
	settingsPath string
	loader       *config.Loader
	config       *config.Config
	notifier     *notify.Notifier
	themeName    string
	activeTheme  *theme.Theme
	saveAlerts   bool
	exportAlerts bool
	copyAlerts   bool
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	r := &root{
		fs:      flag.NewFlagSet("ultrapaint", flag.ExitOnError),
		program: "ultrapaint",
	}
	r.fs.StringVar(&r.settingsPath, "settings", configPathOverride, "settings file to load and save")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", false, "show a desktop notification after saving settings")
	r.fs.BoolVar(&r.exportAlerts, "notify-export", false, "show a desktop notification after exporting a drawing")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying to the clipboard")
	r.fs.StringVar(&r.themeName, "theme", "", "window theme name or file (default, dark, high_contrast)")
	r.fs.Usage = usageFunc(r)
	return r
}

// setup loads the settings file and applies notification flags on top of it.
// Precedence: CLI > settings file > default. The theme also honours
// ULTRAPAINT_THEME between the flag and the file.
func (r *root) setup() {
	r.loader = config.NewLoader(version, r.settingsPath)
	r.config = r.loader.Load()
	r.notifier = notify.New(notify.LoadPreferences()).FromConfig(r.config.Notify)
	r.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "notify-save":
			r.notifier.Enable(notify.EventSave, r.saveAlerts)
		case "notify-export":
			r.notifier.Enable(notify.EventExport, r.exportAlerts)
		case "notify-copy":
			r.notifier.Enable(notify.EventCopy, r.copyAlerts)
		}
	})
	t, err := theme.NewLoader().Resolve(r.themeName, r.config.Theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v. using default.\n", err)
	}
	r.activeTheme = t
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if r.config == nil {
		r.setup()
	}

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r.subcommand(cmdName))
	case "render":
		cmd, err = parseRenderCmd(subArgs, r.subcommand(cmdName))
	case "shell":
		cmd, err = parseShellCmd(subArgs, r.subcommand(cmdName))
	case "style":
		cmd, err = parseStyleCmd(subArgs, r.subcommand(cmdName))
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) subcommand(name string) *root {
	return &root{
		program:     strings.TrimSpace(strings.Join([]string{r.program, name}, " ")),
		loader:      r.loader,
		config:      r.config,
		notifier:    r.notifier,
		activeTheme: r.activeTheme,
	}
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
