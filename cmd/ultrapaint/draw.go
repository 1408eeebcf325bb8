package main

import (
	"flag"

	"github.com/example/ultrapaint/internal/app"
)

// drawCmd opens the interactive drawing window.
type drawCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	watch  bool
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	fs.IntVar(&d.width, "width", 800, "drawing area width in pixels")
	fs.IntVar(&d.height, "height", 600, "drawing area height in pixels")
	fs.BoolVar(&d.watch, "watch", true, "reload the style when the settings file changes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &UsageError{of: d}
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	opts := []app.Option{
		app.WithConfig(d.config),
		app.WithLoader(d.loader),
		app.WithNotifier(d.notifier),
		app.WithSize(d.width, d.height),
		app.WithTheme(d.activeTheme),
	}
	if d.watch && d.loader != nil {
		opts = append(opts, app.WithWatch(d.loader.SavePath()))
	}
	app.New(opts...).Run()
	return nil
}
