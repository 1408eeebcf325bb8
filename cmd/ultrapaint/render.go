package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/example/ultrapaint/internal/canvas"
	"github.com/example/ultrapaint/internal/clipboard"
	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/render"
	"github.com/example/ultrapaint/internal/script"
)

// renderCmd runs a drawing script headlessly and writes the result.
type renderCmd struct {
	*root
	fs          *flag.FlagSet
	script      string
	output      string
	width       int
	height      int
	background  string
	toClipboard bool
	shadow      bool

	stdin  io.Reader
	stdout io.Writer
}

func (c *renderCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func parseRenderCmd(args []string, r *root) (*renderCmd, error) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	c := &renderCmd{root: r, fs: fs, stdin: os.Stdin, stdout: os.Stdout}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.script, "script", "", "script file to run (- for stdin)")
	fs.StringVar(&c.output, "output", "", "PNG file to write (- for stdout)")
	fs.IntVar(&c.width, "width", 800, "image width in pixels")
	fs.IntVar(&c.height, "height", 600, "image height in pixels")
	fs.StringVar(&c.background, "background", "white", "background colour, or none for transparent")
	fs.BoolVar(&c.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&c.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
	fs.BoolVar(&c.shadow, "shadow", false, "add a drop shadow around the drawing")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.script == "" {
		return nil, &UsageError{of: c}
	}
	if c.output == "" && !c.toClipboard {
		return nil, errors.New("an output file or -to-clipboard is required")
	}
	return c, nil
}

func backgroundColor(spec string) (color.Color, error) {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "", "none", "transparent":
		return nil, nil
	}
	c, err := config.ParseColor(spec)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *renderCmd) Run() error {
	bg, err := backgroundColor(c.background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	cv, err := c.runScript()
	if err != nil {
		return err
	}
	img, err := render.Image(cv, c.width, c.height, bg)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if c.shadow {
		img, _ = render.WithShadow(img, render.DefaultShadowOptions())
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	if c.output != "" {
		if err := c.writeOutput(buf.Bytes(), img); err != nil {
			return err
		}
	}
	if c.toClipboard {
		if err := clipboard.WritePNG(buf.Bytes()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		c.notifier.Copy("drawing")
	}
	return nil
}

func (c *renderCmd) runScript() (*canvas.Canvas, error) {
	var in io.Reader = c.stdin
	if c.script != "-" {
		f, err := os.Open(c.script)
		if err != nil {
			return nil, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	style := config.DefaultStyle()
	if c.config != nil {
		style = c.config.Style
	}
	cv := canvas.New(canvas.WithStyle(style))
	if err := script.New(cv).Run(in); err != nil {
		return nil, fmt.Errorf("%s: %w", c.script, err)
	}
	return cv, nil
}

func (c *renderCmd) writeOutput(data []byte, img image.Image) error {
	if c.output == "-" {
		if _, err := c.stdout.Write(data); err != nil {
			return fmt.Errorf("write png: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(c.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.output, err)
	}
	c.notifier.Export(c.output, img)
	return nil
}
