// Package script drives a canvas from a line based command language.
//
//	style <key> <value>
//	press <x> <y> [primary|secondary|middle]
//	drag <x> <y>
//	release <x> <y> [primary|secondary|middle]
//	complete | undo | redo | clear
//	delete <id>
//	line|rect|oval <x1> <y1> <x2> <y2>
//	polygon <x1> <y1> <x2> <y2> <x3> <y3> ...
//
// Blank lines and lines starting with # are skipped.
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/example/ultrapaint/internal/canvas"
	"github.com/example/ultrapaint/internal/construct"
	"github.com/example/ultrapaint/internal/shape"
)

// ErrUnknownCommand is returned for command names the runner does not know.
var ErrUnknownCommand = errors.New("unknown command")

// Command handles one command line. args excludes the command name.
type Command func(args []string) error

// Runner executes commands against a canvas.
type Runner struct {
	c     *canvas.Canvas
	extra map[string]Command
}

// Option configures a Runner.
type Option func(*Runner)

// WithCommand registers an additional command, overriding a built-in one of
// the same name.
func WithCommand(name string, fn Command) Option {
	return func(r *Runner) { r.extra[strings.ToLower(name)] = fn }
}

// New returns a runner for c.
func New(c *canvas.Canvas, opts ...Option) *Runner {
	r := &Runner{c: c, extra: map[string]Command{}}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Canvas returns the canvas the runner drives.
func (r *Runner) Canvas() *canvas.Canvas { return r.c }

// Run executes every line of in, stopping at the first failure.
func (r *Runner) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		if err := r.Exec(scanner.Text()); err != nil {
			return fmt.Errorf("script line %d: %w", n, err)
		}
	}
	return scanner.Err()
}

// Exec executes a single line.
func (r *Runner) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	words, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("parse %q: %w", line, err)
	}
	if len(words) == 0 {
		return nil
	}
	name, args := strings.ToLower(words[0]), words[1:]
	if fn, ok := r.extra[name]; ok {
		return fn(args)
	}

	switch name {
	case "style":
		if len(args) < 2 {
			return fmt.Errorf("style requires key and value")
		}
		s := r.c.Style()
		if err := s.Set(args[0], strings.Join(args[1:], " ")); err != nil {
			return err
		}
		r.c.SetStyle(s)
	case "press", "release":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("%s requires x y [button]", name)
		}
		pt, err := points(args[:2], 1)
		if err != nil {
			return err
		}
		b := construct.ButtonPrimary
		if len(args) == 3 {
			if b, err = parseButton(args[2]); err != nil {
				return err
			}
		}
		if name == "press" {
			r.c.Press(pt[0].X, pt[0].Y, b)
		} else {
			r.c.Release(pt[0].X, pt[0].Y, b)
		}
	case "drag":
		pt, err := points(args, 1)
		if err != nil {
			return fmt.Errorf("drag: %w", err)
		}
		r.c.Drag(pt[0].X, pt[0].Y)
	case "complete":
		r.c.ForceComplete()
	case "undo":
		r.c.Undo()
	case "redo":
		r.c.Redo()
	case "clear":
		r.c.ClearAll()
	case "delete":
		if len(args) != 1 {
			return fmt.Errorf("delete requires a shape id")
		}
		if !r.c.Delete(args[0]) {
			return fmt.Errorf("no shape with id %s", args[0])
		}
	case "line", "rect", "rectangle", "oval", "polygon":
		return r.shorthand(name, args)
	default:
		return fmt.Errorf("%w %q", ErrUnknownCommand, words[0])
	}
	return nil
}

// shorthand draws a complete shape of the named kind, leaving the style
// kind unchanged afterwards.
func (r *Runner) shorthand(name string, args []string) error {
	kind, _ := shape.ParseKind(name)
	if kind == shape.KindPolygon {
		if len(args) < 6 || len(args)%2 != 0 {
			return fmt.Errorf("polygon requires at least three x y pairs")
		}
	} else if len(args) != 4 {
		return fmt.Errorf("%s requires x1 y1 x2 y2", name)
	}
	pts, err := points(args, len(args)/2)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if r.c.State() != construct.Idle {
		return fmt.Errorf("%s: a shape is already in progress", name)
	}

	saved := r.c.Style()
	s := saved
	s.Kind = kind
	r.c.SetStyle(s)
	defer r.c.SetStyle(saved)

	r.c.Press(pts[0].X, pts[0].Y, construct.ButtonPrimary)
	if kind != shape.KindPolygon {
		r.c.Release(pts[1].X, pts[1].Y, construct.ButtonPrimary)
		return nil
	}
	for i, p := range pts[1:] {
		r.c.Release(p.X, p.Y, construct.ButtonPrimary)
		if r.c.State() == construct.Idle {
			// A vertex near the start closed the outline; drop the partial shape.
			r.c.Undo()
			return fmt.Errorf("polygon: closed early at point %d", i+2)
		}
	}
	r.c.Release(pts[0].X, pts[0].Y, construct.ButtonPrimary)
	return nil
}

func points(args []string, n int) ([]shape.Point, error) {
	if len(args) != n*2 {
		return nil, fmt.Errorf("expected %d coordinates, got %d", n*2, len(args))
	}
	pts := make([]shape.Point, n)
	for i := range pts {
		x, err := strconv.Atoi(args[2*i])
		if err != nil {
			return nil, fmt.Errorf("invalid x %q", args[2*i])
		}
		y, err := strconv.Atoi(args[2*i+1])
		if err != nil {
			return nil, fmt.Errorf("invalid y %q", args[2*i+1])
		}
		pts[i] = shape.Pt(x, y)
	}
	return pts, nil
}

func parseButton(s string) (construct.Button, error) {
	switch strings.ToLower(s) {
	case "primary", "left", "1":
		return construct.ButtonPrimary, nil
	case "secondary", "right", "3":
		return construct.ButtonSecondary, nil
	case "middle", "2":
		return construct.ButtonMiddle, nil
	case "none":
		return construct.ButtonNone, nil
	}
	return construct.ButtonNone, fmt.Errorf("unknown button %q", s)
}
