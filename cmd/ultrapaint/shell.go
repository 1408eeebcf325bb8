package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/ultrapaint/internal/canvas"
	"github.com/example/ultrapaint/internal/clipboard"
	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/render"
	"github.com/example/ultrapaint/internal/script"
)

var errExit = errors.New("exit")

// shellCmd reads script commands interactively against one canvas.
type shellCmd struct {
	*root
	fs     *flag.FlagSet
	width  int
	height int
	quiet  bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func (s *shellCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func parseShellCmd(args []string, r *root) (*shellCmd, error) {
	fs := flag.NewFlagSet("shell", flag.ExitOnError)
	s := &shellCmd{root: r, fs: fs, in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
	fs.Usage = usageFunc(s)
	fs.IntVar(&s.width, "width", 800, "export width in pixels")
	fs.IntVar(&s.height, "height", 600, "export height in pixels")
	fs.BoolVar(&s.quiet, "quiet", false, "do not print a prompt")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *shellCmd) Run() error {
	style := config.DefaultStyle()
	if s.config != nil {
		style = s.config.Style
	}
	cv := canvas.New(canvas.WithStyle(style))
	runner := script.New(cv,
		script.WithCommand("list", func([]string) error { return s.list(cv) }),
		script.WithCommand("export", func(args []string) error { return s.export(cv, args) }),
		script.WithCommand("copy", func([]string) error { return s.copyImage(cv) }),
		script.WithCommand("exit", func([]string) error { return errExit }),
		script.WithCommand("quit", func([]string) error { return errExit }),
	)

	if !s.quiet {
		fmt.Fprintln(s.out, "Enter commands (type 'exit' to quit)")
	}
	scanner := bufio.NewScanner(s.in)
	for {
		if !s.quiet {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		err := runner.Exec(scanner.Text())
		if errors.Is(err, errExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.errOut, err)
		}
	}
	return scanner.Err()
}

func (s *shellCmd) list(cv *canvas.Canvas) error {
	for i, sh := range cv.Shapes() {
		fmt.Fprintf(s.out, "%d %s %s %s-%s\n", i, sh.ID(), sh.Kind(), sh.P1(), sh.P2())
	}
	if cur := cv.InProgress(); cur != nil {
		fmt.Fprintf(s.out, "* %s %s %s-%s\n", cur.ID(), cur.Kind(), cur.P1(), cur.P2())
	}
	return nil
}

func (s *shellCmd) export(cv *canvas.Canvas, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: export FILE")
	}
	path := strings.TrimSpace(args[0])
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := render.WritePNG(f, cv, s.width, s.height, nil); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	s.notifier.Export(path, nil)
	fmt.Fprintf(s.out, "exported %s\n", path)
	return nil
}

func (s *shellCmd) copyImage(cv *canvas.Canvas) error {
	img, err := render.Image(cv, s.width, s.height, nil)
	if err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	if err := clipboard.WriteImage(img); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	s.notifier.Copy("drawing")
	fmt.Fprintln(s.out, "copied drawing to clipboard")
	return nil
}
