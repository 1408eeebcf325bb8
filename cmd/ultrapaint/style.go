package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/ultrapaint/internal/clipboard"
	"github.com/example/ultrapaint/internal/config"
)

// styleCmd shows and edits the settings file.
type styleCmd struct {
	*root
	fs          *flag.FlagSet
	toClipboard bool

	out io.Writer
}

func (s *styleCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func parseStyleCmd(args []string, r *root) (*styleCmd, error) {
	fs := flag.NewFlagSet("style", flag.ExitOnError)
	s := &styleCmd{root: r, fs: fs, out: os.Stdout}
	fs.Usage = usageFunc(s)
	fs.BoolVar(&s.toClipboard, "to-clipboard", false, "also copy printed settings to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *styleCmd) Run() error {
	args := s.fs.Args()
	if len(args) < 1 {
		return &UsageError{of: s}
	}
	if s.config == nil {
		s.config = config.New()
	}
	switch args[0] {
	case "print":
		return s.runPrint()
	case "save":
		return s.runSave()
	case "set":
		if len(args) != 3 {
			return &UsageError{of: s}
		}
		if err := s.config.Set(args[1], args[2]); err != nil {
			return fmt.Errorf("set %s: %w", args[1], err)
		}
		return s.runSave()
	default:
		return fmt.Errorf("unknown style command: %s", args[0])
	}
}

func (s *styleCmd) runPrint() error {
	text := s.config.String()
	fmt.Fprint(s.out, text)
	if s.toClipboard {
		if err := clipboard.WriteText(text); err != nil {
			return fmt.Errorf("copy settings: %w", err)
		}
		s.notifier.Copy("settings")
	}
	return nil
}

func (s *styleCmd) runSave() error {
	loader := s.loader
	if loader == nil {
		loader = config.NewLoader(version, configPathOverride)
	}
	path, err := loader.Save(s.config)
	if err != nil {
		return err
	}
	s.notifier.Save(path)
	fmt.Fprintf(s.out, "Settings saved to %s\n", path)
	return nil
}
