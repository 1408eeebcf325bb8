package main

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/ultrapaint/internal/config"
	"github.com/example/ultrapaint/internal/shape"
)

func testRoot(t *testing.T) *root {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.ini")
	return &root{
		program: "ultrapaint",
		loader:  config.NewLoader("test", path),
		config:  config.New(),
	}
}

func TestRootRequiresCommand(t *testing.T) {
	r := newRoot()
	err := r.Run(nil)
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if want := "Usage: ultrapaint"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected help to contain %q, got %q", want, err.Error())
	}
	if want := "-notify-export"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected help to list %q, got %q", want, err.Error())
	}
}

func TestRootUnknownCommand(t *testing.T) {
	r := newRoot()
	r.config = config.New()
	var uerr *UsageError
	if err := r.Run([]string{"bogus"}); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestSubcommandProgram(t *testing.T) {
	r := testRoot(t)
	if got := r.subcommand("render").Program(); got != "ultrapaint render" {
		t.Fatalf("unexpected program %q", got)
	}
}

func TestParseRenderRequiresScript(t *testing.T) {
	_, err := parseRenderCmd([]string{"-output", "out.png"}, testRoot(t))
	var uerr *UsageError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
	if want := "Script commands"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected render help, got %q", err.Error())
	}
}

func TestParseRenderRequiresDestination(t *testing.T) {
	_, err := parseRenderCmd([]string{"-script", "a.txt"}, testRoot(t))
	if err == nil {
		t.Fatalf("expected error")
	}
	if want := "-to-clipboard is required"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected error to mention %q, got %v", want, err)
	}
}

func TestRenderWritesFile(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "picture.txt")
	src := "style type rectangle\nstyle filled true\nstyle colour1 255,0,0\nrect 10 10 30 30\n"
	if err := os.WriteFile(scriptPath, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.png")
	cmd, err := parseRenderCmd([]string{"-script", scriptPath, "-output", out, "-width", "40", "-height", "40"}, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, _ := img.At(20, 20).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Fatalf("expected red fill, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(2, 2).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Fatalf("expected white background, got %d,%d,%d", r>>8, g>>8, b>>8)
	}
}

func TestRenderStdinToStdout(t *testing.T) {
	cmd, err := parseRenderCmd([]string{"-script", "-", "-output", "-", "-width", "16", "-height", "8", "-background", "none"}, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.stdin = strings.NewReader("line 0 0 15 7\n")
	cmd.stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	img, err := png.Decode(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestRenderScriptErrorHasLine(t *testing.T) {
	cmd, err := parseRenderCmd([]string{"-script", "-", "-output", "-"}, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cmd.stdin = strings.NewReader("line 0 0 1 1\nfrobnicate\n")
	cmd.stdout = &bytes.Buffer{}
	err = cmd.Run()
	if err == nil || !strings.Contains(err.Error(), "script line 2") {
		t.Fatalf("expected line context, got %v", err)
	}
}

func TestRenderBadBackground(t *testing.T) {
	cmd, err := parseRenderCmd([]string{"-script", "-", "-output", "-", "-background", "not-a-colour"}, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cmd.stdin = strings.NewReader("")
	if err := cmd.Run(); err == nil || !strings.Contains(err.Error(), "background") {
		t.Fatalf("expected background error, got %v", err)
	}
}

func TestShellSession(t *testing.T) {
	dir := t.TempDir()
	cmd, err := parseShellCmd([]string{"-quiet", "-width", "20", "-height", "20"}, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	out := filepath.Join(dir, "shell.png")
	var stdout, stderr bytes.Buffer
	cmd.in = strings.NewReader(strings.Join([]string{
		"line 1 1 10 10",
		"undo",
		"redo",
		"bogus",
		"list",
		"export " + out,
		"exit",
		"line 0 0 5 5",
	}, "\n"))
	cmd.out = &stdout
	cmd.errOut = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "LINE (1,1)-(10,10)"; !strings.Contains(stdout.String(), want) {
		t.Fatalf("expected listing to contain %q, got %q", want, stdout.String())
	}
	if strings.Count(stdout.String(), "LINE") != 1 {
		t.Fatalf("commands after exit ran: %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "unknown command") {
		t.Fatalf("expected unknown command error, got %q", stderr.String())
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected export: %v", err)
	}
}

func TestShellCopyWithoutDisplay(t *testing.T) {
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")
	cmd, err := parseShellCmd([]string{"-quiet", "-width", "10", "-height", "10"}, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var stdout, stderr bytes.Buffer
	cmd.in = strings.NewReader("line 0 0 5 5\ncopy\n")
	cmd.out = &stdout
	cmd.errOut = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(stderr.String(), "copy:") {
		t.Fatalf("expected copy failure on stderr, got %q", stderr.String())
	}
	if strings.Contains(stdout.String(), "copied") {
		t.Fatalf("unexpected success output %q", stdout.String())
	}
}

func TestStyleSetSaves(t *testing.T) {
	r := testRoot(t)
	cmd, err := parseStyleCmd([]string{"set", "type", "oval"}, r)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	loaded, err := config.LoadFile(r.loader.SavePath())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Style.Kind != shape.KindOval {
		t.Fatalf("expected OVAL, got %s", loaded.Style.Kind)
	}
	if !strings.Contains(out.String(), "Settings saved to") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestStyleSetRejectsUnknownKey(t *testing.T) {
	cmd, err := parseStyleCmd([]string{"set", "sparkle", "yes"}, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cmd.out = &bytes.Buffer{}
	if err := cmd.Run(); !errors.Is(err, config.ErrUnknownKey) {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestStylePrint(t *testing.T) {
	cmd, err := parseStyleCmd([]string{"print"}, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var out bytes.Buffer
	cmd.out = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "Type LINE"; !strings.Contains(out.String(), want) {
		t.Fatalf("expected %q in %q", want, out.String())
	}
}

func TestStyleMissingAction(t *testing.T) {
	cmd, err := parseStyleCmd(nil, testRoot(t))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var uerr *UsageError
	if err := cmd.Run(); !errors.As(err, &uerr) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	var out bytes.Buffer
	cmd := &versionCmd{r: &root{program: "ultrapaint"}, out: &out}
	if err := cmd.Run(); err != nil {
		t.Fatal(err)
	}
	if want := "ultrapaint version dev"; !strings.HasPrefix(out.String(), want) {
		t.Fatalf("unexpected version output %q", out.String())
	}
}
