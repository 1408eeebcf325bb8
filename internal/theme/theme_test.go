package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverridesDefaults(t *testing.T) {
	src := `# comment
Name: Mine
StatusText: #ff0000
MessageBorder: 0,0,255
Unknown: #123456
not a pair
`
	th, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "Mine", th.Name)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, th.StatusText)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, th.MessageBorder)
	assert.Equal(t, Default().Canvas, th.Canvas)
}

func TestParseBadColour(t *testing.T) {
	_, err := Parse(strings.NewReader("Canvas: nope-not-a-colour\n"))
	assert.ErrorContains(t, err, "Canvas")
}

func TestLoadEmbedded(t *testing.T) {
	l := &Loader{}
	for _, name := range []string{"default", "dark", "DARK", "high_contrast.theme"} {
		th, err := l.Load(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, th.Name, name)
	}
	th, err := l.Load("dark")
	require.NoError(t, err)
	assert.Equal(t, "Dark", th.Name)
	assert.Equal(t, color.RGBA{0x20, 0x21, 0x24, 255}, th.StatusBackground)
}

func TestLoadFromDirAndPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paper.theme")
	require.NoError(t, os.WriteFile(path, []byte("Name: Paper\nCanvas: #fdf6e3\n"), 0o644))

	l := &Loader{ConfigDir: dir}
	th, err := l.Load("paper")
	require.NoError(t, err)
	assert.Equal(t, "Paper", th.Name)

	th, err = (&Loader{}).Load(path)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xfd, 0xf6, 0xe3, 255}, th.Canvas)

	_, err = l.Load("missing")
	assert.Error(t, err)
}

func TestResolvePrecedence(t *testing.T) {
	l := &Loader{}
	t.Setenv(EnvName, "high_contrast")

	th, err := l.Resolve("dark", "default")
	require.NoError(t, err)
	assert.Equal(t, "Dark", th.Name)

	th, err = l.Resolve("", "dark")
	require.NoError(t, err)
	assert.Equal(t, "High Contrast", th.Name)

	t.Setenv(EnvName, "")
	th, err = l.Resolve("", "dark")
	require.NoError(t, err)
	assert.Equal(t, "Dark", th.Name)

	th, err = l.Resolve("no-such-theme", "")
	assert.Error(t, err)
	assert.Equal(t, "Default", th.Name)
}
