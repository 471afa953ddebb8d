package cmd

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/go-drift/skeleton/pkg/config"
)

const solidConfig = `
type: solid
colors: ["#336699"]
host:
  width: 40
  height: 20
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skeleton.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func decode(t *testing.T, path string, fn func(*os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := fn(f)
	require.NoError(t, err)
	return img
}

func decodePNG(f *os.File) (image.Image, error) { return png.Decode(f) }
func decodeBMP(f *os.File) (image.Image, error) { return bmp.Decode(f) }

func TestVersionCommand(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })
	Version = "1.2.3"

	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "skeleton 1.2.3")
	assert.Contains(t, out, config.SchemaVersion)
}

func TestInitThenValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.toml")

	out, err := run(t, "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)

	out, err = run(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	_, err = run(t, "init", path)
	assert.Error(t, err)
}

func TestValidateReportsInvalidFiles(t *testing.T) {
	good := writeConfig(t, solidConfig)
	bad := writeConfig(t, "type: shimmer\n")

	out, err := run(t, "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "ok   "+good)
	assert.Contains(t, out, "FAIL "+bad)

	_, err = run(t, "validate", "-c", bad)
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	cfg := writeConfig(t, solidConfig)
	out := filepath.Join(t.TempDir(), "frame.png")

	_, err := run(t, "render", "-c", cfg, "-o", out)
	require.NoError(t, err)

	img := decode(t, out, decodePNG)
	assert.Equal(t, image.Rect(0, 0, 40, 20), img.Bounds())
	r, g, b, a := img.At(20, 10).RGBA()
	assert.Equal(t, []uint32{0x33, 0x66, 0x99, 0xFF}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestRenderScaledBMP(t *testing.T) {
	cfg := writeConfig(t, solidConfig)
	out := filepath.Join(t.TempDir(), "frame.bmp")

	_, err := run(t, "render", "-c", cfg, "-o", out, "--scale", "0.5")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 20, 10), decode(t, out, decodeBMP).Bounds())
}

func TestRenderRejectsBadInput(t *testing.T) {
	cfg := writeConfig(t, solidConfig)
	dir := t.TempDir()

	_, err := run(t, "render", "-c", cfg, "-o", filepath.Join(dir, "frame.gif"))
	assert.ErrorContains(t, err, "unsupported image format")

	_, err = run(t, "render", "-c", cfg, "-o", filepath.Join(dir, "frame.png"), "--scale", "0")
	assert.ErrorContains(t, err, "--scale")

	_, err = run(t, "render", "-c", cfg, "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestRenderConfigFromEnvironment(t *testing.T) {
	t.Setenv("SKELETON_CONFIG", writeConfig(t, solidConfig))
	out := filepath.Join(t.TempDir(), "frame.png")

	_, err := run(t, "render", "-o", out)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 20), decode(t, out, decodePNG).Bounds())
}

func TestRenderStdout(t *testing.T) {
	cfg := writeConfig(t, solidConfig)

	out, err := run(t, "render", "-c", cfg, "--stdout", "--width", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "▀")
}

func TestRenderFrameAdvancesAnimation(t *testing.T) {
	f, err := config.Parse([]byte("type: animatedGradient\nanimated: true\nhost: {width: 64, height: 16}\n"), config.FormatYAML)
	require.NoError(t, err)
	r, err := config.Resolve(f)
	require.NoError(t, err)

	start, err := renderFrame(r, 0)
	require.NoError(t, err)
	later, err := renderFrame(r, 375*time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, start.Bounds(), later.Bounds())
	assert.NotEqual(t, start.Pix, later.Pix)
}
