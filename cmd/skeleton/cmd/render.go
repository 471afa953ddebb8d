package cmd

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/term"

	"github.com/go-drift/skeleton/pkg/animation"
	"github.com/go-drift/skeleton/pkg/config"
	"github.com/go-drift/skeleton/pkg/preview"
)

func init() {
	RegisterCommand(newRenderCmd)
}

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame of a skeleton to an image",
		Long: `Render the skeleton described by the config at a point in its animation.

The image format follows the output extension: .png, .bmp, .tif or .tiff.
With --stdout the frame is drawn in the terminal instead.

Examples:
  skeleton render -o skeleton.png
  skeleton render --at 750ms --scale 2 -o frame.png
  skeleton render -c list.toml --stdout`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringP("output", "o", "skeleton.png", "output image path")
	flags.Float64("scale", 1, "scale factor applied to the host size")
	flags.Duration("at", 0, "animation time to render")
	flags.Bool("stdout", false, "draw the frame in the terminal")
	flags.Int("width", 0, "terminal columns for --stdout (default: terminal width)")
	flags.String("background", "white", "background color for --stdout")
	return a.bind(cmd)
}

func (a *app) runRender(out io.Writer) error {
	r, _, err := a.loadConfig()
	if err != nil {
		return err
	}
	at := a.settings.GetDuration("at")
	if at < 0 {
		return fmt.Errorf("--at must not be negative, got %s", at)
	}

	img, err := renderFrame(r, at)
	if err != nil {
		return err
	}

	if a.settings.GetBool("stdout") {
		bg, err := config.ParseColor(a.settings.GetString("background"))
		if err != nil {
			return fmt.Errorf("--background: %w", err)
		}
		cols, rows := a.terminalSize()
		fmt.Fprintln(out, preview.HalfBlocks(preview.Fit(img, cols, rows*2), bg))
		return nil
	}

	scale := a.settings.GetFloat64("scale")
	if scale <= 0 {
		return fmt.Errorf("--scale must be positive, got %g", scale)
	}
	if scale != 1 {
		img = preview.Scale(img, scale)
	}

	path := a.settings.GetString("output")
	if err := writeImage(path, img); err != nil {
		return err
	}
	a.log.Info().Str("path", path).Dur("at", at).Int("width", img.Bounds().Dx()).Int("height", img.Bounds().Dy()).Msg("rendered")
	return nil
}

// renderFrame builds the layer on a private clock and advances it by at.
func renderFrame(r *config.Resolved, at time.Duration) (*image.RGBA, error) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := animation.SetClock(animation.ClockFunc(func() time.Time { return now }))
	defer func() {
		animation.StopAllTickers()
		animation.SetClock(prev)
	}()

	session, err := preview.NewSession(r)
	if err != nil {
		return nil, err
	}
	if at > 0 {
		now = now.Add(at)
		animation.StepTickers()
	}
	return session.Image(), nil
}

// terminalSize reports the drawing area for --stdout, leaving a spare row.
func (a *app) terminalSize() (cols, rows int) {
	cols, rows = 80, 24
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			cols, rows = w, h
		}
	}
	if w := a.settings.GetInt("width"); w > 0 {
		cols = w
	}
	return cols, max(rows-1, 1)
}

func writeImage(path string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = png.Encode
	case ".bmp":
		encode = bmp.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, m image.Image) error {
			return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
		}
	default:
		return fmt.Errorf("unsupported image format %q (use .png, .bmp or .tiff)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
