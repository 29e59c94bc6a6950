package quiltanim

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// MarkerColor returns the fully saturated colour that identifies frame index i of g.
// Hues are spread evenly over all frames of g.
func MarkerColor(i int, g Grid) color.NRGBA {
	return hsv(360*float64(i)/float64(g.Frames()), 1, 1)
}

// fillerColor is a dimmed frame colour that never equals a MarkerColor.
func fillerColor(i int, g Grid) color.NRGBA {
	return hsv(360*float64(i)/float64(g.Frames()), 0.4, 0.35)
}

func hsv(h, s, v float64) color.NRGBA {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// GeneratePattern returns a width x height test quilt for frame index i.
// Every tile is filled with a dimmed colour of the frame, except the tile the
// compositor takes from this frame, which is filled with MarkerColor(i, g).
// With label set, every tile shows the 1-based frame number.
func GeneratePattern(g Grid, i, width, height int, label bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(fillerColor(i, g)), image.Point{}, draw.Src)
	src, _ := Resolve(i, g, width, height)
	draw.Draw(img, src, image.NewUniform(MarkerColor(i, g)), image.Point{}, draw.Src)
	if !label {
		return img
	}

	tile := g.TileSize(width, height)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	text := strconv.Itoa(i + 1)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Columns; col++ {
			d.Dot = fixed.P(col*tile.X+4, row*tile.Y+basicfont.Face7x13.Ascent+4)
			d.DrawString(text)
		}
	}
	return img
}

// WritePattern writes a complete numbered sequence of test quilts as described by cfg.
func WritePattern(cfg RunConfig, enc Encoder, width, height int, label bool) error {
	if err := cfg.Grid.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Naming.Folder, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll %q failed: %w", cfg.Naming.Folder, err)
	}
	for i := 0; i < cfg.Grid.Frames(); i++ {
		path := cfg.Naming.Path(i)
		if err := writeImage(path, GeneratePattern(cfg.Grid, i, width, height, label), enc, cfg.Format); err != nil {
			return err
		}
	}
	return nil
}

func writeImage(path string, img image.Image, enc Encoder, f Format) error {
	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create %q failed: %w", path, err)
	}
	defer w.Close()
	if err = enc.Encode(w, img, f); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return w.Close()
}
