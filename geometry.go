package quiltanim

import (
	"fmt"
	"image"
)

// A Grid describes the tile layout of a quilt: Rows views from top to bottom
// and Columns views per row. Every run consumes exactly Rows*Columns frames.
type Grid struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

func (g Grid) String() string {
	return fmt.Sprintf("%dx%d", g.Columns, g.Rows)
}

// Frames returns the number of frames, and tiles, of a quilt with grid g.
func (g Grid) Frames() int {
	return g.Rows * g.Columns
}

// Cell returns the row and column of frame index i, row 0 being the top row.
func (g Grid) Cell(i int) (row, col int) {
	return i / g.Columns, i % g.Columns
}

// Validate returns a *ConfigError if g has no tiles.
func (g Grid) Validate() error {
	if g.Rows < 1 {
		return &ConfigError{Field: "rows", Reason: fmt.Sprintf("must be at least 1, not %d", g.Rows)}
	}
	if g.Columns < 1 {
		return &ConfigError{Field: "columns", Reason: fmt.Sprintf("must be at least 1, not %d", g.Columns)}
	}
	return nil
}

// TileSize returns the size of one tile of a width x height quilt.
// Remainder pixels of the last row and column are not covered by any tile.
func (g Grid) TileSize(width, height int) image.Point {
	return image.Pt(width/g.Columns, height/g.Rows)
}

// Resolve returns the rectangle of the source quilt of frame index that is
// copied, and the rectangle of the output quilt it is pasted to.
//
// Source quilts store their views right to left, so src is read from the
// mirrored column. dst mirrors the column again, so the tile lands in cell
// (row, col) of the output. Resolve does no bounds checking, index must be
// in [0, g.Frames()).
func Resolve(index int, g Grid, width, height int) (src, dst image.Rectangle) {
	tile := g.TileSize(width, height)
	row, col := g.Cell(index)

	srcX := width - (col+1)*tile.X
	y := row * tile.Y
	src = image.Rect(srcX, y, srcX+tile.X, y+tile.Y)

	dstX := (g.Columns - col - 1) * tile.X
	dst = image.Rect(dstX, y, dstX+tile.X, y+tile.Y)
	return src, dst
}
