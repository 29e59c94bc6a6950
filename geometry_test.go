package quiltanim

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()
	type tc struct {
		name          string
		grid          Grid
		index         int
		width, height int
		src, dst      image.Rectangle
	}
	testCases := []tc{
		{"2x2 frame 0", Grid{2, 2}, 0, 256, 256, image.Rect(128, 0, 256, 128), image.Rect(128, 0, 256, 128)},
		{"2x2 frame 1", Grid{2, 2}, 1, 256, 256, image.Rect(0, 0, 128, 128), image.Rect(0, 0, 128, 128)},
		{"2x2 frame 2", Grid{2, 2}, 2, 256, 256, image.Rect(128, 128, 256, 256), image.Rect(128, 128, 256, 256)},
		{"2x2 frame 3", Grid{2, 2}, 3, 256, 256, image.Rect(0, 128, 128, 256), image.Rect(0, 128, 128, 256)},
		{"1x1", Grid{1, 1}, 0, 300, 200, image.Rect(0, 0, 300, 200), image.Rect(0, 0, 300, 200)},
		{"6x8 frame 9", Grid{6, 8}, 9, 3360, 3360, image.Rect(2520, 560, 2940, 1120), image.Rect(2520, 560, 2940, 1120)},
		// 10/3 leaves one remainder column: src is read one pixel further right than dst.
		{"truncated", Grid{1, 3}, 0, 10, 4, image.Rect(7, 0, 10, 4), image.Rect(6, 0, 9, 4)},
	}
	for _, c := range testCases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			src, dst := Resolve(c.index, c.grid, c.width, c.height)
			assert.Equal(t, c.src, src, "src")
			assert.Equal(t, c.dst, dst, "dst")
		})
	}
}

func TestResolvePartitionsCanvas(t *testing.T) {
	t.Parallel()
	grids := []Grid{{1, 1}, {2, 2}, {3, 5}, {6, 8}, {12, 16}, {1, 7}, {4, 1}}
	for _, g := range grids {
		width, height := g.Columns*5, g.Rows*3
		covered := make([]int, width*height)
		for i := 0; i < g.Frames(); i++ {
			src, dst := Resolve(i, g, width, height)
			require.True(t, src.In(image.Rect(0, 0, width, height)), "grid %s frame %d src %v", g, i, src)
			require.True(t, dst.In(image.Rect(0, 0, width, height)), "grid %s frame %d dst %v", g, i, dst)
			for y := dst.Min.Y; y < dst.Max.Y; y++ {
				for x := dst.Min.X; x < dst.Max.X; x++ {
					covered[y*width+x]++
				}
			}
		}
		for p, n := range covered {
			require.Equal(t, 1, n, "grid %s pixel %d,%d covered %d times", g, p%width, p/width, n)
		}
	}
}

func TestResolveTruncatedStaysInBounds(t *testing.T) {
	t.Parallel()
	g := Grid{Rows: 6, Columns: 8}
	width, height := 1001, 997
	bounds := image.Rect(0, 0, width, height)
	for i := 0; i < g.Frames(); i++ {
		src, dst := Resolve(i, g, width, height)
		assert.True(t, src.In(bounds), "frame %d src %v", i, src)
		assert.True(t, dst.In(bounds), "frame %d dst %v", i, dst)
		assert.Equal(t, image.Pt(125, 166), src.Size())
		assert.Equal(t, src.Size(), dst.Size())
	}
}

func TestGrid(t *testing.T) {
	t.Parallel()
	g := Grid{Rows: 6, Columns: 8}
	assert.Equal(t, 48, g.Frames())
	assert.Equal(t, "8x6", g.String())
	row, col := g.Cell(0)
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})
	row, col = g.Cell(13)
	assert.Equal(t, [2]int{1, 5}, [2]int{row, col})
	row, col = g.Cell(47)
	assert.Equal(t, [2]int{5, 7}, [2]int{row, col})
	assert.Equal(t, image.Pt(420, 560), g.TileSize(3360, 3360))

	assert.NoError(t, g.Validate())
	assert.ErrorIs(t, Grid{Rows: 0, Columns: 8}.Validate(), ErrInvalidConfiguration)
	assert.ErrorIs(t, Grid{Rows: 6, Columns: -1}.Validate(), ErrInvalidConfiguration)
}
