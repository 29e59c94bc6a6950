package quiltanim

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Naming locates the numbered frame files of a sequence.
// Frame index 0 is stored as number 1 on disk, zero padded to PadWidth digits.
type Naming struct {
	Folder   string
	BaseName string
	PadWidth int
	Ext      string
}

// Path returns the filename of frame index i, e.g. "frames/quilt01.png".
func (n Naming) Path(i int) string {
	return filepath.Join(n.Folder, n.Filename(i))
}

// Filename returns the base filename of frame index i.
func (n Naming) Filename(i int) string {
	return fmt.Sprintf("%s%0*d.%s", n.BaseName, n.PadWidth, i+1, n.Ext)
}

// ParseIncrementFormat returns the zero pad width of an increment format like "00" or "0001".
// Only the length of the format counts, the digits themselves are ignored.
func ParseIncrementFormat(s string) (int, error) {
	if s == "" {
		return 0, &ConfigError{Field: "increment format", Reason: "must not be empty"}
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, &ConfigError{Field: "increment format", Reason: fmt.Sprintf("%q is not numeric", s)}
		}
	}
	return len(s), nil
}

// Preview returns a human readable description of the files a run with grid g will look for.
func (n Naming) Preview(g Grid) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "will look for images:\n")
	fmt.Fprintf(b, "  %s, %s, etc.\n", n.Filename(0), n.Filename(1))
	fmt.Fprintf(b, "in the directory:\n")
	fmt.Fprintf(b, "  %s\n", n.Folder)
	fmt.Fprintf(b, "with: %d rows and %d columns\n", g.Rows, g.Columns)
	fmt.Fprintf(b, "total frames: %d", g.Frames())
	return b.String()
}
