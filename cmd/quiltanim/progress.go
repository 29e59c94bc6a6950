package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const barWidth = 40

// progressBar redraws a bar in place on terminals and prints every tenth on other writers.
type progressBar struct {
	w       io.Writer
	quiet   bool
	tty     bool
	last    int
	printed bool
}

func newProgressBar(w io.Writer, quiet bool) *progressBar {
	b := &progressBar{w: w, quiet: quiet, last: -1}
	if f, ok := w.(*os.File); ok {
		b.tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return b
}

func (b *progressBar) Progress(fraction float64) {
	if b.quiet {
		return
	}
	percent := int(fraction * 100)
	if b.tty {
		if percent == b.last {
			return
		}
		n := percent * barWidth / 100
		fmt.Fprintf(b.w, "\r[%s%s] %3d%%", strings.Repeat("#", n), strings.Repeat(".", barWidth-n), percent)
		b.last = percent
		b.printed = true
		return
	}
	if step := percent / 10; step > b.last {
		fmt.Fprintf(b.w, "composited %d%%\n", step*10)
		b.last = step
	}
}

// Done ends the bar line, if one was drawn.
func (b *progressBar) Done() {
	if b.tty && b.printed {
		fmt.Fprintln(b.w)
	}
}
