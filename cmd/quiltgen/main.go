package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/staD020/quiltanim"
)

var (
	help   bool
	width  int
	height int
	label  bool
)

func main() {
	t0 := time.Now()
	opt := initAndParseFlags()
	if help {
		flag.Usage()
		return
	}
	if opt.Folder == "" && flag.NArg() > 0 {
		opt.Folder = flag.Arg(0)
	}
	if opt.BaseName == "" {
		opt.BaseName = "quilt"
	}
	cfg, err := opt.Config()
	if err != nil {
		log.Fatalf("Config failed: %v", err)
	}
	if width < cfg.Grid.Columns || height < cfg.Grid.Rows {
		log.Fatalf("%dx%d is too small for a %s grid", width, height, cfg.Grid)
	}
	enc := quiltanim.FileEncoder{JPEGQuality: opt.JPEGQuality}
	if err = quiltanim.WritePattern(cfg, enc, width, height, label); err != nil {
		log.Fatalf("WritePattern failed: %v", err)
	}
	if !opt.Quiet {
		fmt.Printf("wrote %d frames %s ... %s\n", cfg.Grid.Frames(), cfg.Naming.Path(0), cfg.Naming.Path(cfg.Grid.Frames()-1))
		fmt.Printf("elapsed: %v\n", time.Since(t0))
	}
}

func initAndParseFlags() (opt quiltanim.Options) {
	flag.BoolVar(&help, "h", false, "help")
	flag.BoolVar(&help, "help", false, "help")
	flag.BoolVar(&opt.Quiet, "q", false, "quiet")
	flag.BoolVar(&opt.Quiet, "quiet", false, "quiet, only display errors")
	flag.StringVar(&opt.Folder, "d", "", "dir")
	flag.StringVar(&opt.Folder, "dir", "", "folder to write the test sequence to")
	flag.StringVar(&opt.BaseName, "n", "", "name")
	flag.StringVar(&opt.BaseName, "name", "", "file name of the frames without number (default \"quilt\")")
	flag.StringVar(&opt.IncrementFormat, "i", "", "increment")
	flag.StringVar(&opt.IncrementFormat, "increment", "", "increment format (default \"00\")")
	flag.StringVar(&opt.Format, "f", "", "format")
	flag.StringVar(&opt.Format, "format", "", "png, jpg or jpeg (default \"png\")")
	flag.StringVar(&opt.Preset, "p", "", "preset")
	flag.StringVar(&opt.Preset, "preset", "", "grid preset")
	flag.IntVar(&opt.Rows, "r", 0, "rows")
	flag.IntVar(&opt.Rows, "rows", 0, "number of rows, overrides the preset")
	flag.IntVar(&opt.Columns, "c", 0, "columns")
	flag.IntVar(&opt.Columns, "columns", 0, "number of columns, overrides the preset")
	flag.IntVar(&opt.JPEGQuality, "jpeg-quality", 0, "jpeg quality 1-100")
	flag.IntVar(&width, "width", 3360, "width of each quilt in pixels")
	flag.IntVar(&height, "height", 3360, "height of each quilt in pixels")
	flag.BoolVar(&label, "label", true, "print the frame number in every tile")
	flag.Parse()
	return opt
}
