package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/staD020/quiltanim"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		var usage usageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type usageError struct {
	err error
}

func (e usageError) Error() string {
	return e.err.Error()
}

func (e usageError) Unwrap() error {
	return e.err
}

type flags struct {
	opt         quiltanim.Options
	configFile  string
	listPresets bool
}

// run parses args, composites the sequence and reports to stdout and stderr.
// Every error is logged to stderr before it is returned.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	t0 := time.Now()
	logger := log.New(stderr, "", log.LstdFlags)
	f, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err}
	}
	if f.listPresets {
		for _, p := range quiltanim.Presets() {
			fmt.Fprintf(stdout, "%-30s %d rows, %d columns\n", p.Name, p.Rows, p.Columns)
		}
		return nil
	}

	opt := f.opt
	if f.configFile != "" {
		fileOpt, err := quiltanim.LoadOptions(f.configFile)
		if err != nil {
			logger.Printf("error: %v", err)
			return usageError{err}
		}
		opt = fileOpt.Merge(opt)
	}
	notifier := quiltanim.LogNotifier{Logger: logger, Quiet: opt.Quiet}
	if !opt.Quiet {
		fmt.Fprintf(stdout, "quiltanim %v\n", quiltanim.Version)
	}

	cfg, err := opt.Config()
	if err != nil {
		notifier.Notify(quiltanim.LevelError, err.Error())
		return usageError{err}
	}
	if !opt.Quiet {
		fmt.Fprintln(stdout, cfg.Naming.Preview(cfg.Grid))
	}
	if opt.Verbose {
		logger.Printf("writing %s to %q using %d worker(s)", cfg.Format, cfg.OutPath, cfg.Workers)
	}

	c := quiltanim.New()
	c.Encoder = quiltanim.FileEncoder{JPEGQuality: opt.JPEGQuality}
	c.Notifier = notifier
	c.Verbose = opt.Verbose
	bar := newProgressBar(stdout, opt.Quiet)
	c.Progress = bar
	err = c.Run(ctx, cfg)
	bar.Done()
	if err != nil {
		return err
	}

	if !opt.Quiet {
		if fi, err := os.Stat(cfg.OutPath); err == nil {
			fmt.Fprintf(stdout, "wrote %q (%s)\n", cfg.OutPath, humanize.Bytes(uint64(fi.Size())))
		}
		fmt.Fprintf(stdout, "elapsed: %v\n", time.Since(t0))
	}
	return nil
}

func parseFlags(args []string, output io.Writer) (f flags, err error) {
	fs := flag.NewFlagSet("quiltanim", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `quiltanim combines a numbered sequence of quilt images into one animated quilt.

Usage:
  quiltanim [options] [FOLDER]

The output is written to FOLDER/animated_quilt.<format> unless -out is given.

Options:
`)
		fs.PrintDefaults()
	}
	opt := &f.opt

	fs.StringVar(&f.configFile, "config", "", "read options from yaml `file`, flags take precedence")
	fs.BoolVar(&f.listPresets, "list-presets", false, "list the grid presets and exit")

	fs.BoolVar(&opt.Quiet, "q", false, "quiet")
	fs.BoolVar(&opt.Quiet, "quiet", false, "quiet, only display errors")
	fs.BoolVar(&opt.Verbose, "v", false, "verbose")
	fs.BoolVar(&opt.Verbose, "verbose", false, "verbose output")
	fs.StringVar(&opt.Folder, "d", "", "dir")
	fs.StringVar(&opt.Folder, "dir", "", "folder containing the quilt images")
	fs.StringVar(&opt.BaseName, "n", "", "name")
	fs.StringVar(&opt.BaseName, "name", "", "file name of the frames without number, eg quilt_ for quilt_01.png")
	fs.StringVar(&opt.IncrementFormat, "i", "", "increment")
	fs.StringVar(&opt.IncrementFormat, "increment", "", "increment format, its length is the zero padded width of the frame number (default \"00\")")
	fs.StringVar(&opt.Format, "f", "", "format")
	fs.StringVar(&opt.Format, "format", "", "file format of frames and output: png, jpg or jpeg (default \"png\")")
	fs.StringVar(&opt.Preset, "p", "", "preset")
	fs.StringVar(&opt.Preset, "preset", "", "grid preset, see -list-presets (default \""+quiltanim.DefaultPreset+"\")")
	fs.IntVar(&opt.Rows, "r", 0, "rows")
	fs.IntVar(&opt.Rows, "rows", 0, "number of rows, overrides the preset")
	fs.IntVar(&opt.Columns, "c", 0, "columns")
	fs.IntVar(&opt.Columns, "columns", 0, "number of columns, overrides the preset")
	fs.StringVar(&opt.OutFile, "o", "", "out")
	fs.StringVar(&opt.OutFile, "out", "", "specify output file, by default animated_quilt.<format> in the folder")
	fs.IntVar(&opt.Workers, "w", 0, "workers")
	fs.IntVar(&opt.Workers, "workers", 0, "number of frames decoded concurrently (default 1)")
	fs.IntVar(&opt.JPEGQuality, "jpeg-quality", 0, fmt.Sprintf("jpeg output quality 1-100 (default %d)", quiltanim.DefaultJPEGQuality))

	if err = fs.Parse(args); err != nil {
		return f, err
	}
	if opt.Folder == "" && fs.NArg() > 0 {
		opt.Folder = fs.Arg(0)
	}
	if fs.NArg() > 1 {
		return f, fmt.Errorf("expected at most one folder, got %d arguments", fs.NArg())
	}
	return f, nil
}
