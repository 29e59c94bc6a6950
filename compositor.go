package quiltanim

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"golang.org/x/image/draw"
)

// A Compositor assembles an animated quilt from a numbered sequence of quilts.
// Tile (row, col) of the output is taken from frame row*columns+col.
//
// A Compositor runs one sequence at a time; the zero value is not usable, use New.
type Compositor struct {
	Decoder  Decoder
	Encoder  Encoder
	Progress ProgressSink
	Notifier Notifier
	Verbose  bool

	state atomic.Int32
}

// New returns a Compositor reading and writing files, notifying via the standard logger.
func New() *Compositor {
	return &Compositor{
		Decoder:  FileDecoder{},
		Encoder:  FileEncoder{},
		Progress: nopProgress{},
		Notifier: LogNotifier{},
	}
}

// State returns the state of the current or last run.
func (c *Compositor) State() State {
	return State(c.state.Load())
}

// Run composites all frames of cfg and saves the result to cfg.OutPath.
// The outcome is reported to the Notifier and returned. On failure nothing is
// written to cfg.OutPath.
func (c *Compositor) Run(ctx context.Context, cfg RunConfig) (err error) {
	if !c.start() {
		c.Notifier.Notify(LevelError, ErrBusy.Error())
		return ErrBusy
	}
	defer func() {
		if err != nil {
			c.state.Store(int32(Failed))
			c.Notifier.Notify(LevelError, err.Error())
			return
		}
		c.state.Store(int32(Completed))
		c.Notifier.Notify(LevelInfo, fmt.Sprintf("quilt animation generated, saved to %q", cfg.OutPath))
	}()

	canvas, err := c.Compose(ctx, cfg)
	if err != nil {
		return err
	}
	return c.save(canvas, cfg)
}

func (c *Compositor) start() bool {
	for {
		s := c.state.Load()
		if State(s) == Running {
			return false
		}
		if c.state.CompareAndSwap(s, int32(Running)) {
			return true
		}
	}
}

// tile is the cropped part of one frame, ready to be pasted.
type tile struct {
	img  *image.NRGBA
	dst  image.Rectangle
	size image.Point
	err  error
}

// Compose reads every frame of cfg in ascending order and returns the assembled canvas.
// It stops at the first frame that fails, or when ctx is done.
func (c *Compositor) Compose(ctx context.Context, cfg RunConfig) (*image.NRGBA, error) {
	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Grid.Frames()
	next := func(i int) tile { return c.loadTile(cfg, i) }
	if cfg.Workers > 1 && n > 1 {
		var stop func()
		next, stop = c.parallelTiles(ctx, cfg)
		defer stop()
	}

	var canvas *image.NRGBA
	var size image.Point
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t := next(i)
		if t.err != nil {
			return nil, t.err
		}
		switch {
		case canvas == nil:
			size = t.size
			canvas = image.NewNRGBA(image.Rectangle{Max: size})
			opaque(canvas)
		case t.size != size:
			return nil, &DecodeError{
				Index: i,
				Path:  cfg.Naming.Path(i),
				Err:   fmt.Errorf("%w: %dx%d, want %dx%d", ErrFrameSize, t.size.X, t.size.Y, size.X, size.Y),
			}
		}
		draw.Copy(canvas, t.dst.Min, t.img, t.img.Bounds(), draw.Src, nil)
		if c.Verbose {
			log.Printf("frame %d: pasted %v to %v", i+1, t.img.Bounds().Size(), t.dst)
		}
		c.Progress.Progress(float64(i+1) / float64(n))
	}
	return canvas, nil
}

// loadTile decodes frame i and crops its tile. The decoded frame is released on return.
func (c *Compositor) loadTile(cfg RunConfig, i int) tile {
	path := cfg.Naming.Path(i)
	img, err := c.Decoder.Decode(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return tile{err: &MissingFrameError{Index: i, Path: path}}
		}
		return tile{err: &DecodeError{Index: i, Path: path, Err: err}}
	}
	b := img.Bounds()
	src, dst := Resolve(i, cfg.Grid, b.Dx(), b.Dy())
	t := tile{
		img:  image.NewNRGBA(image.Rectangle{Max: src.Size()}),
		dst:  dst,
		size: b.Size(),
	}
	draw.Copy(t.img, image.Point{}, img, src.Add(b.Min), draw.Src, nil)
	opaque(t.img)
	return t
}

// parallelTiles loads tiles with cfg.Workers goroutines. next(i) blocks until tile i
// is loaded and must be called in ascending order. At most 2*cfg.Workers loaded tiles
// wait to be consumed. stop cancels outstanding work and waits for the workers.
func (c *Compositor) parallelTiles(ctx context.Context, cfg RunConfig) (next func(i int) tile, stop func()) {
	n := cfg.Grid.Frames()
	ctx, cancel := context.WithCancel(ctx)
	tiles := make([]tile, n)
	ready := make([]chan struct{}, n)
	for i := range ready {
		ready[i] = make(chan struct{})
	}
	window := make(chan struct{}, 2*cfg.Workers)
	jobs := make(chan int)

	wg := &sync.WaitGroup{}
	wg.Add(cfg.Workers)
	for w := 0; w < cfg.Workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				tiles[i] = c.loadTile(cfg, i)
				close(ready[i])
			}
		}()
	}
	go func() {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case window <- struct{}{}:
			case <-ctx.Done():
				return
			}
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	next = func(i int) tile {
		select {
		case <-ready[i]:
			<-window
			return tiles[i]
		case <-ctx.Done():
			return tile{err: ctx.Err()}
		}
	}
	stop = func() {
		cancel()
		wg.Wait()
	}
	return next, stop
}

// save encodes img next to cfg.OutPath and renames it into place once complete.
func (c *Compositor) save(img image.Image, cfg RunConfig) (err error) {
	f, err := os.CreateTemp(filepath.Dir(cfg.OutPath), "."+filepath.Base(cfg.OutPath)+".*")
	if err != nil {
		return &EncodeError{Path: cfg.OutPath, Err: err}
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	w := bufio.NewWriter(f)
	if err = c.Encoder.Encode(w, img, cfg.Format); err != nil {
		return &EncodeError{Path: cfg.OutPath, Err: err}
	}
	if err = w.Flush(); err != nil {
		return &EncodeError{Path: cfg.OutPath, Err: err}
	}
	if err = f.Chmod(0o644); err != nil {
		return &EncodeError{Path: cfg.OutPath, Err: err}
	}
	if err = f.Close(); err != nil {
		return &EncodeError{Path: cfg.OutPath, Err: err}
	}
	if err = os.Rename(tmp, cfg.OutPath); err != nil {
		return &EncodeError{Path: cfg.OutPath, Err: err}
	}
	return nil
}

// opaque sets the alpha of every pixel of img to 0xff.
func opaque(img *image.NRGBA) {
	for y := 0; y < img.Rect.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+img.Rect.Dx()*4]
		for x := 3; x < len(row); x += 4 {
			row[x] = 0xff
		}
	}
}
