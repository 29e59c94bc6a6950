package quiltanim

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// A Format is an output image format.
type Format int

const (
	PNG Format = iota
	JPEG
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	}
	return "unknown format"
}

func (f Format) imaging() imaging.Format {
	if f == JPEG {
		return imaging.JPEG
	}
	return imaging.PNG
}

// ParseFormat returns the Format for a file extension: png, jpg or jpeg, with or without leading dot.
func ParseFormat(ext string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	}
	return PNG, &ConfigError{Field: "file format", Reason: fmt.Sprintf("%q is not one of png, jpg or jpeg", ext)}
}

// A Decoder reads the frame stored at path.
// A missing file must be reported with an error matching fs.ErrNotExist.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// An Encoder writes img to w in format f.
type Encoder interface {
	Encode(w io.Writer, img image.Image, f Format) error
}

// DecoderFunc adapts a function to a Decoder.
type DecoderFunc func(path string) (image.Image, error)

func (fn DecoderFunc) Decode(path string) (image.Image, error) {
	return fn(path)
}

// FileDecoder decodes png, jpeg, gif, bmp, tiff and webp files.
type FileDecoder struct{}

func (FileDecoder) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imaging.Decode failed: %w", err)
	}
	return img, nil
}

// DefaultJPEGQuality is the quality FileEncoder uses when JPEGQuality is 0.
const DefaultJPEGQuality = 95

// FileEncoder encodes png and jpeg images.
type FileEncoder struct {
	JPEGQuality int
}

func (e FileEncoder) Encode(w io.Writer, img image.Image, f Format) error {
	q := e.JPEGQuality
	if q <= 0 || q > 100 {
		q = DefaultJPEGQuality
	}
	if err := imaging.Encode(w, img, f.imaging(), imaging.JPEGQuality(q)); err != nil {
		return fmt.Errorf("imaging.Encode %s failed: %w", f, err)
	}
	return nil
}
