package quiltanim

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFrame         = errors.New("missing frame")
	ErrDecode               = errors.New("decode failed")
	ErrEncode               = errors.New("encode failed")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrFrameSize is wrapped by a *DecodeError when a frame differs in size from the first frame.
	ErrFrameSize = errors.New("frame size differs from first frame")
	ErrBusy      = errors.New("compositor is already running")
)

// A MissingFrameError reports a frame file that does not exist.
type MissingFrameError struct {
	Index int
	Path  string
}

func (e *MissingFrameError) Error() string {
	return fmt.Sprintf("image file for frame %d not found: %q, check your file name and format", e.Index+1, e.Path)
}

func (e *MissingFrameError) Is(target error) bool {
	return target == ErrMissingFrame
}

// A DecodeError reports a frame that could not be decoded or used.
type DecodeError struct {
	Index int
	Path  string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode frame %d %q failed: %v", e.Index+1, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %q failed: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func (e *EncodeError) Is(target error) bool {
	return target == ErrEncode
}

// A ConfigError reports an invalid or missing run parameter.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
