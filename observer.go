package quiltanim

import (
	"log"
)

// A ProgressSink receives the fraction of frames composited so far, once per frame.
type ProgressSink interface {
	Progress(fraction float64)
}

type ProgressFunc func(fraction float64)

func (fn ProgressFunc) Progress(fraction float64) {
	fn(fraction)
}

type Level int

const (
	LevelInfo Level = iota
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelError:
		return "error"
	}
	return "unknown level"
}

// A Notifier receives the final outcome of a run.
type Notifier interface {
	Notify(level Level, msg string)
}

type NotifyFunc func(level Level, msg string)

func (fn NotifyFunc) Notify(level Level, msg string) {
	fn(level, msg)
}

// LogNotifier prints notifications to Logger, or the standard logger if Logger is nil.
// Info messages are dropped when Quiet is set.
type LogNotifier struct {
	Logger *log.Logger
	Quiet  bool
}

func (n LogNotifier) Notify(level Level, msg string) {
	if level == LevelInfo && n.Quiet {
		return
	}
	l := n.Logger
	if l == nil {
		l = log.Default()
	}
	l.Printf("%s: %s", level, msg)
}

type nopProgress struct{}

func (nopProgress) Progress(float64) {}
