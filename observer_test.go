package quiltanim

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogNotifier(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	n := LogNotifier{Logger: log.New(buf, "", 0)}
	n.Notify(LevelInfo, "done")
	n.Notify(LevelError, "frame 3 missing")
	assert.Equal(t, "info: done\nerror: frame 3 missing\n", buf.String())

	buf.Reset()
	n.Quiet = true
	n.Notify(LevelInfo, "done")
	n.Notify(LevelError, "broken")
	assert.Equal(t, "error: broken\n", buf.String())
}

func TestFuncAdapters(t *testing.T) {
	t.Parallel()
	var got []float64
	var p ProgressSink = ProgressFunc(func(f float64) { got = append(got, f) })
	p.Progress(0.5)
	p.Progress(1)
	assert.Equal(t, []float64{0.5, 1}, got)

	var level Level
	var n Notifier = NotifyFunc(func(l Level, msg string) { level = l })
	n.Notify(LevelError, "x")
	assert.Equal(t, LevelError, level)
	assert.Equal(t, "error", level.String())
	assert.Equal(t, "completed", Completed.String())
}
