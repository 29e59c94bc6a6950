package quiltanim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresets(t *testing.T) {
	t.Parallel()
	pp := Presets()
	assert.Len(t, pp, 2)
	p, ok := LookupPreset(DefaultPreset)
	assert.True(t, ok)
	assert.Equal(t, Grid{Rows: 6, Columns: 8}, p.Grid)
	p, ok = LookupPreset(" looking glass portrait DBL ")
	assert.True(t, ok)
	assert.Equal(t, Grid{Rows: 12, Columns: 16}, p.Grid)
	_, ok = LookupPreset("Looking Glass Go")
	assert.False(t, ok)

	pp[0].Name = "changed"
	_, ok = LookupPreset(DefaultPreset)
	assert.True(t, ok, "Presets returns a copy")
}

func TestParsePresets(t *testing.T) {
	t.Parallel()
	_, err := parsePresets([]byte("- name: broken\n  rows: 0\n  columns: 4\n"))
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
	_, err = parsePresets([]byte("- rows: 1\n  columns: 4\n"))
	assert.Error(t, err)
	pp, err := parsePresets([]byte("- name: tiny\n  rows: 1\n  columns: 2\n"))
	assert.NoError(t, err)
	assert.Equal(t, []Preset{{Name: "tiny", Grid: Grid{Rows: 1, Columns: 2}}}, pp)
}
