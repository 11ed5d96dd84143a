package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/drift/input"
	"github.com/lixenwraith/drift/parameter"
)

func TestDefault_Valid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.DesiredTPS, cfg.TickRate)
	assert.Equal(t, parameter.StepDistance, cfg.StepDistance)
	assert.Equal(t, parameter.KeyHoldWindow, cfg.HoldWindow.Std())
}

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecode_OverridesDefaults(t *testing.T) {
	src := `
tick_rate: 60
step_distance: 4
hold_window: 300ms
repeat_window: 80ms
cell: {width: 8, height: 16}
log: {level: debug, file: ""}
`
	cfg, err := Decode(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, float32(4), cfg.StepDistance)
	assert.Equal(t, 300*time.Millisecond, cfg.HoldWindow.Std())
	assert.Equal(t, 80*time.Millisecond, cfg.RepeatWindow.Std())
	assert.Equal(t, Cell{Width: 8, Height: 16}, cfg.Cell)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)

	// Untouched fields keep defaults
	assert.Equal(t, Default().FrameInterval, cfg.FrameInterval)
}

func TestDecode_EmptyDocument(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"zero tick rate", "tick_rate: 0"},
		{"negative step", "step_distance: -1"},
		{"repeat above hold", "hold_window: 100ms\nrepeat_window: 200ms"},
		{"zero cell", "cell: {width: 0, height: 20}"},
		{"bad level", "log: {level: loud}"},
		{"unknown action", "keys: {jump: [space]}"},
		{"unknown key", "keys: {player_left: [nosuchkey]}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.src))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestDecode_SyntaxErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("hold_window: soon"))
	require.Error(t, err)

	_, err = Decode(strings.NewReader("no_such_field: 1"))
	require.Error(t, err)
}

func TestKeyTable_ReplacesConfiguredActions(t *testing.T) {
	cfg, err := Decode(strings.NewReader("keys: {player_left: [h], player_right: [l], quit: []}"))
	require.NoError(t, err)

	kt, err := cfg.KeyTable()
	require.NoError(t, err)

	a, ok := kt.Lookup(input.RuneKey('h'))
	require.True(t, ok)
	assert.Equal(t, input.ActionPlayerLeft, a)

	// Defaults for replaced actions are gone
	_, ok = kt.Lookup(input.KeyLeft)
	assert.False(t, ok)
	_, ok = kt.Lookup(input.KeyEscape)
	assert.False(t, ok)

	// Untouched actions keep defaults
	a, ok = kt.Lookup(input.RuneKey('w'))
	require.True(t, ok)
	assert.Equal(t, input.ActionCameraUp, a)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_rate: 30\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TickRate)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
