package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/planner"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/philipparndt/roomplan/pkg/viewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roomplan.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := writeConfig(t, `
[room]
width = 6.5

[planner]
tool = "ceilingLight"

[log]
verbose = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6.5, cfg.Room.Width)
	assert.Equal(t, room.Default.Depth, cfg.Room.Depth)
	assert.Equal(t, room.Default.WallHeight, cfg.Room.WallHeight)
	assert.Equal(t, "ceilingLight", cfg.Planner.Tool)
	assert.True(t, cfg.Log.Verbose)
	assert.Equal(t, 55.0, cfg.Camera.FOV)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[room\nwidth = 1"},
		{"wrong type", "[room]\nwidth = \"wide\""},
		{"unknown key", "[room]\nlength = 4.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestRoomFromKeepsPreviousOnInvalidValues(t *testing.T) {
	cfg := Default()
	cfg.Room.Width = 12
	cfg.Room.Depth = -1

	r, err := cfg.RoomFrom(room.Default)
	assert.ErrorIs(t, err, room.ErrInvalidDimension)
	assert.Equal(t, room.Room{Width: 12, Depth: room.Default.Depth, WallHeight: room.Default.WallHeight}, r)
}

func TestFOV(t *testing.T) {
	cfg := Default()
	assert.InDelta(t, viewer.DefaultFOV, cfg.FOV(), 1e-12)

	cfg.Camera.FOV = 90
	assert.InDelta(t, math.Pi/2, cfg.FOV(), 1e-12)

	cfg.Camera.FOV = 0
	assert.Equal(t, viewer.DefaultFOV, cfg.FOV())
}

func TestApplyToSelectsToolAndRebuilds(t *testing.T) {
	s, err := planner.New(catalog.Default(), room.Default)
	require.NoError(t, err)

	cfg := Default()
	cfg.Planner.Tool = "wallSconce"
	cfg.Room.Width = 6

	r, err := cfg.ApplyTo(s)
	require.NoError(t, err)
	assert.Equal(t, 6.0, r.Width)
	assert.Equal(t, r, s.Room())
	assert.Equal(t, "wallSconce", s.Tool().ID)
}

func TestApplyToReportsEveryProblem(t *testing.T) {
	s, err := planner.New(catalog.Default(), room.Default)
	require.NoError(t, err)
	before := s.Tool().ID

	cfg := Default()
	cfg.Planner.Tool = "toaster"
	cfg.Room.Width = 7
	cfg.Room.Depth = -1

	r, err := cfg.ApplyTo(s)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownTypeID)
	assert.ErrorIs(t, err, room.ErrInvalidDimension)
	assert.Equal(t, 7.0, r.Width, "rebuild still happens")
	assert.Equal(t, room.Default.Depth, r.Depth)
	assert.Equal(t, before, s.Tool().ID)
}
