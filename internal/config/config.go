// Package config loads the roomplan TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/planner"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/philipparndt/roomplan/pkg/viewer"
)

// Config is the whole configuration file. Every field is optional.
type Config struct {
	Room    RoomConfig    `toml:"room"`
	Planner PlannerConfig `toml:"planner"`
	Camera  CameraConfig  `toml:"camera"`
	Log     LogConfig     `toml:"log"`
}

type RoomConfig struct {
	Width      float64 `toml:"width"`
	Depth      float64 `toml:"depth"`
	WallHeight float64 `toml:"wall_height"`
}

type PlannerConfig struct {
	Tool string `toml:"tool"`
}

type CameraConfig struct {
	FOV float64 `toml:"fov"` // vertical, degrees
}

type LogConfig struct {
	Verbose bool `toml:"verbose"`
}

const defaultFOVDegrees = 55.0

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Room: RoomConfig{
			Width:      room.Default.Width,
			Depth:      room.Default.Depth,
			WallHeight: room.Default.WallHeight,
		},
		Planner: PlannerConfig{Tool: catalog.DefaultTypes[0].ID},
		Camera:  CameraConfig{FOV: defaultFOVDegrees},
	}
}

// Load reads path over the defaults. An empty or missing path yields Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

// RoomFrom applies the configured dimensions on top of prev. Invalid values
// keep the previous dimension and are reported as room.ErrInvalidDimension.
func (c Config) RoomFrom(prev room.Room) (room.Room, error) {
	return prev.Rebuild(c.Room.Width, c.Room.Depth, c.Room.WallHeight)
}

// ApplyTo selects the configured tool and rebuilds the session's room. An
// unknown tool or an invalid dimension does not stop the rebuild; every
// problem is returned joined.
func (c Config) ApplyTo(s *planner.Session) (room.Room, error) {
	var toolErr error
	if c.Planner.Tool != "" && c.Planner.Tool != s.Tool().ID {
		toolErr = s.SelectTool(c.Planner.Tool)
	}
	r, err := s.Rebuild(c.Room.Width, c.Room.Depth, c.Room.WallHeight)
	return r, errors.Join(toolErr, err)
}

// FOV returns the configured field of view in radians, falling back to the
// camera default when the value is out of range
func (c Config) FOV() float64 {
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return viewer.DefaultFOV
	}
	return c.Camera.FOV * math.Pi / 180
}
