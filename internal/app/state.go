package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/roomplan/internal/config"
	"github.com/philipparndt/roomplan/pkg/viewer"
	"github.com/philipparndt/roomplan/pkg/watcher"
)

// CameraState holds the orbit camera and its reset pose
type CameraState struct {
	view          *viewer.Camera
	camera        rl.Camera3D
	defaultPos    rl.Vector3
	defaultTarget rl.Vector3
}

// InteractionState holds mouse interaction state
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
	isOrbiting   bool
	hoveredCard  int // -1 when the pointer is not over a catalog card
}

// FileWatchState holds config file watching and reload state
type FileWatchState struct {
	configPath  string
	fileWatcher *watcher.FileWatcher
	needsReload atomic.Bool // set by the watcher goroutine, consumed by the frame loop
	needsRefit  atomic.Bool // set by status listeners after a rebuild
}

// UIState holds UI-related state
type UIState struct {
	font      rl.Font
	cards     []rl.Rectangle // catalog card bounds, same order as the catalog
	panel     rl.Rectangle   // left panel; clicks inside never reach the room
	showHelp  bool
	lastError string
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWalls  bool
	showLabels bool
	config     config.Config
}
