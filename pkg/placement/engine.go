// Package placement turns picking hits into constrained fixture positions.
//
// Wall-mounted types stick to a wall with their height clamped between floor
// and ceiling and a small offset into the room. Every other placement lands at
// the type's default height above the floor, inset from the walls. A click
// never gets rejected; a wall type clicked on the floor lands on the floor.
package placement

import (
	"github.com/google/uuid"
	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/fixture"
	"github.com/philipparndt/roomplan/pkg/geometry"
	"github.com/philipparndt/roomplan/pkg/picking"
	"github.com/philipparndt/roomplan/pkg/room"
)

const (
	// HeightMargin keeps wall fixtures off the floor and ceiling
	HeightMargin = 0.1
	// WallOffset is how far a wall fixture sits in front of the wall face
	WallOffset = 0.06
	// FloorMargin insets floor fixtures from every wall
	FloorMargin = 0.1
)

var floorNormal = geometry.NewVector3(0, 1, 0)

// Engine applies placement constraints against one room
type Engine struct {
	room  room.Room
	newID func() uuid.UUID
}

// Option configures an Engine
type Option func(*Engine)

// WithIDSource replaces uuid.New as the fixture id generator
func WithIDSource(newID func() uuid.UUID) Option {
	return func(e *Engine) {
		e.newID = newID
	}
}

// NewEngine creates an engine for r
func NewEngine(r room.Room, opts ...Option) *Engine {
	e := &Engine{room: r, newID: uuid.New}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetRoom switches the constraints to a rebuilt room
func (e *Engine) SetRoom(r room.Room) {
	e.room = r
}

// PreferredKind returns the surface kind a fixture type anchors to
func PreferredKind(t catalog.FixtureType) room.Kind {
	if t.WallMounted {
		return room.Wall
	}
	return room.Floor
}

// Place creates a fixture of type t for hit
func (e *Engine) Place(hit picking.Hit, t catalog.FixtureType) *fixture.Fixture {
	f := &fixture.Fixture{
		ID:          e.newID(),
		TypeID:      t.ID,
		HalfExtents: t.Silhouette.HalfExtents(),
	}
	if wall, ok := wallOf(hit); ok && t.WallMounted {
		f.Position, f.Orientation = e.OnWall(hit.Point, wall, t.DefaultHeight)
	} else {
		f.Position, f.Orientation = e.OnFloor(hit.Point, t.DefaultHeight)
	}
	return f
}

// Reposition moves f to hit using the same constraints as Place. Wall fixtures
// follow the hit height, floor fixtures keep theirs. A hit on a surface of the
// wrong kind leaves f untouched and returns false.
func (e *Engine) Reposition(f *fixture.Fixture, t catalog.FixtureType, hit picking.Hit) bool {
	surface, ok := hit.Target.(room.Surface)
	if !ok || surface.Kind != PreferredKind(t) {
		return false
	}
	if surface.Kind == room.Wall {
		f.Position, f.Orientation = e.OnWall(hit.Point, surface, hit.Point.Y)
	} else {
		f.Position, f.Orientation = e.OnFloor(hit.Point, f.Position.Y)
	}
	return true
}

// OnWall pins point to wall at height y, clamped between floor and ceiling,
// and pushes it WallOffset into the room
func (e *Engine) OnWall(point geometry.Vector3, wall room.Surface, y float64) (position, orientation geometry.Vector3) {
	position = point
	position.Y = geometry.Clamp(y, HeightMargin, e.room.WallHeight-HeightMargin)
	inward := wall.InwardNormal()
	return position.AddScaled(inward, WallOffset), inward
}

// OnFloor puts point at height y and clamps it inside the walls
func (e *Engine) OnFloor(point geometry.Vector3, y float64) (position, orientation geometry.Vector3) {
	return e.ClampToRoom(geometry.NewVector3(point.X, y, point.Z)), floorNormal
}

// ClampToRoom clamps X and Z to the floor inset by FloorMargin
func (e *Engine) ClampToRoom(p geometry.Vector3) geometry.Vector3 {
	b := e.room.Bounds()
	p.X = geometry.Clamp(p.X, b.Min.X+FloorMargin, b.Max.X-FloorMargin)
	p.Z = geometry.Clamp(p.Z, b.Min.Z+FloorMargin, b.Max.Z-FloorMargin)
	return p
}

func wallOf(hit picking.Hit) (room.Surface, bool) {
	surface, ok := hit.Target.(room.Surface)
	if !ok || surface.Kind != room.Wall {
		return room.Surface{}, false
	}
	return surface, true
}
