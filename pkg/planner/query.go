package planner

import (
	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/fixture"
	"github.com/philipparndt/roomplan/pkg/room"
)

// Room returns the active room
func (s *Session) Room() room.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surfaces.Room()
}

// Surfaces returns the surfaces of the active room, floor first
func (s *Session) Surfaces() []room.Surface {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surfaces.Surfaces()
}

// Fixtures returns value copies of the placed fixtures
func (s *Session) Fixtures() []fixture.Fixture {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fixtures.Snapshot()
}

// FixtureCount returns the number of placed fixtures
func (s *Session) FixtureCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fixtures.Len()
}

// Selected returns a copy of the selected fixture
func (s *Session) Selected() (fixture.Fixture, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return fixture.Fixture{}, false
	}
	return *s.selected, true
}

// Dragging reports whether a drag is in progress
func (s *Session) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging != nil
}

// Tool returns the fixture type the next placement uses
func (s *Session) Tool() catalog.FixtureType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tool
}

// Catalog returns the session's catalog
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Status returns the latest status
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}
