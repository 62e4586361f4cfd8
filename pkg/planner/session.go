// Package planner runs an interactive fixture planning session: it turns pointer
// and keyboard gestures into placements, selections, drags and deletions, and
// rebuilds the room atomically.
package planner

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/philipparndt/roomplan/pkg/catalog"
	"github.com/philipparndt/roomplan/pkg/fixture"
	"github.com/philipparndt/roomplan/pkg/picking"
	"github.com/philipparndt/roomplan/pkg/placement"
	"github.com/philipparndt/roomplan/pkg/room"
	"github.com/rs/zerolog"
)

// Action is what a pointer-down did
type Action int

const (
	ActionNone Action = iota
	ActionSelected
	ActionPlaced
)

func (a Action) String() string {
	switch a {
	case ActionSelected:
		return "selected"
	case ActionPlaced:
		return "placed"
	}
	return "none"
}

// drag is an active drag session. kind is fixed when the drag starts.
type drag struct {
	fixture *fixture.Fixture
	ftype   catalog.FixtureType
	kind    room.Kind
}

// Session owns the room, its surfaces and the placed fixtures. Every method is
// safe for concurrent use; mutations are serialized so a rebuild is observed
// as one step.
type Session struct {
	mu       sync.Mutex
	log      zerolog.Logger
	catalog  *catalog.Catalog
	surfaces *room.Registry
	fixtures *fixture.Registry
	engine   *placement.Engine
	tool     catalog.FixtureType
	selected *fixture.Fixture
	dragging *drag
	status   Status

	listenerMu sync.Mutex
	listeners  []func(Status)
}

// Option configures a Session
type Option func(*options)

type options struct {
	log    zerolog.Logger
	newID  func() uuid.UUID
	toolID string
}

// WithLogger logs every transition to log
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithIDSource overrides the fixture id generator
func WithIDSource(newID func() uuid.UUID) Option {
	return func(o *options) { o.newID = newID }
}

// WithTool selects the initial tool instead of the first catalog entry
func WithTool(id string) Option {
	return func(o *options) { o.toolID = id }
}

// New starts a session with an empty room of dimensions r
func New(cat *catalog.Catalog, r room.Room, opts ...Option) (*Session, error) {
	o := options{log: zerolog.Nop(), newID: uuid.New}
	for _, opt := range opts {
		opt(&o)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("initial room: %w", err)
	}

	tool := cat.First()
	if o.toolID != "" {
		t, err := cat.Get(o.toolID)
		if err != nil {
			return nil, fmt.Errorf("initial tool: %w", err)
		}
		tool = t
	}

	s := &Session{
		log:      o.log,
		catalog:  cat,
		surfaces: room.NewRegistry(r),
		fixtures: fixture.NewRegistry(),
		engine:   placement.NewEngine(r, placement.WithIDSource(o.newID)),
		tool:     tool,
	}
	s.status = toolSelected(tool.Name, tool.ID)
	return s, nil
}

// OnStatus registers fn to receive every status transition. Listeners run
// outside the session lock and may call back into the session.
func (s *Session) OnStatus(fn func(Status)) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// SelectTool makes id the fixture type placed by the next click
func (s *Session) SelectTool(id string) error {
	t, err := s.catalog.Get(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.tool = t
	st := s.setStatus(toolSelected(t.Name, t.ID))
	s.mu.Unlock()

	s.notify(st)
	return nil
}

// PointerDown resolves a press at normalized device coordinates. A fixture
// under the pointer gets selected and starts dragging; otherwise a fixture of
// the current tool is placed on the surface hit.
func (s *Session) PointerDown(x, y float64, caster picking.RayCaster) Action {
	s.mu.Lock()
	candidates := s.surfaces.Pickable(s.fixtures.Pickables()...)
	hit, ok := picking.Resolve(x, y, caster, candidates)
	if !ok {
		s.mu.Unlock()
		return ActionNone
	}

	if f, isFixture := hit.Target.(*fixture.Fixture); isFixture {
		ft := s.catalog.MustGet(f.TypeID)
		s.selected = f
		s.dragging = &drag{fixture: f, ftype: ft, kind: placement.PreferredKind(ft)}
		st := s.setStatus(selected(ft.Name, ft.ID))
		s.mu.Unlock()

		s.notify(st)
		return ActionSelected
	}

	f := s.engine.Place(hit, s.tool)
	s.fixtures.Add(f)
	s.selected = f
	st := s.setStatus(placed(s.tool.Name, s.tool.ID))
	s.log.Debug().
		Str("fixture", f.ID.String()).
		Floats64("position", []float64{f.Position.X, f.Position.Y, f.Position.Z}).
		Msg("placed")
	s.mu.Unlock()

	s.notify(st)
	return ActionPlaced
}

// PointerMove repositions the dragged fixture. It reports false without
// changing anything when no drag is active or the ray misses every surface
// of the drag's kind.
func (s *Session) PointerMove(x, y float64, caster picking.RayCaster) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.dragging
	if d == nil {
		return false
	}
	hit, ok := picking.Resolve(x, y, caster, s.surfaces.PickableOfKind(d.kind))
	if !ok {
		return false
	}
	return s.engine.Reposition(d.fixture, d.ftype, hit)
}

// PointerUp ends the drag, if any. The selection stays.
func (s *Session) PointerUp() {
	s.mu.Lock()
	s.dragging = nil
	s.mu.Unlock()
}

// DeleteSelected removes the selected fixture. Without a selection it does
// nothing and returns false.
func (s *Session) DeleteSelected() bool {
	s.mu.Lock()
	sel := s.selected
	if !s.fixtures.RemoveSelected(sel) {
		s.mu.Unlock()
		return false
	}
	if s.dragging != nil && s.dragging.fixture == sel {
		s.dragging = nil
	}
	s.selected = nil
	ft := s.catalog.MustGet(sel.TypeID)
	st := s.setStatus(removed(ft.Name, ft.ID))
	s.mu.Unlock()

	s.notify(st)
	return true
}

// Rebuild replaces the room. Invalid dimensions keep their previous value and
// are returned as an error wrapping room.ErrInvalidDimension; the rebuild
// happens regardless. All fixtures, the selection and any drag are discarded.
func (s *Session) Rebuild(width, depth, wallHeight float64) (room.Room, error) {
	s.mu.Lock()
	next, err := s.surfaces.Room().Rebuild(width, depth, wallHeight)
	if err != nil {
		s.log.Warn().Err(err).Str("room", next.String()).Msg("invalid room dimension ignored")
	}

	s.surfaces.Rebuild(next)
	s.engine.SetRoom(next)
	cleared := s.fixtures.Clear()
	s.selected = nil
	s.dragging = nil

	st := s.setStatus(Status{
		Kind:    StatusRebuilt,
		TypeID:  s.tool.ID,
		Message: fmt.Sprintf("Selected tool: %s", s.tool.Name),
	})
	s.log.Info().Str("room", next.String()).Int("cleared", cleared).Msg("room rebuilt")
	s.mu.Unlock()

	s.notify(st)
	return next, err
}

// setStatus records st; the caller holds mu and calls notify after unlocking
func (s *Session) setStatus(st Status) Status {
	s.status = st
	s.log.Info().Str("event", st.Kind.String()).Str("type", st.TypeID).Msg(st.Message)
	return st
}

func (s *Session) notify(st Status) {
	s.listenerMu.Lock()
	listeners := make([]func(Status), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenerMu.Unlock()

	for _, fn := range listeners {
		fn(st)
	}
}
