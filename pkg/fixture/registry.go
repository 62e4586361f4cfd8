package fixture

import "github.com/philipparndt/roomplan/pkg/picking"

// Registry is the live, ordered collection of placed fixtures
type Registry struct {
	fixtures []*Fixture
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{fixtures: make([]*Fixture, 0)}
}

// Add appends a fixture
func (r *Registry) Add(f *Fixture) {
	r.fixtures = append(r.fixtures, f)
}

// RemoveSelected removes the selected fixture and reports whether it was present.
// A nil selection is a no-op.
func (r *Registry) RemoveSelected(selected *Fixture) bool {
	if selected == nil {
		return false
	}
	for i, f := range r.fixtures {
		if f == selected {
			r.fixtures = append(r.fixtures[:i], r.fixtures[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every fixture and returns how many were removed
func (r *Registry) Clear() int {
	n := len(r.fixtures)
	r.fixtures = make([]*Fixture, 0)
	return n
}

// Len returns the number of placed fixtures
func (r *Registry) Len() int {
	return len(r.fixtures)
}

// All returns the fixtures in placement order. The slice is a copy; the
// fixtures are not.
func (r *Registry) All() []*Fixture {
	out := make([]*Fixture, len(r.fixtures))
	copy(out, r.fixtures)
	return out
}

// Snapshot returns value copies of every fixture, safe to hand to a renderer
func (r *Registry) Snapshot() []Fixture {
	out := make([]Fixture, len(r.fixtures))
	for i, f := range r.fixtures {
		out[i] = *f
	}
	return out
}

// Pickables returns the fixtures as picking candidates
func (r *Registry) Pickables() []picking.Pickable {
	out := make([]picking.Pickable, len(r.fixtures))
	for i, f := range r.fixtures {
		out[i] = f
	}
	return out
}
