package room

import "github.com/philipparndt/roomplan/pkg/picking"

// Registry holds the surfaces derived from the active room
type Registry struct {
	room     Room
	surfaces []Surface
}

// NewRegistry derives the surfaces of r
func NewRegistry(r Room) *Registry {
	reg := &Registry{}
	reg.Rebuild(r)
	return reg
}

// Rebuild discards every surface and derives a fresh set from r
func (reg *Registry) Rebuild(r Room) {
	reg.room = r
	reg.surfaces = DeriveSurfaces(r)
}

// Room returns the room the surfaces were derived from
func (reg *Registry) Room() Room {
	return reg.room
}

// Surfaces returns a copy of all surfaces, floor first
func (reg *Registry) Surfaces() []Surface {
	out := make([]Surface, len(reg.surfaces))
	copy(out, reg.surfaces)
	return out
}

// Floor returns the floor surface
func (reg *Registry) Floor() Surface {
	return reg.surfaces[0]
}

// Walls returns the four walls in back, front, left, right order
func (reg *Registry) Walls() []Surface {
	return reg.OfKind(Wall)
}

// OfKind returns the surfaces of one kind
func (reg *Registry) OfKind(kind Kind) []Surface {
	var out []Surface
	for _, s := range reg.surfaces {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Pickable returns the picking candidates in priority order: the given
// fixtures, then the floor, then the walls.
func (reg *Registry) Pickable(fixtures ...picking.Pickable) []picking.Pickable {
	out := make([]picking.Pickable, 0, len(fixtures)+len(reg.surfaces))
	out = append(out, fixtures...)
	for _, s := range reg.surfaces {
		out = append(out, s)
	}
	return out
}

// PickableOfKind returns only the surfaces of one kind as picking candidates
func (reg *Registry) PickableOfKind(kind Kind) []picking.Pickable {
	var out []picking.Pickable
	for _, s := range reg.surfaces {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// ByName returns the surface called name ("floor", "back", "front", "left" or "right")
func (reg *Registry) ByName(name string) (Surface, bool) {
	for _, s := range reg.surfaces {
		if s.Name == name {
			return s, true
		}
	}
	return Surface{}, false
}
