package survivor

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-survivor/internal/core"
)

// EntityID identifies an entity for its whole lifetime. IDs are never reused
// within a World.
type EntityID uint64

// Kind tags the variant of an entity record.
type Kind int

const (
	KindPlayer     Kind = iota // Live, controllable player
	KindDeadPlayer             // Post-collision ragdoll
	KindEnemy
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindDeadPlayer:
		return "dead-player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is a game object.
type Entity struct {
	ID    EntityID
	Kind  Kind
	Pos   core.Vec2 // Center, world units
	Depth float64   // Draw order, larger is closer
	Scale core.Vec2 // Sign of X is the facing direction
	Vel   core.Vec2 // World units per second
	// Gravity marks the entity as affected by gravity. For players it is
	// also the airborne flag: a grounded player ignores gravity.
	Gravity bool
	Anim    Animation
}

// FacingLeft reports whether the sprite is mirrored.
func (e *Entity) FacingLeft() bool {
	return e.Scale.X < 0
}

// World is the set of live entities. Iteration follows spawn order so that
// runs are reproducible.
type World struct {
	nextID EntityID
	byID   *intmap.Map[EntityID, *Entity]
	order  []EntityID
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		nextID: 1,
		byID:   intmap.New[EntityID, *Entity](32),
		order:  make([]EntityID, 0, 32),
	}
}

// Spawn adds a copy of e with a fresh ID and returns the stored entity.
func (w *World) Spawn(e Entity) *Entity {
	e.ID = w.nextID
	w.nextID++

	stored := &e
	w.byID.Put(e.ID, stored)
	w.order = append(w.order, e.ID)
	return stored
}

// Despawn removes an entity. Removing an unknown ID is a no-op.
func (w *World) Despawn(id EntityID) bool {
	if !w.byID.Del(id) {
		return false
	}
	if i := slices.Index(w.order, id); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
	return true
}

// Get looks up an entity by ID.
func (w *World) Get(id EntityID) (*Entity, bool) {
	return w.byID.Get(id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.byID.Len()
}

// All returns every entity in spawn order.
func (w *World) All() []*Entity {
	out := make([]*Entity, 0, len(w.order))
	for _, id := range w.order {
		if e, ok := w.byID.Get(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// OfKind returns the entities of one kind in spawn order.
func (w *World) OfKind(kind Kind) []*Entity {
	var out []*Entity
	for _, id := range w.order {
		if e, ok := w.byID.Get(id); ok && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

// first returns the oldest entity of a kind, or nil.
func (w *World) first(kind Kind) *Entity {
	for _, id := range w.order {
		if e, ok := w.byID.Get(id); ok && e.Kind == kind {
			return e
		}
	}
	return nil
}

// Player returns the live player, or nil while none exists.
func (w *World) Player() *Entity {
	return w.first(KindPlayer)
}

// DeadPlayer returns the dead player, or nil while none exists.
func (w *World) DeadPlayer() *Entity {
	return w.first(KindDeadPlayer)
}

// Enemies returns all enemies in spawn order.
func (w *World) Enemies() []*Entity {
	return w.OfKind(KindEnemy)
}

// Count returns the number of entities of a kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, id := range w.order {
		if e, ok := w.byID.Get(id); ok && e.Kind == kind {
			n++
		}
	}
	return n
}

// DespawnWhere removes every entity of kind for which pred returns true and
// reports how many were removed.
func (w *World) DespawnWhere(kind Kind, pred func(*Entity) bool) int {
	removed := 0
	kept := w.order[:0]
	for _, id := range w.order {
		e, ok := w.byID.Get(id)
		if !ok {
			continue
		}
		if e.Kind == kind && pred(e) {
			w.byID.Del(id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	w.order = kept
	return removed
}

// Clear removes every entity. IDs keep increasing afterwards.
func (w *World) Clear() {
	w.byID = intmap.New[EntityID, *Entity](32)
	w.order = w.order[:0]
}

// DespawnKind removes every entity of a kind.
func (w *World) DespawnKind(kind Kind) int {
	return w.DespawnWhere(kind, func(*Entity) bool { return true })
}
