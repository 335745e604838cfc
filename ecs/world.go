package ecs

import "github.com/milk9111/corsair/ecs/component"

// World owns entity lifecycles and one sparse store per component kind.
// All component access goes through the typed free functions below.
type World struct {
	generations []generation
	alive       []bool
	free        []entityID
	stores      map[component.ComponentID]*store
}

func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*store)}
}

// CreateEntity allocates a fresh entity handle, reusing destroyed slots.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	var id entityID
	if n := len(w.free); n > 0 {
		id = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		w.generations = append(w.generations, 1)
		w.alive = append(w.alive, false)
		id = entityID(len(w.generations))
	}
	w.alive[id-1] = true
	return makeEntity(id, w.generations[id-1])
}

// DestroyEntity kills an entity and drops all of its components. Returns
// false for handles that are already dead or stale.
func DestroyEntity(w *World, e Entity) bool {
	if !IsAlive(w, e) {
		return false
	}
	id := e.id()
	for _, s := range w.stores {
		s.remove(id)
	}
	w.alive[id-1] = false
	w.generations[id-1]++
	w.free = append(w.free, id)
	return true
}

// IsAlive reports whether the handle refers to a live entity of the same
// generation.
func IsAlive(w *World, e Entity) bool {
	if w == nil || !e.Valid() {
		return false
	}
	id := e.id()
	if int(id) > len(w.generations) {
		return false
	}
	return w.alive[id-1] && w.generations[id-1] == e.generation()
}

// Entities returns every live entity handle.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	out := make([]Entity, 0, len(w.generations)-len(w.free))
	for i, ok := range w.alive {
		if ok {
			id := entityID(i + 1)
			out = append(out, makeEntity(id, w.generations[i]))
		}
	}
	return out
}

func (w *World) storeFor(id component.ComponentID, create bool) *store {
	if w == nil {
		return nil
	}
	if s, ok := w.stores[id]; ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*store)
	}
	s := &store{}
	w.stores[id] = s
	return s
}

func (w *World) liveEntity(id entityID) (Entity, bool) {
	if w == nil || id == 0 || int(id) > len(w.generations) || !w.alive[id-1] {
		return 0, false
	}
	return makeEntity(id, w.generations[id-1]), true
}

// Add attaches value to the entity, replacing any existing component of the
// same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.storeFor(kind.ID(), true).set(e.id(), value)
	return nil
}

// Get returns the entity's component of the given kind, or (nil, false).
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !kind.Valid() || !IsAlive(w, e) {
		return nil, false
	}
	s := w.storeFor(kind.ID(), false)
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e.id()).(*T)
	if !ok {
		return nil, false
	}
	return v, true
}

// Has reports whether the entity carries a component of the given kind.
func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	_, ok := Get(w, e, kind)
	return ok
}

// Remove detaches the component, returning false when it was not present.
func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !kind.Valid() || !IsAlive(w, e) {
		return false
	}
	s := w.storeFor(kind.ID(), false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// First returns any one live entity carrying the kind. Useful for singleton
// components.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	if !kind.Valid() {
		return 0, false
	}
	s := w.storeFor(kind.ID(), false)
	if s == nil {
		return 0, false
	}
	for _, id := range s.entities() {
		if e, ok := w.liveEntity(id); ok {
			return e, true
		}
	}
	return 0, false
}

// ForEach visits every live entity with the kind. The iteration snapshot is
// taken up front so callbacks may create or destroy entities.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if fn == nil || !kind.Valid() {
		return
	}
	s := w.storeFor(kind.ID(), false)
	if s == nil {
		return
	}
	ids := append([]entityID(nil), s.entities()...)
	for _, id := range ids {
		e, ok := w.liveEntity(id)
		if !ok {
			continue
		}
		v, ok := s.get(id).(*T)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 visits live entities carrying both kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if fn == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := Get(w, e, kb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// ForEach3 visits live entities carrying all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if fn == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		c, ok := Get(w, e, kc)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}

// ForEach4 visits live entities carrying all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if fn == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		d, ok := Get(w, e, kd)
		if !ok {
			return
		}
		fn(e, a, b, c, d)
	})
}
