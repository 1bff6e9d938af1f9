package ecs

import "github.com/Abhishek10745/folio/ecs/component"

// Add attaches a component to an entity. Values are stored as pointers so
// ForEach callbacks mutate components in place without a write-back.
func Add[T any](w *World, e Entity, h component.Handle[T], v *T) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if v == nil {
		return component.ErrNilComponent
	}
	w.store(h.ID()).set(e.id(), v)
	return nil
}

func Remove[T any](w *World, e Entity, h component.Handle[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return w.store(h.ID()).remove(e.id())
}

func Has[T any](w *World, e Entity, h component.Handle[T]) bool {
	return w.IsAlive(e) && w.store(h.ID()).has(e.id())
}

func Get[T any](w *World, e Entity, h component.Handle[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	v := w.store(h.ID()).get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// ForEach visits every entity holding the component. The callback may add or
// remove components on the visited entity; the id snapshot keeps iteration
// stable across swap-removals.
func ForEach[T any](w *World, h component.Handle[T], fn func(e Entity, v *T)) {
	s := w.store(h.ID())
	if s == nil {
		return
	}
	ids := append([]entityID(nil), s.denseIDs...)
	for _, eid := range ids {
		e := makeEntity(eid, w.entities.gens[eid-1])
		if !w.IsAlive(e) {
			continue
		}
		if v, ok := s.get(eid).(*T); ok && v != nil {
			fn(e, v)
		}
	}
}

// ForEach2 visits every entity holding both components.
func ForEach2[A, B any](w *World, ha component.Handle[A], hb component.Handle[B], fn func(e Entity, a *A, b *B)) {
	ForEach(w, ha, func(e Entity, a *A) {
		if b, ok := Get(w, e, hb); ok {
			fn(e, a, b)
		}
	})
}
