package ecs

import "github.com/Abhishek10745/folio/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, component tables, and the event queue. It is the
// single mutable simulation state; systems receive it by reference each tick
// and the frame loop drives them, so the world itself never self-schedules.
type World struct {
	entities entityStore
	stores   []*sparseSet // indexed by component.ID - 1
	events   EventQueue
}

func NewWorld() *World {
	return &World{}
}

func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity invalidates the handle and drops all of its components.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		if s != nil {
			s.remove(e.id())
		}
	}
	return true
}

func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.count()
}

func (w *World) store(id component.ID) *sparseSet {
	if id == 0 {
		return nil
	}
	for int(id) > len(w.stores) {
		w.stores = append(w.stores, nil)
	}
	if w.stores[id-1] == nil {
		w.stores[id-1] = &sparseSet{}
	}
	return w.stores[id-1]
}

// Query returns every live entity that has all of the given component kinds.
// Iteration order follows the dense order of the smallest table.
func (w *World) Query(ids ...component.ID) []Entity {
	if len(ids) == 0 {
		return nil
	}
	smallest := w.store(ids[0])
	for _, id := range ids[1:] {
		if s := w.store(id); s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
outer:
	for _, eid := range smallest.denseIDs {
		for _, id := range ids {
			if !w.store(id).has(eid) {
				continue outer
			}
		}
		e := makeEntity(eid, w.entities.gens[eid-1])
		if w.IsAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns an arbitrary entity holding the given component kind.
func (w *World) First(id component.ID) (Entity, bool) {
	s := w.store(id)
	if s == nil || s.len() == 0 {
		return 0, false
	}
	eid := s.denseIDs[0]
	e := makeEntity(eid, w.entities.gens[eid-1])
	return e, w.IsAlive(e)
}

func (w *World) Events() *EventQueue {
	return &w.events
}
