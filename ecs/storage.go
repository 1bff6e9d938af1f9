package ecs

// entityStore tracks entity generations and recycled ids. Id 0 is never
// issued so the zero Entity is always invalid.
type entityStore struct {
	gens []generation // indexed by id-1
	free []entityID
}

func (s *entityStore) create() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		id = entityID(len(s.gens))
	}
	return makeEntity(id, s.gens[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.gens[id-1]++
	s.free = append(s.free, id)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gens) {
		return false
	}
	return s.gens[id-1] == e.generation()
}

// count returns the number of live entities.
func (s *entityStore) count() int {
	return len(s.gens) - len(s.free)
}
