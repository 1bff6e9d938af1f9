package ecs

// sparseSet is dense component storage keyed by entity id. Values are stored
// as `any` (always a *T, see generics.go) so iteration can mutate in place.
type sparseSet struct {
	denseIDs    []entityID
	denseValues []any
	sparse      []int // indexed by id-1, -1 when absent
}

func (s *sparseSet) has(id entityID) bool {
	if id == 0 || int(id) > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

func (s *sparseSet) get(id entityID) any {
	if !s.has(id) {
		return nil
	}
	return s.denseValues[s.sparse[id-1]]
}

func (s *sparseSet) set(id entityID, v any) {
	if id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.denseValues[s.sparse[id-1]] = v
		return
	}
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, v)
	s.sparse[id-1] = len(s.denseIDs) - 1
}

// remove swaps the last dense slot into the removed slot so the dense arrays
// stay packed.
func (s *sparseSet) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	lastID := s.denseIDs[last]

	s.denseIDs[idx] = lastID
	s.denseValues[idx] = s.denseValues[last]
	s.sparse[lastID-1] = idx

	s.denseIDs = s.denseIDs[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
	return true
}

func (s *sparseSet) len() int {
	return len(s.denseIDs)
}
