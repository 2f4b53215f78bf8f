package console

import "slices"

// ActiveSet is the ordered subset of Registry commands that participate in
// dispatch. It stores indices into the Registry in storage it owns, so no
// operation on the set can change the Registry.
type ActiveSet struct {
	registry *Registry
	indices  []int
}

// NewActiveSet creates a set containing every registry command.
func NewActiveSet(registry *Registry) *ActiveSet {
	s := &ActiveSet{registry: registry}
	s.ActivateAll()
	return s
}

// ActivateAll replaces the set with every registry command in registration order.
func (s *ActiveSet) ActivateAll() {
	indices := make([]int, s.registry.Len())
	for i := range indices {
		indices[i] = i
	}
	s.indices = indices
}

// DeactivateAll empties the set.
func (s *ActiveSet) DeactivateAll() {
	s.indices = nil
}

// Activate appends the first registry command owning name, unless it is
// already active. It reports whether such a command exists.
func (s *ActiveSet) Activate(name string) bool {
	idx, ok := s.registry.Lookup(name)
	if !ok {
		return false
	}
	if !slices.Contains(s.indices, idx) {
		s.indices = append(s.indices, idx)
	}
	return true
}

// Deactivate removes the first registry command owning name from the set.
// It reports whether such a command exists.
func (s *ActiveSet) Deactivate(name string) bool {
	idx, ok := s.registry.Lookup(name)
	if !ok {
		return false
	}
	s.indices = slices.DeleteFunc(s.indices, func(i int) bool { return i == idx })
	return true
}

// Contains reports whether the first registry command owning name is active.
func (s *ActiveSet) Contains(name string) bool {
	idx, ok := s.registry.Lookup(name)
	return ok && slices.Contains(s.indices, idx)
}

// Len returns the number of active commands.
func (s *ActiveSet) Len() int {
	return len(s.indices)
}

// Commands returns the active commands in set order.
func (s *ActiveSet) Commands() []Command {
	commands := make([]Command, len(s.indices))
	for i, idx := range s.indices {
		commands[i] = s.registry.At(idx)
	}
	return commands
}

// containsIndex reports whether the registry command at idx is active.
func (s *ActiveSet) containsIndex(idx int) bool {
	return slices.Contains(s.indices, idx)
}
