package common

// Set is an unordered membership set. Ordered output is always produced from
// the source slices, never from a Set.
type Set[E comparable] map[E]struct{}

// NewSet builds a set from the given slices.
func NewSet[E comparable](slices ...[]E) Set[E] {
	size := 0
	for _, s := range slices {
		size += len(s)
	}

	set := make(Set[E], size)
	for _, s := range slices {
		for _, e := range s {
			set[e] = struct{}{}
		}
	}

	return set
}

// Has reports whether e is in the set.
func (s Set[E]) Has(e E) bool {
	_, ok := s[e]
	return ok
}

// Add inserts e into the set.
func (s Set[E]) Add(e E) {
	s[e] = struct{}{}
}

// Without returns the elements of items not present in any of the excluded sets.
func Without[E comparable](items []E, excluded ...Set[E]) []E {
	return Filter(items, func(e E) bool {
		for _, set := range excluded {
			if set.Has(e) {
				return false
			}
		}

		return true
	})
}
