package common

// UnknownStr is returned by enum String methods for out-of-range values.
const UnknownStr = "unknown"

// Clone returns a non-nil copy of the slice.
func Clone[S ~[]E, E any](s S) S {
	out := make(S, len(s))
	copy(out, s)

	return out
}

// Filter returns a new slice holding the elements for which keep returns true.
// Order is preserved. The result is never nil.
func Filter[S ~[]E, E any](s S, keep func(E) bool) S {
	out := make(S, 0, len(s))

	for _, e := range s {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}
