package common

// Clone returns a copy of s with room for extra appended elements. The copy
// never aliases s, so appending to it leaves the caller's slice untouched.
func Clone[S ~[]E, E any](s S, extra int) S {
	out := make(S, len(s), len(s)+extra)
	copy(out, s)

	return out
}
