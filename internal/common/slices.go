package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Duplicates returns the elements occurring more than once in s, in order of
// their second occurrence.
func Duplicates[S ~[]E, E comparable](s S) []E {
	seen := make(map[E]struct{}, len(s))
	var dups []E

	for _, e := range s {
		if _, ok := seen[e]; ok {
			dups = append(dups, e)
			continue
		}

		seen[e] = struct{}{}
	}

	return dups
}
