package slicesx

func Filter[S ~[]E, E any](ts S, accept func(t E) bool) []E {
	var fts []E
	for _, t := range ts {
		if accept(t) {
			fts = append(fts, t)
		}
	}
	return fts
}

// All reports whether accept holds for every element. It is true for an empty slice.
func All[S ~[]E, E any](ts S, accept func(t E) bool) bool {
	for _, t := range ts {
		if !accept(t) {
			return false
		}
	}
	return true
}
