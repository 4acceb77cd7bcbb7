package slicesx

func Map[T any, V any](ts []T, conv func(T) V) []V {
	vs := make([]V, len(ts))
	for i, t := range ts {
		vs[i] = conv(t)
	}
	return vs
}

// MapErr converts every element and collects the failures by position.
// The returned slice always has the length of ts, failed positions hold the zero value.
func MapErr[T any, V any](ts []T, conv func(T) (V, error)) ([]V, map[int]error) {
	vs := make([]V, len(ts))
	var errs map[int]error
	for i, t := range ts {
		v, err := conv(t)
		if err != nil {
			if errs == nil {
				errs = map[int]error{}
			}
			errs[i] = err
			continue
		}
		vs[i] = v
	}
	return vs, errs
}
