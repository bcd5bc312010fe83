package traverse

// Pair is a small tuple used where Go lacks the built-in pairs the spec's
// host language has.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MapFst applies f to the first component of a pair, leaving the second
// untouched, propagating any error (§4.A's fstM).
func MapFst[A, B any](f func(A) (A, error), p Pair[A, B]) (Pair[A, B], error) {
	a, err := f(p.First)
	if err != nil {
		return p, err
	}
	return Pair[A, B]{First: a, Second: p.Second}, nil
}

// MapSnd applies f to the second component of a pair (§4.A's sndM).
func MapSnd[A, B any](f func(B) (B, error), p Pair[A, B]) (Pair[A, B], error) {
	b, err := f(p.Second)
	if err != nil {
		return p, err
	}
	return Pair[A, B]{First: p.First, Second: b}, nil
}

// MaybeM maps an effectful function under optionality (§4.A's maybeM): a
// nil pointer passes through untouched, otherwise f is applied and its
// error propagated.
func MaybeM[T any](f func(T) (T, error), v *T) (*T, error) {
	if v == nil {
		return nil, nil
	}
	r, err := f(*v)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
