package types

// Lazy holds a value computed on first access by a function supplied at
// construction. The function runs at most once; later calls to Get return
// the cached value. A Lazy is not safe for concurrent use.
type Lazy[T any] struct {
	compute  func() T
	computed bool
	value    T
}

// NewLazy returns an uncomputed cell around compute.
func NewLazy[T any](compute func() T) *Lazy[T] {
	return &Lazy[T]{compute: compute}
}

// Computed returns an already-forced cell holding v.
func Computed[T any](v T) *Lazy[T] {
	return &Lazy[T]{computed: true, value: v}
}

// Get forces the cell and returns its value.
func (l *Lazy[T]) Get() T {
	if !l.computed {
		if l.compute != nil {
			l.value = l.compute()
		}
		l.computed = true
		l.compute = nil
	}
	return l.value
}

// Forced reports whether the value has been computed.
func (l *Lazy[T]) Forced() bool {
	return l.computed
}
