package alien

type ReadonlySignal[T comparable] struct {
	node

	value  T
	getter func(oldValue T) T
}

func (s *ReadonlySignal[T]) isSignalAware() {}

func (s *ReadonlySignal[T]) Value() T {
	s.rs.track(&s.node)
	s.rs.updateIfNecessary(&s.node)
	return s.value
}

func (s *ReadonlySignal[T]) Peek() T {
	s.rs.updateIfNecessary(&s.node)
	return s.value
}

func (s *ReadonlySignal[T]) cas() (wasDifferent bool) {
	oldValue := s.value
	var newValue T
	s.rs.evaluate(&s.node, func() {
		newValue = s.getter(oldValue)
	})
	s.value = newValue
	return oldValue != newValue
}

// Computed derives a memoized value. The getter runs lazily on the first
// read and again only after a source it read has changed value.
func Computed[T comparable](rs *ReactiveSystem, getter func(oldValue T) T) *ReadonlySignal[T] {
	c := &ReadonlySignal[T]{
		node:   node{rs: rs, state: cacheDirty},
		getter: getter,
	}
	c.recompute = c.cas
	rs.own(&c.node)
	return c
}
