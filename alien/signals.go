package alien

type WriteableSignal[T comparable] struct {
	node
	value T
}

func (s *WriteableSignal[T]) isSignalAware() {}

func (s *WriteableSignal[T]) Value() T {
	s.rs.track(&s.node)
	return s.value
}

func (s *WriteableSignal[T]) Peek() T {
	return s.value
}

func (s *WriteableSignal[T]) SetValue(v T) {
	if s.value == v {
		return
	}
	s.value = v
	if len(s.observers) == 0 {
		return
	}
	for _, ob := range s.observers {
		s.rs.stale(ob, cacheDirty)
	}
	if s.rs.batchDepth == 0 {
		s.rs.flush()
	}
}

// Update writes fn applied to the current value, read untracked.
func (s *WriteableSignal[T]) Update(fn func(T) T) {
	s.SetValue(fn(s.value))
}

func Signal[T comparable](rs *ReactiveSystem, initialValue T) *WriteableSignal[T] {
	return &WriteableSignal[T]{
		node:  node{rs: rs},
		value: initialValue,
	}
}
