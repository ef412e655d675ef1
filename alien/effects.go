package alien

type ErrFn func() error

type EffectRunner struct {
	node
	owner
	fn ErrFn
}

func (e *EffectRunner) isSignalAware() {}

// Effect runs fn immediately and again whenever a signal it read changes.
// Effects created while another effect or scope is running belong to it and
// are disposed when it re-runs or stops. The returned function stops the
// effect.
func Effect(rs *ReactiveSystem, fn ErrFn) ErrFn {
	e := &EffectRunner{fn: fn}
	e.node = node{rs: rs, state: cacheDirty, effect: e}
	e.recompute = e.run
	e.detach = e.node.unlink
	e.runner = e
	if rs.activeOwner != nil {
		rs.activeOwner.adopt(&e.owner)
	}

	// writes made by the first run are flushed once it returns
	func() {
		rs.StartBatch()
		defer rs.EndBatch()
		rs.updateIfNecessary(&e.node)
	}()

	return func() error {
		e.dispose()
		return nil
	}
}

func (e *EffectRunner) dispose() {
	e.owner.dispose()
	e.node.state = cacheClean
}

func (e *EffectRunner) run() bool {
	if e.disposed {
		return false
	}
	rs := e.rs
	e.owner.reset()

	prevOwner := rs.activeOwner
	rs.activeOwner = &e.owner
	defer func() { rs.activeOwner = prevOwner }()

	rs.evaluate(&e.node, func() {
		if err := e.fn(); err != nil {
			rs.report(e, err)
		}
	})

	// stopped from inside its own run
	if e.disposed {
		e.node.unlink()
		e.node.state = cacheClean
	}
	return false
}

type scope struct {
	owner
}

func (s *scope) isSignalAware() {}

// EffectScope runs scopedFn untracked with a fresh owner. Stopping the scope
// disposes every effect and computed created inside it and runs its cleanups.
func EffectScope(rs *ReactiveSystem, scopedFn ErrFn) (stopScope ErrFn) {
	s := &scope{}
	if rs.activeOwner != nil {
		rs.activeOwner.adopt(&s.owner)
	}

	func() {
		prevOwner := rs.activeOwner
		rs.activeOwner = &s.owner
		rs.StartBatch()
		defer rs.EndBatch()
		rs.PauseTracking()
		defer func() {
			rs.ResumeTracking()
			rs.activeOwner = prevOwner
		}()

		if err := scopedFn(); err != nil {
			rs.report(s, err)
		}
	}()

	return func() error {
		s.dispose()
		return nil
	}
}

// OnCleanup registers fn on the running effect or scope. It runs before the
// effect re-runs and when the owner is disposed. Outside any owner it is a
// no-op.
func OnCleanup(rs *ReactiveSystem, fn func()) {
	if rs.activeOwner != nil {
		rs.activeOwner.cleanups = append(rs.activeOwner.cleanups, fn)
	}
}
