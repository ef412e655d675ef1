package alien

import (
	"errors"
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// MaxFlushIterations bounds the number of effect runs in a single flush.
const MaxFlushIterations = 10_000

// ErrEffectCycle is reported when effects keep re-triggering each other
// past MaxFlushIterations within one flush.
var ErrEffectCycle = errors.New("effect cycle")

type OnErrorFunc func(from SignalAware, err error)

// ReactiveSystem owns one dependency graph. It is not safe for concurrent
// use: a single goroutine drives every signal created against it.
type ReactiveSystem struct {
	batchDepth int
	flushing   bool

	activeSub   *node
	activeGets  []*node
	activeOwner *owner
	pauseStack  []*node

	queuedEffects []*EffectRunner
	queued        mapset.Set[*EffectRunner]

	onError OnErrorFunc
}

type SignalAware interface {
	isSignalAware()
}

// Readable is satisfied by both writeable and computed signals.
type Readable[T any] interface {
	// Value reads and tracks the signal in the running computed or effect.
	Value() T
	// Peek reads without tracking.
	Peek() T
}

func CreateReactiveSystem(onError OnErrorFunc) *ReactiveSystem {
	return &ReactiveSystem{
		queued:  mapset.NewThreadUnsafeSet[*EffectRunner](),
		onError: onError,
	}
}

func (rs *ReactiveSystem) StartBatch() {
	rs.batchDepth++
}

func (rs *ReactiveSystem) EndBatch() {
	rs.batchDepth--
	if rs.batchDepth == 0 {
		rs.flush()
	}
}

// Batch defers effects until cb returns, so every write made by cb is
// applied before any dependent re-evaluates.
func (rs *ReactiveSystem) Batch(cb func()) {
	rs.StartBatch()
	defer rs.EndBatch()
	cb()
}

func (rs *ReactiveSystem) PauseTracking() {
	rs.pauseStack = append(rs.pauseStack, rs.activeSub)
	rs.activeSub = nil
}

func (rs *ReactiveSystem) ResumeTracking() {
	lastIdx := len(rs.pauseStack) - 1
	rs.activeSub = rs.pauseStack[lastIdx]
	rs.pauseStack = rs.pauseStack[:lastIdx]
}

// Untrack runs fn without registering any dependency for the running
// computed or effect. Ownership is unaffected.
func Untrack[T any](rs *ReactiveSystem, fn func() T) T {
	rs.PauseTracking()
	defer rs.ResumeTracking()
	return fn()
}

// track records dep as a source of the node currently being evaluated. The
// observer edge is installed right away, so a write to dep later in the same
// run already reaches the reader.
func (rs *ReactiveSystem) track(dep *node) {
	sub := rs.activeSub
	if sub == nil {
		return
	}
	if slices.Contains(rs.activeGets, dep) {
		return
	}
	rs.activeGets = append(rs.activeGets, dep)
	if !slices.Contains(dep.observers, sub) {
		dep.observers = append(dep.observers, sub)
	}
}

// evaluate runs fn with n as the tracking target, then drops the source
// links fn no longer read.
func (rs *ReactiveSystem) evaluate(n *node, fn func()) {
	prevSub, prevGets := rs.activeSub, rs.activeGets
	rs.activeSub, rs.activeGets = n, nil

	defer func() {
		gets := rs.activeGets
		rs.activeSub, rs.activeGets = prevSub, prevGets
		rs.relink(n, gets)
	}()

	fn()
}

func (rs *ReactiveSystem) relink(n *node, gets []*node) {
	for _, src := range n.sources {
		if !slices.Contains(gets, src) {
			src.removeObserver(n)
		}
	}
	n.sources = gets
}

// own attaches a computed or effect to the active owner so it is detached
// from the graph when that owner is disposed.
func (rs *ReactiveSystem) own(n *node) {
	if rs.activeOwner != nil {
		rs.activeOwner.nodes = append(rs.activeOwner.nodes, n)
	}
}

// Marks a node and everything downstream as possibly stale.
//
// The node itself receives state, its observers receive cacheCheck, so that
// only nodes adjacent to an actual change are known to be dirty; the rest
// verify their sources when pulled. Effects are queued on the way.
func (rs *ReactiveSystem) stale(n *node, state cacheState) {
	if n.state >= state {
		return
	}
	n.state = state
	if n.effect != nil {
		rs.enqueue(n.effect)
	}
	for _, ob := range n.observers {
		rs.stale(ob, cacheCheck)
	}
}

func (rs *ReactiveSystem) enqueue(e *EffectRunner) {
	if rs.queued.Contains(e) {
		return
	}
	rs.queued.Add(e)
	rs.queuedEffects = append(rs.queuedEffects, e)
}

// Brings a node up to date if it is dirty, or if a source turns out to have
// changed value.
//
// Sources are checked in the order they were read, so producers settle before
// consumers. Checking stops at the first source that changed: a node whose
// computation no longer reads some later source must not force it to update.
func (rs *ReactiveSystem) updateIfNecessary(n *node) {
	if n.state == cacheCheck {
		for _, src := range n.sources {
			if src.recompute != nil {
				rs.updateIfNecessary(src)
			}
			if n.state == cacheDirty {
				break
			}
		}
	}

	if n.state != cacheDirty {
		n.state = cacheClean
		return
	}

	// clean before running, so a write made during the run re-stales the node
	n.state = cacheClean
	if n.recompute() {
		for _, ob := range n.observers {
			if ob.state == cacheCheck {
				ob.state = cacheDirty
			}
		}
	}
}

// flush runs queued effects until the queue drains. Writes performed by an
// effect only queue more work; they never re-enter a running effect.
func (rs *ReactiveSystem) flush() {
	if rs.flushing {
		return
	}
	rs.flushing = true
	defer func() { rs.flushing = false }()

	runs := 0
	for len(rs.queuedEffects) > 0 {
		e := rs.queuedEffects[0]
		rs.queuedEffects = rs.queuedEffects[1:]
		rs.queued.Remove(e)
		rs.settleOwners(e)
		if e.disposed {
			continue
		}

		runs++
		if runs > MaxFlushIterations {
			e.state = cacheClean
			rs.dropQueue()
			rs.report(e, fmt.Errorf("flush exceeded %d effect runs: %w", MaxFlushIterations, ErrEffectCycle))
			return
		}
		rs.updateIfNecessary(&e.node)
	}
}

// settleOwners brings the effects enclosing e up to date, outermost first.
// An owner that re-runs disposes e, which then never sees the state its owner
// reacted to.
func (rs *ReactiveSystem) settleOwners(e *EffectRunner) {
	var chain []*EffectRunner
	for o := e.owner.parent; o != nil; o = o.parent {
		if o.runner != nil {
			chain = append(chain, o.runner)
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		r := chain[i]
		if r.disposed || r.state == cacheClean {
			continue
		}
		rs.updateIfNecessary(&r.node)
	}
}

func (rs *ReactiveSystem) dropQueue() {
	for _, e := range rs.queuedEffects {
		e.state = cacheClean
	}
	rs.queuedEffects = nil
	rs.queued.Clear()
}

func (rs *ReactiveSystem) report(from SignalAware, err error) {
	if rs.onError != nil {
		rs.onError(from, err)
	}
}
