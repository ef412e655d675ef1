package alien

type cacheState uint8

const (
	cacheClean cacheState = iota // value is valid, no need to recompute
	cacheCheck                   // a transitive source may have changed, check sources before deciding
	cacheDirty                   // a direct source changed, value needs to be recomputed
)

// node is a vertex of the dependency graph. Plain signals only ever have
// observers; computeds and effects have both sources and observers.
type node struct {
	rs    *ReactiveSystem
	state cacheState

	sources   []*node
	observers []*node

	// recompute re-evaluates the node and reports whether its value changed.
	// nil for writeable signals, which never recompute.
	recompute func() bool

	// set for effect nodes so propagation can queue them
	effect *EffectRunner
}

func (n *node) removeObserver(o *node) {
	for i, ob := range n.observers {
		if ob == o {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}

// unlink detaches the node from every source. A later read re-evaluates it
// from scratch.
func (n *node) unlink() {
	for _, src := range n.sources {
		src.removeObserver(n)
	}
	n.sources = nil
	n.state = cacheDirty
}

// owner scopes the lifetime of effects and computeds created while it is
// active. Disposing an owner disposes everything it owns.
type owner struct {
	parent   *owner
	children []*owner
	nodes    []*node
	cleanups []func()

	// detach is run once on dispose, after children and cleanups
	detach   func()
	disposed bool

	// set when the owner is an effect, nil for scopes
	runner *EffectRunner
}

func (o *owner) adopt(child *owner) {
	child.parent = o
	o.children = append(o.children, child)
}

func (o *owner) removeChild(child *owner) {
	for i, c := range o.children {
		if c == child {
			o.children = append(o.children[:i], o.children[i+1:]...)
			return
		}
	}
}

// reset disposes owned children and runs cleanups, leaving the owner usable.
func (o *owner) reset() {
	children := o.children
	o.children = nil
	for _, child := range children {
		child.parent = nil
		child.dispose()
	}

	nodes := o.nodes
	o.nodes = nil
	for _, n := range nodes {
		n.unlink()
	}

	cleanups := o.cleanups
	o.cleanups = nil
	for _, fn := range cleanups {
		fn()
	}
}

func (o *owner) dispose() {
	if o.disposed {
		return
	}
	o.disposed = true
	o.reset()
	if o.detach != nil {
		o.detach()
	}
	if o.parent != nil {
		o.parent.removeChild(o)
		o.parent = nil
	}
}
