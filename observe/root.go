package observe

import (
	"github.com/npillmayer/treewatch/mutation"
)

// Node is the type constraint for the nodes of an observable tree.
// Nodes are compared by identity, hence implementations are usually
// pointer types.
type Node[N any] interface {
	comparable
	TypeName() string // type name, compared to (upper case) selectors
	Children() []N    // snapshot of the children, in document order
	AddStructuralListener(*mutation.RawLog[N])
	RemoveStructuralListener(*mutation.RawLog[N])
	AddAttributeListener(*mutation.RawLog[N])
	RemoveAttributeListener(*mutation.RawLog[N])
}

// Scheduler batches raw records and hands them to a callback. It has to
// deliver batches in the order the records occurred, with at most one
// callback per raw log running at any time.
// workqueue.Queue is an implementation of Scheduler.
type Scheduler[N any] interface {
	Register(raw *mutation.RawLog[N], callback func([]mutation.Record[N]))
	Release(raw *mutation.RawLog[N])
}

// Root is the root of an observed (sub-)tree. It owns the registry of
// observations of this subtree.
type Root[N Node[N]] struct {
	node      N
	scheduler Scheduler[N]
	registry  Registry[N]
}

// New wraps a tree node as the root of observations. Batches of raw records
// will be delivered by scheduler.
func New[N Node[N]](root N, scheduler Scheduler[N]) *Root[N] {
	return &Root[N]{node: root, scheduler: scheduler}
}

// Node returns the observed root node.
func (r *Root[N]) Node() N {
	return r.node
}

// Registry returns the table of active observations.
func (r *Root[N]) Registry() *Registry[N] {
	return &r.registry
}

// Close stops all observations of r.
func (r *Root[N]) Close() {
	for len(r.registry.elements) > 0 {
		r.removeElementObservation(len(r.registry.elements) - 1)
	}
	for len(r.registry.attributes) > 0 {
		r.removeAttributeObservation(len(r.registry.attributes) - 1)
	}
	tracer().Debugf("observe: closed root %v", r.node)
}
