package observe

import (
	"github.com/npillmayer/treewatch/mutation"
)

// listenerSet keeps track of the nodes carrying the structural listener of
// one observation. A node never carries the same listener twice, and every
// node which has been given the listener can be found again for teardown,
// even if it has left the tree in the meantime.
type listenerSet[N Node[N]] struct {
	raw      *mutation.RawLog[N]
	attached map[N]struct{}
	order    []N // order of attachment, may contain stale entries
}

func newListenerSet[N Node[N]](raw *mutation.RawLog[N]) *listenerSet[N] {
	return &listenerSet[N]{
		raw:      raw,
		attached: make(map[N]struct{}),
	}
}

// attachSubtree registers the structural listener at root and every node below.
func (ls *listenerSet[N]) attachSubtree(root N) {
	walkSubtree(root, func(n N) {
		if _, ok := ls.attached[n]; ok {
			return
		}
		n.AddStructuralListener(ls.raw)
		ls.attached[n] = struct{}{}
		ls.order = append(ls.order, n)
	})
}

// detachSubtree unregisters the structural listener from root and every
// node below.
func (ls *listenerSet[N]) detachSubtree(root N) {
	walkSubtree(root, func(n N) {
		if _, ok := ls.attached[n]; !ok {
			return
		}
		n.RemoveStructuralListener(ls.raw)
		delete(ls.attached, n)
	})
	if len(ls.order) > 2*len(ls.attached)+16 {
		ls.compact()
	}
}

// detachAll unregisters the structural listener from every node it has been
// attached to, wherever that node is now.
func (ls *listenerSet[N]) detachAll() {
	for _, n := range ls.order {
		if _, ok := ls.attached[n]; ok {
			n.RemoveStructuralListener(ls.raw)
			delete(ls.attached, n)
		}
	}
	ls.order = nil
}

// len returns the number of nodes currently carrying the listener.
func (ls *listenerSet[N]) len() int {
	return len(ls.attached)
}

func (ls *listenerSet[N]) compact() {
	seen := make(map[N]struct{}, len(ls.attached))
	order := make([]N, 0, len(ls.attached))
	for _, n := range ls.order {
		if _, ok := ls.attached[n]; !ok {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		order = append(order, n)
	}
	ls.order = order
}
