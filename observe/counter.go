package observe

// operation is the kind of the first operation applied to a counter entry.
type operation int8

const (
	opIncrement operation = iota
	opDecrement
)

type counterEntry[N comparable] struct {
	node  N
	count int
	first operation
}

// Counter accumulates signed occurrence counts of nodes during the
// reconciliation of a single batch. Every node touched has exactly one
// entry; results are reported in order of first touch.
//
// A node which is only ever decremented ends up with a negative count and
// is reported as removed: it has been part of the tree before the batch.
type Counter[N comparable] struct {
	index   map[N]int
	entries []counterEntry[N]
}

// NewCounter creates an empty counter.
func NewCounter[N comparable]() *Counter[N] {
	return &Counter[N]{index: make(map[N]int)}
}

func (c *Counter[N]) entry(node N, op operation) *counterEntry[N] {
	if i, ok := c.index[node]; ok {
		return &c.entries[i]
	}
	c.index[node] = len(c.entries)
	c.entries = append(c.entries, counterEntry[N]{node: node, first: op})
	return &c.entries[len(c.entries)-1]
}

// Increment counts an occurrence of node entering the tree.
func (c *Counter[N]) Increment(node N) {
	c.entry(node, opIncrement).count++
}

// Decrement counts an occurrence of node leaving the tree.
func (c *Counter[N]) Decrement(node N) {
	c.entry(node, opDecrement).count--
}

// Added returns the nodes with a positive count.
func (c *Counter[N]) Added() []N {
	return c.collect(func(e counterEntry[N]) bool { return e.count > 0 })
}

// Removed returns the nodes with a negative count.
func (c *Counter[N]) Removed() []N {
	return c.collect(func(e counterEntry[N]) bool { return e.count < 0 })
}

// Transient returns the nodes which entered the tree and left it again:
// first touched by an increment, with a final count of zero.
func (c *Counter[N]) Transient() []N {
	return c.collect(func(e counterEntry[N]) bool {
		return e.first == opIncrement && e.count == 0
	})
}

// Len returns the number of nodes touched.
func (c *Counter[N]) Len() int {
	return len(c.entries)
}

func (c *Counter[N]) collect(pred func(counterEntry[N]) bool) []N {
	var nodes []N
	for _, e := range c.entries {
		if pred(e) {
			nodes = append(nodes, e.node)
		}
	}
	return nodes
}
