package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

/*
We manage a tree of mutable nodes. Each node carries a payload of type parameter T.
Nodes maintain a compact slice of children, i.e. removing a child closes the gap.
Sibling navigation is derived from the parent's children slice.
*/

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node to the list of children.
// The newly inserted node is connected to this node as its parent.
// If ch is currently attached elsewhere, it is isolated first.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.Isolate()
		node.children.insertChildAt(-1, ch, node)
	}
	return node
}

// InsertChildAt inserts a new child node into the tree.
// The newly inserted node is connected to this node as its parent.
// The child is set at position i in relation to other children,
// shifting children at later positions. If i is out of range, the
// child is appended.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.Isolate()
		node.children.insertChildAt(i, ch, node)
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		node.parent.children.remove(node)
	}
	return node
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node.
// The slice is a copy and may be held on to while the tree changes.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// FirstChild returns the first child of a node, if any.
func (node *Node[T]) FirstChild() (*Node[T], bool) {
	return node.Child(0)
}

// NextSibling returns the node following this one in its parent's list of
// children. Root nodes and last children have no next sibling.
func (node *Node[T]) NextSibling() (*Node[T], bool) {
	if node.parent == nil {
		return nil, false
	}
	i := node.parent.IndexOfChild(node)
	if i < 0 {
		return nil, false
	}
	return node.parent.Child(i + 1)
}

// PreviousSibling returns the node preceding this one in its parent's list of
// children.
func (node *Node[T]) PreviousSibling() (*Node[T], bool) {
	if node.parent == nil {
		return nil, false
	}
	i := node.parent.IndexOfChild(node)
	if i <= 0 {
		return nil, false
	}
	return node.parent.Child(i - 1)
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	return node.children.index(ch)
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice[T comparable] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

// insertChildAt inserts child at position i, or appends it if i is
// negative or beyond the end.
func (chs *childrenSlice[T]) insertChildAt(i int, child *Node[T], parent *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	if i < 0 || i >= len(chs.slice) {
		chs.slice = append(chs.slice, child)
	} else {
		chs.slice = append(chs.slice, nil)   // make room for one child
		copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
		chs.slice[i] = child
	}
	child.parent = parent
}

func (chs *childrenSlice[T]) remove(node *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == node {
			copy(chs.slice[i:], chs.slice[i+1:])
			chs.slice[len(chs.slice)-1] = nil
			chs.slice = chs.slice[:len(chs.slice)-1]
			node.parent = nil
			break
		}
	}
}

func (chs *childrenSlice[T]) index(node *Node[T]) int {
	chs.RLock()
	defer chs.RUnlock()
	for i, ch := range chs.slice {
		if ch == node {
			return i
		}
	}
	return -1
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
