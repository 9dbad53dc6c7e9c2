package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrInvalidAction is returned if a traversal is started without an action.
var ErrInvalidAction = errors.New("traversal action is invalid")

// ErrEmptyTree is returned if a traversal is started on a nil node.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Action is a function type to operate on tree nodes.
// parent is the node the traversal descended from (nil for the start node),
// position is the index of n within parent's children at the time the
// children were collected.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) error

// TopDown traverses a tree starting at (and including) node.
// The traversal guarantees that parents are always processed before
// their children, and siblings are processed in order (document order).
// The children of a node are collected before descending, so actions may
// modify the tree without confusing the traversal.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted. The first error
// encountered is returned after the traversal has finished.
func TopDown[T comparable](node *Node[T], action Action[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	if action == nil {
		return ErrInvalidAction
	}
	return topDown(node, nil, 0, action)
}

func topDown[T comparable](node, parent *Node[T], position int, action Action[T]) error {
	if err := action(node, parent, position); err != nil {
		tracer().Debugf("top-down action for %v returned error: %v", node, err)
		return err
	}
	var first error
	for i, ch := range node.Children() {
		if err := topDown(ch, node, i, action); err != nil && first == nil {
			first = err
		}
	}
	return first
}
