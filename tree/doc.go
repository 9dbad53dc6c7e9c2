/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node carries a payload of a type
parameter and an ordered list of children. Children are held in a
mutex-protected slice, thus adding and removing children is safe
for concurrent use. Higher-level concerns (who is notified about
changes, which rules govern a change) are left to the packages
wrapping a tree.Node, e.g. package dom.

Navigation

	Parent()          // parent node, nil for the root
	Children()        // snapshot of the children
	FirstChild()      // first child, if any
	NextSibling()     // next child of the parent, if any
	PreviousSibling() // previous child of the parent, if any

Traversal

TopDown(node, action) visits a (sub-)tree in document order, parents
before children. The list of children is collected before descending,
so actions are free to restructure the tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treewatch.tree'.
func tracer() tracing.Trace {
	return tracing.Select("treewatch.tree")
}
