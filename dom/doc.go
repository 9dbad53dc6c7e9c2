/*
Package dom implements an observable document tree.

Overview

Nodes of a document are built on top of the general purpose tree type
(package tree). In a fully object oriented programming language we would
subclass the tree type, but in Go we resort to composition, thus including
a generic tree node in every dom.Node. The payload of the tree node always
references the dom.Node itself.

Node data (node type, tag name, attributes) is held in an html.Node of
package golang.org/x/net/html. Only the data fields of the html.Node are
used; the tree links of a dom.Node are managed by package tree.

Observation

Every change of the document is reported to listeners in the form of raw
mutation records (see package mutation):

- A structural listener registered at node X receives a ChildList record
for every change of the list of children of X.

- An attribute listener registered at node X receives an Attribute record
for every attribute change at X or at any node currently below X.
Every listener receives at most one record per change, even if it is
registered at more than one ancestor of the changed node.

Listeners are raw logs, i.e. they just collect records. Delivering them
to clients is the business of a scheduler (see package workqueue).

Status

Nodes are not safe for concurrent mutation. Clients have to serialize
changes to a document.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treewatch.dom'.
func tracer() tracing.Trace {
	return tracing.Select("treewatch.dom")
}
