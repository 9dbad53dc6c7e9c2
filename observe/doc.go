/*
Package observe turns raw tree mutation records into semantic events.

Overview

A tree delivers low-level notifications: the children of a node changed, an
attribute of a node changed. Clients are usually interested in something
else: which elements of a certain type entered or left the tree, and which
of them had a certain attribute changed. Package observe bridges the two.

Clients wrap the root of a (sub-)tree into a Root and register observations
with it:

	root := observe.New[*dom.Node](doc, queue)
	events := mutation.NewEventLog[*dom.Node]()
	err := root.ObserveElement("div", events)
	…
	queue.Flush() // events now holds ElementAdded/ElementRemoved for DIVs

Each observation owns a private raw log which is registered with a scheduler
(see package workqueue). Every batch delivered by the scheduler is reconciled
on its own: a node which is added and removed again within one batch is
transient and does not produce any event; a node which has been in the tree
before the observation started and is removed produces ElementRemoved,
although there never has been an ElementAdded for it.

Attribute observations report changes of a single attribute, but suppress
reports for elements which have been added, removed, or have been transient
within the same batch.

Selectors

Selectors are either "*" (any node) or a single tag name consisting of
letters only. Tag names are case-insensitive. Anything else results in an
InvalidSelectorError.

Concurrency

There is no internal synchronization. Registering, unregistering and the
reconciliation of batches must be serialized by the client, usually by
running them in the thread of control which mutates the tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package observe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treewatch.observe'.
func tracer() tracing.Trace {
	return tracing.Select("treewatch.observe")
}
