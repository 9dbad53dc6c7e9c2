/*
Package mutation defines the vocabulary of tree change notifications.

There are two layers of notifications:

Raw records are produced by an observable tree whenever the list of children
of a node changes (ChildList) or whenever an attribute of a node changes
(Attribute). Raw records are collected in a RawLog, which is private to a single
observation and is drained batch by batch by a scheduler.

Events are the semantic, coalesced results of reconciling a batch of raw
records: an element has been added to or removed from the watched tree, or an
attribute of an element has changed. Events are appended to a caller-supplied
Log, EventLog being the default implementation.

Both records and events are sum types: sealed interfaces with a fixed set of
variants. Clients use type switches to tell them apart.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mutation
