/*
Package workqueue delivers raw mutation records to observers, batch by batch.

Observers register a raw log together with a callback. Tree nodes append raw
records to the log as changes happen. Whenever the client calls Flush, every
registration with pending records receives exactly one batch: the records
collected since the last delivery, in the order they occurred. Callbacks are
invoked synchronously, one after the other, in order of registration.

Optionally a maximum batch size may be configured. Larger backlogs are then
cut into consecutive batches, delivered by successive calls to Flush.

Queue is not safe for concurrent use; it is meant to be driven from the same
thread of control which mutates the tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package workqueue

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treewatch.workqueue'.
func tracer() tracing.Trace {
	return tracing.Select("treewatch.workqueue")
}
