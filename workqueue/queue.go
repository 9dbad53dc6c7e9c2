package workqueue

import (
	"github.com/npillmayer/treewatch/mutation"
)

// Callback receives a batch of raw records. A batch is never empty.
type Callback[N any] func([]mutation.Record[N])

// Option configures a Queue.
type Option func(*config)

type config struct {
	maxBatch int // 0 = unlimited
}

// MaxBatch limits the number of records delivered in one batch.
// n ≤ 0 means unlimited, which is the default.
func MaxBatch(n int) Option {
	return func(c *config) {
		if n < 0 {
			n = 0
		}
		c.maxBatch = n
	}
}

type entry[N any] struct {
	raw      *mutation.RawLog[N]
	callback Callback[N]
	released bool
}

// Queue is a scheduler for batches of raw records.
type Queue[N any] struct {
	cfg     config
	entries []*entry[N]
}

// New creates a queue without registrations.
func New[N any](opts ...Option) *Queue[N] {
	q := &Queue[N]{}
	for _, opt := range opts {
		opt(&q.cfg)
	}
	return q
}

// Register subscribes callback to batches of records appended to raw.
// Registering a raw log a second time replaces its callback.
func (q *Queue[N]) Register(raw *mutation.RawLog[N], callback func([]mutation.Record[N])) {
	if raw == nil || callback == nil {
		return
	}
	if e := q.find(raw); e != nil {
		e.callback = callback
		return
	}
	q.entries = append(q.entries, &entry[N]{raw: raw, callback: callback})
	tracer().Debugf("workqueue: registered raw log, %d registrations", len(q.entries))
}

// Release unsubscribes raw. Records still pending in raw are not delivered.
// Releasing an unknown raw log is a no-op.
func (q *Queue[N]) Release(raw *mutation.RawLog[N]) {
	for i, e := range q.entries {
		if e.raw == raw {
			e.released = true
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			tracer().Debugf("workqueue: released raw log, %d registrations", len(q.entries))
			return
		}
	}
}

// Len returns the number of registrations.
func (q *Queue[N]) Len() int {
	return len(q.entries)
}

// Pending is true if at least one registration has undelivered records.
func (q *Queue[N]) Pending() bool {
	for _, e := range q.entries {
		if e.raw.Len() > 0 {
			return true
		}
	}
	return false
}

// Flush delivers at most one batch to every registration with pending
// records and returns the number of batches delivered. Records appended
// while Flush is running are delivered by the next call to Flush.
// Registrations released by a callback do not receive further batches.
func (q *Queue[N]) Flush() int {
	entries := make([]*entry[N], len(q.entries))
	copy(entries, q.entries)
	batches := make([][]mutation.Record[N], len(entries))
	for i, e := range entries { // cut all batches before running any callback
		if q.cfg.maxBatch > 0 {
			batches[i] = e.raw.Take(q.cfg.maxBatch)
		} else {
			batches[i] = e.raw.TakeRecords()
		}
	}
	delivered := 0
	for i, e := range entries {
		if e.released || len(batches[i]) == 0 {
			continue
		}
		tracer().Debugf("workqueue: delivering batch of %d record(s)", len(batches[i]))
		e.callback(batches[i])
		delivered++
	}
	return delivered
}

// FlushAll calls Flush until no records are pending and returns the total
// number of batches delivered. Callbacks which keep producing records
// will make FlushAll loop forever.
func (q *Queue[N]) FlushAll() int {
	total := 0
	for q.Pending() {
		total += q.Flush()
	}
	return total
}

func (q *Queue[N]) find(raw *mutation.RawLog[N]) *entry[N] {
	for _, e := range q.entries {
		if e.raw == raw {
			return e
		}
	}
	return nil
}
