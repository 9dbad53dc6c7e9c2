package mutation

import "fmt"

// Record is a raw mutation record, emitted by a tree node to its listeners.
// Variants are ChildList and Attribute.
type Record[N any] interface {
	Target() N // node the mutation happened at
	isRecord()
}

// ChildList reports a change of the list of children of Target.
// Added and Removed are in the order the change happened.
type ChildList[N any] struct {
	Node    N
	Added   []N
	Removed []N
}

// Target is part of interface Record.
func (r ChildList[N]) Target() N { return r.Node }
func (r ChildList[N]) isRecord() {}

func (r ChildList[N]) String() string {
	return fmt.Sprintf("childList(%v, +%d, -%d)", r.Node, len(r.Added), len(r.Removed))
}

// Attribute reports a change of attribute Name at node Target.
type Attribute[N any] struct {
	Node N
	Name string
}

// Target is part of interface Record.
func (r Attribute[N]) Target() N { return r.Node }
func (r Attribute[N]) isRecord() {}

func (r Attribute[N]) String() string {
	return fmt.Sprintf("attribute(%v, %s)", r.Node, r.Name)
}

var _ Record[int] = ChildList[int]{}
var _ Record[int] = Attribute[int]{}

// RawLog is an append-only sink for raw records. A RawLog is owned by exactly
// one observation; tree nodes hold references to it as a listener, and a
// scheduler drains it batch by batch.
//
// RawLog is not safe for concurrent use.
type RawLog[N any] struct {
	records []Record[N]
}

// NewRawLog creates an empty raw log.
func NewRawLog[N any]() *RawLog[N] {
	return &RawLog[N]{}
}

// Append adds a record at the end of the log.
func (l *RawLog[N]) Append(r Record[N]) {
	l.records = append(l.records, r)
}

// Len returns the number of records not yet taken.
func (l *RawLog[N]) Len() int {
	return len(l.records)
}

// TakeRecords removes and returns all records, in order of appending.
func (l *RawLog[N]) TakeRecords() []Record[N] {
	return l.Take(len(l.records))
}

// Take removes and returns at most n records from the front of the log.
func (l *RawLog[N]) Take(n int) []Record[N] {
	if n <= 0 || len(l.records) == 0 {
		return nil
	}
	if n > len(l.records) {
		n = len(l.records)
	}
	batch := make([]Record[N], n)
	copy(batch, l.records)
	rest := copy(l.records, l.records[n:])
	for i := rest; i < len(l.records); i++ {
		l.records[i] = nil // release references to nodes
	}
	l.records = l.records[:rest]
	return batch
}
