package mutation

// Log is an append-only ordered sink of semantic events.
//
// Observations are identified by, among other things, the log they write to.
// Logs are compared by interface equality, therefore implementations should
// be pointer types.
type Log[N any] interface {
	Append(Event[N])
}

// EventLog is the default implementation of Log. It keeps events in memory
// until they are drained by the client.
//
// EventLog is not safe for concurrent use.
type EventLog[N any] struct {
	events []Event[N]
}

var _ Log[int] = &EventLog[int]{}

// NewEventLog creates an empty event log.
func NewEventLog[N any]() *EventLog[N] {
	return &EventLog[N]{}
}

// Append is part of interface Log.
func (l *EventLog[N]) Append(e Event[N]) {
	l.events = append(l.events, e)
}

// Len returns the number of events currently held.
func (l *EventLog[N]) Len() int {
	return len(l.events)
}

// Events returns a copy of the events currently held, in order of appending.
func (l *EventLog[N]) Events() []Event[N] {
	events := make([]Event[N], len(l.events))
	copy(events, l.events)
	return events
}

// Drain returns all events held and empties the log.
func (l *EventLog[N]) Drain() []Event[N] {
	events := l.events
	l.events = nil
	return events
}
