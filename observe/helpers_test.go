package observe

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treewatch/dom"
	"github.com/npillmayer/treewatch/mutation"
	"github.com/npillmayer/treewatch/workqueue"
)

type (
	events = []mutation.Event[*dom.Node]
	log    = mutation.EventLog[*dom.Node]
)

func parseForTest(t *testing.T, src string) *dom.Node {
	doc, err := dom.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func byID(t *testing.T, doc *dom.Node, id string) *dom.Node {
	n, ok := doc.GetElementByID(id)
	if !ok {
		t.Fatalf("cannot find element #%s in test document:\n%s", id, dom.Dump(doc))
	}
	return n
}

// fixture is an observed document with its work queue.
type fixture struct {
	doc   *dom.Node
	queue *workqueue.Queue[*dom.Node]
	root  *Root[*dom.Node]
}

func newFixture(t *testing.T, src string) (*fixture, func()) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.observe")
	tracer().SetTraceLevel(tracing.LevelError)
	doc := parseForTest(t, src)
	q := workqueue.New[*dom.Node]()
	return &fixture{doc: doc, queue: q, root: New[*dom.Node](doc, q)}, teardown
}

func added(n *dom.Node) mutation.Event[*dom.Node] {
	return mutation.ElementAdded[*dom.Node]{Node: n}
}

func removed(n *dom.Node) mutation.Event[*dom.Node] {
	return mutation.ElementRemoved[*dom.Node]{Node: n}
}

func changed(n *dom.Node, attr string) mutation.Event[*dom.Node] {
	return mutation.AttributeChanged[*dom.Node]{Node: n, Attribute: attr}
}

// listenerCounts sums up the listeners registered anywhere below n.
func listenerCounts(n *dom.Node) (structural, attribute int) {
	for _, x := range n.Find(func(*dom.Node) bool { return true }) {
		s, a := x.ListenerCount()
		structural += s
		attribute += a
	}
	return
}

// funcLog is an output log calling a function for every event.
type funcLog struct {
	f func(mutation.Event[*dom.Node])
}

func (l *funcLog) Append(e mutation.Event[*dom.Node]) { l.f(e) }
