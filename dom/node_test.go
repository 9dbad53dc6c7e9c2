package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treewatch/mutation"
)

const testHTML = `<html><body>
<div id="d1"><span id="s1">Hello</span><span id="s2">World</span></div>
<p id="p1">text</p>
</body></html>`

func parseForTest(t *testing.T) *Node {
	doc, err := Parse(strings.NewReader(testHTML))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func byID(t *testing.T, doc *Node, id string) *Node {
	n, ok := doc.GetElementByID(id)
	if !ok {
		t.Fatalf("cannot find element #%s in test document", id)
	}
	return n
}

func TestParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.dom")
	defer teardown()
	//
	doc := parseForTest(t)
	if doc.TypeName() != "#document" {
		t.Errorf("expected root to be #document, is %s", doc.TypeName())
	}
	spans := doc.GetElementsByTagName("span")
	if len(spans) != 2 {
		t.Logf("document =\n%s", Dump(doc))
		t.Fatalf("expected 2 spans, have %d", len(spans))
	}
	if spans[0].String() != "SPAN#s1" || spans[1].String() != "SPAN#s2" {
		t.Errorf("expected spans in document order, have %v", spans)
	}
	d1 := byID(t, doc, "d1")
	if p, ok := spans[0].Parent(); !ok || p != d1 {
		t.Errorf("expected parent of s1 to be d1, is %v", p)
	}
	if next, ok := d1.NextSibling(); !ok || next.String() != "P#p1" {
		t.Errorf("expected white space between d1 and p1 to be dropped, next sibling is %v", next)
	}
}

func TestDump(t *testing.T) {
	doc := parseForTest(t)
	out := Dump(doc)
	for _, label := range []string{"#document", "DIV#d1", "SPAN#s2", `"Hello"`} {
		if !strings.Contains(out, label) {
			t.Errorf("expected dump to contain %s, does not:\n%s", label, out)
		}
	}
}

func TestAppendChildNotifiesParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.dom")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	doc := parseForTest(t)
	d1 := byID(t, doc, "d1")
	raw := mutation.NewRawLog[*Node]()
	d1.AddStructuralListener(raw)
	em := NewElement("EM")
	if err := d1.AppendChild(em); err != nil {
		t.Fatal(err)
	}
	records := raw.TakeRecords()
	if len(records) != 1 {
		t.Fatalf("expected 1 record, have %d", len(records))
	}
	cl, ok := records[0].(mutation.ChildList[*Node])
	if !ok {
		t.Fatalf("expected child list record, have %v", records[0])
	}
	if cl.Node != d1 || len(cl.Added) != 1 || cl.Added[0] != em || len(cl.Removed) != 0 {
		t.Errorf("unexpected record %v", cl)
	}
	if last := d1.Children()[2]; last != em {
		t.Errorf("expected em to be appended, last child is %v", last)
	}
}

func TestMoveReportsRemovalAtOldParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.dom")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	doc := parseForTest(t)
	d1, p1, s1 := byID(t, doc, "d1"), byID(t, doc, "p1"), byID(t, doc, "s1")
	raw := mutation.NewRawLog[*Node]()
	d1.AddStructuralListener(raw)
	p1.AddStructuralListener(raw)
	if err := p1.InsertBefore(s1, nil); err != nil {
		t.Fatal(err)
	}
	records := raw.TakeRecords()
	if len(records) != 2 {
		t.Fatalf("expected 2 records for a move, have %d", len(records))
	}
	if r := records[0].(mutation.ChildList[*Node]); r.Node != d1 || r.Removed[0] != s1 {
		t.Errorf("expected first record to remove s1 from d1, is %v", r)
	}
	if r := records[1].(mutation.ChildList[*Node]); r.Node != p1 || r.Added[0] != s1 {
		t.Errorf("expected second record to add s1 to p1, is %v", r)
	}
}

func TestInsertBeforeReference(t *testing.T) {
	doc := parseForTest(t)
	d1, s2 := byID(t, doc, "d1"), byID(t, doc, "s2")
	b := NewElement("b")
	if err := d1.InsertBefore(b, s2); err != nil {
		t.Fatal(err)
	}
	if i := d1.Node.IndexOfChild(&b.Node); i != 1 {
		t.Errorf("expected b at position 1, is at %d", i)
	}
	if err := d1.InsertBefore(NewElement("i"), byID(t, doc, "p1")); err != ErrNotAChild {
		t.Errorf("expected ErrNotAChild for foreign reference node, got %v", err)
	}
	if err := b.AppendChild(d1); err != ErrHierarchy {
		t.Errorf("expected ErrHierarchy when inserting an ancestor, got %v", err)
	}
	if err := d1.RemoveChild(byID(t, doc, "p1")); err != ErrNotAChild {
		t.Errorf("expected ErrNotAChild when removing a non-child, got %v", err)
	}
}

func TestAttributeListenerCoversSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.dom")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	doc := parseForTest(t)
	d1, s1 := byID(t, doc, "d1"), byID(t, doc, "s1")
	raw := mutation.NewRawLog[*Node]()
	doc.AddAttributeListener(raw)
	d1.AddAttributeListener(raw) // same listener twice on the ancestor chain
	s1.SetAttribute("CLASS", "x")
	records := raw.TakeRecords()
	if len(records) != 1 {
		t.Fatalf("expected exactly 1 attribute record, have %d", len(records))
	}
	if r := records[0].(mutation.Attribute[*Node]); r.Node != s1 || r.Name != "class" {
		t.Errorf("unexpected record %v", r)
	}
	if v, _ := s1.Attribute("class"); v != "x" {
		t.Errorf("expected class to be x, is %q", v)
	}
	// nodes added later are covered as well
	em := NewElement("em")
	d1.AppendChild(em)
	em.SetAttribute("title", "t")
	if raw.Len() != 1 {
		t.Errorf("expected attribute change of new node to be reported, have %d records", raw.Len())
	}
}

func TestRemoveAttribute(t *testing.T) {
	doc := parseForTest(t)
	s1 := byID(t, doc, "s1")
	raw := mutation.NewRawLog[*Node]()
	s1.AddAttributeListener(raw)
	s1.RemoveAttribute("class") // not present
	if raw.Len() != 0 {
		t.Errorf("expected removal of absent attribute not to be reported")
	}
	s1.RemoveAttribute("id")
	if raw.Len() != 1 {
		t.Errorf("expected removal of id to be reported")
	}
	if _, ok := s1.Attribute("id"); ok {
		t.Error("expected id to be removed")
	}
}

func TestListenerRegistration(t *testing.T) {
	n := NewElement("div")
	raw := mutation.NewRawLog[*Node]()
	n.AddStructuralListener(raw)
	n.AddStructuralListener(raw)
	n.AddAttributeListener(raw)
	if s, a := n.ListenerCount(); s != 1 || a != 1 {
		t.Errorf("expected 1/1 listeners, have %d/%d", s, a)
	}
	n.RemoveStructuralListener(raw)
	n.RemoveAttributeListener(raw)
	n.RemoveAttributeListener(raw)
	if s, a := n.ListenerCount(); s != 0 || a != 0 {
		t.Errorf("expected 0/0 listeners, have %d/%d", s, a)
	}
}

func TestTypeNames(t *testing.T) {
	if NewElement("Div").TypeName() != "DIV" {
		t.Error("expected element type name to be upper case")
	}
	if NewText("x").TypeName() != "#text" {
		t.Error("expected text node to be named #text")
	}
	if NewElement("span").HTMLNode().DataAtom.String() != "span" {
		t.Error("expected tag atom to be set for known tags")
	}
}
