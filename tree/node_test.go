package tree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func createTreeForTest() (*Node[string], map[string]*Node[string]) {
	nodes := map[string]*Node[string]{}
	for _, name := range []string{"root", "a", "b", "c", "a1", "a2"} {
		nodes[name] = NewNode(name)
	}
	nodes["root"].AddChild(nodes["a"]).AddChild(nodes["b"]).AddChild(nodes["c"])
	nodes["a"].AddChild(nodes["a1"]).AddChild(nodes["a2"])
	return nodes["root"], nodes
}

func TestNodeAddChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.tree")
	defer teardown()
	//
	root, nodes := createTreeForTest()
	if root.ChildCount() != 3 {
		t.Fatalf("expected root to have 3 children, has %d", root.ChildCount())
	}
	if nodes["a1"].Parent() != nodes["a"] {
		t.Errorf("expected parent of a1 to be a, is %v", nodes["a1"].Parent())
	}
	if i := root.IndexOfChild(nodes["c"]); i != 2 {
		t.Errorf("expected c to be child #2 of root, is #%d", i)
	}
}

func TestNodeIsolateCompactsChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.tree")
	defer teardown()
	//
	root, nodes := createTreeForTest()
	nodes["b"].Isolate()
	if root.ChildCount() != 2 {
		t.Fatalf("expected root to have 2 children after isolating b, has %d", root.ChildCount())
	}
	if nodes["b"].Parent() != nil {
		t.Error("expected isolated node to have no parent, has one")
	}
	if next, ok := nodes["a"].NextSibling(); !ok || next != nodes["c"] {
		t.Errorf("expected next sibling of a to be c, is %v", next)
	}
}

func TestNodeMoveChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.tree")
	defer teardown()
	//
	root, nodes := createTreeForTest()
	root.InsertChildAt(0, nodes["a2"])
	if nodes["a"].ChildCount() != 1 {
		t.Errorf("expected a to have lost child a2, has %d children", nodes["a"].ChildCount())
	}
	if first, _ := root.FirstChild(); first != nodes["a2"] {
		t.Errorf("expected a2 to be first child of root, is %v", first)
	}
	if prev, ok := nodes["a"].PreviousSibling(); !ok || prev != nodes["a2"] {
		t.Errorf("expected previous sibling of a to be a2, is %v", prev)
	}
}

func TestNodeSiblingsAtBorders(t *testing.T) {
	root, nodes := createTreeForTest()
	if _, ok := root.NextSibling(); ok {
		t.Error("did not expect root to have a next sibling")
	}
	if _, ok := nodes["c"].NextSibling(); ok {
		t.Error("did not expect last child to have a next sibling")
	}
	if _, ok := nodes["a"].PreviousSibling(); ok {
		t.Error("did not expect first child to have a previous sibling")
	}
	if _, ok := nodes["c"].FirstChild(); ok {
		t.Error("did not expect leaf to have a first child")
	}
}

func TestTopDownDocumentOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	root, _ := createTreeForTest()
	var visited []string
	err := TopDown(root, func(n, parent *Node[string], position int) error {
		visited = append(visited, n.Payload)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"root", "a", "a1", "a2", "b", "c"}
	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes visited, have %v", len(expected), visited)
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("expected visit #%d to be %s, is %s", i, expected[i], visited[i])
		}
	}
}

func TestTopDownAbortsBranch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treewatch.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	root, _ := createTreeForTest()
	stop := errors.New("stop")
	var visited []string
	err := TopDown(root, func(n, parent *Node[string], position int) error {
		visited = append(visited, n.Payload)
		if n.Payload == "a" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected error from action to be returned, is %v", err)
	}
	if len(visited) != 4 { // root, a, b, c
		t.Errorf("expected branch below a to be skipped, visited %v", visited)
	}
}

func TestTopDownToleratesRestructuring(t *testing.T) {
	root, nodes := createTreeForTest()
	count := 0
	TopDown(root, func(n, parent *Node[string], position int) error {
		count++
		if n == nodes["a"] {
			nodes["c"].Isolate()
		}
		return nil
	})
	if count != 6 {
		t.Errorf("expected traversal over snapshot to visit 6 nodes, visited %d", count)
	}
}

func TestTopDownOnEmptyTree(t *testing.T) {
	if err := TopDown[string](nil, func(*Node[string], *Node[string], int) error { return nil }); err != ErrEmptyTree {
		t.Errorf("expected ErrEmptyTree, got %v", err)
	}
	if err := TopDown(NewNode("x"), nil); err != ErrInvalidAction {
		t.Errorf("expected ErrInvalidAction, got %v", err)
	}
}
