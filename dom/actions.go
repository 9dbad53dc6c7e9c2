package dom

import (
	"strings"

	"github.com/npillmayer/treewatch/tree"
	"golang.org/x/net/html"
)

// Predicate is a function type to match against nodes of a document.
type Predicate func(n *Node) bool

// NodeIsText is a predicate to match text-nodes of a DOM.
var NodeIsText Predicate = func(n *Node) bool {
	return n.NodeType() == html.TextNode
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
var NodeIsElement Predicate = func(n *Node) bool {
	return n.NodeType() == html.ElementNode
}

// NodeHasTag returns a predicate to match elements for a (case-insensitive)
// tag name. Tag "*" matches every element.
func NodeHasTag(tag string) Predicate {
	tag = strings.ToUpper(tag)
	return func(n *Node) bool {
		return NodeIsElement(n) && (tag == "*" || n.TypeName() == tag)
	}
}

// Find collects all nodes of the subtree rooted at n (including n) which
// match a predicate, in document order.
func (n *Node) Find(predicate Predicate) []*Node {
	var result []*Node
	tree.TopDown(&n.Node, func(tn, _ *tree.Node[*Node], _ int) error {
		if predicate(tn.Payload) {
			result = append(result, tn.Payload)
		}
		return nil
	})
	return result
}

// GetElementsByTagName collects all elements below n (excluding n) with a
// given tag name, in document order.
func (n *Node) GetElementsByTagName(tag string) []*Node {
	elements := n.Find(NodeHasTag(tag))
	if len(elements) > 0 && elements[0] == n {
		elements = elements[1:]
	}
	return elements
}

// GetElementByID finds the first element of the subtree rooted at n with
// an attribute id equal to a given value.
func (n *Node) GetElementByID(id string) (*Node, bool) {
	found := n.Find(func(x *Node) bool {
		v, ok := x.Attribute("id")
		return ok && v == id
	})
	if len(found) == 0 {
		return nil, false
	}
	return found[0], true
}
