package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/treewatch/mutation"
	"github.com/npillmayer/treewatch/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNotAChild is returned if a reference node is not a child of the node
// operated on.
var ErrNotAChild = errors.New("node is not a child of this node")

// ErrHierarchy is returned if inserting a node would create a cycle.
var ErrHierarchy = errors.New("node may not be inserted below itself")

// ErrNilNode is returned if a nil node is passed to a mutating operation.
var ErrNilNode = errors.New("node is nil")

// RawLog is the type of listeners registered at dom nodes.
type RawLog = mutation.RawLog[*Node]

// Node is a node of an observable document.
type Node struct {
	tree.Node[*Node]            // we build on top of general purpose tree
	htmlNode         *html.Node // node type, tag and attributes
	structural       []*RawLog  // listeners for changes of the children list
	attribute        []*RawLog  // listeners for attribute changes in this subtree
}

func newNode(h *html.Node) *Node {
	n := &Node{htmlNode: h}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NewElement creates a detached element node for a tag. Tag names are
// case-insensitive.
func NewElement(tag string) *Node {
	tag = strings.ToLower(tag)
	return newNode(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return newNode(&html.Node{Type: html.TextNode, Data: text})
}

// NewDocument creates an empty document node.
func NewDocument() *Node {
	return newNode(&html.Node{Type: html.DocumentNode})
}

// HTMLNode returns the HTML node holding the data of this node.
// Its tree links are not maintained.
func (n *Node) HTMLNode() *html.Node {
	return n.htmlNode
}

// NodeType returns the type of the underlying HTML node.
func (n *Node) NodeType() html.NodeType {
	return n.htmlNode.Type
}

// TypeName returns the upper-case tag name for elements and a
// '#'-prefixed name for other kinds of nodes.
func (n *Node) TypeName() string {
	switch n.htmlNode.Type {
	case html.ElementNode:
		return strings.ToUpper(n.htmlNode.Data)
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#unknown"
}

// Text returns the character data of text and comment nodes.
func (n *Node) Text() string {
	if n.htmlNode.Type == html.ElementNode {
		return ""
	}
	return n.htmlNode.Data
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if id, ok := n.Attribute("id"); ok && id != "" {
		return n.TypeName() + "#" + id
	}
	return n.TypeName()
}

// --- Navigation ------------------------------------------------------------

func payload(tn *tree.Node[*Node], ok bool) (*Node, bool) {
	if !ok || tn == nil {
		return nil, false
	}
	return tn.Payload, true
}

// Parent returns the parent node, if any.
func (n *Node) Parent() (*Node, bool) {
	p := n.Node.Parent()
	return payload(p, p != nil)
}

// Children returns a snapshot of the children of n.
func (n *Node) Children() []*Node {
	tchildren := n.Node.Children()
	children := make([]*Node, len(tchildren))
	for i, ch := range tchildren {
		children[i] = ch.Payload
	}
	return children
}

// FirstChild returns the first child of n, if any.
func (n *Node) FirstChild() (*Node, bool) {
	return payload(n.Node.FirstChild())
}

// NextSibling returns the next sibling of n, if any.
func (n *Node) NextSibling() (*Node, bool) {
	return payload(n.Node.NextSibling())
}

// PreviousSibling returns the previous sibling of n, if any.
func (n *Node) PreviousSibling() (*Node, bool) {
	return payload(n.Node.PreviousSibling())
}

// Contains is true if other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for other != nil {
		if other == n {
			return true
		}
		other, _ = other.Parent()
	}
	return false
}

// --- Structural changes ----------------------------------------------------

// AppendChild appends ch as the last child of n. If ch is part of a tree,
// it is removed from there first.
func (n *Node) AppendChild(ch *Node) error {
	return n.InsertBefore(ch, nil)
}

// InsertBefore inserts ch as a child of n, right before child ref.
// If ref is nil, ch is appended. If ch is part of a tree, it is removed
// from there first.
func (n *Node) InsertBefore(ch, ref *Node) error {
	if ch == nil {
		return ErrNilNode
	}
	if ch.Contains(n) {
		return ErrHierarchy
	}
	if ref == ch {
		ref, _ = ch.NextSibling()
	}
	if ref != nil && n.Node.IndexOfChild(&ref.Node) < 0 {
		return ErrNotAChild
	}
	if old, ok := ch.Parent(); ok {
		old.removeChild(ch)
	}
	pos := -1
	if ref != nil {
		pos = n.Node.IndexOfChild(&ref.Node)
	}
	n.Node.InsertChildAt(pos, &ch.Node)
	tracer().Debugf("dom: %v inserted into %v at %d", ch, n, pos)
	n.notifyChildList(mutation.ChildList[*Node]{Node: n, Added: []*Node{ch}})
	return nil
}

// RemoveChild removes child ch from n.
func (n *Node) RemoveChild(ch *Node) error {
	if ch == nil {
		return ErrNilNode
	}
	if p, ok := ch.Parent(); !ok || p != n {
		return ErrNotAChild
	}
	n.removeChild(ch)
	return nil
}

// Remove removes n from its parent, if any.
func (n *Node) Remove() {
	if p, ok := n.Parent(); ok {
		p.removeChild(n)
	}
}

func (n *Node) removeChild(ch *Node) {
	ch.Node.Isolate()
	tracer().Debugf("dom: %v removed from %v", ch, n)
	n.notifyChildList(mutation.ChildList[*Node]{Node: n, Removed: []*Node{ch}})
}

// --- Attributes ------------------------------------------------------------

// Attribute returns the value of attribute name.
func (n *Node) Attribute(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range n.htmlNode.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Attributes returns a copy of the attributes of n.
func (n *Node) Attributes() []html.Attribute {
	attrs := make([]html.Attribute, len(n.htmlNode.Attr))
	copy(attrs, n.htmlNode.Attr)
	return attrs
}

// SetAttribute sets attribute name to value. Attribute names are
// case-insensitive and stored in lower case. Setting an attribute is
// reported even if its value does not change.
func (n *Node) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	found := false
	for i := range n.htmlNode.Attr {
		if n.htmlNode.Attr[i].Key == name {
			n.htmlNode.Attr[i].Val = value
			found = true
			break
		}
	}
	if !found {
		n.htmlNode.Attr = append(n.htmlNode.Attr, html.Attribute{Key: name, Val: value})
	}
	n.notifyAttribute(name)
}

// RemoveAttribute removes attribute name. Removing an attribute which is
// not present is not reported.
func (n *Node) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range n.htmlNode.Attr {
		if a.Key == name {
			n.htmlNode.Attr = append(n.htmlNode.Attr[:i], n.htmlNode.Attr[i+1:]...)
			n.notifyAttribute(name)
			return
		}
	}
}

// --- Listeners -------------------------------------------------------------

// AddStructuralListener registers a listener for changes of the children
// of n. Registering a listener twice has no effect.
func (n *Node) AddStructuralListener(l *RawLog) {
	n.structural = addListener(n.structural, l)
}

// RemoveStructuralListener unregisters a structural listener.
func (n *Node) RemoveStructuralListener(l *RawLog) {
	n.structural = removeListener(n.structural, l)
}

// AddAttributeListener registers a listener for attribute changes of n
// and of every node below n. Registering a listener twice has no effect.
func (n *Node) AddAttributeListener(l *RawLog) {
	n.attribute = addListener(n.attribute, l)
}

// RemoveAttributeListener unregisters an attribute listener.
func (n *Node) RemoveAttributeListener(l *RawLog) {
	n.attribute = removeListener(n.attribute, l)
}

// ListenerCount returns the number of structural and attribute listeners
// registered at n.
func (n *Node) ListenerCount() (structural int, attribute int) {
	return len(n.structural), len(n.attribute)
}

func (n *Node) notifyChildList(rec mutation.ChildList[*Node]) {
	for _, l := range n.structural {
		l.Append(rec)
	}
}

func (n *Node) notifyAttribute(name string) {
	rec := mutation.Attribute[*Node]{Node: n, Name: name}
	var notified []*RawLog
	for a := n; a != nil; a, _ = a.Parent() {
		for _, l := range a.attribute {
			if !containsListener(notified, l) {
				notified = append(notified, l)
				l.Append(rec)
			}
		}
	}
	if len(notified) > 0 {
		tracer().Debugf("dom: attribute %s of %v reported to %d listener(s)", name, n, len(notified))
	}
}

func containsListener(ls []*RawLog, l *RawLog) bool {
	for _, x := range ls {
		if x == l {
			return true
		}
	}
	return false
}

func addListener(ls []*RawLog, l *RawLog) []*RawLog {
	if l == nil || containsListener(ls, l) {
		return ls
	}
	return append(ls, l)
}

func removeListener(ls []*RawLog, l *RawLog) []*RawLog {
	for i, x := range ls {
		if x == l {
			return append(ls[:i], ls[i+1:]...)
		}
	}
	return ls
}

// GoString is used by the fmt package for %#v.
func (n *Node) GoString() string {
	return fmt.Sprintf("dom.Node(%s)", n.String())
}
