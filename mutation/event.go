package mutation

import "fmt"

// Kind classifies semantic events.
type Kind int8

const (
	KindAdded     Kind = iota // element added to the watched tree
	KindRemoved               // element removed from the watched tree
	KindAttribute             // attribute of an element changed
)

func (k Kind) String() string {
	switch k {
	case KindAdded:
		return "added"
	case KindRemoved:
		return "removed"
	case KindAttribute:
		return "attribute"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a semantic mutation event, the result of reconciling a batch of
// raw records. Variants are ElementAdded, ElementRemoved and AttributeChanged.
type Event[N any] interface {
	Kind() Kind
	Element() N
	isEvent()
}

// ElementAdded reports an element which entered the watched tree.
type ElementAdded[N any] struct {
	Node N
}

func (e ElementAdded[N]) Kind() Kind { return KindAdded }
func (e ElementAdded[N]) Element() N { return e.Node }
func (e ElementAdded[N]) isEvent() {}
func (e ElementAdded[N]) String() string { return fmt.Sprintf("added %v", e.Node) }

// ElementRemoved reports an element which left the watched tree.
type ElementRemoved[N any] struct {
	Node N
}

func (e ElementRemoved[N]) Kind() Kind { return KindRemoved }
func (e ElementRemoved[N]) Element() N { return e.Node }
func (e ElementRemoved[N]) isEvent() {}
func (e ElementRemoved[N]) String() string { return fmt.Sprintf("removed %v", e.Node) }

// AttributeChanged reports a change of an attribute of an element.
type AttributeChanged[N any] struct {
	Node      N
	Attribute string
}

func (e AttributeChanged[N]) Kind() Kind { return KindAttribute }
func (e AttributeChanged[N]) Element() N { return e.Node }
func (e AttributeChanged[N]) isEvent() {}
func (e AttributeChanged[N]) String() string {
	return fmt.Sprintf("attribute %v[%s]", e.Node, e.Attribute)
}
