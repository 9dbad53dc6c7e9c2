package observe

import (
	"github.com/npillmayer/treewatch/mutation"
)

// Registry is the table of active observations of a Root.
// Lookups are linear scans; applications are expected to register a
// handful of observations per root.
type Registry[N Node[N]] struct {
	elements   []*elementObservation[N]
	attributes []*attributeObservation[N]
}

// ElementCount returns the number of active element observations.
func (r *Registry[N]) ElementCount() int {
	return len(r.elements)
}

// AttributeCount returns the number of active attribute observations.
func (r *Registry[N]) AttributeCount() int {
	return len(r.attributes)
}

func (r *Registry[N]) findElement(sel Selector, log mutation.Log[N]) int {
	for i, o := range r.elements {
		if o.selector == sel && o.log == log {
			return i
		}
	}
	return -1
}

func (r *Registry[N]) findAttribute(sel Selector, attribute string, log mutation.Log[N]) int {
	for i, o := range r.attributes {
		if o.selector == sel && o.attribute == attribute && o.log == log {
			return i
		}
	}
	return -1
}

func (r *Registry[N]) addElement(o *elementObservation[N]) {
	r.elements = append(r.elements, o)
}

func (r *Registry[N]) addAttribute(o *attributeObservation[N]) {
	r.attributes = append(r.attributes, o)
}

func (r *Registry[N]) removeElement(i int) *elementObservation[N] {
	o := r.elements[i]
	r.elements = append(r.elements[:i], r.elements[i+1:]...)
	return o
}

func (r *Registry[N]) removeAttribute(i int) *attributeObservation[N] {
	o := r.attributes[i]
	r.attributes = append(r.attributes[:i], r.attributes[i+1:]...)
	return o
}
