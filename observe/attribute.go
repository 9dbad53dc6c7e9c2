package observe

import (
	"fmt"

	"github.com/npillmayer/treewatch/mutation"
)

// attributeObservation reports changes of one attribute of elements
// matching selector. Structural listeners are attached once, when the
// observation starts; they serve to classify the lifecycle of nodes within
// a batch only. The attribute listener sits at the observed root and covers
// the live subtree.
type attributeObservation[N Node[N]] struct {
	selector  Selector
	attribute string
	log       mutation.Log[N]
	raw       *mutation.RawLog[N]
	root      N
	listeners *listenerSet[N]
}

// ObserveAttribute starts reporting changes of attribute at elements
// matching selector in the tree below r. Events are appended to log.
// Attribute names are compared as given.
// Registering the same selector, attribute and log twice has no effect.
func (r *Root[N]) ObserveAttribute(selector, attribute string, log mutation.Log[N]) error {
	sel, err := ParseSelector(selector)
	if err != nil {
		tracer().Errorf("observe: %v", err)
		return err
	}
	if log == nil {
		return ErrNilLog
	}
	if r.registry.findAttribute(sel, attribute, log) >= 0 {
		return nil
	}
	o := &attributeObservation[N]{
		selector:  sel,
		attribute: attribute,
		log:       log,
		raw:       mutation.NewRawLog[N](),
		root:      r.node,
	}
	o.listeners = newListenerSet(o.raw)
	o.listeners.attachSubtree(r.node)
	r.node.AddAttributeListener(o.raw)
	r.scheduler.Register(o.raw, o.reconcile)
	r.registry.addAttribute(o)
	tracer().Debugf("observe: attribute observation for %s[%s]", sel, attribute)
	return nil
}

// StopObservingAttribute ends an observation started with ObserveAttribute.
// If there is no such observation, nothing happens.
func (r *Root[N]) StopObservingAttribute(selector, attribute string, log mutation.Log[N]) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return
	}
	if i := r.registry.findAttribute(sel, attribute, log); i >= 0 {
		r.removeAttributeObservation(i)
	}
}

func (r *Root[N]) removeAttributeObservation(i int) {
	o := r.registry.removeAttribute(i)
	r.scheduler.Release(o.raw)
	o.listeners.detachAll()
	o.root.RemoveAttributeListener(o.raw)
	tracer().Debugf("observe: stopped attribute observation for %s[%s]", o.selector, o.attribute)
}

// reconcile derives the attribute events of a batch. Nodes added, removed
// or transient within the batch are not reported.
func (o *attributeObservation[N]) reconcile(batch []mutation.Record[N]) {
	var targets []N
	seen := make(map[N]struct{})
	counter := NewCounter[N]()
	for _, rec := range batch {
		switch rec := rec.(type) {
		case mutation.Attribute[N]:
			if rec.Name != o.attribute || !Matches(rec.Node, o.selector) {
				continue
			}
			if _, dup := seen[rec.Node]; !dup {
				seen[rec.Node] = struct{}{}
				targets = append(targets, rec.Node)
			}
		case mutation.ChildList[N]:
			for _, n := range rec.Added {
				ForAllMatches(n, o.selector, counter.Increment)
			}
			for _, n := range rec.Removed {
				ForAllMatches(n, o.selector, counter.Decrement)
			}
		default:
			panic(fmt.Sprintf("observe: unknown mutation record %T", rec))
		}
	}
	changed := make(map[N]struct{})
	for _, nodes := range [][]N{counter.Added(), counter.Removed(), counter.Transient()} {
		for _, n := range nodes {
			changed[n] = struct{}{}
		}
	}
	reported := 0
	for _, n := range targets {
		if _, ok := changed[n]; ok {
			continue
		}
		o.log.Append(mutation.AttributeChanged[N]{Node: n, Attribute: o.attribute})
		reported++
	}
	tracer().Debugf("observe: %s[%s]: batch of %d record(s) → %d change(s) reported",
		o.selector, o.attribute, len(batch), reported)
}
