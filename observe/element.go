package observe

import (
	"fmt"

	"github.com/npillmayer/treewatch/mutation"
)

// elementObservation reports elements matching selector entering or leaving
// the observed tree. Its structural listener follows the tree as subtrees
// come and go.
type elementObservation[N Node[N]] struct {
	selector  Selector
	log       mutation.Log[N]
	raw       *mutation.RawLog[N]
	listeners *listenerSet[N]
}

// ObserveElement starts reporting elements matching selector which are added
// to or removed from the tree below r. Events are appended to log.
// Registering the same selector and log twice has no effect.
func (r *Root[N]) ObserveElement(selector string, log mutation.Log[N]) error {
	sel, err := ParseSelector(selector)
	if err != nil {
		tracer().Errorf("observe: %v", err)
		return err
	}
	if log == nil {
		return ErrNilLog
	}
	if r.registry.findElement(sel, log) >= 0 {
		return nil
	}
	o := &elementObservation[N]{
		selector: sel,
		log:      log,
		raw:      mutation.NewRawLog[N](),
	}
	o.listeners = newListenerSet(o.raw)
	o.listeners.attachSubtree(r.node)
	r.scheduler.Register(o.raw, o.reconcile)
	r.registry.addElement(o)
	tracer().Debugf("observe: element observation for %s, %d node(s) listened to", sel, o.listeners.len())
	return nil
}

// StopObservingElement ends an observation started with ObserveElement.
// If there is no such observation, nothing happens.
func (r *Root[N]) StopObservingElement(selector string, log mutation.Log[N]) {
	sel, err := ParseSelector(selector)
	if err != nil {
		return
	}
	if i := r.registry.findElement(sel, log); i >= 0 {
		r.removeElementObservation(i)
	}
}

func (r *Root[N]) removeElementObservation(i int) {
	o := r.registry.removeElement(i)
	r.scheduler.Release(o.raw)
	o.listeners.detachAll()
	tracer().Debugf("observe: stopped element observation for %s", o.selector)
}

// reconcile derives the net element events of a batch.
func (o *elementObservation[N]) reconcile(batch []mutation.Record[N]) {
	counter := NewCounter[N]()
	for _, rec := range batch {
		switch rec := rec.(type) {
		case mutation.ChildList[N]:
			for _, n := range rec.Added {
				ForAllMatches(n, o.selector, counter.Increment)
				o.listeners.attachSubtree(n)
			}
			for _, n := range rec.Removed {
				ForAllMatches(n, o.selector, counter.Decrement)
				o.listeners.detachSubtree(n)
			}
		case mutation.Attribute[N]:
			// not listened for
		default:
			panic(fmt.Sprintf("observe: unknown mutation record %T", rec))
		}
	}
	added, removed := counter.Added(), counter.Removed()
	for _, n := range added {
		o.log.Append(mutation.ElementAdded[N]{Node: n})
	}
	for _, n := range removed {
		o.log.Append(mutation.ElementRemoved[N]{Node: n})
	}
	tracer().Debugf("observe: %s: batch of %d record(s) → %d added, %d removed",
		o.selector, len(batch), len(added), len(removed))
}
