package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/treewatch/dom"
	"github.com/npillmayer/treewatch/mutation"
	"github.com/npillmayer/treewatch/observe"
	"github.com/npillmayer/treewatch/workqueue"
	"gopkg.in/yaml.v3"
)

// Scenario is a list of observations to register and a script of tree
// mutations to replay.
type Scenario struct {
	Observe []Observation `yaml:"observe"`
	Steps   []Step        `yaml:"steps"`
}

// Observation is either an element observation or an attribute observation.
type Observation struct {
	Element   string         `yaml:"element,omitempty"`
	Attribute *AttributeSpec `yaml:"attribute,omitempty"`
}

// AttributeSpec selects an attribute of elements.
type AttributeSpec struct {
	Selector string `yaml:"selector"`
	Name     string `yaml:"name"`
}

// Step is a single mutation of the tree, or a flush of the work queue.
// Exactly one field has to be set.
type Step struct {
	Append     *AppendStep `yaml:"append,omitempty"`
	Remove     *NodeRef    `yaml:"remove,omitempty"`
	SetAttr    *AttrStep   `yaml:"set-attr,omitempty"`
	RemoveAttr *AttrStep   `yaml:"remove-attr,omitempty"`
	Flush      bool        `yaml:"flush,omitempty"`
}

// AppendStep creates an element (or a text node, if Tag is empty) and
// appends it to the node with id Parent.
type AppendStep struct {
	Parent string `yaml:"parent"`
	Tag    string `yaml:"tag,omitempty"`
	ID     string `yaml:"id,omitempty"`
	Text   string `yaml:"text,omitempty"`
}

// NodeRef addresses a node by its id attribute.
type NodeRef struct {
	ID string `yaml:"id"`
}

// AttrStep sets or removes an attribute of a node.
type AttrStep struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Value string `yaml:"value,omitempty"`
}

var errEmptyStep = errors.New("step has no operation")

// ParseScenario decodes a scenario from YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &sc, nil
}

// LoadScenario reads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return ParseScenario(data)
}

// --- Replay ----------------------------------------------------------------

type observed struct {
	label string
	log   *mutation.EventLog[*dom.Node]
}

// Runner replays scenarios against a document.
type Runner struct {
	doc     *dom.Node
	queue   *workqueue.Queue[*dom.Node]
	root    *observe.Root[*dom.Node]
	nodes   map[string]*dom.Node
	logs    []observed
	out     io.Writer
	flushes int
}

// NewRunner prepares to replay scenarios against doc, writing events to out.
func NewRunner(doc *dom.Node, out io.Writer, opts ...workqueue.Option) *Runner {
	q := workqueue.New[*dom.Node](opts...)
	r := &Runner{
		doc:   doc,
		queue: q,
		root:  observe.New[*dom.Node](doc, q),
		nodes: make(map[string]*dom.Node),
		out:   out,
	}
	for _, n := range doc.Find(dom.NodeIsElement) {
		if id, ok := n.Attribute("id"); ok && id != "" {
			r.nodes[id] = n
		}
	}
	return r
}

// Run registers the observations of sc, replays its steps and flushes the
// work queue at the end. Observations are stopped when Run returns.
func (r *Runner) Run(sc *Scenario) error {
	defer r.root.Close()
	for i, o := range sc.Observe {
		if err := r.register(o); err != nil {
			return fmt.Errorf("observation #%d: %w", i+1, err)
		}
	}
	for i, step := range sc.Steps {
		if err := r.apply(step); err != nil {
			return fmt.Errorf("step #%d: %w", i+1, err)
		}
	}
	r.flush()
	return nil
}

func (r *Runner) register(o Observation) error {
	log := mutation.NewEventLog[*dom.Node]()
	switch {
	case o.Element != "":
		if err := r.root.ObserveElement(o.Element, log); err != nil {
			return err
		}
		r.logs = append(r.logs, observed{label: o.Element, log: log})
	case o.Attribute != nil:
		a := o.Attribute
		if err := r.root.ObserveAttribute(a.Selector, a.Name, log); err != nil {
			return err
		}
		r.logs = append(r.logs, observed{label: a.Selector + "[" + a.Name + "]", log: log})
	default:
		return errors.New("observation needs an element selector or an attribute")
	}
	return nil
}

func (r *Runner) apply(step Step) error {
	switch {
	case step.Append != nil:
		return r.appendNode(step.Append)
	case step.Remove != nil:
		n, err := r.node(step.Remove.ID)
		if err != nil {
			return err
		}
		n.Remove()
	case step.SetAttr != nil:
		n, err := r.node(step.SetAttr.ID)
		if err != nil {
			return err
		}
		n.SetAttribute(step.SetAttr.Name, step.SetAttr.Value)
	case step.RemoveAttr != nil:
		n, err := r.node(step.RemoveAttr.ID)
		if err != nil {
			return err
		}
		n.RemoveAttribute(step.RemoveAttr.Name)
	case step.Flush:
		r.flush()
	default:
		return errEmptyStep
	}
	return nil
}

func (r *Runner) appendNode(a *AppendStep) error {
	parent, err := r.node(a.Parent)
	if err != nil {
		return err
	}
	var n *dom.Node
	if a.Tag == "" {
		n = dom.NewText(a.Text)
	} else {
		n = dom.NewElement(a.Tag)
		if a.ID != "" {
			n.SetAttribute("id", a.ID) // detached, nobody is listening yet
			r.nodes[a.ID] = n
		}
		if a.Text != "" {
			n.AppendChild(dom.NewText(a.Text))
		}
	}
	return parent.AppendChild(n)
}

func (r *Runner) node(id string) (*dom.Node, error) {
	if n, ok := r.nodes[id]; ok {
		return n, nil
	}
	return nil, fmt.Errorf("no node with id %q", id)
}

func (r *Runner) flush() {
	if r.queue.FlushAll() == 0 {
		return
	}
	r.flushes++
	for _, o := range r.logs {
		for _, e := range o.log.Drain() {
			fmt.Fprintf(r.out, "%d %-16s %-9s %v", r.flushes, o.label, e.Kind(), e.Element())
			if a, ok := e.(mutation.AttributeChanged[*dom.Node]); ok {
				fmt.Fprintf(r.out, " %s", a.Attribute)
			}
			fmt.Fprintln(r.out)
		}
	}
}
