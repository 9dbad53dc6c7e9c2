package dom

import (
	"strconv"

	tp "github.com/xlab/treeprint"
)

// Dump renders the subtree rooted at n as a tree diagram, for debugging.
func Dump(n *Node) string {
	p := tp.New()
	ppt(p, n)
	return p.String()
}

func ppt(p tp.Tree, n *Node) {
	if n == nil {
		return
	}
	label := n.String()
	if NodeIsText(n) {
		label = strconv.Quote(shortText(n.Text(), 24))
	}
	if n.ChildCount() == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range n.Children() {
		ppt(branch, ch)
	}
}

func shortText(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
