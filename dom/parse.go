package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse parses an HTML document and converts it to an observable document.
// Text nodes consisting of white space only are dropped.
func Parse(r io.Reader) (*Node, error) {
	h, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: cannot parse HTML: %w", err)
	}
	return FromHTML(h), nil
}

// FromHTML converts an HTML parse tree to an observable document.
// The data of every HTML node is copied, the HTML tree remains untouched.
func FromHTML(h *html.Node) *Node {
	if h == nil {
		return nil
	}
	n := newNode(&html.Node{
		Type:      h.Type,
		DataAtom:  h.DataAtom,
		Data:      h.Data,
		Namespace: h.Namespace,
		Attr:      append([]html.Attribute(nil), h.Attr...),
	})
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		n.Node.AddChild(&FromHTML(c).Node) // no listeners yet, no need to notify
	}
	return n
}
