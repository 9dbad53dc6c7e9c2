package observe

import (
	"strings"

	"github.com/andybalholm/cascadia"
)

// Wildcard is the selector matching any node.
const Wildcard = "*"

// Selector is a validated, case-normalized selector.
// The zero value is not a valid selector.
type Selector struct {
	name string // upper case tag name or Wildcard
}

// IsValidSelector is true if s is the wildcard or consists of letters only.
func IsValidSelector(s string) bool {
	if s == Wildcard {
		return true
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// ParseSelector validates s and normalizes it to upper case.
// If s is not a valid selector, an *InvalidSelectorError is returned.
func ParseSelector(s string) (Selector, error) {
	if IsValidSelector(s) {
		return Selector{name: strings.ToUpper(s)}, nil
	}
	err := &InvalidSelectorError{Selector: s}
	switch {
	case s == "":
		err.Reason = "selector is empty"
	default:
		if _, cerr := cascadia.Compile(s); cerr != nil {
			err.Reason = "selector is malformed"
			err.Cause = cerr
		} else {
			err.Reason = "selector is not supported, expected '*' or a single tag name"
		}
	}
	return Selector{}, err
}

// MustParseSelector is like ParseSelector, but panics on invalid selectors.
func MustParseSelector(s string) Selector {
	sel, err := ParseSelector(s)
	if err != nil {
		panic(err)
	}
	return sel
}

// IsWildcard is true if sel matches any node.
func (sel Selector) IsWildcard() bool {
	return sel.name == Wildcard
}

func (sel Selector) String() string {
	return sel.name
}

// Matches is true if sel is the wildcard or if the type name of node equals
// the (normalized) selector.
func Matches[N Node[N]](node N, sel Selector) bool {
	return sel.IsWildcard() || node.TypeName() == sel.name
}

// ForAllMatches calls fn for root, if it matches sel, and for every
// matching node below root, in document order.
func ForAllMatches[N Node[N]](root N, sel Selector, fn func(N)) {
	walkSubtree(root, func(n N) {
		if Matches(n, sel) {
			fn(n)
		}
	})
}

// walkSubtree visits root and all of its descendants in document order.
// The children of every node are collected before descending into them.
func walkSubtree[N Node[N]](root N, visit func(N)) {
	visit(root)
	for _, ch := range root.Children() {
		walkSubtree(ch, visit)
	}
}
