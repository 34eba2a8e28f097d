// Package route models the console's navigation tree and composes it from
// the route lists contributed by feature modules.
//
// The tree is built once at start-up by [Compose] and is read-only from then
// on. Everything else in this package (Flatten, Resolve, Suggest) inspects a
// composed tree without modifying it.
package route

// PathMatch controls whether a node matches only the full remaining URL or
// any URL it is a prefix of.
type PathMatch string

const (
	// PathMatchPrefix matches when the node's path is a prefix of the
	// remaining URL. It is the zero value.
	PathMatchPrefix PathMatch = "prefix"
	// PathMatchFull matches only when the node's path consumes the whole
	// remaining URL.
	PathMatchFull PathMatch = "full"
)

func (m PathMatch) normalize() PathMatch {
	switch m {
	case PathMatchFull:
		return PathMatchFull
	default:
		return PathMatchPrefix
	}
}

func (m PathMatch) String() string {
	return string(m.normalize())
}

// Node is one addressable location in the navigation tree.
type Node struct {
	Path       string    `yaml:"path" json:"path"`
	Breadcrumb string    `yaml:"breadcrumb,omitempty" json:"breadcrumb,omitempty"`
	View       string    `yaml:"view,omitempty" json:"view,omitempty"`             // view component activated by the navigation engine
	RedirectTo string    `yaml:"redirect_to,omitempty" json:"redirect_to,omitempty"` // non-empty makes the node a pure redirect
	PathMatch  PathMatch `yaml:"path_match,omitempty" json:"path_match,omitempty"`
	Children   []Node    `yaml:"children,omitempty" json:"children,omitempty"`
}

// Root describes the root of the composed tree.
type Root struct {
	Path       string
	Breadcrumb string
}

// IsRedirect reports whether the node is a pure redirect with no view.
func (n Node) IsRedirect() bool {
	return n.RedirectTo != ""
}

// Match returns the node's effective match mode.
func (n Node) Match() PathMatch {
	return n.PathMatch.normalize()
}

// Clone returns a deep copy of the node and its subtree.
func (n Node) Clone() Node {
	c := n
	c.Children = cloneList(n.Children)
	return c
}

// cloneList deep-copies a sibling list. A nil list stays nil so composed
// trees compare equal to their literal definitions.
func cloneList(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
