package route

import "strings"

// Entry is one row of the flattened route table.
type Entry struct {
	URL         string    `json:"url" yaml:"url"`
	Breadcrumbs []string  `json:"breadcrumbs,omitempty" yaml:"breadcrumbs,omitempty"`
	View        string    `json:"view,omitempty" yaml:"view,omitempty"`
	RedirectTo  string    `json:"redirect_to,omitempty" yaml:"redirect_to,omitempty"` // absolute target URL
	Match       PathMatch `json:"path_match" yaml:"path_match"`
	Depth       int       `json:"depth" yaml:"depth"`
}

// Trail returns the breadcrumb trail joined for display.
func (e Entry) Trail() string {
	return strings.Join(e.Breadcrumbs, " › ")
}

// Flatten lists every node of the tree depth-first, root included, in tree
// order. Index routes (empty path) share their parent's URL and sit one
// level deeper.
func Flatten(root Node) []Entry {
	var entries []Entry
	var walk func(n Node, parent string, crumbs []string, depth int)
	walk = func(n Node, parent string, crumbs []string, depth int) {
		url := join(parent, n.Path)
		if n.Breadcrumb != "" {
			crumbs = append(crumbs[:len(crumbs):len(crumbs)], n.Breadcrumb)
		}
		e := Entry{
			URL:         display(url),
			Breadcrumbs: crumbs,
			View:        n.View,
			Match:       n.Match(),
			Depth:       depth,
		}
		if n.IsRedirect() {
			e.RedirectTo = display(redirectURL(parent, n.RedirectTo))
		}
		entries = append(entries, e)
		for _, c := range n.Children {
			walk(c, url, crumbs, depth+1)
		}
	}
	walk(root, "", nil, 0)
	return entries
}

// redirectURL resolves a redirect target: absolute targets start with "/",
// anything else is relative to the URL of the redirect's parent.
func redirectURL(parent, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimSuffix(target, "/")
	}
	return join(parent, strings.Trim(target, "/"))
}
