package route

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// maxRedirects bounds redirect chains so a cyclic table fails instead of
// spinning.
const maxRedirects = 10

// Match is the outcome of resolving a URL against a composed tree.
type Match struct {
	URL         string            `json:"url" yaml:"url"`                                   // final URL after redirects
	Breadcrumbs []string          `json:"breadcrumbs,omitempty" yaml:"breadcrumbs,omitempty"`
	View        string            `json:"view,omitempty" yaml:"view,omitempty"`             // deepest view on the chain
	Params      map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Redirects   []string          `json:"redirects,omitempty" yaml:"redirects,omitempty"` // URLs redirected away from, in order
	Chain       []Node            `json:"-" yaml:"-"`                                       // matched nodes below the root
}

type matched struct {
	chain    []Node
	params   map[string]string
	redirect []string // target segments when a redirect fired
}

// Resolve matches url against the tree the way the navigation engine does:
// siblings are tried in order, ":name" segments capture parameters, leaves
// must consume the whole URL, and redirects restart matching from the root.
func Resolve(root Node, url string) (Match, error) {
	var m Match
	segs := split(url)
	rootSegs := split(root.Path)

	for hops := 0; ; hops++ {
		if hops > maxRedirects {
			return Match{}, fmt.Errorf("%w: %s", ErrRedirectLoop, display(url))
		}
		if len(segs) < len(rootSegs) || !slices.Equal(segs[:len(rootSegs)], rootSegs) {
			return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, display(url))
		}

		res, ok := matchList(root.Children, segs[len(rootSegs):], rootSegs)
		if !ok {
			return Match{}, fmt.Errorf("%w: %s", ErrNoMatch, display(url))
		}
		if res.redirect != nil {
			m.Redirects = append(m.Redirects, format(segs))
			segs = res.redirect
			continue
		}

		m.URL = format(segs)
		m.Chain = res.chain
		m.Params = res.params
		if root.Breadcrumb != "" {
			m.Breadcrumbs = append(m.Breadcrumbs, root.Breadcrumb)
		}
		for _, n := range res.chain {
			if n.Breadcrumb != "" {
				m.Breadcrumbs = append(m.Breadcrumbs, n.Breadcrumb)
			}
			if n.View != "" {
				m.View = n.View
			}
		}
		return m, nil
	}
}

func matchList(nodes []Node, segs, parent []string) (matched, bool) {
	for _, n := range nodes {
		own := split(n.Path)
		params, ok := consume(own, segs)
		if !ok {
			continue
		}
		rest := segs[len(own):]
		here := append(slices.Clip(parent), segs[:len(own)]...)

		if n.IsRedirect() {
			if n.Match() == PathMatchFull && len(rest) > 0 {
				continue
			}
			target := split(redirectURL(strings.Join(parent, "/"), substitute(n.RedirectTo, params)))
			return matched{redirect: append(target, rest...)}, true
		}

		if len(n.Children) > 0 {
			if sub, ok := matchList(n.Children, rest, here); ok {
				if sub.redirect != nil {
					return sub, true
				}
				sub.chain = append([]Node{n}, sub.chain...)
				sub.params = merge(params, sub.params)
				return sub, true
			}
			if len(rest) == 0 && n.View != "" {
				return matched{chain: []Node{n}, params: params}, true
			}
			continue
		}

		if len(rest) == 0 {
			return matched{chain: []Node{n}, params: params}, true
		}
	}
	return matched{}, false
}

// consume checks that pattern is a prefix of segs, capturing ":name" segments.
func consume(pattern, segs []string) (map[string]string, bool) {
	if len(pattern) > len(segs) {
		return nil, false
	}
	var params map[string]string
	for i, p := range pattern {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if params == nil {
				params = make(map[string]string)
			}
			params[name] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}

func substitute(target string, params map[string]string) string {
	if len(params) == 0 {
		return target
	}
	parts := strings.Split(target, "/")
	for i, p := range parts {
		if name, ok := strings.CutPrefix(p, ":"); ok {
			if v, found := params[name]; found {
				parts[i] = v
			}
		}
	}
	return strings.Join(parts, "/")
}

func merge(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	out := maps.Clone(a)
	maps.Copy(out, b)
	return out
}

func split(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func format(segs []string) string {
	return "/" + strings.Join(segs, "/")
}
