// Package format renders the route table for CLI display.
//
// Commands hand over route data and a writer; this package handles column
// alignment, tree connectors and markdown tables so output stays consistent
// between the routes, check and resolve commands.
package format

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/jpl-au/juggler/internal/route"
)

// label describes a single node on one line: its path, redirect target,
// breadcrumb and view.
func label(n route.Node) string {
	var b strings.Builder
	if n.Path == "" {
		b.WriteString(`""`)
	} else {
		b.WriteString(n.Path)
	}
	if n.IsRedirect() {
		fmt.Fprintf(&b, " → %s", n.RedirectTo)
	}
	if n.Match() == route.PathMatchFull {
		b.WriteString(" [full]")
	}
	if n.Breadcrumb != "" {
		fmt.Fprintf(&b, " (%s)", n.Breadcrumb)
	}
	if n.View != "" {
		fmt.Fprintf(&b, " <%s>", n.View)
	}
	return b.String()
}

// Tree prints the navigation tree with box-drawing connectors. Children are
// printed in declaration order; sibling order is navigation order.
func Tree(w io.Writer, root route.Node) error {
	top := "/" + root.Path
	if root.Breadcrumb != "" {
		top += " (" + root.Breadcrumb + ")"
	}
	if _, err := fmt.Fprintln(w, top); err != nil {
		return err
	}

	var printNode func(n route.Node, prefix string) error
	printNode = func(n route.Node, prefix string) error {
		for i, child := range n.Children {
			last := i == len(n.Children)-1

			connector := "├── "
			if last {
				connector = "└── "
			}
			if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, label(child)); err != nil {
				return err
			}

			pfx := prefix
			if last {
				pfx += "    "
			} else {
				pfx += "│   "
			}
			if err := printNode(child, pfx); err != nil {
				return err
			}
		}
		return nil
	}
	return printNode(root, "")
}

// target returns the view or redirect column for an entry.
func target(e route.Entry) string {
	switch {
	case e.RedirectTo != "":
		return "→ " + e.RedirectTo
	case e.View != "":
		return e.View
	default:
		return "-"
	}
}

// Table prints the flattened route table in aligned columns. The root row
// (depth 0) is skipped; it carries no view.
func Table(w io.Writer, entries []route.Entry) error {
	rows := body(entries)
	if len(rows) == 0 {
		return nil
	}

	maxURL := 3    // minimum "URL"
	maxTarget := 6 // minimum "TARGET"
	for _, e := range rows {
		maxURL = max(maxURL, len(e.URL))
		maxTarget = max(maxTarget, len([]rune(target(e))))
	}

	if _, err := fmt.Fprintf(w, "%-*s  %-*s  %s\n", maxURL, "URL", maxTarget, "TARGET", "BREADCRUMBS"); err != nil {
		return err
	}
	for _, e := range rows {
		t := target(e)
		pad := maxTarget - len([]rune(t))
		if _, err := fmt.Fprintf(w, "%-*s  %s%s  %s\n", maxURL, e.URL, t, strings.Repeat(" ", pad), e.Trail()); err != nil {
			return err
		}
	}
	return nil
}

// Markdown returns the flattened route table as a markdown document,
// suitable for glamour rendering or pasting into docs.
func Markdown(title string, entries []route.Entry) string {
	var b strings.Builder
	if title != "" {
		fmt.Fprintf(&b, "# %s\n\n", title)
	}
	b.WriteString("| URL | Target | Breadcrumbs |\n")
	b.WriteString("|-----|--------|-------------|\n")
	for _, e := range body(entries) {
		fmt.Fprintf(&b, "| `%s` | %s | %s |\n", e.URL, escape(target(e)), escape(e.Trail()))
	}
	return b.String()
}

// Match prints the result of resolving a URL.
func Match(w io.Writer, m route.Match) error {
	var b strings.Builder
	fmt.Fprintf(&b, "URL:         %s\n", m.URL)
	for _, r := range m.Redirects {
		fmt.Fprintf(&b, "Redirected:  %s\n", r)
	}
	if m.View != "" {
		fmt.Fprintf(&b, "View:        %s\n", m.View)
	}
	if len(m.Breadcrumbs) > 0 {
		fmt.Fprintf(&b, "Breadcrumbs: %s\n", strings.Join(m.Breadcrumbs, " › "))
	}
	for _, k := range slices.Sorted(maps.Keys(m.Params)) {
		fmt.Fprintf(&b, "Param:       %s=%s\n", k, m.Params[k])
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func body(entries []route.Entry) []route.Entry {
	rows := make([]route.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Depth > 0 {
			rows = append(rows, e)
		}
	}
	return rows
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
