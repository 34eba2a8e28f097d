package route

import "strings"

// Validate checks a composed tree and returns the first problem found, in
// depth-first order, as a *ConfigurationError.
//
// Rules:
//   - no two non-redirect siblings share a path
//   - top-level nodes other than redirects have a non-empty path
//   - paths are relative: no leading, trailing or doubled slash
//   - redirects carry neither children nor a view
func Validate(root Node) error {
	if !validPath(root.Path) {
		return configErr("", root.Path, ErrInvalidPath)
	}
	base := join("", root.Path)
	if root.IsRedirect() {
		return configErr(base, "", ErrInvalidRedirect)
	}
	for _, c := range root.Children {
		if c.Path == "" && !c.IsRedirect() {
			return configErr(base, "", ErrMissingPath)
		}
	}
	return validateChildren(root, base)
}

func validateChildren(n Node, url string) error {
	seen := make(map[string]bool, len(n.Children))
	for _, c := range n.Children {
		if !validPath(c.Path) {
			return configErr(url, c.Path, ErrInvalidPath)
		}
		if c.IsRedirect() {
			if len(c.Children) > 0 || c.View != "" {
				return configErr(url, c.Path, ErrInvalidRedirect)
			}
			continue
		}
		if seen[c.Path] {
			return configErr(url, c.Path, ErrDuplicatePath)
		}
		seen[c.Path] = true

		if err := validateChildren(c, join(url, c.Path)); err != nil {
			return err
		}
	}
	return nil
}

func validPath(p string) bool {
	return !strings.HasPrefix(p, "/") && !strings.HasSuffix(p, "/") && !strings.Contains(p, "//")
}

// join appends a relative path to a URL. The empty path addresses the
// parent itself.
func join(url, path string) string {
	if path == "" {
		return url
	}
	return url + "/" + path
}

// display renders a URL, showing the bare root as "/".
func display(url string) string {
	if url == "" {
		return "/"
	}
	return url
}
