package route

// DefaultRedirect returns the synthetic first child of a composed root: it
// sends the bare root URL to the landing path of the first feature.
func DefaultRedirect(target string) Node {
	return Node{Path: "", RedirectTo: target, PathMatch: PathMatchFull}
}

// Compose merges the root descriptor and the feature route lists into one
// tree. Lists are taken in registration order and appended, unflattened,
// after the default redirect, so the root has 1+Σlen(list) children.
//
// The inputs are copied, never modified, and equal inputs always produce
// deep-equal trees. Any structural problem is returned as a
// *ConfigurationError and no tree is produced.
func Compose(root Root, features [][]Node) (Node, error) {
	if !validPath(root.Path) {
		return Node{}, configErr("", root.Path, ErrInvalidPath)
	}
	base := join("", root.Path)
	if len(features) == 0 || len(features[0]) == 0 {
		return Node{}, configErr(base, "", ErrNoFeatures)
	}

	size := 1
	for _, list := range features {
		size += len(list)
	}

	children := make([]Node, 0, size)
	children = append(children, DefaultRedirect(features[0][0].Path))
	for _, list := range features {
		children = append(children, cloneList(list)...)
	}

	tree := Node{
		Path:       root.Path,
		Breadcrumb: root.Breadcrumb,
		Children:   children,
	}
	if err := Validate(tree); err != nil {
		return Node{}, err
	}
	return tree, nil
}
