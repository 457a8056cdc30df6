package boxlayout

import (
	"fmt"

	"github.com/charmbracelet/lipgloss/tree"
)

// PrintTree renders the subtree rooted at root as an indented outline of
// node IDs, display modes, layouts and dirty flags. The format is meant
// for people and may change.
func (t *Tree[C]) PrintTree(root NodeID) (string, error) {
	if _, err := t.lookup("print_tree", root, ErrInvalidNodeID); err != nil {
		return "", err
	}
	return t.outline(root).String(), nil
}

func (t *Tree[C]) outline(id NodeID) *tree.Tree {
	n, _ := t.get(id)

	l := n.unrounded
	if t.rounding {
		l = n.rounded
	}
	label := fmt.Sprintf("%s [%s] x=%g y=%g w=%g h=%g",
		n.style.Display(), id, l.Location.X, l.Location.Y, l.Size.Width, l.Size.Height)
	if n.dirty {
		label += " dirty"
	}

	out := tree.Root(label).Enumerator(tree.RoundedEnumerator)
	for _, c := range n.children {
		if _, ok := t.get(c); ok {
			out.Child(t.outline(c))
		}
	}
	return out
}
