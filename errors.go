package boxlayout

import (
	"fmt"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// Category is a sentinel error. A category also matches its parent
// categories under errors.Is, so ErrInvalidNodeID matches both ErrTree and
// ErrNotFound, and every category matches ErrBoxLayout.
type Category = layout.Category

// ValueError reports a rejected value-primitive construction.
type ValueError = layout.ValueError

// Error categories
var (
	ErrBoxLayout = layout.ErrBoxLayout

	ErrInvalidValue    = layout.ErrInvalidValue
	ErrInvalidPercent  = layout.ErrInvalidPercent
	ErrInvalidLength   = layout.ErrInvalidLength
	ErrInvalidGridLine = layout.ErrInvalidGridLine
	ErrInvalidGridSpan = layout.ErrInvalidGridSpan

	ErrTree                  = layout.ErrTree
	ErrNotFound              = layout.ErrNotFound
	ErrInvalidNodeID         = layout.ErrInvalidNodeID
	ErrInvalidParentNode     = layout.ErrInvalidParentNode
	ErrInvalidChildNode      = layout.ErrInvalidChildNode
	ErrChildIndexOutOfBounds = layout.ErrChildIndexOutOfBounds
	ErrInvalidInputNode      = layout.ErrInvalidInputNode
)

// TreeError reports a failed tree operation.
type TreeError struct {
	Kind  *Category // one of the tree categories
	Op    string    // operation name, e.g. "add_child"
	Node  NodeID    // the offending node
	Index int       // child index, for ErrChildIndexOutOfBounds
	Count int       // child count, for ErrChildIndexOutOfBounds
}

func (e *TreeError) Error() string {
	if e.Kind == ErrChildIndexOutOfBounds {
		return fmt.Sprintf("%s %s: %s: index %d, child count %d", e.Op, e.Node, e.Kind, e.Index, e.Count)
	}
	return fmt.Sprintf("%s %s: %s", e.Op, e.Node, e.Kind)
}

// Unwrap returns the error category.
func (e *TreeError) Unwrap() error {
	return e.Kind
}

func treeError(kind *Category, op string, id NodeID) error {
	return &TreeError{Kind: kind, Op: op, Node: id}
}

func indexError(op string, id NodeID, index, count int) error {
	return &TreeError{Kind: ErrChildIndexOutOfBounds, Op: op, Node: id, Index: index, Count: count}
}
