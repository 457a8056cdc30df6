package layout

import (
	"errors"
	"fmt"
)

// Category is a sentinel error that also matches its parent categories
// under errors.Is.
type Category struct {
	msg     string
	parents []error
}

func newCategory(msg string, parents ...error) *Category {
	return &Category{msg: msg, parents: parents}
}

func (c *Category) Error() string {
	return c.msg
}

// Is reports whether target is one of c's ancestor categories.
func (c *Category) Is(target error) bool {
	for _, p := range c.parents {
		if errors.Is(p, target) {
			return true
		}
	}
	return false
}

// Root category
var (
	// ErrBoxLayout matches every error produced by this library.
	ErrBoxLayout = newCategory("boxlayout error")
)

// Value validation errors
var (
	// ErrInvalidValue matches any rejected value-primitive construction.
	ErrInvalidValue = newCategory("invalid value", ErrBoxLayout)

	// ErrInvalidPercent indicates a percent outside [0, 1].
	ErrInvalidPercent = newCategory("invalid percent", ErrInvalidValue)

	// ErrInvalidLength indicates a NaN length.
	ErrInvalidLength = newCategory("invalid length", ErrInvalidValue)

	// ErrInvalidGridLine indicates a grid line index of zero.
	ErrInvalidGridLine = newCategory("invalid grid line", ErrInvalidValue)

	// ErrInvalidGridSpan indicates a grid span of less than one.
	ErrInvalidGridSpan = newCategory("invalid grid span", ErrInvalidValue)
)

// Tree errors
var (
	// ErrTree matches every failed tree operation.
	ErrTree = newCategory("tree error", ErrBoxLayout)

	// ErrNotFound matches lookups of identifiers that do not exist.
	ErrNotFound = newCategory("key not found")

	// ErrInvalidNodeID indicates a stale or unknown node identifier.
	ErrInvalidNodeID = newCategory("invalid node id", ErrTree, ErrNotFound)

	// ErrInvalidParentNode indicates the parent argument of a mutation is unknown.
	ErrInvalidParentNode = newCategory("invalid parent node", ErrTree)

	// ErrInvalidChildNode indicates a child argument of a mutation is unknown.
	ErrInvalidChildNode = newCategory("invalid child node", ErrTree)

	// ErrChildIndexOutOfBounds indicates a child index past the child count.
	ErrChildIndexOutOfBounds = newCategory("child index out of bounds", ErrTree)

	// ErrInvalidInputNode indicates a node rejected for structural reasons,
	// such as a mutation that would create a cycle.
	ErrInvalidInputNode = newCategory("invalid input node", ErrTree)
)

// ValueError reports a rejected value-primitive construction.
type ValueError struct {
	Kind  *Category
	Value any
	Msg   string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s: %s, got %v", e.Kind, e.Msg, e.Value)
}

// Unwrap returns the error category.
func (e *ValueError) Unwrap() error {
	return e.Kind
}
