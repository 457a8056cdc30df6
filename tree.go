package boxlayout

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/grindlemire/go-boxlayout/internal/arena"
	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// NodeID identifies a node in a Tree. IDs of removed nodes are stale and
// never resolve again, even after their slot is reused.
type NodeID uint64

func (id NodeID) String() string {
	return fmt.Sprintf("NodeID(%d)", uint64(id))
}

func (id NodeID) key() arena.Key { return arena.Key(id) }

// node is the arena record behind a NodeID.
type node[C any] struct {
	style    Style
	children []NodeID

	parent    NodeID
	hasParent bool

	context    C
	hasContext bool

	dirty     bool
	cache     layout.Cache
	unrounded Layout
	rounded   Layout
	computed  bool
}

// Tree is a mutable tree of styled nodes. C is the type of the optional
// per-node context handed to the measure function.
//
// A Tree is not safe for concurrent use. Separate trees may be used from
// separate goroutines.
type Tree[C any] struct {
	nodes    *arena.Arena[node[C]]
	rounding bool
	logger   *zap.Logger
}

// New creates an empty tree.
func New[C any](opts ...TreeOption) *Tree[C] {
	cfg := defaultTreeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Tree[C]{
		nodes:    arena.New[node[C]](cfg.capacity),
		rounding: cfg.rounding,
		logger:   cfg.logger.Named("boxlayout"),
	}
}

func (t *Tree[C]) get(id NodeID) (*node[C], bool) {
	return t.nodes.Get(id.key())
}

// lookup resolves id or returns a TreeError of the given kind.
func (t *Tree[C]) lookup(op string, id NodeID, kind *Category) (*node[C], error) {
	n, ok := t.get(id)
	if !ok {
		return nil, treeError(kind, op, id)
	}
	return n, nil
}

// --- Creation ---

// NewLeaf creates a childless node.
func (t *Tree[C]) NewLeaf(style Style) NodeID {
	return NodeID(t.nodes.Insert(node[C]{style: style, dirty: true}))
}

// NewLeafWithContext creates a childless node carrying ctx for measurement.
func (t *Tree[C]) NewLeafWithContext(style Style, ctx C) NodeID {
	return NodeID(t.nodes.Insert(node[C]{style: style, context: ctx, hasContext: true, dirty: true}))
}

// NewWithChildren creates a node with the given children in order. A child
// that already has a parent is moved to the new node.
func (t *Tree[C]) NewWithChildren(style Style, children []NodeID) (NodeID, error) {
	const op = "new_with_children"
	for i, c := range children {
		if _, ok := t.get(c); !ok {
			return 0, treeError(ErrInvalidChildNode, op, c)
		}
		if slices.Contains(children[:i], c) {
			return 0, treeError(ErrInvalidInputNode, op, c)
		}
	}

	for _, c := range children {
		t.detach(c)
	}
	id := NodeID(t.nodes.Insert(node[C]{style: style, children: slices.Clone(children), dirty: true}))
	for _, c := range children {
		t.attach(c, id)
	}
	return id, nil
}

// --- Structure ---

// AddChild appends child to parent's children.
func (t *Tree[C]) AddChild(parent, child NodeID) error {
	const op = "add_child"
	p, err := t.checkAdoption(op, parent, child)
	if err != nil {
		return err
	}

	t.detach(child)
	p.children = append(p.children, child)
	t.attach(child, parent)
	t.markDirty(parent)
	return nil
}

// InsertChildAtIndex inserts child into parent's children at index.
// index may equal the child count to append. A child already under parent
// is moved; an index past the remaining children puts it last.
func (t *Tree[C]) InsertChildAtIndex(parent NodeID, index int, child NodeID) error {
	const op = "insert_child_at_index"
	p, err := t.checkAdoption(op, parent, child)
	if err != nil {
		return err
	}
	if count := len(p.children); index < 0 || index > count {
		return indexError(op, parent, index, count)
	}

	t.detach(child)
	index = min(index, len(p.children))
	p.children = slices.Insert(p.children, index, child)
	t.attach(child, parent)
	t.markDirty(parent)
	return nil
}

// RemoveChild detaches child from parent and returns it. The child stays
// alive as the root of its own subtree.
func (t *Tree[C]) RemoveChild(parent, child NodeID) (NodeID, error) {
	const op = "remove_child"
	if _, err := t.lookup(op, parent, ErrInvalidParentNode); err != nil {
		return 0, err
	}
	c, err := t.lookup(op, child, ErrInvalidChildNode)
	if err != nil {
		return 0, err
	}
	if !c.hasParent || c.parent != parent {
		return 0, treeError(ErrInvalidInputNode, op, child)
	}

	t.detach(child)
	return child, nil
}

// RemoveChildAtIndex detaches the child at index and returns it.
func (t *Tree[C]) RemoveChildAtIndex(parent NodeID, index int) (NodeID, error) {
	const op = "remove_child_at_index"
	p, err := t.lookup(op, parent, ErrInvalidParentNode)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(p.children) {
		return 0, indexError(op, parent, index, len(p.children))
	}

	child := p.children[index]
	t.detach(child)
	return child, nil
}

// ReplaceChildAtIndex puts child in place of the child at index and
// returns the replaced node, which stays alive without a parent.
func (t *Tree[C]) ReplaceChildAtIndex(parent NodeID, index int, child NodeID) (NodeID, error) {
	const op = "replace_child_at_index"
	p, err := t.checkAdoption(op, parent, child)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(p.children) {
		return 0, indexError(op, parent, index, len(p.children))
	}

	old := p.children[index]
	if old == child {
		t.markDirty(parent)
		return old, nil
	}

	t.detach(child)
	index = slices.Index(p.children, old)
	p.children[index] = child
	if o, ok := t.get(old); ok {
		o.hasParent = false
		o.parent = 0
	}
	t.attach(child, parent)
	t.markDirty(parent)
	return old, nil
}

// SetChildren replaces parent's children. Previous children that are not
// in children are left alive without a parent.
func (t *Tree[C]) SetChildren(parent NodeID, children []NodeID) error {
	const op = "set_children"
	p, err := t.lookup(op, parent, ErrInvalidParentNode)
	if err != nil {
		return err
	}
	for i, c := range children {
		if _, ok := t.get(c); !ok {
			return treeError(ErrInvalidChildNode, op, c)
		}
		if slices.Contains(children[:i], c) || t.isAncestorOrSelf(c, parent) {
			return treeError(ErrInvalidInputNode, op, c)
		}
	}

	for _, old := range p.children {
		if o, ok := t.get(old); ok {
			o.hasParent = false
			o.parent = 0
		}
	}
	p.children = nil
	for _, c := range children {
		t.detach(c)
	}
	p.children = slices.Clone(children)
	for _, c := range children {
		t.attach(c, parent)
	}
	t.markDirty(parent)
	return nil
}

// Remove detaches id from its parent and frees it with its whole subtree.
// Every removed ID becomes stale.
func (t *Tree[C]) Remove(id NodeID) (NodeID, error) {
	if _, err := t.lookup("remove", id, ErrInvalidNodeID); err != nil {
		return 0, err
	}

	t.detach(id)
	freed := t.free(id)
	t.logger.Debug("node removed", zap.Stringer("node", id), zap.Int("freed", freed))
	return id, nil
}

// Clear removes every node. All existing IDs become stale.
func (t *Tree[C]) Clear() {
	t.nodes.Clear()
}

// checkAdoption validates a mutation that makes child a child of parent.
func (t *Tree[C]) checkAdoption(op string, parent, child NodeID) (*node[C], error) {
	p, err := t.lookup(op, parent, ErrInvalidParentNode)
	if err != nil {
		return nil, err
	}
	if _, err := t.lookup(op, child, ErrInvalidChildNode); err != nil {
		return nil, err
	}
	if t.isAncestorOrSelf(child, parent) {
		return nil, treeError(ErrInvalidInputNode, op, child)
	}
	return p, nil
}

// isAncestorOrSelf reports whether a is id or one of its ancestors.
func (t *Tree[C]) isAncestorOrSelf(a, id NodeID) bool {
	for {
		if id == a {
			return true
		}
		n, ok := t.get(id)
		if !ok || !n.hasParent {
			return false
		}
		id = n.parent
	}
}

// detach unlinks id from its parent, if any, and dirties the old parent.
func (t *Tree[C]) detach(id NodeID) {
	n, ok := t.get(id)
	if !ok || !n.hasParent {
		return
	}
	parent := n.parent
	n.hasParent = false
	n.parent = 0
	if p, ok := t.get(parent); ok {
		p.children = slices.DeleteFunc(p.children, func(c NodeID) bool { return c == id })
		t.markDirty(parent)
	}
}

func (t *Tree[C]) attach(id, parent NodeID) {
	if n, ok := t.get(id); ok {
		n.parent = parent
		n.hasParent = true
	}
}

// free releases id and its descendants and returns how many were freed.
func (t *Tree[C]) free(id NodeID) int {
	n, ok := t.nodes.Remove(id.key())
	if !ok {
		return 0
	}
	freed := 1
	for _, c := range n.children {
		freed += t.free(c)
	}
	return freed
}

// --- Queries ---

// Children returns a copy of id's children.
func (t *Tree[C]) Children(id NodeID) ([]NodeID, error) {
	n, err := t.lookup("children", id, ErrInvalidNodeID)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// ChildCount returns the number of children of id.
func (t *Tree[C]) ChildCount(id NodeID) (int, error) {
	n, err := t.lookup("child_count", id, ErrInvalidNodeID)
	if err != nil {
		return 0, err
	}
	return len(n.children), nil
}

// ChildAtIndex returns the child of id at index.
func (t *Tree[C]) ChildAtIndex(id NodeID, index int) (NodeID, error) {
	const op = "child_at_index"
	n, err := t.lookup(op, id, ErrInvalidNodeID)
	if err != nil {
		return 0, err
	}
	if index < 0 || index >= len(n.children) {
		return 0, indexError(op, id, index, len(n.children))
	}
	return n.children[index], nil
}

// Parent returns the parent of id. ok is false for root nodes.
func (t *Tree[C]) Parent(id NodeID) (parent NodeID, ok bool, err error) {
	n, err := t.lookup("parent", id, ErrInvalidNodeID)
	if err != nil {
		return 0, false, err
	}
	return n.parent, n.hasParent, nil
}

// Style returns the style of id.
func (t *Tree[C]) Style(id NodeID) (Style, error) {
	n, err := t.lookup("style", id, ErrInvalidNodeID)
	if err != nil {
		return Style{}, err
	}
	return n.style, nil
}

// NodeContext returns the context of id. ok is false when no context is set.
func (t *Tree[C]) NodeContext(id NodeID) (ctx C, ok bool, err error) {
	n, err := t.lookup("node_context", id, ErrInvalidNodeID)
	if err != nil {
		return ctx, false, err
	}
	return n.context, n.hasContext, nil
}

// Dirty reports whether id needs layout.
func (t *Tree[C]) Dirty(id NodeID) (bool, error) {
	n, err := t.lookup("dirty", id, ErrInvalidNodeID)
	if err != nil {
		return false, err
	}
	return n.dirty, nil
}

// TotalNodeCount returns the number of live nodes.
func (t *Tree[C]) TotalNodeCount() int {
	return t.nodes.Len()
}

// --- Mutation ---

// SetStyle replaces the style of id and marks it dirty.
func (t *Tree[C]) SetStyle(id NodeID, style Style) error {
	n, err := t.lookup("set_style", id, ErrInvalidNodeID)
	if err != nil {
		return err
	}
	n.style = style
	t.markDirty(id)
	return nil
}

// SetNodeContext attaches ctx to id and marks it dirty.
func (t *Tree[C]) SetNodeContext(id NodeID, ctx C) error {
	n, err := t.lookup("set_node_context", id, ErrInvalidNodeID)
	if err != nil {
		return err
	}
	n.context = ctx
	n.hasContext = true
	t.markDirty(id)
	return nil
}

// ClearNodeContext removes the context of id and marks it dirty.
func (t *Tree[C]) ClearNodeContext(id NodeID) error {
	n, err := t.lookup("clear_node_context", id, ErrInvalidNodeID)
	if err != nil {
		return err
	}
	var zero C
	n.context = zero
	n.hasContext = false
	t.markDirty(id)
	return nil
}

// MarkDirty invalidates the layout of id and its ancestors. Use it when
// something the tree cannot see, such as measured content, has changed.
func (t *Tree[C]) MarkDirty(id NodeID) error {
	if _, err := t.lookup("mark_dirty", id, ErrInvalidNodeID); err != nil {
		return err
	}
	t.markDirty(id)
	return nil
}

// markDirty marks id and all ancestors as needing recalculation. A dirty
// node's ancestors are always dirty, so the walk stops at the first one.
func (t *Tree[C]) markDirty(id NodeID) {
	for {
		n, ok := t.get(id)
		if !ok || n.dirty {
			return
		}
		n.dirty = true
		if !n.hasParent {
			return
		}
		id = n.parent
	}
}

func (t *Tree[C]) String() string {
	return fmt.Sprintf("Tree(nodes=%d)", t.nodes.Len())
}
