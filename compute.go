package boxlayout

import (
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/go-boxlayout/internal/layout"
)

// ComputeLayout lays out the subtree rooted at root within available.
// Nodes with a context report zero content size; use
// ComputeLayoutWithMeasure to size them.
func (t *Tree[C]) ComputeLayout(root NodeID, available AvailableSize) error {
	return t.ComputeLayoutWithMeasure(root, available, nil)
}

// ComputeLayoutWithMeasure lays out the subtree rooted at root within
// available, calling measure for every leaf that carries a context.
//
// Results are read back with Layout and UnroundedLayout. Clean nodes whose
// cached result fits the requested constraints are not recomputed. An
// error returned by measure stops the pass and is returned as is.
func (t *Tree[C]) ComputeLayoutWithMeasure(root NodeID, available AvailableSize, measure MeasureFunc[C]) error {
	n, err := t.lookup("compute_layout", root, ErrInvalidNodeID)
	if err != nil {
		return err
	}

	start := time.Now()
	d := &driver[C]{tree: t, measure: measure}
	stats, err := layout.Compute(d.view(root, n), available)
	if err != nil {
		t.logger.Warn("layout pass aborted",
			zap.Stringer("root", root),
			zap.Int("laid", stats.Laid),
			zap.Int("measures", stats.Measures),
			zap.Error(err),
		)
		return err
	}

	if t.rounding {
		t.round(root)
	} else {
		t.keepUnrounded(root)
	}

	t.logger.Debug("layout computed",
		zap.Stringer("root", root),
		zap.Int("laid", stats.Laid),
		zap.Int("cache_hits", stats.CacheHits),
		zap.Int("measures", stats.Measures),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Layout returns the layout of id from the last pass, rounded unless
// rounding is disabled.
func (t *Tree[C]) Layout(id NodeID) (Layout, error) {
	n, err := t.computed("layout", id)
	if err != nil {
		return Layout{}, err
	}
	if !t.rounding {
		return n.unrounded, nil
	}
	return n.rounded, nil
}

// UnroundedLayout returns the layout of id from the last pass before
// rounding.
func (t *Tree[C]) UnroundedLayout(id NodeID) (Layout, error) {
	n, err := t.computed("unrounded_layout", id)
	if err != nil {
		return Layout{}, err
	}
	return n.unrounded, nil
}

func (t *Tree[C]) computed(op string, id NodeID) (*node[C], error) {
	n, err := t.lookup(op, id, ErrInvalidNodeID)
	if err != nil {
		return nil, err
	}
	if !n.computed {
		return nil, treeError(ErrInvalidNodeID, op, id)
	}
	return n, nil
}

// EnableRounding makes later passes round layouts to whole units.
func (t *Tree[C]) EnableRounding() { t.rounding = true }

// DisableRounding makes later passes keep fractional layouts. Layout then
// returns the unrounded values.
func (t *Tree[C]) DisableRounding() { t.rounding = false }

// RoundingEnabled reports whether layouts are rounded.
func (t *Tree[C]) RoundingEnabled() bool { return t.rounding }

// driver adapts tree nodes to the layout engine for one pass. Node
// pointers stay valid because the tree is not mutated during a pass.
type driver[C any] struct {
	tree    *Tree[C]
	measure MeasureFunc[C]
}

func (d *driver[C]) view(id NodeID, n *node[C]) *nodeView[C] {
	return &nodeView[C]{d: d, id: id, n: n}
}

// nodeView implements layout.Layoutable over a tree node.
type nodeView[C any] struct {
	d        *driver[C]
	id       NodeID
	n        *node[C]
	children []layout.Layoutable
	built    bool
}

func (v *nodeView[C]) LayoutStyle() *Style        { return &v.n.style }
func (v *nodeView[C]) SetLayout(l Layout)         { v.n.unrounded, v.n.computed = l, true }
func (v *nodeView[C]) GetLayout() Layout          { return v.n.unrounded }
func (v *nodeView[C]) IsDirty() bool              { return v.n.dirty }
func (v *nodeView[C]) SetDirty(dirty bool)        { v.n.dirty = dirty }
func (v *nodeView[C]) LayoutCache() *layout.Cache { return &v.n.cache }

// LayoutChildren returns views of the node's children, built once per pass.
func (v *nodeView[C]) LayoutChildren() []layout.Layoutable {
	if !v.built {
		v.children = make([]layout.Layoutable, 0, len(v.n.children))
		for _, id := range v.n.children {
			if c, ok := v.d.tree.get(id); ok {
				v.children = append(v.children, v.d.view(id, c))
			}
		}
		v.built = true
	}
	return v.children
}

func (v *nodeView[C]) Measurable() bool {
	return v.d.measure != nil && v.n.hasContext && len(v.n.children) == 0
}

func (v *nodeView[C]) Measure(known KnownSize, available AvailableSize) (Size, error) {
	return v.d.measure(known, available, v.id, v.n.context, v.n.style)
}
