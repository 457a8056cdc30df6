// Package boxlayout provides a retained-mode box layout engine.
//
// Users build a [Tree] of styled nodes, compute layout for a root within an
// available size, and read back each node's position and size. Containers
// lay out their children with flexbox, grid or block flow, as chosen by the
// node's [Style]. Leaves that carry a context can report their content size
// through a [MeasureFunc].
//
// Nodes are addressed by [NodeID]. IDs of removed nodes are detected as
// stale and every operation reports them with [ErrInvalidNodeID]. Layout is
// incremental: only nodes marked dirty since the last pass, and their
// ancestors, are recomputed.
//
//	t := boxlayout.New[string]()
//	a := t.NewLeaf(boxlayout.NewStyle(boxlayout.WithFlexGrow(1)))
//	b := t.NewLeaf(boxlayout.NewStyle(boxlayout.WithFlexGrow(2)))
//	root, _ := t.NewWithChildren(boxlayout.NewStyle(
//		boxlayout.WithSize(boxlayout.MustLength(300), boxlayout.MustLength(50)),
//	), []boxlayout.NodeID{a, b})
//	_ = t.ComputeLayout(root, boxlayout.AvailableSize{})
//	l, _ := t.Layout(b) // l.Location.X == 100, l.Size.Width == 200
package boxlayout
