package layout

type runMode uint8

const (
	modePerform runMode = iota // size the node and lay out its subtree
	modeSize                   // size the node only
)

// sizingInput holds the constraints a node is sized under.
type sizingInput struct {
	known     KnownSize     // border box axes fixed by the parent
	parent    KnownSize     // containing block size, for percentages
	available AvailableSize // budget including the node's margin
	mode      runMode
}

type sizingOutput struct {
	size    Size
	content Size
}

// Stats counts the work done by one Compute call.
type Stats struct {
	Laid      int // nodes laid out
	CacheHits int
	Measures  int
}

type engine struct {
	stats Stats
}

// Compute lays out the tree rooted at root within available and stores an
// unrounded Layout on every node it reaches. Clean nodes whose cached
// result matches the requested constraints are not recomputed.
//
// An error returned by Measure stops the pass and is returned unchanged.
func Compute(root Layoutable, available AvailableSize) (Stats, error) {
	ResetDirtyCaches(root)

	e := &engine{}
	style := root.LayoutStyle()
	parent := KnownSize{Width: definiteValue(available.Width), Height: definiteValue(available.Height)}
	box := newBoxModel(style, parent)

	known := box.size
	// Block roots fill a definite width, as a block box does in its
	// containing block.
	if style.Display() == DisplayBlock && !known.Width.Valid && parent.Width.Valid {
		known.Width = Some(max(parent.Width.Value-box.margin.Horizontal(), 0))
		known = box.withAspect(known)
	}
	known = box.clampKnown(known)

	out, err := e.computeNode(root, sizingInput{
		known:     known,
		parent:    parent,
		available: available,
		mode:      modePerform,
	})
	if err != nil {
		return e.stats, err
	}

	e.place(root, 0, Point{}, out, parent)
	return e.stats, nil
}

// ResetDirtyCaches clears the cache of every dirty node under root.
// Dirty flags propagate to ancestors, so clean subtrees are skipped.
func ResetDirtyCaches(root Layoutable) {
	if !root.IsDirty() {
		return
	}
	root.LayoutCache().Clear()
	for _, child := range root.LayoutChildren() {
		ResetDirtyCaches(child)
	}
}

// computeNode sizes n, and in perform mode lays out its subtree.
func (e *engine) computeNode(n Layoutable, in sizingInput) (sizingOutput, error) {
	cache := n.LayoutCache()
	if out, ok := cache.get(in); ok {
		e.stats.CacheHits++
		return out, nil
	}

	style := n.LayoutStyle()
	children := n.LayoutChildren()

	var (
		out sizingOutput
		err error
	)
	switch {
	case style.Display() == DisplayNone:
		if in.mode == modePerform {
			hideChildren(children)
		}
	case len(children) == 0:
		out, err = e.leaf(n, style, in)
	case style.Display() == DisplayGrid:
		out, err = e.grid(style, children, in)
	case style.Display() == DisplayBlock:
		out, err = e.block(style, children, in)
	default:
		out, err = e.flex(style, children, in)
	}
	if err != nil {
		return sizingOutput{}, err
	}

	cache.store(in, out)
	if in.mode == modePerform {
		e.stats.Laid++
		n.SetDirty(false)
	}
	return out, nil
}

// place stores the layout of a node that its parent has positioned.
func (e *engine) place(n Layoutable, order int, loc Point, out sizingOutput, parent KnownSize) {
	style := n.LayoutStyle()
	box := newBoxModel(style, parent)

	var scrollbar Size
	if style.OverflowY() == OverflowScroll {
		scrollbar.Width = style.ScrollbarWidth()
	}
	if style.OverflowX() == OverflowScroll {
		scrollbar.Height = style.ScrollbarWidth()
	}

	n.SetLayout(Layout{
		Order:         uint32(order),
		Location:      loc,
		Size:          out.size,
		ContentSize:   out.content,
		ScrollbarSize: scrollbar,
		Border:        box.border,
		Padding:       box.padding,
		Margin:        box.margin,
	})
}

// hideChildren gives every node under a display:none node an empty layout.
func hideChildren(children []Layoutable) {
	for i, child := range children {
		child.SetLayout(Layout{Order: uint32(i)})
		child.LayoutCache().Clear()
		child.SetDirty(false)
		hideChildren(child.LayoutChildren())
	}
}

// partitionChildren splits children into in-flow and absolutely positioned
// ones, hiding display:none children in perform mode. Indices are kept so
// layouts can record child order.
func partitionChildren(children []Layoutable, mode runMode) (inFlow, absolute []int) {
	for i, child := range children {
		style := child.LayoutStyle()
		switch {
		case style.Display() == DisplayNone:
			if mode == modePerform {
				child.SetLayout(Layout{Order: uint32(i)})
				child.SetDirty(false)
				hideChildren(child.LayoutChildren())
			}
		case style.Position() == PositionAbsolute:
			absolute = append(absolute, i)
		default:
			inFlow = append(inFlow, i)
		}
	}
	return inFlow, absolute
}

// extent grows content to cover a child's margin box.
func extent(content Size, loc Point, size Size, margin Rect) Size {
	return content.Max(Size{
		Width:  loc.X + size.Width + margin.Right,
		Height: loc.Y + size.Height + margin.Bottom,
	})
}
