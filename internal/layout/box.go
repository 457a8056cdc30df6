package layout

// resolve converts d to a length. Percentages resolve against parent;
// Auto and unresolvable percentages are absent.
func resolve(d Dimension, parent MaybeFloat) MaybeFloat {
	switch v := d.(type) {
	case Length:
		return Some(v.value)
	case Percent:
		if parent.Valid {
			return Some(parent.Value * v.value)
		}
	}
	return None()
}

// resolveEdges converts per-side values to a Rect. Every side resolves
// against the containing block's width, as in CSS.
func resolveEdges[T Dimension](e Edges[T], width MaybeFloat) Rect {
	return Rect{
		Left:   resolve(e.Left, width).Or(0),
		Right:  resolve(e.Right, width).Or(0),
		Top:    resolve(e.Top, width).Or(0),
		Bottom: resolve(e.Bottom, width).Or(0),
	}
}

func isAuto(d Dimension) bool {
	_, ok := d.(Auto)
	return ok
}

// boxModel is a node's style resolved against its containing block.
// All sizes are border-box sizes.
type boxModel struct {
	padding Rect
	border  Rect
	margin  Rect
	pb      Size // padding + border on each axis

	autoMargin Edges[bool]

	size    KnownSize
	minSize KnownSize
	maxSize KnownSize
	aspect  MaybeFloat
}

func newBoxModel(style *Style, parent KnownSize) boxModel {
	margins := style.Margin()
	b := boxModel{
		padding: resolveEdges(style.Padding(), parent.Width),
		border:  resolveEdges(style.Border(), parent.Width),
		margin:  resolveEdges(margins, parent.Width),
		autoMargin: Edges[bool]{
			Left:   isAuto(margins.Left),
			Right:  isAuto(margins.Right),
			Top:    isAuto(margins.Top),
			Bottom: isAuto(margins.Bottom),
		},
		size:    KnownSize{Width: resolve(style.Width(), parent.Width), Height: resolve(style.Height(), parent.Height)},
		minSize: KnownSize{Width: resolve(style.MinWidth(), parent.Width), Height: resolve(style.MinHeight(), parent.Height)},
		maxSize: KnownSize{Width: resolve(style.MaxWidth(), parent.Width), Height: resolve(style.MaxHeight(), parent.Height)},
	}
	b.pb = b.padding.Sum().Add(b.border.Sum())

	if style.BoxSizing() == ContentBox {
		b.size = KnownSize{Width: b.size.Width.add(b.pb.Width), Height: b.size.Height.add(b.pb.Height)}
		b.minSize = KnownSize{Width: b.minSize.Width.add(b.pb.Width), Height: b.minSize.Height.add(b.pb.Height)}
		b.maxSize = KnownSize{Width: b.maxSize.Width.add(b.pb.Width), Height: b.maxSize.Height.add(b.pb.Height)}
	}

	if r, ok := style.AspectRatio(); ok && r > 0 {
		b.aspect = Some(r)
	}
	b.size = b.withAspect(b.size)
	return b
}

// withAspect fills one missing axis of k from the other using the aspect ratio.
func (b boxModel) withAspect(k KnownSize) KnownSize {
	r, ok := b.aspect.Get()
	if !ok {
		return k
	}
	switch {
	case k.Width.Valid && !k.Height.Valid:
		k.Height = Some(k.Width.Value / r)
	case k.Height.Valid && !k.Width.Valid:
		k.Width = Some(k.Height.Value * r)
	}
	return k
}

// clampKnown applies min/max constraints to the present axes of k.
func (b boxModel) clampKnown(k KnownSize) KnownSize {
	return KnownSize{
		Width:  k.Width.clamp(b.minSize.Width, b.maxSize.Width),
		Height: k.Height.clamp(b.minSize.Height, b.maxSize.Height),
	}
}

// clampSize applies min/max constraints and never lets the box shrink
// below its padding and border.
func (b boxModel) clampSize(s Size) Size {
	return Size{
		Width:  max(clamp(s.Width, b.minSize.Width, b.maxSize.Width), b.pb.Width),
		Height: max(clamp(s.Height, b.minSize.Height, b.maxSize.Height), b.pb.Height),
	}
}

// inner returns the content box size for a border box size.
func (b boxModel) inner(k KnownSize) KnownSize {
	return KnownSize{Width: k.Width.sub(b.pb.Width), Height: k.Height.sub(b.pb.Height)}
}

// innerAvailable returns the content box budget given the node's own
// budget, which still includes its margin, padding and border.
func (b boxModel) innerAvailable(inner KnownSize, avail AvailableSize) AvailableSize {
	return AvailableSize{
		Width:  spaceFrom(inner.Width, shrinkSpace(avail.Width, b.margin.Horizontal()+b.pb.Width)),
		Height: spaceFrom(inner.Height, shrinkSpace(avail.Height, b.margin.Vertical()+b.pb.Height)),
	}
}

// contentOrigin returns the offset of the content box within the border box.
func (b boxModel) contentOrigin() Point {
	return Point{X: b.border.Left + b.padding.Left, Y: b.border.Top + b.padding.Top}
}

// relativeOffset returns the inset shift applied to relatively positioned nodes.
func relativeOffset(style *Style, parent KnownSize) Point {
	if style.Position() != PositionRelative {
		return Point{}
	}
	inset := style.Inset()
	var p Point
	if l, ok := resolve(inset.Left, parent.Width).Get(); ok {
		p.X = l
	} else if r, ok := resolve(inset.Right, parent.Width).Get(); ok {
		p.X = -r
	}
	if t, ok := resolve(inset.Top, parent.Height).Get(); ok {
		p.Y = t
	} else if b, ok := resolve(inset.Bottom, parent.Height).Get(); ok {
		p.Y = -b
	}
	return p
}
