package boxlayout

import "math"

// round fills in the rounded layout of every node under root.
//
// Edges are rounded in absolute coordinates and sizes are taken as the
// difference of rounded edges, so adjacent boxes never gap or overlap.
func (t *Tree[C]) round(root NodeID) {
	t.roundNode(root, Point{}, Point{})
}

func (t *Tree[C]) roundNode(id NodeID, parentAbs, parentRounded Point) {
	n, ok := t.get(id)
	if !ok || !n.computed {
		return
	}

	l := n.unrounded
	abs := parentAbs.Add(l.Location)
	left, top := math.Round(abs.X), math.Round(abs.Y)

	r := l
	r.Location = Point{X: left - parentRounded.X, Y: top - parentRounded.Y}
	r.Size = Size{
		Width:  math.Round(abs.X+l.Size.Width) - left,
		Height: math.Round(abs.Y+l.Size.Height) - top,
	}
	r.ContentSize = Size{
		Width:  math.Round(abs.X+l.ContentSize.Width) - left,
		Height: math.Round(abs.Y+l.ContentSize.Height) - top,
	}
	r.ScrollbarSize = Size{
		Width:  math.Round(l.ScrollbarSize.Width),
		Height: math.Round(l.ScrollbarSize.Height),
	}
	r.Border = roundInsets(l.Border, abs, l.Size)
	r.Padding = roundInsets(l.Padding, abs, l.Size)
	r.Margin = Rect{
		Left:   math.Round(l.Margin.Left),
		Right:  math.Round(l.Margin.Right),
		Top:    math.Round(l.Margin.Top),
		Bottom: math.Round(l.Margin.Bottom),
	}
	n.rounded = r

	rounded := Point{X: left, Y: top}
	for _, c := range n.children {
		t.roundNode(c, abs, rounded)
	}
}

// roundInsets rounds the sides of a border or padding rect against the
// box's absolute edges so they stay inside the rounded box.
func roundInsets(in Rect, abs Point, size Size) Rect {
	right := abs.X + size.Width
	bottom := abs.Y + size.Height
	return Rect{
		Left:   math.Round(abs.X+in.Left) - math.Round(abs.X),
		Right:  math.Round(right) - math.Round(right-in.Right),
		Top:    math.Round(abs.Y+in.Top) - math.Round(abs.Y),
		Bottom: math.Round(bottom) - math.Round(bottom-in.Bottom),
	}
}

// keepUnrounded stores the unrounded layout of every node under root as
// its rounded one, so re-enabling rounding before the next pass still
// reports the last computed layout.
func (t *Tree[C]) keepUnrounded(root NodeID) {
	n, ok := t.get(root)
	if !ok || !n.computed {
		return
	}
	n.rounded = n.unrounded
	for _, c := range n.children {
		t.keepUnrounded(c)
	}
}
