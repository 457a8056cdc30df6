package layout

// Layout holds the computed position and size after layout calculation.
type Layout struct {
	// Order is the node's index among its parent's children.
	Order uint32

	// Location is the border box origin relative to the parent's border
	// box origin.
	Location Point

	// Size is the border box size.
	Size Size

	// ContentSize is the extent of the node's content, which may exceed
	// Size when content overflows.
	ContentSize Size

	// ScrollbarSize is the space reserved for scrollbars.
	ScrollbarSize Size

	// Border, Padding and Margin hold the resolved width of each side.
	Border  Rect
	Padding Rect
	Margin  Rect
}

// ContentBoxWidth returns the width inside padding and border.
func (l Layout) ContentBoxWidth() float64 {
	return l.Size.Width - l.Padding.Horizontal() - l.Border.Horizontal()
}

// ContentBoxHeight returns the height inside padding and border.
func (l Layout) ContentBoxHeight() float64 {
	return l.Size.Height - l.Padding.Vertical() - l.Border.Vertical()
}

// BorderBox returns the node's box relative to its parent.
func (l Layout) BorderBox() Rect {
	return Rect{
		Left:   l.Location.X,
		Right:  l.Location.X + l.Size.Width,
		Top:    l.Location.Y,
		Bottom: l.Location.Y + l.Size.Height,
	}
}
