package layout

// Layoutable is the interface for anything that can participate in layout calculation.
// The layout engine works entirely with this interface, enabling custom implementations.
type Layoutable interface {
	// LayoutStyle returns the layout style properties for this element.
	// The engine never modifies the returned Style.
	LayoutStyle() *Style

	// LayoutChildren returns the children to be laid out, in order.
	LayoutChildren() []Layoutable

	// SetLayout is called by the layout engine to store computed layout.
	SetLayout(Layout)

	// GetLayout returns the last computed layout.
	GetLayout() Layout

	// IsDirty returns whether this element needs layout recalculation.
	IsDirty() bool

	// SetDirty marks this element as needing recalculation.
	SetDirty(dirty bool)

	// LayoutCache returns the element's sizing cache.
	LayoutCache() *Cache

	// Measurable reports whether Measure should be consulted for this
	// element's content size. Only childless elements are measured.
	Measurable() bool

	// Measure returns the content size of the element. known holds the
	// content box dimensions already determined by the parent; available
	// holds the budget for the content box. Errors abort the layout pass
	// and are returned unchanged by Compute.
	Measure(known KnownSize, available AvailableSize) (Size, error)
}
