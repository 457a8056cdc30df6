package boxlayout

// MeasureFunc reports the content size of a leaf node that carries a
// context. known holds the content box dimensions already fixed by the
// parent; available holds the content box budget on each axis.
//
// It may be called several times per node in one pass, once for each
// constraint the layout probes. It must not mutate the tree. A returned
// error aborts the pass and is returned unchanged by ComputeLayoutWithMeasure.
type MeasureFunc[C any] func(known KnownSize, available AvailableSize, id NodeID, ctx C, style Style) (Size, error)
