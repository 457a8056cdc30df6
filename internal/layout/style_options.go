package layout

import "slices"

// StyleOption configures a Style under construction.
type StyleOption func(*Style)

func (s *Style) setValue(f Field) {
	s.named.add(f)
	s.valued.add(f)
}

func (s *Style) unset(f Field) {
	var zero Style
	fieldAccessors[f].copy(s, &zero)
	s.named.add(f)
	s.valued.del(f)
}

// Unset explicitly clears fields. An unset field reads as its default and
// overrides the same field when merged.
func Unset(fields ...Field) StyleOption {
	return func(s *Style) {
		for _, f := range fields {
			if f < fieldCount {
				s.unset(f)
			}
		}
	}
}

// setDim stores an interface-typed field, treating nil as an explicit unset.
func setDim[T comparable](s *Style, f Field, dst *T, v T) {
	var zero T
	if v == zero {
		s.unset(f)
		return
	}
	*dst = v
	s.setValue(f)
}

// --- Box ---

// WithDisplay sets the display mode.
func WithDisplay(d Display) StyleOption {
	return func(s *Style) {
		s.display = d
		s.setValue(FieldDisplay)
	}
}

// WithBoxSizing sets which box the size properties describe.
func WithBoxSizing(b BoxSizing) StyleOption {
	return func(s *Style) {
		s.boxSizing = b
		s.setValue(FieldBoxSizing)
	}
}

// WithOverflow sets the overflow behavior for both axes.
func WithOverflow(x, y Overflow) StyleOption {
	return func(s *Style) {
		s.overflowX = x
		s.overflowY = y
		s.setValue(FieldOverflowX)
		s.setValue(FieldOverflowY)
	}
}

// WithScrollbarWidth sets the space reserved for scrollbars on scroll containers.
func WithScrollbarWidth(w float64) StyleOption {
	return func(s *Style) {
		s.scrollbarWidth = w
		s.setValue(FieldScrollbarWidth)
	}
}

// WithPosition sets the positioning mode.
func WithPosition(p Position) StyleOption {
	return func(s *Style) {
		s.position = p
		s.setValue(FieldPosition)
	}
}

// WithInset sets the offsets of all four sides. Nil sides are unset.
func WithInset(e Edges[Dimension]) StyleOption {
	return func(s *Style) {
		setDim(s, FieldInsetLeft, &s.inset.Left, e.Left)
		setDim(s, FieldInsetRight, &s.inset.Right, e.Right)
		setDim(s, FieldInsetTop, &s.inset.Top, e.Top)
		setDim(s, FieldInsetBottom, &s.inset.Bottom, e.Bottom)
	}
}

// --- Size ---

// WithSize sets the preferred width and height. Nil values are unset.
func WithSize(width, height Dimension) StyleOption {
	return func(s *Style) {
		setDim(s, FieldWidth, &s.width, width)
		setDim(s, FieldHeight, &s.height, height)
	}
}

// WithWidth sets the preferred width. Nil is unset.
func WithWidth(d Dimension) StyleOption {
	return func(s *Style) { setDim(s, FieldWidth, &s.width, d) }
}

// WithHeight sets the preferred height. Nil is unset.
func WithHeight(d Dimension) StyleOption {
	return func(s *Style) { setDim(s, FieldHeight, &s.height, d) }
}

// WithMinSize sets the minimum width and height. Nil values are unset.
func WithMinSize(width, height Dimension) StyleOption {
	return func(s *Style) {
		setDim(s, FieldMinWidth, &s.minWidth, width)
		setDim(s, FieldMinHeight, &s.minHeight, height)
	}
}

// WithMaxSize sets the maximum width and height. Nil values are unset.
func WithMaxSize(width, height Dimension) StyleOption {
	return func(s *Style) {
		setDim(s, FieldMaxWidth, &s.maxWidth, width)
		setDim(s, FieldMaxHeight, &s.maxHeight, height)
	}
}

// WithAspectRatio sets the preferred width/height ratio.
func WithAspectRatio(r float64) StyleOption {
	return func(s *Style) {
		s.aspectRatio = r
		s.setValue(FieldAspectRatio)
	}
}

// --- Spacing ---

// WithMargin sets the margin of all four sides. Nil sides are unset.
func WithMargin(e Edges[Dimension]) StyleOption {
	return func(s *Style) {
		setDim(s, FieldMarginLeft, &s.margin.Left, e.Left)
		setDim(s, FieldMarginRight, &s.margin.Right, e.Right)
		setDim(s, FieldMarginTop, &s.margin.Top, e.Top)
		setDim(s, FieldMarginBottom, &s.margin.Bottom, e.Bottom)
	}
}

// WithPadding sets the padding of all four sides. Nil sides are unset.
func WithPadding(e Edges[LengthPercentage]) StyleOption {
	return func(s *Style) {
		setDim(s, FieldPaddingLeft, &s.padding.Left, e.Left)
		setDim(s, FieldPaddingRight, &s.padding.Right, e.Right)
		setDim(s, FieldPaddingTop, &s.padding.Top, e.Top)
		setDim(s, FieldPaddingBottom, &s.padding.Bottom, e.Bottom)
	}
}

// WithBorder sets the border width of all four sides. Nil sides are unset.
func WithBorder(e Edges[LengthPercentage]) StyleOption {
	return func(s *Style) {
		setDim(s, FieldBorderLeft, &s.border.Left, e.Left)
		setDim(s, FieldBorderRight, &s.border.Right, e.Right)
		setDim(s, FieldBorderTop, &s.border.Top, e.Top)
		setDim(s, FieldBorderBottom, &s.border.Bottom, e.Bottom)
	}
}

// WithGap sets the gap between columns (width) and rows (height).
func WithGap(width, height LengthPercentage) StyleOption {
	return func(s *Style) {
		setDim(s, FieldGapWidth, &s.gapWidth, width)
		setDim(s, FieldGapHeight, &s.gapHeight, height)
	}
}

// --- Alignment ---

// WithAlignItems sets the default cross-axis alignment of children.
func WithAlignItems(a AlignItems) StyleOption {
	return func(s *Style) {
		s.alignItems = a
		s.setValue(FieldAlignItems)
	}
}

// WithAlignSelf overrides the parent's AlignItems for this node.
func WithAlignSelf(a AlignItems) StyleOption {
	return func(s *Style) {
		s.alignSelf = a
		s.setValue(FieldAlignSelf)
	}
}

// WithJustifyItems sets the default inline-axis alignment of grid children.
func WithJustifyItems(a AlignItems) StyleOption {
	return func(s *Style) {
		s.justifyItems = a
		s.setValue(FieldJustifyItems)
	}
}

// WithJustifySelf overrides the parent's JustifyItems for this node.
func WithJustifySelf(a AlignItems) StyleOption {
	return func(s *Style) {
		s.justifySelf = a
		s.setValue(FieldJustifySelf)
	}
}

// WithAlignContent sets how lines or row tracks share cross-axis space.
func WithAlignContent(a AlignContent) StyleOption {
	return func(s *Style) {
		s.alignContent = a
		s.setValue(FieldAlignContent)
	}
}

// WithJustifyContent sets how items or column tracks share main-axis space.
func WithJustifyContent(a AlignContent) StyleOption {
	return func(s *Style) {
		s.justifyContent = a
		s.setValue(FieldJustifyContent)
	}
}

// WithTextAlign sets the legacy text alignment used by block layout.
func WithTextAlign(t TextAlign) StyleOption {
	return func(s *Style) {
		s.textAlign = t
		s.setValue(FieldTextAlign)
	}
}

// --- Flex ---

// WithFlexDirection sets the main axis.
func WithFlexDirection(d FlexDirection) StyleOption {
	return func(s *Style) {
		s.flexDirection = d
		s.setValue(FieldFlexDirection)
	}
}

// WithFlexWrap sets whether items may wrap onto multiple lines.
func WithFlexWrap(w FlexWrap) StyleOption {
	return func(s *Style) {
		s.flexWrap = w
		s.setValue(FieldFlexWrap)
	}
}

// WithFlexBasis sets the initial main size. Nil is unset.
func WithFlexBasis(d Dimension) StyleOption {
	return func(s *Style) { setDim(s, FieldFlexBasis, &s.flexBasis, d) }
}

// WithFlexGrow sets the share of free space this node takes.
func WithFlexGrow(g float64) StyleOption {
	return func(s *Style) {
		s.flexGrow = g
		s.setValue(FieldFlexGrow)
	}
}

// WithFlexShrink sets the share of overflow this node absorbs.
func WithFlexShrink(f float64) StyleOption {
	return func(s *Style) {
		s.flexShrink = f
		s.setValue(FieldFlexShrink)
	}
}

// --- Grid ---

// WithGridTemplateRows sets the explicit row tracks.
func WithGridTemplateRows(tracks ...TrackSize) StyleOption {
	return func(s *Style) {
		s.gridTemplateRows = cloneTracks(tracks)
		s.setValue(FieldGridTemplateRows)
	}
}

// WithGridTemplateColumns sets the explicit column tracks.
func WithGridTemplateColumns(tracks ...TrackSize) StyleOption {
	return func(s *Style) {
		s.gridTemplateColumns = cloneTracks(tracks)
		s.setValue(FieldGridTemplateColumns)
	}
}

// WithGridAutoRows sets the sizes of implicitly created rows.
func WithGridAutoRows(tracks ...TrackSize) StyleOption {
	return func(s *Style) {
		s.gridAutoRows = cloneTracks(tracks)
		s.setValue(FieldGridAutoRows)
	}
}

// WithGridAutoColumns sets the sizes of implicitly created columns.
func WithGridAutoColumns(tracks ...TrackSize) StyleOption {
	return func(s *Style) {
		s.gridAutoColumns = cloneTracks(tracks)
		s.setValue(FieldGridAutoColumns)
	}
}

// WithGridAutoFlow sets the auto-placement direction.
func WithGridAutoFlow(f GridAutoFlow) StyleOption {
	return func(s *Style) {
		s.gridAutoFlow = f
		s.setValue(FieldGridAutoFlow)
	}
}

// WithGridRow places the node between row lines.
func WithGridRow(p GridPlacement) StyleOption {
	return func(s *Style) {
		s.gridRow = NewGridPlacement(p.Start(), p.End())
		s.setValue(FieldGridRow)
	}
}

// WithGridColumn places the node between column lines.
func WithGridColumn(p GridPlacement) StyleOption {
	return func(s *Style) {
		s.gridColumn = NewGridPlacement(p.Start(), p.End())
		s.setValue(FieldGridColumn)
	}
}

// cloneTracks copies tracks, dropping nil entries.
func cloneTracks(tracks []TrackSize) []TrackSize {
	out := slices.Clone(tracks)
	return slices.DeleteFunc(out, func(t TrackSize) bool { return t == nil })
}
