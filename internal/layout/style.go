package layout

import (
	"math/bits"
	"slices"
	"strings"
)

// Field names one property of a Style.
type Field uint8

const (
	FieldDisplay Field = iota
	FieldBoxSizing
	FieldOverflowX
	FieldOverflowY
	FieldScrollbarWidth
	FieldPosition
	FieldInsetLeft
	FieldInsetRight
	FieldInsetTop
	FieldInsetBottom
	FieldWidth
	FieldHeight
	FieldMinWidth
	FieldMinHeight
	FieldMaxWidth
	FieldMaxHeight
	FieldAspectRatio
	FieldMarginLeft
	FieldMarginRight
	FieldMarginTop
	FieldMarginBottom
	FieldPaddingLeft
	FieldPaddingRight
	FieldPaddingTop
	FieldPaddingBottom
	FieldBorderLeft
	FieldBorderRight
	FieldBorderTop
	FieldBorderBottom
	FieldAlignItems
	FieldAlignSelf
	FieldJustifyItems
	FieldJustifySelf
	FieldAlignContent
	FieldJustifyContent
	FieldGapWidth
	FieldGapHeight
	FieldTextAlign
	FieldFlexDirection
	FieldFlexWrap
	FieldFlexBasis
	FieldFlexGrow
	FieldFlexShrink
	FieldGridTemplateRows
	FieldGridTemplateColumns
	FieldGridAutoRows
	FieldGridAutoColumns
	FieldGridAutoFlow
	FieldGridRow
	FieldGridColumn

	fieldCount
)

func (f Field) String() string {
	if f < fieldCount {
		return fieldAccessors[f].name
	}
	return "unknown"
}

// fieldSet is a bitmask over Field.
type fieldSet uint64

func (s fieldSet) has(f Field) bool { return s&(1<<f) != 0 }
func (s *fieldSet) add(f Field)     { *s |= 1 << f }
func (s *fieldSet) del(f Field)     { *s &^= 1 << f }

// Edges holds one value per side of a box.
type Edges[T any] struct {
	Left, Right, Top, Bottom T
}

// EdgesAll returns Edges with v on every side.
func EdgesAll[T any](v T) Edges[T] {
	return Edges[T]{Left: v, Right: v, Top: v, Bottom: v}
}

// EdgesXY returns Edges with x on the left and right and y on the top and bottom.
func EdgesXY[T any](x, y T) Edges[T] {
	return Edges[T]{Left: x, Right: x, Top: y, Bottom: y}
}

// Style holds the layout properties of a node.
//
// A Style records which fields were explicitly named, separately from their
// values. A field named without a value (see Unset) is "explicitly unset":
// it reads as the default but still overrides in Merge. The zero Style has
// nothing named and reads as all defaults.
//
// Styles are immutable once built; use NewStyle or Merge to derive new ones.
type Style struct {
	named  fieldSet // fields explicitly set or unset
	valued fieldSet // fields holding a value

	display        Display
	boxSizing      BoxSizing
	overflowX      Overflow
	overflowY      Overflow
	scrollbarWidth float64
	position       Position
	inset          Edges[Dimension]

	width, height       Dimension
	minWidth, minHeight Dimension
	maxWidth, maxHeight Dimension
	aspectRatio         float64

	margin  Edges[Dimension]
	padding Edges[LengthPercentage]
	border  Edges[LengthPercentage]

	alignItems     AlignItems
	alignSelf      AlignItems
	justifyItems   AlignItems
	justifySelf    AlignItems
	alignContent   AlignContent
	justifyContent AlignContent
	gapWidth       LengthPercentage
	gapHeight      LengthPercentage
	textAlign      TextAlign

	flexDirection FlexDirection
	flexWrap      FlexWrap
	flexBasis     Dimension
	flexGrow      float64
	flexShrink    float64

	gridTemplateRows    []TrackSize
	gridTemplateColumns []TrackSize
	gridAutoRows        []TrackSize
	gridAutoColumns     []TrackSize
	gridAutoFlow        GridAutoFlow
	gridRow             GridPlacement
	gridColumn          GridPlacement
}

// DefaultStyle returns a Style with nothing set.
func DefaultStyle() Style {
	return Style{}
}

// NewStyle builds a Style from options.
func NewStyle(opts ...StyleOption) Style {
	var s Style
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// IsSet reports whether f was explicitly named, either with a value or
// explicitly unset.
func (s Style) IsSet(f Field) bool {
	return s.named.has(f)
}

// HasValue reports whether f holds an explicit value.
func (s Style) HasValue(f Field) bool {
	return s.valued.has(f)
}

// SetFields returns the explicitly named fields in declaration order.
func (s Style) SetFields() []Field {
	fields := make([]Field, 0, bits.OnesCount64(uint64(s.named)))
	for f := range fieldCount {
		if s.named.has(f) {
			fields = append(fields, f)
		}
	}
	return fields
}

// Merge returns s overridden by every field other names, including fields
// other explicitly unsets. Neither operand is modified.
func (s Style) Merge(other Style) Style {
	out := s
	for f := range fieldCount {
		if other.named.has(f) {
			fieldAccessors[f].copy(&out, &other)
		}
	}
	out.named |= other.named
	out.valued = (out.valued &^ other.named) | (other.valued & other.named)
	return out
}

// Merge folds styles left to right with Style.Merge.
func Merge(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out = out.Merge(s)
	}
	return out
}

// Equal reports whether s and other name the same fields with the same values.
func (s Style) Equal(other Style) bool {
	if s.named != other.named || s.valued != other.valued {
		return false
	}
	for f := range fieldCount {
		if !s.valued.has(f) {
			continue
		}
		acc := fieldAccessors[f]
		if !valuesEqual(acc.get(&s), acc.get(&other)) {
			return false
		}
	}
	return true
}

func (s Style) String() string {
	var b strings.Builder
	b.WriteString("Style(")
	first := true
	for f := range fieldCount {
		if !s.named.has(f) {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(fieldAccessors[f].name)
		b.WriteByte('=')
		if s.valued.has(f) {
			b.WriteString(formatValue(fieldAccessors[f].get(&s)))
		} else {
			b.WriteString("None")
		}
	}
	b.WriteByte(')')
	return b.String()
}

func valuesEqual(a, b any) bool {
	if at, ok := a.([]TrackSize); ok {
		bt, _ := b.([]TrackSize)
		return slices.Equal(at, bt)
	}
	return a == b
}

func formatValue(v any) string {
	switch v := v.(type) {
	case float64:
		return formatFloat(v)
	case []TrackSize:
		parts := make([]string, len(v))
		for i, t := range v {
			parts[i] = t.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case interface{ String() string }:
		return v.String()
	default:
		return "?"
	}
}

// --- Getters ---

func (s Style) Display() Display             { return s.display }
func (s Style) BoxSizing() BoxSizing         { return s.boxSizing }
func (s Style) OverflowX() Overflow          { return s.overflowX }
func (s Style) OverflowY() Overflow          { return s.overflowY }
func (s Style) ScrollbarWidth() float64      { return s.scrollbarWidth }
func (s Style) Position() Position           { return s.position }
func (s Style) TextAlign() TextAlign         { return s.textAlign }
func (s Style) FlexDirection() FlexDirection { return s.flexDirection }
func (s Style) FlexWrap() FlexWrap           { return s.flexWrap }
func (s Style) FlexGrow() float64            { return s.flexGrow }
func (s Style) GridAutoFlow() GridAutoFlow   { return s.gridAutoFlow }
func (s Style) GridRow() GridPlacement       { return s.gridRow }
func (s Style) GridColumn() GridPlacement    { return s.gridColumn }

// FlexShrink defaults to 1.
func (s Style) FlexShrink() float64 {
	if !s.valued.has(FieldFlexShrink) {
		return 1
	}
	return s.flexShrink
}

// Inset defaults to Auto on every side.
func (s Style) Inset() Edges[Dimension] {
	return Edges[Dimension]{
		Left:   autoIfNil(s.inset.Left),
		Right:  autoIfNil(s.inset.Right),
		Top:    autoIfNil(s.inset.Top),
		Bottom: autoIfNil(s.inset.Bottom),
	}
}

// Width defaults to Auto.
func (s Style) Width() Dimension     { return autoIfNil(s.width) }
func (s Style) Height() Dimension    { return autoIfNil(s.height) }
func (s Style) MinWidth() Dimension  { return autoIfNil(s.minWidth) }
func (s Style) MinHeight() Dimension { return autoIfNil(s.minHeight) }
func (s Style) MaxWidth() Dimension  { return autoIfNil(s.maxWidth) }
func (s Style) MaxHeight() Dimension { return autoIfNil(s.maxHeight) }
func (s Style) FlexBasis() Dimension { return autoIfNil(s.flexBasis) }

// AspectRatio returns width/height when set.
func (s Style) AspectRatio() (float64, bool) {
	return s.aspectRatio, s.valued.has(FieldAspectRatio)
}

// Margin defaults to zero on every side.
func (s Style) Margin() Edges[Dimension] {
	return Edges[Dimension]{
		Left:   zeroIfNil(s.margin.Left),
		Right:  zeroIfNil(s.margin.Right),
		Top:    zeroIfNil(s.margin.Top),
		Bottom: zeroIfNil(s.margin.Bottom),
	}
}

// Padding defaults to zero on every side.
func (s Style) Padding() Edges[LengthPercentage] { return zeroEdges(s.padding) }

// Border defaults to zero on every side.
func (s Style) Border() Edges[LengthPercentage] { return zeroEdges(s.border) }

// Gap returns the column and row gaps, defaulting to zero.
func (s Style) Gap() (width, height LengthPercentage) {
	return lpOrZero(s.gapWidth), lpOrZero(s.gapHeight)
}

func (s Style) AlignItems() (AlignItems, bool) {
	return s.alignItems, s.valued.has(FieldAlignItems)
}

func (s Style) AlignSelf() (AlignItems, bool) {
	return s.alignSelf, s.valued.has(FieldAlignSelf)
}

func (s Style) JustifyItems() (AlignItems, bool) {
	return s.justifyItems, s.valued.has(FieldJustifyItems)
}

func (s Style) JustifySelf() (AlignItems, bool) {
	return s.justifySelf, s.valued.has(FieldJustifySelf)
}

func (s Style) AlignContent() (AlignContent, bool) {
	return s.alignContent, s.valued.has(FieldAlignContent)
}

func (s Style) JustifyContent() (AlignContent, bool) {
	return s.justifyContent, s.valued.has(FieldJustifyContent)
}

// Grid track lists are returned as copies.
func (s Style) GridTemplateRows() []TrackSize    { return slices.Clone(s.gridTemplateRows) }
func (s Style) GridTemplateColumns() []TrackSize { return slices.Clone(s.gridTemplateColumns) }
func (s Style) GridAutoRows() []TrackSize        { return slices.Clone(s.gridAutoRows) }
func (s Style) GridAutoColumns() []TrackSize     { return slices.Clone(s.gridAutoColumns) }

func autoIfNil(d Dimension) Dimension {
	if d == nil {
		return Auto{}
	}
	return d
}

func zeroIfNil(d Dimension) Dimension {
	if d == nil {
		return Length{}
	}
	return d
}

func lpOrZero(v LengthPercentage) LengthPercentage {
	if v == nil {
		return Length{}
	}
	return v
}

func zeroEdges(e Edges[LengthPercentage]) Edges[LengthPercentage] {
	return Edges[LengthPercentage]{
		Left:   lpOrZero(e.Left),
		Right:  lpOrZero(e.Right),
		Top:    lpOrZero(e.Top),
		Bottom: lpOrZero(e.Bottom),
	}
}

// --- Field table ---

type fieldAccessor struct {
	name string
	copy func(dst, src *Style)
	get  func(s *Style) any
}

var fieldAccessors = [fieldCount]fieldAccessor{
	FieldDisplay:        {"display", func(d, s *Style) { d.display = s.display }, func(s *Style) any { return s.display }},
	FieldBoxSizing:      {"box_sizing", func(d, s *Style) { d.boxSizing = s.boxSizing }, func(s *Style) any { return s.boxSizing }},
	FieldOverflowX:      {"overflow_x", func(d, s *Style) { d.overflowX = s.overflowX }, func(s *Style) any { return s.overflowX }},
	FieldOverflowY:      {"overflow_y", func(d, s *Style) { d.overflowY = s.overflowY }, func(s *Style) any { return s.overflowY }},
	FieldScrollbarWidth: {"scrollbar_width", func(d, s *Style) { d.scrollbarWidth = s.scrollbarWidth }, func(s *Style) any { return s.scrollbarWidth }},
	FieldPosition:       {"position", func(d, s *Style) { d.position = s.position }, func(s *Style) any { return s.position }},
	FieldInsetLeft:      {"inset_left", func(d, s *Style) { d.inset.Left = s.inset.Left }, func(s *Style) any { return s.inset.Left }},
	FieldInsetRight:     {"inset_right", func(d, s *Style) { d.inset.Right = s.inset.Right }, func(s *Style) any { return s.inset.Right }},
	FieldInsetTop:       {"inset_top", func(d, s *Style) { d.inset.Top = s.inset.Top }, func(s *Style) any { return s.inset.Top }},
	FieldInsetBottom:    {"inset_bottom", func(d, s *Style) { d.inset.Bottom = s.inset.Bottom }, func(s *Style) any { return s.inset.Bottom }},
	FieldWidth:          {"size_width", func(d, s *Style) { d.width = s.width }, func(s *Style) any { return s.width }},
	FieldHeight:         {"size_height", func(d, s *Style) { d.height = s.height }, func(s *Style) any { return s.height }},
	FieldMinWidth:       {"min_size_width", func(d, s *Style) { d.minWidth = s.minWidth }, func(s *Style) any { return s.minWidth }},
	FieldMinHeight:      {"min_size_height", func(d, s *Style) { d.minHeight = s.minHeight }, func(s *Style) any { return s.minHeight }},
	FieldMaxWidth:       {"max_size_width", func(d, s *Style) { d.maxWidth = s.maxWidth }, func(s *Style) any { return s.maxWidth }},
	FieldMaxHeight:      {"max_size_height", func(d, s *Style) { d.maxHeight = s.maxHeight }, func(s *Style) any { return s.maxHeight }},
	FieldAspectRatio:    {"aspect_ratio", func(d, s *Style) { d.aspectRatio = s.aspectRatio }, func(s *Style) any { return s.aspectRatio }},
	FieldMarginLeft:     {"margin_left", func(d, s *Style) { d.margin.Left = s.margin.Left }, func(s *Style) any { return s.margin.Left }},
	FieldMarginRight:    {"margin_right", func(d, s *Style) { d.margin.Right = s.margin.Right }, func(s *Style) any { return s.margin.Right }},
	FieldMarginTop:      {"margin_top", func(d, s *Style) { d.margin.Top = s.margin.Top }, func(s *Style) any { return s.margin.Top }},
	FieldMarginBottom:   {"margin_bottom", func(d, s *Style) { d.margin.Bottom = s.margin.Bottom }, func(s *Style) any { return s.margin.Bottom }},
	FieldPaddingLeft:    {"padding_left", func(d, s *Style) { d.padding.Left = s.padding.Left }, func(s *Style) any { return s.padding.Left }},
	FieldPaddingRight:   {"padding_right", func(d, s *Style) { d.padding.Right = s.padding.Right }, func(s *Style) any { return s.padding.Right }},
	FieldPaddingTop:     {"padding_top", func(d, s *Style) { d.padding.Top = s.padding.Top }, func(s *Style) any { return s.padding.Top }},
	FieldPaddingBottom:  {"padding_bottom", func(d, s *Style) { d.padding.Bottom = s.padding.Bottom }, func(s *Style) any { return s.padding.Bottom }},
	FieldBorderLeft:     {"border_left", func(d, s *Style) { d.border.Left = s.border.Left }, func(s *Style) any { return s.border.Left }},
	FieldBorderRight:    {"border_right", func(d, s *Style) { d.border.Right = s.border.Right }, func(s *Style) any { return s.border.Right }},
	FieldBorderTop:      {"border_top", func(d, s *Style) { d.border.Top = s.border.Top }, func(s *Style) any { return s.border.Top }},
	FieldBorderBottom:   {"border_bottom", func(d, s *Style) { d.border.Bottom = s.border.Bottom }, func(s *Style) any { return s.border.Bottom }},
	FieldAlignItems:     {"align_items", func(d, s *Style) { d.alignItems = s.alignItems }, func(s *Style) any { return s.alignItems }},
	FieldAlignSelf:      {"align_self", func(d, s *Style) { d.alignSelf = s.alignSelf }, func(s *Style) any { return s.alignSelf }},
	FieldJustifyItems:   {"justify_items", func(d, s *Style) { d.justifyItems = s.justifyItems }, func(s *Style) any { return s.justifyItems }},
	FieldJustifySelf:    {"justify_self", func(d, s *Style) { d.justifySelf = s.justifySelf }, func(s *Style) any { return s.justifySelf }},
	FieldAlignContent:   {"align_content", func(d, s *Style) { d.alignContent = s.alignContent }, func(s *Style) any { return s.alignContent }},
	FieldJustifyContent: {"justify_content", func(d, s *Style) { d.justifyContent = s.justifyContent }, func(s *Style) any { return s.justifyContent }},
	FieldGapWidth:       {"gap_width", func(d, s *Style) { d.gapWidth = s.gapWidth }, func(s *Style) any { return s.gapWidth }},
	FieldGapHeight:      {"gap_height", func(d, s *Style) { d.gapHeight = s.gapHeight }, func(s *Style) any { return s.gapHeight }},
	FieldTextAlign:      {"text_align", func(d, s *Style) { d.textAlign = s.textAlign }, func(s *Style) any { return s.textAlign }},
	FieldFlexDirection:  {"flex_direction", func(d, s *Style) { d.flexDirection = s.flexDirection }, func(s *Style) any { return s.flexDirection }},
	FieldFlexWrap:       {"flex_wrap", func(d, s *Style) { d.flexWrap = s.flexWrap }, func(s *Style) any { return s.flexWrap }},
	FieldFlexBasis:      {"flex_basis", func(d, s *Style) { d.flexBasis = s.flexBasis }, func(s *Style) any { return s.flexBasis }},
	FieldFlexGrow:       {"flex_grow", func(d, s *Style) { d.flexGrow = s.flexGrow }, func(s *Style) any { return s.flexGrow }},
	FieldFlexShrink:     {"flex_shrink", func(d, s *Style) { d.flexShrink = s.flexShrink }, func(s *Style) any { return s.flexShrink }},

	FieldGridTemplateRows:    {"grid_template_rows", func(d, s *Style) { d.gridTemplateRows = s.gridTemplateRows }, func(s *Style) any { return s.gridTemplateRows }},
	FieldGridTemplateColumns: {"grid_template_columns", func(d, s *Style) { d.gridTemplateColumns = s.gridTemplateColumns }, func(s *Style) any { return s.gridTemplateColumns }},
	FieldGridAutoRows:        {"grid_auto_rows", func(d, s *Style) { d.gridAutoRows = s.gridAutoRows }, func(s *Style) any { return s.gridAutoRows }},
	FieldGridAutoColumns:     {"grid_auto_columns", func(d, s *Style) { d.gridAutoColumns = s.gridAutoColumns }, func(s *Style) any { return s.gridAutoColumns }},
	FieldGridAutoFlow:        {"grid_auto_flow", func(d, s *Style) { d.gridAutoFlow = s.gridAutoFlow }, func(s *Style) any { return s.gridAutoFlow }},
	FieldGridRow:             {"grid_row", func(d, s *Style) { d.gridRow = s.gridRow }, func(s *Style) any { return s.gridRow }},
	FieldGridColumn:          {"grid_column", func(d, s *Style) { d.gridColumn = s.gridColumn }, func(s *Style) any { return s.gridColumn }},
}
