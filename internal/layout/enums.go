package layout

import "strconv"

// Display selects the layout algorithm for a node's children.
type Display uint8

const (
	DisplayFlex  Display = iota // Flexbox container (default)
	DisplayGrid                 // CSS grid container
	DisplayBlock                // Vertical block flow
	DisplayNone                 // Node and subtree take no space
)

// Position selects whether a node takes part in its parent's flow.
type Position uint8

const (
	PositionRelative Position = iota // In flow, offset by inset (default)
	PositionAbsolute                 // Out of flow, placed by inset
)

// BoxSizing selects which box the size properties describe.
type BoxSizing uint8

const (
	BorderBox  BoxSizing = iota // Size includes padding and border (default)
	ContentBox                  // Size excludes padding and border
)

// Overflow controls how content larger than the box is treated.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowClip
	OverflowHidden
	OverflowScroll
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Children laid out left-to-right
	Column                             // Children laid out top-to-bottom
	RowReverse                         // Children laid out right-to-left
	ColumnReverse                      // Children laid out bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether items run against the axis.
func (d FlexDirection) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// FlexWrap controls whether items may break onto multiple lines.
type FlexWrap uint8

const (
	NoWrap      FlexWrap = iota // Single line (default)
	Wrap                        // Lines stack in cross direction
	WrapReverse                 // Lines stack against cross direction
)

// AlignItems specifies how items are positioned on the cross axis.
// It is also used for align-self, justify-items and justify-self.
type AlignItems uint8

const (
	AlignStart AlignItems = iota
	AlignEnd
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
	AlignStretch
)

// AlignContent specifies how lines or tracks share free space.
// It is also used for justify-content.
type AlignContent uint8

const (
	ContentStart AlignContent = iota
	ContentEnd
	ContentFlexStart
	ContentFlexEnd
	ContentCenter
	ContentStretch
	ContentSpaceBetween
	ContentSpaceEvenly
	ContentSpaceAround
)

// GridAutoFlow controls auto-placement of grid items.
type GridAutoFlow uint8

const (
	FlowRow GridAutoFlow = iota
	FlowColumn
	FlowRowDense
	FlowColumnDense
)

// IsColumn reports whether items are placed column by column.
func (f GridAutoFlow) IsColumn() bool {
	return f == FlowColumn || f == FlowColumnDense
}

// IsDense reports whether placement backfills earlier holes.
func (f GridAutoFlow) IsDense() bool {
	return f == FlowRowDense || f == FlowColumnDense
}

// TextAlign is the legacy text alignment used by block layout.
type TextAlign uint8

const (
	TextAlignAuto TextAlign = iota
	TextAlignLegacyLeft
	TextAlignLegacyRight
	TextAlignLegacyCenter
)

var (
	displayNames       = [...]string{"Flex", "Grid", "Block", "None"}
	positionNames      = [...]string{"Relative", "Absolute"}
	boxSizingNames     = [...]string{"BorderBox", "ContentBox"}
	overflowNames      = [...]string{"Visible", "Clip", "Hidden", "Scroll"}
	flexDirectionNames = [...]string{"Row", "Column", "RowReverse", "ColumnReverse"}
	flexWrapNames      = [...]string{"NoWrap", "Wrap", "WrapReverse"}
	alignItemsNames    = [...]string{"Start", "End", "FlexStart", "FlexEnd", "Center", "Baseline", "Stretch"}
	alignContentNames  = [...]string{"Start", "End", "FlexStart", "FlexEnd", "Center", "Stretch", "SpaceBetween", "SpaceEvenly", "SpaceAround"}
	gridAutoFlowNames  = [...]string{"Row", "Column", "RowDense", "ColumnDense"}
	textAlignNames     = [...]string{"Auto", "LegacyLeft", "LegacyRight", "LegacyCenter"}
)

func enumName[E ~uint8](names []string, v E) string {
	if int(v) < len(names) {
		return names[v]
	}
	return "Unknown(" + strconv.Itoa(int(v)) + ")"
}

func (d Display) String() string       { return enumName(displayNames[:], d) }
func (p Position) String() string      { return enumName(positionNames[:], p) }
func (b BoxSizing) String() string     { return enumName(boxSizingNames[:], b) }
func (o Overflow) String() string      { return enumName(overflowNames[:], o) }
func (d FlexDirection) String() string { return enumName(flexDirectionNames[:], d) }
func (w FlexWrap) String() string      { return enumName(flexWrapNames[:], w) }
func (a AlignItems) String() string    { return enumName(alignItemsNames[:], a) }
func (a AlignContent) String() string  { return enumName(alignContentNames[:], a) }
func (f GridAutoFlow) String() string  { return enumName(gridAutoFlowNames[:], f) }
func (t TextAlign) String() string     { return enumName(textAlignNames[:], t) }
