// layout.go re-exports geometry, value and enum types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package boxlayout

import "github.com/grindlemire/go-boxlayout/internal/layout"

// Point is a position in two dimensions.
type Point = layout.Point

// Size is a width/height pair.
type Size = layout.Size

// Rect holds one value per side: left, right, top and bottom.
type Rect = layout.Rect

// Line is a one-dimensional segment.
type Line = layout.Line

// Layout holds the computed position and size of a node.
type Layout = layout.Layout

// MaybeFloat is a number that may be absent.
type MaybeFloat = layout.MaybeFloat

// KnownSize holds the dimensions already fixed when a node is measured.
type KnownSize = layout.KnownSize

// AvailableSize holds the sizing budget for each axis.
// The zero value means max-content on both axes.
type AvailableSize = layout.AvailableSize

// Some returns a present MaybeFloat.
func Some(v float64) MaybeFloat { return layout.Some(v) }

// None returns an absent MaybeFloat.
func None() MaybeFloat { return layout.None() }

// DefiniteSize returns an AvailableSize with a definite budget on both axes.
func DefiniteSize(width, height float64) AvailableSize {
	return layout.DefiniteSize(width, height)
}

// Value families. Each is a closed set of the primitive types below.
type (
	Dimension          = layout.Dimension
	LengthPercentage   = layout.LengthPercentage
	TrackMin           = layout.TrackMin
	TrackMax           = layout.TrackMax
	TrackSize          = layout.TrackSize
	GridPlacementValue = layout.GridPlacementValue
	AvailableSpace     = layout.AvailableSpace
)

// Value primitives.
type (
	Length        = layout.Length
	Percent       = layout.Percent
	Auto          = layout.Auto
	MinContent    = layout.MinContent
	MaxContent    = layout.MaxContent
	Fraction      = layout.Fraction
	FitContent    = layout.FitContent
	Minmax        = layout.Minmax
	GridLine      = layout.GridLine
	GridSpan      = layout.GridSpan
	GridPlacement = layout.GridPlacement
	Definite      = layout.Definite
)

// NewLength returns a fixed length. NaN is rejected with ErrInvalidLength.
func NewLength(v float64) (Length, error) { return layout.NewLength(v) }

// MustLength is like NewLength but panics on invalid input.
func MustLength(v float64) Length { return layout.MustLength(v) }

// NewPercent returns a fraction of the containing size. Values outside
// [0, 1] are rejected with ErrInvalidPercent.
func NewPercent(v float64) (Percent, error) { return layout.NewPercent(v) }

// MustPercent is like NewPercent but panics on invalid input.
func MustPercent(v float64) Percent { return layout.MustPercent(v) }

// NewFraction returns a flexible grid track weight.
func NewFraction(v float64) Fraction { return layout.NewFraction(v) }

// NewFitContent returns a track that grows to its content up to limit.
func NewFitContent(limit LengthPercentage) FitContent { return layout.NewFitContent(limit) }

// NewMinmax returns a track sized between lo and hi.
func NewMinmax(lo TrackMin, hi TrackMax) Minmax { return layout.NewMinmax(lo, hi) }

// NewGridLine returns a grid line reference. Zero is rejected with
// ErrInvalidGridLine; negative indices count from the end.
func NewGridLine(index int) (GridLine, error) { return layout.NewGridLine(index) }

// MustGridLine is like NewGridLine but panics on invalid input.
func MustGridLine(index int) GridLine { return layout.MustGridLine(index) }

// NewGridSpan returns a span of count tracks. Counts below one are
// rejected with ErrInvalidGridSpan.
func NewGridSpan(count int) (GridSpan, error) { return layout.NewGridSpan(count) }

// MustGridSpan is like NewGridSpan but panics on invalid input.
func MustGridSpan(count int) GridSpan { return layout.MustGridSpan(count) }

// NewGridPlacement returns a placement from start and end values.
// A nil value means Auto.
func NewGridPlacement(start, end GridPlacementValue) GridPlacement {
	return layout.NewGridPlacement(start, end)
}

// NewDefinite returns a definite amount of available space.
func NewDefinite(v float64) Definite { return layout.NewDefinite(v) }

// Display selects the layout algorithm for a node's children.
type Display = layout.Display

const (
	DisplayFlex  = layout.DisplayFlex
	DisplayGrid  = layout.DisplayGrid
	DisplayBlock = layout.DisplayBlock
	DisplayNone  = layout.DisplayNone
)

// Position selects whether a node takes part in its parent's flow.
type Position = layout.Position

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// BoxSizing selects which box the size properties describe.
type BoxSizing = layout.BoxSizing

const (
	BorderBox  = layout.BorderBox
	ContentBox = layout.ContentBox
)

// Overflow controls how content larger than the box is treated.
type Overflow = layout.Overflow

const (
	OverflowVisible = layout.OverflowVisible
	OverflowClip    = layout.OverflowClip
	OverflowHidden  = layout.OverflowHidden
	OverflowScroll  = layout.OverflowScroll
)

// FlexDirection specifies the main axis of a flex container.
type FlexDirection = layout.FlexDirection

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// FlexWrap controls whether flex items wrap onto new lines.
type FlexWrap = layout.FlexWrap

const (
	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse
)

// AlignItems aligns items within their line or grid area.
type AlignItems = layout.AlignItems

const (
	AlignStart     = layout.AlignStart
	AlignEnd       = layout.AlignEnd
	AlignFlexStart = layout.AlignFlexStart
	AlignFlexEnd   = layout.AlignFlexEnd
	AlignCenter    = layout.AlignCenter
	AlignBaseline  = layout.AlignBaseline
	AlignStretch   = layout.AlignStretch
)

// AlignContent distributes lines or tracks within a container.
type AlignContent = layout.AlignContent

const (
	ContentStart        = layout.ContentStart
	ContentEnd          = layout.ContentEnd
	ContentFlexStart    = layout.ContentFlexStart
	ContentFlexEnd      = layout.ContentFlexEnd
	ContentCenter       = layout.ContentCenter
	ContentStretch      = layout.ContentStretch
	ContentSpaceBetween = layout.ContentSpaceBetween
	ContentSpaceEvenly  = layout.ContentSpaceEvenly
	ContentSpaceAround  = layout.ContentSpaceAround
)

// GridAutoFlow controls how auto-placed grid items fill the grid.
type GridAutoFlow = layout.GridAutoFlow

const (
	FlowRow         = layout.FlowRow
	FlowColumn      = layout.FlowColumn
	FlowRowDense    = layout.FlowRowDense
	FlowColumnDense = layout.FlowColumnDense
)

// TextAlign positions block children that do not fill their container.
type TextAlign = layout.TextAlign

const (
	TextAlignAuto         = layout.TextAlignAuto
	TextAlignLegacyLeft   = layout.TextAlignLegacyLeft
	TextAlignLegacyRight  = layout.TextAlignLegacyRight
	TextAlignLegacyCenter = layout.TextAlignLegacyCenter
)
