// style.go re-exports the style model from internal/layout.
// Any changes to internal/layout style options must be mirrored here.
package boxlayout

import "github.com/grindlemire/go-boxlayout/internal/layout"

// Style holds the layout properties of a node. Fields record whether they
// were explicitly named, so Merge can tell "not specified" from "specified
// as the default".
type Style = layout.Style

// StyleOption configures a Style.
type StyleOption = layout.StyleOption

// Field names one property of a Style.
type Field = layout.Field

// Edges holds one value per side of a box.
type Edges[T any] = layout.Edges[T]

// Style fields, for use with Unset and Style.IsSet.
const (
	FieldDisplay             = layout.FieldDisplay
	FieldBoxSizing           = layout.FieldBoxSizing
	FieldOverflowX           = layout.FieldOverflowX
	FieldOverflowY           = layout.FieldOverflowY
	FieldScrollbarWidth      = layout.FieldScrollbarWidth
	FieldPosition            = layout.FieldPosition
	FieldInsetLeft           = layout.FieldInsetLeft
	FieldInsetRight          = layout.FieldInsetRight
	FieldInsetTop            = layout.FieldInsetTop
	FieldInsetBottom         = layout.FieldInsetBottom
	FieldWidth               = layout.FieldWidth
	FieldHeight              = layout.FieldHeight
	FieldMinWidth            = layout.FieldMinWidth
	FieldMinHeight           = layout.FieldMinHeight
	FieldMaxWidth            = layout.FieldMaxWidth
	FieldMaxHeight           = layout.FieldMaxHeight
	FieldAspectRatio         = layout.FieldAspectRatio
	FieldMarginLeft          = layout.FieldMarginLeft
	FieldMarginRight         = layout.FieldMarginRight
	FieldMarginTop           = layout.FieldMarginTop
	FieldMarginBottom        = layout.FieldMarginBottom
	FieldPaddingLeft         = layout.FieldPaddingLeft
	FieldPaddingRight        = layout.FieldPaddingRight
	FieldPaddingTop          = layout.FieldPaddingTop
	FieldPaddingBottom       = layout.FieldPaddingBottom
	FieldBorderLeft          = layout.FieldBorderLeft
	FieldBorderRight         = layout.FieldBorderRight
	FieldBorderTop           = layout.FieldBorderTop
	FieldBorderBottom        = layout.FieldBorderBottom
	FieldAlignItems          = layout.FieldAlignItems
	FieldAlignSelf           = layout.FieldAlignSelf
	FieldJustifyItems        = layout.FieldJustifyItems
	FieldJustifySelf         = layout.FieldJustifySelf
	FieldAlignContent        = layout.FieldAlignContent
	FieldJustifyContent      = layout.FieldJustifyContent
	FieldGapWidth            = layout.FieldGapWidth
	FieldGapHeight           = layout.FieldGapHeight
	FieldTextAlign           = layout.FieldTextAlign
	FieldFlexDirection       = layout.FieldFlexDirection
	FieldFlexWrap            = layout.FieldFlexWrap
	FieldFlexBasis           = layout.FieldFlexBasis
	FieldFlexGrow            = layout.FieldFlexGrow
	FieldFlexShrink          = layout.FieldFlexShrink
	FieldGridTemplateRows    = layout.FieldGridTemplateRows
	FieldGridTemplateColumns = layout.FieldGridTemplateColumns
	FieldGridAutoRows        = layout.FieldGridAutoRows
	FieldGridAutoColumns     = layout.FieldGridAutoColumns
	FieldGridAutoFlow        = layout.FieldGridAutoFlow
	FieldGridRow             = layout.FieldGridRow
	FieldGridColumn          = layout.FieldGridColumn
)

// EdgesAll returns Edges with v on every side.
func EdgesAll[T any](v T) Edges[T] { return layout.EdgesAll(v) }

// EdgesXY returns Edges with x on the left and right and y on the top and bottom.
func EdgesXY[T any](x, y T) Edges[T] { return layout.EdgesXY(x, y) }

// DefaultStyle returns a Style with every field at its default.
func DefaultStyle() Style { return layout.DefaultStyle() }

// NewStyle returns a Style with opts applied in order.
func NewStyle(opts ...StyleOption) Style { return layout.NewStyle(opts...) }

// MergeStyles folds styles left to right with Style.Merge. Later styles
// override only the fields they explicitly name.
func MergeStyles(styles ...Style) Style { return layout.Merge(styles...) }

// Unset explicitly clears fields. An unset field reads as its default and
// overrides the same field when merged.
func Unset(fields ...Field) StyleOption { return layout.Unset(fields...) }

// WithDisplay sets the display mode.
func WithDisplay(d Display) StyleOption { return layout.WithDisplay(d) }

// WithBoxSizing sets which box the size properties describe.
func WithBoxSizing(b BoxSizing) StyleOption { return layout.WithBoxSizing(b) }

// WithOverflow sets the overflow behavior for both axes.
func WithOverflow(x, y Overflow) StyleOption { return layout.WithOverflow(x, y) }

// WithScrollbarWidth sets the space reserved for scrollbars on scroll containers.
func WithScrollbarWidth(w float64) StyleOption { return layout.WithScrollbarWidth(w) }

// WithPosition sets the positioning mode.
func WithPosition(p Position) StyleOption { return layout.WithPosition(p) }

// WithInset sets the offsets of all four sides. Nil sides are unset.
func WithInset(e Edges[Dimension]) StyleOption { return layout.WithInset(e) }

// WithSize sets the preferred width and height. Nil values are unset.
func WithSize(width, height Dimension) StyleOption { return layout.WithSize(width, height) }

// WithWidth sets the preferred width. Nil is unset.
func WithWidth(d Dimension) StyleOption { return layout.WithWidth(d) }

// WithHeight sets the preferred height. Nil is unset.
func WithHeight(d Dimension) StyleOption { return layout.WithHeight(d) }

// WithMinSize sets the minimum width and height. Nil values are unset.
func WithMinSize(width, height Dimension) StyleOption { return layout.WithMinSize(width, height) }

// WithMaxSize sets the maximum width and height. Nil values are unset.
func WithMaxSize(width, height Dimension) StyleOption { return layout.WithMaxSize(width, height) }

// WithAspectRatio sets the preferred width/height ratio.
func WithAspectRatio(r float64) StyleOption { return layout.WithAspectRatio(r) }

// WithMargin sets the margin of all four sides. Nil sides are unset.
func WithMargin(e Edges[Dimension]) StyleOption { return layout.WithMargin(e) }

// WithPadding sets the padding of all four sides. Nil sides are unset.
func WithPadding(e Edges[LengthPercentage]) StyleOption { return layout.WithPadding(e) }

// WithBorder sets the border width of all four sides. Nil sides are unset.
func WithBorder(e Edges[LengthPercentage]) StyleOption { return layout.WithBorder(e) }

// WithGap sets the gap between columns (width) and rows (height).
func WithGap(width, height LengthPercentage) StyleOption { return layout.WithGap(width, height) }

// WithAlignItems sets the default cross-axis alignment of children.
func WithAlignItems(a AlignItems) StyleOption { return layout.WithAlignItems(a) }

// WithAlignSelf overrides the parent's AlignItems for this node.
func WithAlignSelf(a AlignItems) StyleOption { return layout.WithAlignSelf(a) }

// WithJustifyItems sets the default inline-axis alignment of grid children.
func WithJustifyItems(a AlignItems) StyleOption { return layout.WithJustifyItems(a) }

// WithJustifySelf overrides the parent's JustifyItems for this node.
func WithJustifySelf(a AlignItems) StyleOption { return layout.WithJustifySelf(a) }

// WithAlignContent sets how lines or row tracks share cross-axis space.
func WithAlignContent(a AlignContent) StyleOption { return layout.WithAlignContent(a) }

// WithJustifyContent sets how items or column tracks share main-axis space.
func WithJustifyContent(a AlignContent) StyleOption { return layout.WithJustifyContent(a) }

// WithTextAlign sets the legacy text alignment used by block layout.
func WithTextAlign(t TextAlign) StyleOption { return layout.WithTextAlign(t) }

// WithFlexDirection sets the main axis.
func WithFlexDirection(d FlexDirection) StyleOption { return layout.WithFlexDirection(d) }

// WithFlexWrap sets whether items may wrap onto multiple lines.
func WithFlexWrap(w FlexWrap) StyleOption { return layout.WithFlexWrap(w) }

// WithFlexBasis sets the initial main size. Nil is unset.
func WithFlexBasis(d Dimension) StyleOption { return layout.WithFlexBasis(d) }

// WithFlexGrow sets the share of free space this node takes.
func WithFlexGrow(g float64) StyleOption { return layout.WithFlexGrow(g) }

// WithFlexShrink sets the share of overflow this node absorbs.
func WithFlexShrink(f float64) StyleOption { return layout.WithFlexShrink(f) }

// WithGridTemplateRows sets the explicit row tracks.
func WithGridTemplateRows(tracks ...TrackSize) StyleOption { return layout.WithGridTemplateRows(tracks...) }

// WithGridTemplateColumns sets the explicit column tracks.
func WithGridTemplateColumns(tracks ...TrackSize) StyleOption { return layout.WithGridTemplateColumns(tracks...) }

// WithGridAutoRows sets the sizes of implicitly created rows.
func WithGridAutoRows(tracks ...TrackSize) StyleOption { return layout.WithGridAutoRows(tracks...) }

// WithGridAutoColumns sets the sizes of implicitly created columns.
func WithGridAutoColumns(tracks ...TrackSize) StyleOption { return layout.WithGridAutoColumns(tracks...) }

// WithGridAutoFlow sets the auto-placement direction.
func WithGridAutoFlow(f GridAutoFlow) StyleOption { return layout.WithGridAutoFlow(f) }

// WithGridRow places the node between row lines.
func WithGridRow(p GridPlacement) StyleOption { return layout.WithGridRow(p) }

// WithGridColumn places the node between column lines.
func WithGridColumn(p GridPlacement) StyleOption { return layout.WithGridColumn(p) }
