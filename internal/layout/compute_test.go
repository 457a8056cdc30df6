package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNode is a minimal Layoutable used to drive the engine directly.
type testNode struct {
	style    Style
	children []*testNode
	layout   Layout
	dirty    bool
	cache    Cache
	measure  func(KnownSize, AvailableSize) (Size, error)
	measured int
}

func node(style Style, children ...*testNode) *testNode {
	return &testNode{style: style, children: children, dirty: true}
}

func leaf(opts ...StyleOption) *testNode {
	return node(NewStyle(opts...))
}

func (n *testNode) LayoutStyle() *Style { return &n.style }
func (n *testNode) SetLayout(l Layout)  { n.layout = l }
func (n *testNode) GetLayout() Layout   { return n.layout }
func (n *testNode) IsDirty() bool       { return n.dirty }
func (n *testNode) SetDirty(d bool)     { n.dirty = d }
func (n *testNode) LayoutCache() *Cache { return &n.cache }
func (n *testNode) Measurable() bool    { return n.measure != nil }

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *testNode) Measure(known KnownSize, available AvailableSize) (Size, error) {
	n.measured++
	return n.measure(known, available)
}

func px(v float64) Length { return MustLength(v) }

func box(x, y, w, h float64) Rect {
	return Rect{Left: x, Right: x + w, Top: y, Bottom: y + h}
}

func compute(t *testing.T, root *testNode, w, h float64) Stats {
	t.Helper()
	stats, err := Compute(root, DefiniteSize(w, h))
	require.NoError(t, err)
	return stats
}

func TestCompute_Flex(t *testing.T) {
	type tc struct {
		root  func() *testNode
		boxes []Rect
	}

	tests := map[string]tc{
		"row of fixed children": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(300), px(100))),
					leaf(WithSize(px(100), px(50))),
					leaf(WithSize(px(50), px(50))),
				)
			},
			boxes: []Rect{box(0, 0, 100, 50), box(100, 0, 50, 50)},
		},
		"children stretch across the cross axis": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(300), px(100))),
					leaf(WithWidth(px(100))),
				)
			},
			boxes: []Rect{box(0, 0, 100, 100)},
		},
		"grow splits free space by weight": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(300), px(100))),
					leaf(WithFlexGrow(1)),
					leaf(WithFlexGrow(2)),
				)
			},
			boxes: []Rect{box(0, 0, 100, 100), box(100, 0, 200, 100)},
		},
		"column direction stacks vertically": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(100), px(300)), WithFlexDirection(Column)),
					leaf(WithHeight(px(40))),
					leaf(WithHeight(px(60))),
				)
			},
			boxes: []Rect{box(0, 0, 100, 40), box(0, 40, 100, 60)},
		},
		"shrink fits overflowing children": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(100), px(10))),
					leaf(WithWidth(px(100))),
					leaf(WithWidth(px(100))),
				)
			},
			boxes: []Rect{box(0, 0, 50, 10), box(50, 0, 50, 10)},
		},
		"justify center with gap": {
			root: func() *testNode {
				return node(NewStyle(
					WithSize(px(100), px(10)),
					WithJustifyContent(ContentCenter),
					WithGap(px(10), px(0)),
				),
					leaf(WithWidth(px(20))),
					leaf(WithWidth(px(20))),
				)
			},
			boxes: []Rect{box(25, 0, 20, 10), box(55, 0, 20, 10)},
		},
		"space between": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(100), px(10)), WithJustifyContent(ContentSpaceBetween)),
					leaf(WithWidth(px(10))),
					leaf(WithWidth(px(10))),
					leaf(WithWidth(px(10))),
				)
			},
			boxes: []Rect{box(0, 0, 10, 10), box(45, 0, 10, 10), box(90, 0, 10, 10)},
		},
		"align items center": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(100), px(100)), WithAlignItems(AlignCenter)),
					leaf(WithSize(px(10), px(20))),
				)
			},
			boxes: []Rect{box(0, 40, 10, 20)},
		},
		"padding offsets children": {
			root: func() *testNode {
				return node(NewStyle(
					WithSize(px(100), px(100)),
					WithPadding(EdgesAll[LengthPercentage](px(10))),
				),
					leaf(WithFlexGrow(1)),
				)
			},
			boxes: []Rect{box(10, 10, 80, 80)},
		},
		"margin pushes siblings": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(100), px(10))),
					leaf(WithWidth(px(10)), WithMargin(Edges[Dimension]{Left: px(5), Right: px(5), Top: px(0), Bottom: px(0)})),
					leaf(WithWidth(px(10))),
				)
			},
			boxes: []Rect{box(5, 0, 10, 10), box(20, 0, 10, 10)},
		},
		"auto margin centers": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(100), px(10))),
					leaf(WithWidth(px(20)), WithMargin(Edges[Dimension]{Left: Auto{}, Right: Auto{}, Top: px(0), Bottom: px(0)})),
				)
			},
			boxes: []Rect{box(40, 0, 20, 10)},
		},
		"wrap moves overflow to a new line": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(100), px(100)), WithFlexWrap(Wrap), WithAlignContent(ContentFlexStart)),
					leaf(WithSize(px(60), px(10))),
					leaf(WithSize(px(60), px(10))),
				)
			},
			boxes: []Rect{box(0, 0, 60, 10), box(0, 10, 60, 10)},
		},
		"row reverse": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(100), px(10)), WithFlexDirection(RowReverse)),
					leaf(WithWidth(px(10))),
					leaf(WithWidth(px(20))),
				)
			},
			boxes: []Rect{box(90, 0, 10, 10), box(70, 0, 20, 10)},
		},
		"percent width": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(200), px(10))),
					leaf(WithWidth(MustPercent(0.25))),
				)
			},
			boxes: []Rect{box(0, 0, 50, 10)},
		},
		"min width wins over shrink": {
			root: func() *testNode {
				return node(NewStyle(WithSize(px(50), px(10))),
					leaf(WithWidth(px(100)), WithMinSize(px(80), Auto{})),
				)
			},
			boxes: []Rect{box(0, 0, 80, 10)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := tt.root()
			compute(t, root, 1000, 1000)

			require.Len(t, root.children, len(tt.boxes))
			for i, want := range tt.boxes {
				assert.Equal(t, want, root.children[i].layout.BorderBox(), "child %d", i)
				assert.Equal(t, uint32(i), root.children[i].layout.Order)
			}
		})
	}
}

func TestCompute_RootSizesToContent(t *testing.T) {
	root := node(NewStyle(),
		leaf(WithSize(px(100), px(20))),
		leaf(WithSize(px(50), px(30))),
	)
	compute(t, root, 800, 600)

	assert.Equal(t, Point{}, root.layout.Location)
	assert.Equal(t, Size{Width: 150, Height: 30}, root.layout.Size)
}

func TestCompute_Block(t *testing.T) {
	root := node(NewStyle(WithDisplay(DisplayBlock), WithPadding(EdgesAll[LengthPercentage](px(5)))),
		leaf(WithHeight(px(20))),
		leaf(WithSize(px(40), px(10)), WithMargin(Edges[Dimension]{Left: Auto{}, Right: Auto{}, Top: px(4), Bottom: px(0)})),
	)
	compute(t, root, 200, 600)

	assert.Equal(t, Size{Width: 200, Height: 44}, root.layout.Size)
	assert.Equal(t, box(5, 5, 190, 20), root.children[0].layout.BorderBox())
	assert.Equal(t, box(80, 29, 40, 10), root.children[1].layout.BorderBox())
}

func TestCompute_Grid(t *testing.T) {
	type tc struct {
		style Style
		kids  []*testNode
		boxes []Rect
	}

	tests := map[string]tc{
		"two fixed columns": {
			style: NewStyle(WithDisplay(DisplayGrid), WithGridTemplateColumns(px(100), px(100))),
			kids:  []*testNode{leaf(WithHeight(px(10))), leaf(WithHeight(px(10)))},
			boxes: []Rect{box(0, 0, 100, 10), box(100, 0, 100, 10)},
		},
		"fractions share the container": {
			style: NewStyle(
				WithDisplay(DisplayGrid),
				WithSize(px(300), px(30)),
				WithGridTemplateColumns(NewFraction(1), NewFraction(2)),
			),
			kids:  []*testNode{leaf(), leaf()},
			boxes: []Rect{box(0, 0, 100, 30), box(100, 0, 200, 30)},
		},
		"auto placement wraps rows": {
			style: NewStyle(
				WithDisplay(DisplayGrid),
				WithGridTemplateColumns(px(50), px(50)),
				WithGridAutoRows(px(20)),
				WithGap(px(10), px(5)),
			),
			kids:  []*testNode{leaf(), leaf(), leaf()},
			boxes: []Rect{box(0, 0, 50, 20), box(60, 0, 50, 20), box(0, 25, 50, 20)},
		},
		"explicit line placement": {
			style: NewStyle(
				WithDisplay(DisplayGrid),
				WithGridTemplateColumns(px(10), px(20), px(30)),
				WithGridTemplateRows(px(10), px(10)),
			),
			kids: []*testNode{
				leaf(WithGridColumn(NewGridPlacement(MustGridLine(2), MustGridSpan(2))), WithGridRow(NewGridPlacement(MustGridLine(2), nil))),
				leaf(WithGridColumn(NewGridPlacement(MustGridLine(-2), nil))),
			},
			boxes: []Rect{box(10, 10, 50, 10), box(30, 0, 30, 10)},
		},
		"column flow fills columns first": {
			style: NewStyle(
				WithDisplay(DisplayGrid),
				WithGridAutoFlow(FlowColumn),
				WithGridTemplateRows(px(10), px(10)),
				WithGridAutoColumns(px(15)),
			),
			kids:  []*testNode{leaf(), leaf(), leaf()},
			boxes: []Rect{box(0, 0, 15, 10), box(0, 10, 15, 10), box(15, 0, 15, 10)},
		},
		"justify self center": {
			style: NewStyle(WithDisplay(DisplayGrid), WithGridTemplateColumns(px(100)), WithJustifyItems(AlignCenter)),
			kids:  []*testNode{leaf(WithSize(px(20), px(10)))},
			boxes: []Rect{box(40, 0, 20, 10)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			root := node(tt.style, tt.kids...)
			compute(t, root, 1000, 1000)
			for i, want := range tt.boxes {
				assert.Equal(t, want, root.children[i].layout.BorderBox(), "child %d", i)
			}
		})
	}
}

func TestPlaceItems_Dense(t *testing.T) {
	style := func(opts ...StyleOption) *Style {
		s := NewStyle(opts...)
		return &s
	}
	items := []gridItem{
		{style: style()},
		{style: style(WithGridColumn(NewGridPlacement(nil, MustGridSpan(2))))},
		{style: style()},
	}

	rows, cols := placeItems(items, FlowRowDense, 0, 2)
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, gridSpan{1, 2}, items[2].col)
	assert.Equal(t, gridSpan{0, 1}, items[2].row)
}

func TestCompute_Absolute(t *testing.T) {
	root := node(NewStyle(WithSize(px(100), px(100)), WithPadding(EdgesAll[LengthPercentage](px(10)))),
		leaf(WithFlexGrow(1)),
		leaf(
			WithPosition(PositionAbsolute),
			WithInset(Edges[Dimension]{Left: Auto{}, Right: px(5), Top: px(5), Bottom: Auto{}}),
			WithSize(px(20), px(20)),
		),
	)
	compute(t, root, 1000, 1000)

	assert.Equal(t, box(10, 10, 80, 80), root.children[0].layout.BorderBox())
	assert.Equal(t, box(75, 5, 20, 20), root.children[1].layout.BorderBox())
}

func TestCompute_DisplayNone(t *testing.T) {
	hidden := node(NewStyle(WithDisplay(DisplayNone), WithSize(px(50), px(50))), leaf(WithSize(px(10), px(10))))
	root := node(NewStyle(WithSize(px(100), px(100))), hidden, leaf(WithWidth(px(30))))
	compute(t, root, 1000, 1000)

	assert.Equal(t, Size{}, hidden.layout.Size)
	assert.Equal(t, Size{}, hidden.children[0].layout.Size)
	assert.Equal(t, box(0, 0, 30, 100), root.children[1].layout.BorderBox())
	assert.False(t, hidden.dirty)
}

func TestCompute_Measure(t *testing.T) {
	text := leaf()
	text.measure = func(known KnownSize, available AvailableSize) (Size, error) {
		w := known.Width.Or(40)
		return Size{Width: w, Height: 400 / w}, nil
	}
	root := node(NewStyle(WithSize(px(100), px(100)), WithFlexDirection(Column), WithAlignItems(AlignStart)), text)
	compute(t, root, 1000, 1000)

	assert.Equal(t, Size{Width: 40, Height: 10}, text.layout.Size)
	assert.Positive(t, text.measured)
}

func TestCompute_MeasureError(t *testing.T) {
	boom := errors.New("boom")
	text := leaf()
	text.measure = func(KnownSize, AvailableSize) (Size, error) {
		return Size{}, boom
	}
	root := node(NewStyle(), text)

	_, err := Compute(root, DefiniteSize(100, 100))
	assert.Same(t, boom, err)
}

func TestCompute_Cache(t *testing.T) {
	text := leaf()
	text.measure = func(KnownSize, AvailableSize) (Size, error) {
		return Size{Width: 10, Height: 10}, nil
	}
	root := node(NewStyle(), text)

	compute(t, root, 100, 100)
	first := text.measured
	require.Positive(t, first)
	assert.False(t, root.dirty)
	assert.False(t, text.dirty)

	stats := compute(t, root, 100, 100)
	assert.Equal(t, first, text.measured, "clean tree is served from cache")
	assert.Equal(t, 0, stats.Laid)
	assert.Equal(t, 1, stats.CacheHits)

	text.dirty = true
	root.dirty = true
	compute(t, root, 100, 100)
	assert.Greater(t, text.measured, first)
}

func TestCompute_Scrollbar(t *testing.T) {
	root := node(NewStyle(WithSize(px(50), px(50)), WithOverflow(OverflowVisible, OverflowScroll), WithScrollbarWidth(4)))
	compute(t, root, 100, 100)
	assert.Equal(t, Size{Width: 4}, root.layout.ScrollbarSize)
}
