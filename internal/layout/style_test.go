package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyle_Defaults(t *testing.T) {
	s := DefaultStyle()

	assert.Equal(t, DisplayFlex, s.Display())
	assert.Equal(t, PositionRelative, s.Position())
	assert.Equal(t, BorderBox, s.BoxSizing())
	assert.Equal(t, Row, s.FlexDirection())
	assert.Equal(t, 0.0, s.FlexGrow())
	assert.Equal(t, 1.0, s.FlexShrink())
	assert.Equal(t, Dimension(Auto{}), s.Width())
	assert.Equal(t, Dimension(Auto{}), s.FlexBasis())
	assert.Equal(t, Dimension(Length{}), s.Margin().Left)
	assert.Equal(t, Dimension(Auto{}), s.Inset().Top)

	_, ok := s.AlignItems()
	assert.False(t, ok)
	_, ok = s.AspectRatio()
	assert.False(t, ok)
	assert.Empty(t, s.SetFields())
}

func TestStyle_Options(t *testing.T) {
	s := NewStyle(
		WithDisplay(DisplayGrid),
		WithFlexDirection(Column),
		WithFlexWrap(Wrap),
		WithFlexGrow(2),
		WithFlexShrink(0.5),
		WithSize(MustLength(100), MustPercent(0.5)),
		WithPadding(EdgesAll[LengthPercentage](MustLength(4))),
		WithAlignItems(AlignCenter),
		WithGridTemplateColumns(MustLength(100), NewFraction(1)),
		WithGridRow(NewGridPlacement(MustGridLine(1), MustGridSpan(2))),
	)

	assert.Equal(t, DisplayGrid, s.Display())
	assert.Equal(t, Column, s.FlexDirection())
	assert.Equal(t, Wrap, s.FlexWrap())
	assert.Equal(t, 2.0, s.FlexGrow())
	assert.Equal(t, 0.5, s.FlexShrink())
	assert.Equal(t, Dimension(MustLength(100)), s.Width())
	assert.Equal(t, Dimension(MustPercent(0.5)), s.Height())
	assert.Equal(t, LengthPercentage(MustLength(4)), s.Padding().Bottom)

	a, ok := s.AlignItems()
	require.True(t, ok)
	assert.Equal(t, AlignCenter, a)

	assert.Equal(t, []TrackSize{MustLength(100), NewFraction(1)}, s.GridTemplateColumns())
	assert.Equal(t, "GridPlacement(start=GridLine(1), end=GridSpan(2))", s.GridRow().String())
}

func TestStyle_NilDimensionIsUnset(t *testing.T) {
	s := NewStyle(WithWidth(nil))

	assert.True(t, s.IsSet(FieldWidth))
	assert.False(t, s.HasValue(FieldWidth))
	assert.Equal(t, Dimension(Auto{}), s.Width())
}

func TestStyle_TrackSlicesAreCopied(t *testing.T) {
	tracks := []TrackSize{MustLength(10)}
	s := NewStyle(WithGridTemplateRows(tracks...))

	tracks[0] = MustLength(99)
	got := s.GridTemplateRows()
	assert.Equal(t, TrackSize(MustLength(10)), got[0])

	got[0] = MustLength(77)
	assert.Equal(t, TrackSize(MustLength(10)), s.GridTemplateRows()[0])
}

func TestStyle_Merge(t *testing.T) {
	type tc struct {
		a, b  Style
		check func(t *testing.T, got Style)
	}

	tests := map[string]tc{
		"rhs overrides lhs": {
			a: NewStyle(WithDisplay(DisplayFlex), WithFlexGrow(1)),
			b: NewStyle(WithDisplay(DisplayGrid)),
			check: func(t *testing.T, got Style) {
				assert.Equal(t, DisplayGrid, got.Display())
				assert.Equal(t, 1.0, got.FlexGrow())
			},
		},
		"unnamed fields preserved": {
			a: NewStyle(WithFlexGrow(2), WithFlexShrink(0.5)),
			b: NewStyle(WithFlexGrow(3)),
			check: func(t *testing.T, got Style) {
				assert.Equal(t, 3.0, got.FlexGrow())
				assert.Equal(t, 0.5, got.FlexShrink())
			},
		},
		"empty rhs preserves lhs": {
			a: NewStyle(WithDisplay(DisplayBlock), WithPosition(PositionAbsolute)),
			b: DefaultStyle(),
			check: func(t *testing.T, got Style) {
				assert.Equal(t, DisplayBlock, got.Display())
				assert.Equal(t, PositionAbsolute, got.Position())
			},
		},
		"explicit default still overrides": {
			a: NewStyle(WithFlexGrow(2)),
			b: NewStyle(WithFlexGrow(0)),
			check: func(t *testing.T, got Style) {
				assert.Equal(t, 0.0, got.FlexGrow())
			},
		},
		"explicit unset clears align items": {
			a: NewStyle(WithAlignItems(AlignCenter)),
			b: NewStyle(Unset(FieldAlignItems)),
			check: func(t *testing.T, got Style) {
				_, ok := got.AlignItems()
				assert.False(t, ok)
				assert.True(t, got.IsSet(FieldAlignItems))
			},
		},
		"explicit unset clears aspect ratio": {
			a: NewStyle(WithAspectRatio(1.5)),
			b: NewStyle(Unset(FieldAspectRatio)),
			check: func(t *testing.T, got Style) {
				_, ok := got.AspectRatio()
				assert.False(t, ok)
			},
		},
		"explicit unset restores flex shrink default": {
			a: NewStyle(WithFlexShrink(0)),
			b: NewStyle(Unset(FieldFlexShrink)),
			check: func(t *testing.T, got Style) {
				assert.Equal(t, 1.0, got.FlexShrink())
			},
		},
		"size fields merge independently": {
			a: NewStyle(WithSize(MustLength(100), MustLength(200))),
			b: NewStyle(WithWidth(MustPercent(0.5))),
			check: func(t *testing.T, got Style) {
				assert.Equal(t, Dimension(MustPercent(0.5)), got.Width())
				assert.Equal(t, Dimension(MustLength(200)), got.Height())
			},
		},
		"grid tracks merge independently": {
			a: NewStyle(WithGridTemplateColumns(MustLength(100))),
			b: NewStyle(WithGridTemplateRows(NewFraction(1))),
			check: func(t *testing.T, got Style) {
				assert.Len(t, got.GridTemplateColumns(), 1)
				assert.Len(t, got.GridTemplateRows(), 1)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			beforeA, beforeB := tt.a, tt.b
			got := tt.a.Merge(tt.b)
			tt.check(t, got)

			assert.True(t, tt.a.Equal(beforeA), "lhs mutated")
			assert.True(t, tt.b.Equal(beforeB), "rhs mutated")
		})
	}
}

func TestStyle_MergeChaining(t *testing.T) {
	a := NewStyle(WithDisplay(DisplayFlex))
	b := NewStyle(WithFlexGrow(1))
	c := NewStyle(WithFlexShrink(0))

	got := Merge(a, b, c)
	assert.True(t, got.Equal(a.Merge(b).Merge(c)))
	assert.Equal(t, DisplayFlex, got.Display())
	assert.Equal(t, 1.0, got.FlexGrow())
	assert.Equal(t, 0.0, got.FlexShrink())
}

func TestStyle_MergeRightBiasPerField(t *testing.T) {
	a := NewStyle(WithDisplay(DisplayGrid), WithFlexGrow(3), WithAlignSelf(AlignEnd), WithGap(MustLength(1), MustLength(2)))
	b := NewStyle(WithFlexGrow(1), Unset(FieldAlignSelf), WithPosition(PositionAbsolute))

	got := a.Merge(b)
	for f := range fieldCount {
		want := a
		if b.IsSet(f) {
			want = b
		}
		assert.Equal(t, want.HasValue(f), got.HasValue(f), "field %s", f)
		if want.HasValue(f) {
			acc := fieldAccessors[f]
			assert.True(t, valuesEqual(acc.get(&want), acc.get(&got)), "field %s", f)
		}
	}
}

func TestStyle_Equal(t *testing.T) {
	type tc struct {
		a, b Style
		want bool
	}

	tests := map[string]tc{
		"both default": {
			a: DefaultStyle(), b: NewStyle(), want: true,
		},
		"same values": {
			a:    NewStyle(WithFlexGrow(1), WithGridTemplateRows(MustLength(1))),
			b:    NewStyle(WithFlexGrow(1), WithGridTemplateRows(MustLength(1))),
			want: true,
		},
		"explicit default differs from unset": {
			a: NewStyle(WithFlexGrow(0)), b: DefaultStyle(), want: false,
		},
		"explicit unset differs from untouched": {
			a: NewStyle(Unset(FieldDisplay)), b: DefaultStyle(), want: false,
		},
		"different tracks": {
			a:    NewStyle(WithGridTemplateRows(MustLength(1))),
			b:    NewStyle(WithGridTemplateRows(MustLength(2))),
			want: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.True(t, tt.a.Equal(tt.a))
		})
	}
}

func TestStyle_String(t *testing.T) {
	s := NewStyle(WithDisplay(DisplayGrid), WithFlexGrow(1), Unset(FieldAlignItems))

	assert.Equal(t, "Style(display=Grid, align_items=None, flex_grow=1)", s.String())
	assert.Equal(t, "Style()", DefaultStyle().String())
}
