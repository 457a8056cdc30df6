package layout

import (
	"fmt"
	"math"
)

// Dimension is a box size: Length, Percent or Auto.
type Dimension interface {
	fmt.Stringer
	isDimension()
}

// LengthPercentage is a size that never depends on content: Length or Percent.
type LengthPercentage interface {
	Dimension
	isLengthPercentage()
}

// TrackMin is the lower bound of a grid track: Length, Percent, Auto,
// MinContent or MaxContent.
type TrackMin interface {
	fmt.Stringer
	isTrackMin()
}

// TrackMax is the upper bound of a grid track: any TrackMin, Fraction or
// FitContent.
type TrackMax interface {
	fmt.Stringer
	isTrackMax()
}

// TrackSize sizes a grid track: any TrackMax, or Minmax.
type TrackSize interface {
	fmt.Stringer
	isTrackSize()
}

// GridPlacementValue is one end of a grid placement: GridLine, GridSpan
// or Auto.
type GridPlacementValue interface {
	fmt.Stringer
	isGridPlacementValue()
}

// AvailableSpace is the sizing budget for one axis: Definite, MinContent
// or MaxContent. A nil AvailableSpace means MaxContent.
type AvailableSpace interface {
	fmt.Stringer
	isAvailableSpace()
}

// --- Length ---

// Length is an absolute size.
type Length struct {
	value float64
}

// NewLength returns a Length of v. NaN is rejected with ErrInvalidLength.
func NewLength(v float64) (Length, error) {
	if math.IsNaN(v) {
		return Length{}, &ValueError{Kind: ErrInvalidLength, Value: v, Msg: "length must not be NaN"}
	}
	return Length{value: v}, nil
}

// MustLength is like NewLength but panics on invalid input.
func MustLength(v float64) Length {
	l, err := NewLength(v)
	if err != nil {
		panic(err)
	}
	return l
}

// Value returns the length.
func (l Length) Value() float64 { return l.value }

func (l Length) String() string { return "Length(" + formatFloat(l.value) + ")" }

func (Length) isDimension()        {}
func (Length) isLengthPercentage() {}
func (Length) isTrackMin()         {}
func (Length) isTrackMax()         {}
func (Length) isTrackSize()        {}

// --- Percent ---

// Percent is a fraction of the containing size, in [0, 1].
type Percent struct {
	value float64
}

// NewPercent returns a Percent of v. Values outside [0, 1] are rejected
// with ErrInvalidPercent.
func NewPercent(v float64) (Percent, error) {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return Percent{}, &ValueError{Kind: ErrInvalidPercent, Value: v, Msg: "percent must be in [0, 1]"}
	}
	return Percent{value: v}, nil
}

// MustPercent is like NewPercent but panics on invalid input.
func MustPercent(v float64) Percent {
	p, err := NewPercent(v)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the fraction.
func (p Percent) Value() float64 { return p.value }

func (p Percent) String() string { return "Percent(" + formatFloat(p.value) + ")" }

func (Percent) isDimension()        {}
func (Percent) isLengthPercentage() {}
func (Percent) isTrackMin()         {}
func (Percent) isTrackMax()         {}
func (Percent) isTrackSize()        {}

// --- Keywords ---

// Auto lets the algorithm decide.
type Auto struct{}

func (Auto) String() string { return "Auto()" }

func (Auto) isDimension()          {}
func (Auto) isTrackMin()           {}
func (Auto) isTrackMax()           {}
func (Auto) isTrackSize()          {}
func (Auto) isGridPlacementValue() {}

// MinContent requests the smallest size content can take without overflow.
type MinContent struct{}

func (MinContent) String() string { return "MinContent()" }

func (MinContent) isTrackMin()       {}
func (MinContent) isTrackMax()       {}
func (MinContent) isTrackSize()      {}
func (MinContent) isAvailableSpace() {}

// MaxContent requests the size content takes with no wrapping.
type MaxContent struct{}

func (MaxContent) String() string { return "MaxContent()" }

func (MaxContent) isTrackMin()       {}
func (MaxContent) isTrackMax()       {}
func (MaxContent) isTrackSize()      {}
func (MaxContent) isAvailableSpace() {}

// --- Grid tracks ---

// Fraction is a flexible grid track weight.
type Fraction struct {
	value float64
}

// NewFraction returns a Fraction of v. Negative and NaN weights are
// treated as zero.
func NewFraction(v float64) Fraction {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	return Fraction{value: v}
}

// Value returns the weight.
func (f Fraction) Value() float64 { return f.value }

func (f Fraction) String() string { return "Fraction(" + formatFloat(f.value) + ")" }

func (Fraction) isTrackMax()  {}
func (Fraction) isTrackSize() {}

// FitContent sizes a track to its content, capped at a limit.
type FitContent struct {
	limit LengthPercentage
}

// NewFitContent returns a FitContent capped at limit.
func NewFitContent(limit LengthPercentage) FitContent {
	if limit == nil {
		limit = Length{}
	}
	return FitContent{limit: limit}
}

// Limit returns the cap.
func (f FitContent) Limit() LengthPercentage {
	if f.limit == nil {
		return Length{}
	}
	return f.limit
}

func (f FitContent) String() string { return "FitContent(" + f.Limit().String() + ")" }

func (FitContent) isTrackMax()  {}
func (FitContent) isTrackSize() {}

// Minmax bounds a track between a minimum and a maximum sizing function.
type Minmax struct {
	min TrackMin
	max TrackMax
}

// NewMinmax returns a Minmax. Nil bounds become Auto.
func NewMinmax(lo TrackMin, hi TrackMax) Minmax {
	if lo == nil {
		lo = Auto{}
	}
	if hi == nil {
		hi = Auto{}
	}
	return Minmax{min: lo, max: hi}
}

// Min returns the lower bound.
func (m Minmax) Min() TrackMin {
	if m.min == nil {
		return Auto{}
	}
	return m.min
}

// Max returns the upper bound.
func (m Minmax) Max() TrackMax {
	if m.max == nil {
		return Auto{}
	}
	return m.max
}

func (m Minmax) String() string {
	return "Minmax(" + m.Min().String() + ", " + m.Max().String() + ")"
}

func (Minmax) isTrackSize() {}

// --- Grid placement ---

// GridLine references a grid line. Positive indices count from the start
// (1-based), negative indices from the end of the explicit grid.
type GridLine struct {
	index int
}

// NewGridLine returns a GridLine. Zero is rejected with ErrInvalidGridLine.
func NewGridLine(index int) (GridLine, error) {
	if index == 0 {
		return GridLine{}, &ValueError{Kind: ErrInvalidGridLine, Value: index, Msg: "grid line must not be 0"}
	}
	return GridLine{index: index}, nil
}

// MustGridLine is like NewGridLine but panics on invalid input.
func MustGridLine(index int) GridLine {
	l, err := NewGridLine(index)
	if err != nil {
		panic(err)
	}
	return l
}

// Index returns the line index.
func (l GridLine) Index() int { return l.index }

func (l GridLine) String() string { return fmt.Sprintf("GridLine(%d)", l.index) }

func (GridLine) isGridPlacementValue() {}

// GridSpan spans a number of tracks.
type GridSpan struct {
	count int
}

// NewGridSpan returns a GridSpan. Counts below one are rejected with
// ErrInvalidGridSpan.
func NewGridSpan(count int) (GridSpan, error) {
	if count < 1 {
		return GridSpan{}, &ValueError{Kind: ErrInvalidGridSpan, Value: count, Msg: "grid span must be at least 1"}
	}
	return GridSpan{count: count}, nil
}

// MustGridSpan is like NewGridSpan but panics on invalid input.
func MustGridSpan(count int) GridSpan {
	s, err := NewGridSpan(count)
	if err != nil {
		panic(err)
	}
	return s
}

// Count returns the number of spanned tracks.
func (s GridSpan) Count() int { return max(s.count, 1) }

func (s GridSpan) String() string { return fmt.Sprintf("GridSpan(%d)", s.Count()) }

func (GridSpan) isGridPlacementValue() {}

// GridPlacement places an item between a start and an end.
// The zero value is Auto/Auto.
type GridPlacement struct {
	start GridPlacementValue
	end   GridPlacementValue
}

// NewGridPlacement returns a GridPlacement. Nil ends become Auto.
func NewGridPlacement(start, end GridPlacementValue) GridPlacement {
	if start == nil {
		start = Auto{}
	}
	if end == nil {
		end = Auto{}
	}
	return GridPlacement{start: start, end: end}
}

// Start returns the start of the placement.
func (p GridPlacement) Start() GridPlacementValue {
	if p.start == nil {
		return Auto{}
	}
	return p.start
}

// End returns the end of the placement.
func (p GridPlacement) End() GridPlacementValue {
	if p.end == nil {
		return Auto{}
	}
	return p.end
}

func (p GridPlacement) String() string {
	return "GridPlacement(start=" + p.Start().String() + ", end=" + p.End().String() + ")"
}

// --- Available space ---

// Definite is a concrete amount of available space.
type Definite struct {
	value float64
}

// NewDefinite returns a Definite budget of v.
func NewDefinite(v float64) Definite {
	return Definite{value: v}
}

// Value returns the budget.
func (d Definite) Value() float64 { return d.value }

func (d Definite) String() string { return "Definite(" + formatFloat(d.value) + ")" }

func (Definite) isAvailableSpace() {}

// AvailableSize holds the budget for both axes.
// The zero value is MaxContent on both axes.
type AvailableSize struct {
	Width, Height AvailableSpace
}

// DefiniteSize returns an AvailableSize with definite budgets on both axes.
func DefiniteSize(width, height float64) AvailableSize {
	return AvailableSize{Width: Definite{value: width}, Height: Definite{value: height}}
}

func (a AvailableSize) String() string {
	return fmt.Sprintf("AvailableSize(width=%s, height=%s)", spaceOrMax(a.Width), spaceOrMax(a.Height))
}

func (a AvailableSize) main(row bool) AvailableSpace {
	if row {
		return spaceOrMax(a.Width)
	}
	return spaceOrMax(a.Height)
}

func (a AvailableSize) cross(row bool) AvailableSpace {
	if row {
		return spaceOrMax(a.Height)
	}
	return spaceOrMax(a.Width)
}

func availableFromAxes(row bool, main, cross AvailableSpace) AvailableSize {
	if row {
		return AvailableSize{Width: main, Height: cross}
	}
	return AvailableSize{Width: cross, Height: main}
}

func spaceOrMax(s AvailableSpace) AvailableSpace {
	if s == nil {
		return MaxContent{}
	}
	return s
}

// definiteValue returns the budget when s is Definite.
func definiteValue(s AvailableSpace) MaybeFloat {
	if d, ok := s.(Definite); ok {
		return Some(d.value)
	}
	return None()
}

// shrinkSpace reduces a definite budget by v, flooring at zero.
func shrinkSpace(s AvailableSpace, v float64) AvailableSpace {
	if d, ok := s.(Definite); ok {
		return Definite{value: max(d.value-v, 0)}
	}
	return spaceOrMax(s)
}

// spaceFrom converts a known size into a definite budget, or keeps fallback.
func spaceFrom(m MaybeFloat, fallback AvailableSpace) AvailableSpace {
	if m.Valid {
		return Definite{value: m.Value}
	}
	return spaceOrMax(fallback)
}
