package layout

import (
	"fmt"
	"iter"
	"math"
)

// Rect is an axis-aligned box described by its four edges.
// It is also used for per-side values such as padding and border widths,
// in which case each field holds the width of that side.
type Rect struct {
	Left, Right, Top, Bottom float64
}

// Width returns Right - Left.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns Bottom - Top.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Horizontal returns Left + Right, for Rects holding per-side widths.
func (r Rect) Horizontal() float64 {
	return r.Left + r.Right
}

// Vertical returns Top + Bottom, for Rects holding per-side widths.
func (r Rect) Vertical() float64 {
	return r.Top + r.Bottom
}

// Sum returns the horizontal and vertical totals as a Size.
func (r Rect) Sum() Size {
	return Size{Width: r.Horizontal(), Height: r.Vertical()}
}

// Add returns the side-wise sum of r and other.
func (r Rect) Add(other Rect) Rect {
	return Rect{
		Left:   r.Left + other.Left,
		Right:  r.Right + other.Right,
		Top:    r.Top + other.Top,
		Bottom: r.Bottom + other.Bottom,
	}
}

// Contains reports whether p lies inside r. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point { return Point{X: r.Left, Y: r.Top} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Point { return Point{X: r.Right, Y: r.Top} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point { return Point{X: r.Right, Y: r.Bottom} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Point { return Point{X: r.Left, Y: r.Bottom} }

// Corners returns the corners clockwise from the top-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{r.TopLeft(), r.TopRight(), r.BottomRight(), r.BottomLeft()}
}

// Pixels iterates every integer point inside r, row by row.
func (r Rect) Pixels() iter.Seq[Point] {
	return pixels(r.Left, r.Right, r.Top, r.Bottom)
}

// PixelCount returns the number of points yielded by Pixels.
func (r Rect) PixelCount() int {
	return r.xs().Count() * r.ys().Count()
}

// TopEdge iterates the integer points along the top edge.
func (r Rect) TopEdge() iter.Seq[Point] {
	y := math.Ceil(r.Top)
	return pixels(r.Left, r.Right, y, y)
}

// BottomEdge iterates the integer points along the bottom edge.
func (r Rect) BottomEdge() iter.Seq[Point] {
	y := math.Floor(r.Bottom)
	return pixels(r.Left, r.Right, y, y)
}

// LeftEdge iterates the integer points along the left edge.
func (r Rect) LeftEdge() iter.Seq[Point] {
	x := math.Ceil(r.Left)
	return pixels(x, x, r.Top, r.Bottom)
}

// RightEdge iterates the integer points along the right edge.
func (r Rect) RightEdge() iter.Seq[Point] {
	x := math.Floor(r.Right)
	return pixels(x, x, r.Top, r.Bottom)
}

func (r Rect) xs() Line { return Line{Start: r.Left, End: r.Right} }
func (r Rect) ys() Line { return Line{Start: r.Top, End: r.Bottom} }

func (r Rect) String() string {
	return fmt.Sprintf("Rect(left=%s, right=%s, top=%s, bottom=%s)",
		formatFloat(r.Left), formatFloat(r.Right), formatFloat(r.Top), formatFloat(r.Bottom))
}

func pixels(left, right, top, bottom float64) iter.Seq[Point] {
	xs := Line{Start: left, End: right}
	ys := Line{Start: top, End: bottom}
	return func(yield func(Point) bool) {
		if xs.Count() == 0 {
			return
		}
		for y := range ys.Values() {
			for x := range xs.Values() {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

// Line is a one-dimensional segment.
type Line struct {
	Start, End float64
}

// Length returns End - Start.
func (l Line) Length() float64 {
	return l.End - l.Start
}

// Contains reports whether v lies inside l. Ends are inclusive.
func (l Line) Contains(v float64) bool {
	return v >= l.Start && v <= l.End
}

// Values iterates the integers inside l in increasing order.
func (l Line) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for v := math.Ceil(l.Start); v <= math.Floor(l.End); v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Count returns the number of values yielded by Values.
func (l Line) Count() int {
	n := int(math.Floor(l.End)) - int(math.Ceil(l.Start)) + 1
	return max(n, 0)
}

func (l Line) String() string {
	return fmt.Sprintf("Line(start=%s, end=%s)", formatFloat(l.Start), formatFloat(l.End))
}
