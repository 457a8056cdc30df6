package layout

import "fmt"

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns a new Point with both coordinates multiplied by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Div returns a new Point with both coordinates divided by f.
func (p Point) Div(f float64) Point {
	return Point{X: p.X / f, Y: p.Y / f}
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

func (p Point) String() string {
	return fmt.Sprintf("Point(x=%s, y=%s)", formatFloat(p.X), formatFloat(p.Y))
}

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Area returns Width * Height.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// Add returns the component-wise sum of s and other.
func (s Size) Add(other Size) Size {
	return Size{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Sub returns the component-wise difference of s and other.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// Max returns the component-wise maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Min returns the component-wise minimum of s and other.
func (s Size) Min(other Size) Size {
	return Size{Width: min(s.Width, other.Width), Height: min(s.Height, other.Height)}
}

func (s Size) String() string {
	return fmt.Sprintf("Size(width=%s, height=%s)", formatFloat(s.Width), formatFloat(s.Height))
}

// main returns the size along the main axis.
func (s Size) main(row bool) float64 {
	if row {
		return s.Width
	}
	return s.Height
}

// cross returns the size along the cross axis.
func (s Size) cross(row bool) float64 {
	if row {
		return s.Height
	}
	return s.Width
}

// fromAxes builds a Size from main/cross values.
func fromAxes(row bool, main, cross float64) Size {
	if row {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}
