package layout

import "strconv"

// MaybeFloat is a number that may be absent.
// The zero value is absent.
type MaybeFloat struct {
	Value float64
	Valid bool
}

// Some returns a present MaybeFloat holding v.
func Some(v float64) MaybeFloat {
	return MaybeFloat{Value: v, Valid: true}
}

// None returns an absent MaybeFloat.
func None() MaybeFloat {
	return MaybeFloat{}
}

// Get returns the value and whether it is present.
func (m MaybeFloat) Get() (float64, bool) {
	return m.Value, m.Valid
}

// Or returns the value if present, otherwise fallback.
func (m MaybeFloat) Or(fallback float64) float64 {
	if m.Valid {
		return m.Value
	}
	return fallback
}

// OrElse returns m if present, otherwise other.
func (m MaybeFloat) OrElse(other MaybeFloat) MaybeFloat {
	if m.Valid {
		return m
	}
	return other
}

func (m MaybeFloat) String() string {
	if !m.Valid {
		return "None"
	}
	return formatFloat(m.Value)
}

// add adds v when present.
func (m MaybeFloat) add(v float64) MaybeFloat {
	if !m.Valid {
		return m
	}
	return Some(m.Value + v)
}

// sub subtracts v when present, flooring at zero.
func (m MaybeFloat) sub(v float64) MaybeFloat {
	if !m.Valid {
		return m
	}
	return Some(max(m.Value-v, 0))
}

// clamp restricts a present value to [lo, hi] where bounds may be absent.
// If lo > hi, lo wins.
func (m MaybeFloat) clamp(lo, hi MaybeFloat) MaybeFloat {
	if !m.Valid {
		return m
	}
	return Some(clamp(m.Value, lo, hi))
}

// KnownSize holds dimensions that are already determined. Each axis may be
// absent independently.
type KnownSize struct {
	Width, Height MaybeFloat
}

func (k KnownSize) main(row bool) MaybeFloat {
	if row {
		return k.Width
	}
	return k.Height
}

func (k KnownSize) cross(row bool) MaybeFloat {
	if row {
		return k.Height
	}
	return k.Width
}

func knownFromAxes(row bool, main, cross MaybeFloat) KnownSize {
	if row {
		return KnownSize{Width: main, Height: cross}
	}
	return KnownSize{Width: cross, Height: main}
}

func (k KnownSize) orElse(other KnownSize) KnownSize {
	return KnownSize{Width: k.Width.OrElse(other.Width), Height: k.Height.OrElse(other.Height)}
}

func (k KnownSize) orSize(fallback Size) Size {
	return Size{Width: k.Width.Or(fallback.Width), Height: k.Height.Or(fallback.Height)}
}

// clamp restricts v to [lo, hi] where bounds may be absent.
// If lo > hi, lo wins (matches CSS behavior).
func clamp(v float64, lo, hi MaybeFloat) float64 {
	if hi.Valid && v > hi.Value {
		v = hi.Value
	}
	if lo.Valid && v < lo.Value {
		v = lo.Value
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
