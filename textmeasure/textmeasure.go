// Package textmeasure measures text in terminal cells for use as a
// boxlayout measure function.
//
// Widths come from go-runewidth, so wide East Asian characters take two
// cells. Lines break at the opportunities found by uniseg; explicit
// newlines always break.
package textmeasure

import (
	"iter"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/grindlemire/go-boxlayout"
)

// Metrics holds the intrinsic widths of a text.
type Metrics struct {
	MinContent int // widest unbreakable segment
	MaxContent int // widest line without wrapping
	Lines      int // line count without wrapping
}

// Analyze returns the intrinsic widths of s.
func Analyze(s string) Metrics {
	var m Metrics
	for _, line := range strings.Split(s, "\n") {
		m.Lines++
		m.MaxContent = max(m.MaxContent, runewidth.StringWidth(line))
		for seg := range segments(line) {
			m.MinContent = max(m.MinContent, visibleWidth(seg))
		}
	}
	return m
}

// Measure returns the size of s in cells. A known width is used as is;
// otherwise the width follows the available space, never narrower than
// the widest unbreakable segment. The height is the number of lines after
// wrapping to that width.
func Measure(s string, known boxlayout.KnownSize, available boxlayout.AvailableSize) boxlayout.Size {
	m := Analyze(s)

	width, ok := known.Width.Get()
	if !ok {
		switch a := available.Width.(type) {
		case boxlayout.MinContent:
			width = float64(m.MinContent)
		case boxlayout.Definite:
			width = min(float64(m.MaxContent), max(float64(m.MinContent), a.Value()))
		default:
			width = float64(m.MaxContent)
		}
	}

	height, ok := known.Height.Get()
	if !ok {
		height = float64(WrappedLines(s, width))
	}
	return boxlayout.Size{Width: width, Height: height}
}

// For returns a measure function that measures the text extracted from
// each node's context.
func For[C any](text func(C) string) boxlayout.MeasureFunc[C] {
	return func(known boxlayout.KnownSize, available boxlayout.AvailableSize, _ boxlayout.NodeID, ctx C, _ boxlayout.Style) (boxlayout.Size, error) {
		return Measure(text(ctx), known, available), nil
	}
}

// Strings measures string contexts directly.
var Strings = For(func(s string) string { return s })

// WrappedLines returns the number of lines s occupies when wrapped to width.
func WrappedLines(s string, width float64) int {
	limit := int(math.Floor(width))
	total := 0
	for _, line := range strings.Split(s, "\n") {
		total += wrapLine(line, limit)
	}
	return total
}

func wrapLine(line string, limit int) int {
	lines := 1
	cur := 0
	for seg := range segments(line) {
		if cur > 0 && cur+visibleWidth(seg) > limit {
			lines++
			cur = 0
		}
		cur += runewidth.StringWidth(seg)
	}
	return lines
}

// segments iterates the unbreakable segments of a single line. Each
// segment keeps its trailing whitespace.
func segments(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		rest := line
		for len(rest) > 0 {
			var seg string
			seg, rest, _, state = uniseg.FirstLineSegmentInString(rest, state)
			if !yield(seg) {
				return
			}
		}
	}
}

func visibleWidth(seg string) int {
	return runewidth.StringWidth(strings.TrimRight(seg, " \t"))
}
