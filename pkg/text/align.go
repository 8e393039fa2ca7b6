// Package text provides plain-string layout helpers: centering with
// configurable rounding bias, padding, indentation and digit grouping.
// The helpers are markup-aware only where noted; they count characters,
// not display cells.
package text

import "strings"

// Alignment selects where the extra filler goes when a width does not
// split evenly around the value.
type Alignment int

const (
	// AlignLeft gives the extra column to the right side.
	AlignLeft Alignment = iota
	// AlignRight gives the extra column to the left side.
	AlignRight
	// AlignStd reproduces the bias of the usual center implementations,
	// which depends on the parity of value and width.
	AlignStd
)

// padding returns the number of filler characters left and right of a
// value of the given length inside the given width.
func padding(length, width int, align Alignment) (left, right int) {
	switch align {
	case AlignLeft:
		spaces := width - length
		left = spaces / 2
		right = left
		if spaces%2 != 0 {
			right++
		}
	case AlignRight:
		spaces := width - length
		right = spaces / 2
		left = right
		if spaces%2 != 0 {
			left++
		}
	default:
		floor := (width - length) / 2
		left, right = floor, floor
		if length%2 == 0 {
			if width%2 != 0 {
				left++
			}
		} else {
			if width%2 == 0 {
				right++
			}
		}
	}
	return left, right
}

// Center centers s in the given width using filler, favoring the side the
// alignment selects. Too-wide values come back unchanged.
func Center(s string, width int, filler string, align Alignment) string {
	length := len([]rune(s))
	if width <= length {
		return s
	}
	left, right := padding(length, width, align)
	return strings.Repeat(filler, left) + s + strings.Repeat(filler, right)
}

// PadRight pads s on the right up to width (left-justified field).
func PadRight(s string, width int, filler string) string {
	spaces := width - len([]rune(s))
	if spaces <= 0 {
		return s
	}
	return s + strings.Repeat(filler, spaces)
}

// PadLeft pads s on the left up to width (right-justified field).
func PadLeft(s string, width int, filler string) string {
	spaces := width - len([]rune(s))
	if spaces <= 0 {
		return s
	}
	return strings.Repeat(filler, spaces) + s
}

// Indent prefixes s with the given indent string.
func Indent(s, indent string) string {
	return indent + s
}

// Spaces returns an indent of n spaces.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
