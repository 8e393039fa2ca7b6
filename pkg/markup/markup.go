// Package markup compiles the bracket-delimited format-tag language into
// ANSI SGR escape sequences.
//
// A format string is plain text with zero or more non-nested tags such as
// "<f,c>" (bold cyan) or "<!a>" (reset all). Tag content is made of mode
// key letters, 0-255 palette literals, the '#' background marker, the '!'
// reset marker and the separators space, tab, comma and semicolon.
// Backslash-escaped brackets ("\<", "\>") are literal text.
package markup

import (
	"github.com/jhoelz/fancyio/pkg/logging"
)

var log = logging.GetLogger("markup")

// Brackets is the delimiter pair bounding a tag.
type Brackets struct {
	Open  rune
	Close rune
}

// DefaultBrackets is the pair used when callers do not configure one.
var DefaultBrackets = Brackets{Open: '<', Close: '>'}

// BracketsFromString parses a two-character string like "<>" into a pair.
// The zero Brackets value is replaced by DefaultBrackets everywhere, so
// most callers never need this.
func BracketsFromString(s string) (Brackets, bool) {
	runes := []rune(s)
	if len(runes) != 2 || runes[0] == runes[1] {
		return Brackets{}, false
	}
	return Brackets{Open: runes[0], Close: runes[1]}, true
}

// OrDefault returns b, or DefaultBrackets for the zero value.
func (b Brackets) OrDefault() Brackets {
	if b == (Brackets{}) {
		return DefaultBrackets
	}
	return b
}

func (b Brackets) String() string {
	return string(b.Open) + string(b.Close)
}

// Sentinel characters substituted for backslash-escaped brackets while a
// format string is being compiled. They are control characters no printable
// input contains.
const (
	sentinelOpen  = '\x11'
	sentinelClose = '\x12'
)
