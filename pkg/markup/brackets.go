package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/sgr"
)

// checkBrackets scans text (with escaped brackets already replaced by
// sentinels) for balanced tag delimiters. Depth between two delimiters is
// exactly 0 or 1; tags never nest. The returned error carries the rendered
// positional diagnostic as its message.
func checkBrackets(text string, brackets Brackets) error {
	runes := []rune(text)
	openIdx := 0
	open := false
	for i, r := range runes {
		switch r {
		case brackets.Open:
			if open {
				return bracketError(text, openIdx, i, brackets,
					fmt.Sprintf("Two consecutive open tag brackets '%c' are not allowed", brackets.Open))
			}
			openIdx = i
			open = true
		case brackets.Close:
			if !open {
				return bracketError(text, i, -1, brackets,
					fmt.Sprintf("Unmatched closed tag bracket '%c'", brackets.Close))
			}
			open = false
		}
	}
	if open {
		return bracketError(text, openIdx, -1, brackets,
			fmt.Sprintf("Unclosed open tag bracket '%c'", brackets.Open))
	}
	return nil
}

// Highlight zones of the diagnostic. Inside the problem span the escaped
// brackets and the rest get their own, underlined, colors.
var (
	zoneBrackets      = sgr.Combi{FG: sgr.BrightBlack}
	zoneRest          = sgr.Combi{FG: sgr.Cyan}
	zoneBracketsError = sgr.Combi{FG: sgr.Magenta, Styles: []*sgr.StyleMode{sgr.Underline}}
	zoneRestError     = sgr.Combi{FG: sgr.BrightRed, Styles: []*sgr.StyleMode{sgr.Underline}}
)

const bracketHint = "Hint: Use backslashes to escape tag brackets. (More coming soon)"

// bracketError renders the positional diagnostic for a delimiter mismatch
// at index1 (and index2 for two-index errors; pass -1 otherwise). Indices
// are rune offsets into the sentinel-substituted text. The message is
// styled with the sgr layer directly, so the compiler can pretty-print its
// own errors without a dependency cycle.
func bracketError(text string, index1, index2 int, brackets Brackets, desc string) error {
	// Sentinels expand back to a backslash plus the bracket, shifting
	// every later index by one per occurrence.
	index1 = restoredIndex(text, index1)
	if index2 >= 0 {
		index2 = restoredIndex(text, index2)
	}
	restored := strings.ReplaceAll(text, string(sentinelOpen), `\`+string(brackets.Open))
	restored = strings.ReplaceAll(restored, string(sentinelClose), `\`+string(brackets.Close))

	quoted := strconv.Quote(restored)
	q1 := quotedIndex(restored, index1)

	var highlighted string
	if index2 < 0 {
		mark, size := markMismatch(quoted, q1)
		left := highlightZone(quoted[:q1], brackets, false)
		right := highlightZone(quoted[q1+size:], brackets, false)
		highlighted = left + mark + right
	} else {
		q2 := quotedIndex(restored, index2)
		mark1, size1 := markMismatch(quoted, q1)
		mark2, size2 := markMismatch(quoted, q2)
		left := highlightZone(quoted[:q1], brackets, false)
		middle := highlightZone(quoted[q1+size1:q2], brackets, true)
		right := highlightZone(quoted[q2+size2:], brackets, false)
		highlighted = left + mark1 + middle + mark2 + right
	}

	hint := sgr.Stylize(bracketHint, sgr.Combi{FG: sgr.Blue, Styles: []*sgr.StyleMode{sgr.Bold}}, false)
	message := fmt.Sprintf("%s: %s\n\n%s", highlighted,
		sgr.Stylize(desc, sgr.Combi{FG: sgr.Red, Styles: []*sgr.StyleMode{sgr.Italic}}, false), hint)

	return errors.New(errors.ErrBracketMismatch, message).
		WithDetail("index", index1).
		WithDetail("description", desc)
}

// restoredIndex translates a rune index in the sentinel-substituted text to
// the same character's index once sentinels are expanded to two characters.
func restoredIndex(text string, index int) int {
	shift := 0
	for _, r := range []rune(text)[:index] {
		if r == sentinelOpen || r == sentinelClose {
			shift++
		}
	}
	return index + shift
}

// quotedIndex translates a rune index in the restored text to the byte
// offset of the same character inside its quoted representation, where
// control characters and quote characters expand to multi-character
// escapes.
func quotedIndex(restored string, index int) int {
	offset := 1 // opening quote
	for _, r := range []rune(restored)[:index] {
		offset += len(strconv.Quote(string(r))) - 2
	}
	return offset
}

// markMismatch paints the offending bracket character with a red
// background and reports the character's width in bytes, so multi-byte
// bracket runes are never split.
func markMismatch(quoted string, index int) (string, int) {
	r, size := utf8.DecodeRuneInString(quoted[index:])
	return sgr.Stylize(string(r), sgr.Combi{BG: sgr.Red}, false), size
}

// highlightZone styles one slice of the quoted representation, giving the
// escaped-bracket pairs and the remaining text separate colors. problem
// selects the stronger styling used inside a two-index problem span.
func highlightZone(part string, brackets Brackets, problem bool) string {
	patterns := []string{
		`\\\\` + regexp.QuoteMeta(string(brackets.Open)),
		`\\\\` + regexp.QuoteMeta(string(brackets.Close)),
	}
	match, rest := zoneBrackets, zoneRest
	if problem {
		match, rest = zoneBracketsError, zoneRestError
	}
	out, err := sgr.Highlight(part, patterns, match, rest)
	if err != nil {
		// QuoteMeta keeps the patterns valid for any bracket pair.
		return part
	}
	return out
}
