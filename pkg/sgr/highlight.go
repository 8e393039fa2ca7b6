package sgr

import (
	"regexp"
	"strings"
)

// DefaultHighlight is the highlight used when callers do not care about the
// exact colors: black text on a yellow background.
var DefaultHighlight = Combi{FG: Black, BG: Yellow}

// Highlight styles every match of the given regular expressions with the
// match combi and everything between matches with the rest combi. The whole
// result ends in a reset-all so the highlighting cannot leak.
func Highlight(s string, patterns []string, match, rest Combi) (string, error) {
	if len(patterns) == 0 {
		// Nothing can match; the whole text gets the rest styling.
		return CombiSequence(rest) + s + ResetAll.Esc.Sequence(), nil
	}
	expr := patterns[0]
	if len(patterns) > 1 {
		expr = "(" + strings.Join(patterns, ")|(") + ")"
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return "", err
	}
	matchSeq := CombiSequence(match)
	restSeq := CombiSequence(rest)
	resetSeq := ResetAll.Esc.Sequence()
	result := restSeq
	result += re.ReplaceAllStringFunc(s, func(m string) string {
		return matchSeq + m + resetSeq + restSeq
	})
	return result + resetSeq, nil
}

// HighlightEscapes highlights the quoted form of SGR sequences ("\x1b[...m"
// spelled out as text) inside s. Useful when inspecting rendered output.
func HighlightEscapes(s string, match, rest Combi) string {
	out, err := Highlight(s, []string{`\\x1b\[[0-9;]*?m`}, match, rest)
	if err != nil {
		// The pattern is a constant; compilation cannot fail.
		return s
	}
	return out
}
