package sgr

import (
	"regexp"
	"strings"
)

// Combi groups a foreground, a background and a set of styles so callers
// can pass one value instead of three.
type Combi struct {
	FG     Color
	BG     Color
	Styles []*StyleMode
}

// Sequence assembles one escape sequence from the given directives. The
// codes are joined with ';' in the fixed order resets, styles, background,
// foreground; later codes would otherwise be shadowed by earlier ones.
// With no directives at all the result is the empty string, not an empty
// bracketed escape.
func Sequence(resets []*ResetMode, styles []*StyleMode, bg, fg Color) string {
	codes := make([]string, 0, len(resets)+len(styles)+2)
	for _, r := range resets {
		codes = append(codes, r.Esc.Code)
	}
	for _, s := range styles {
		codes = append(codes, s.Esc.Code)
	}
	if bg != nil {
		codes = append(codes, bg.colorCode(true))
	}
	if fg != nil {
		codes = append(codes, fg.colorCode(false))
	}
	if len(codes) == 0 {
		return ""
	}
	return ESC + "[" + strings.Join(codes, ";") + "m"
}

// CombiSequence renders the escape sequence selecting everything in c.
func CombiSequence(c Combi) string {
	return Sequence(nil, c.Styles, c.BG, c.FG)
}

// Stylize wraps text in the escape sequence for c and a trailing reset-all.
// startReset additionally prepends a reset-all code so the text does not
// inherit whatever mode is active on the terminal.
func Stylize(text string, c Combi, startReset bool) string {
	var resets []*ResetMode
	if startReset {
		resets = []*ResetMode{ResetAll}
	}
	return Sequence(resets, c.Styles, c.BG, c.FG) + text + ResetAll.Esc.Sequence()
}

var escapePattern = regexp.MustCompile("\x1b\\[.+?m")

// StripEscapes removes every rendered SGR escape sequence from s, leaving
// only the visible characters.
func StripEscapes(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}
