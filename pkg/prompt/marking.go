package prompt

import (
	"fmt"
	"strings"

	"github.com/jhoelz/fancyio/pkg/markup"
	"github.com/jhoelz/fancyio/pkg/sgr"
	"github.com/jhoelz/fancyio/pkg/term"
)

// tabCover is how many spaces blank out one tab the terminal expanded
// while echoing the original input.
const tabCover = 4

// visibleWidth counts the characters of a rendered string that actually
// occupy terminal columns.
func visibleWidth(rendered string) int {
	return len([]rune(sgr.StripEscapes(rendered)))
}

// mark re-renders the classified text over the just-typed input: move the
// cursor up one line, right by the visible prompt width, print the text
// under the marking tag, then cover any tab expansion with spaces. The
// trailing line break puts the cursor back where the next write expects
// it. An empty tag disables marking.
func (s *session) mark(tag, text string) error {
	if tag == "" {
		return nil
	}
	prepared, tabs := prepareMarking(text, s.brackets)
	return s.overwriteInput(tag+prepared, tabs)
}

// markOption re-renders a matched option display string in place. Options
// without any markup of their own inherit the input tag.
func (s *session) markOption(optionFormat, inputTag string) error {
	if !markup.HasTags(optionFormat, s.brackets) {
		optionFormat = inputTag + optionFormat
	}
	return s.overwriteInput(optionFormat, tabsOutsideTags(optionFormat, s.brackets))
}

func (s *session) overwriteInput(format string, tabs int) error {
	rendered, err := markup.Compile(format,
		markup.Options{Brackets: s.opts.Brackets, StartReset: true, EndReset: true})
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(s.e.out,
		term.CursorUpSeq(1),
		term.CursorRightSeq(s.width),
		rendered,
		strings.Repeat(" ", tabCover*tabs),
		"\n")
	if err != nil {
		return err
	}
	return nil
}

// prepareMarking readies raw input text for re-rendering: tab characters
// outside tag-bracket regions are counted (so the caller can cover their
// expansion) and control characters outside tag regions become a literal
// hex notation, so echoing the text back cannot corrupt terminal state.
// Bracket-delimited spans pass through untouched and keep working as tags.
func prepareMarking(text string, b markup.Brackets) (string, int) {
	var out strings.Builder
	runes := []rune(text)
	// A trailing open bracket flushes the final literal span.
	runes = append(runes, b.Open)

	inTag := false
	start := 0
	tabs := 0
	for i, r := range runes {
		switch r {
		case '\t':
			if !inTag {
				tabs++
			}
		case b.Open:
			out.WriteString(escapeControls(string(runes[start:i])))
			inTag = true
			start = i
		case b.Close:
			out.WriteString(string(runes[start : i+1]))
			inTag = false
			start = i + 1
		}
	}
	return out.String(), tabs
}

// tabsOutsideTags counts the tab characters an option display string will
// echo as whitespace, ignoring tabs inside its tags.
func tabsOutsideTags(format string, b markup.Brackets) int {
	inTag := false
	tabs := 0
	for _, r := range format {
		switch r {
		case b.Open:
			inTag = true
		case b.Close:
			inTag = false
		case '\t':
			if !inTag {
				tabs++
			}
		}
	}
	return tabs
}

// escapeControls rewrites control characters as a visible \xNN notation.
func escapeControls(s string) string {
	var out strings.Builder
	for _, r := range s {
		if r < 0x20 {
			fmt.Fprintf(&out, `\x%02x`, r)
		} else {
			out.WriteRune(r)
		}
	}
	return out.String()
}
