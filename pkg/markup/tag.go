package markup

import (
	"strconv"
	"strings"

	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/sgr"
)

// Tag is one parsed bracket-delimited markup directive. A Tag is immutable
// once constructed; all escape strings are computed at parse time.
type Tag struct {
	// Raw is the tag text including its brackets.
	Raw      string
	Brackets Brackets

	// Resets and Styles are ordered and duplicate-free; repeating a key
	// inside the tag has no further effect.
	Resets []*sgr.ResetMode
	Styles []*sgr.StyleMode
	// FG and BG are nil, a *sgr.ColorMode or an sgr.Palette index.
	FG sgr.Color
	BG sgr.Color
	// StyleResets collects the reset mode of every applied style, ordered
	// and duplicate-free.
	StyleResets []*sgr.ResetMode

	// Pre-rendered escape strings. FullSeq serializes the directives in
	// the fixed order resets, styles, background, foreground.
	ResetsSeq      string
	StylesSeq      string
	BGSeq          string
	FGSeq          string
	StyleResetsSeq string
	FullSeq        string
}

// EmptyTag returns a tag with no directives; every sequence is "".
func EmptyTag(brackets Brackets) *Tag {
	brackets = brackets.OrDefault()
	return &Tag{Raw: brackets.String(), Brackets: brackets}
}

// markerState tracks which one-shot marker is waiting for its key.
type markerState int

const (
	markerNone markerState = iota
	markerBackground
	markerReset
)

// ParseTag parses one tag, brackets included, into a Tag.
func ParseTag(raw string, brackets Brackets) (*Tag, error) {
	brackets = brackets.OrDefault()
	runes := []rune(raw)
	if len(runes) < 2 || runes[0] != brackets.Open || runes[len(runes)-1] != brackets.Close {
		return nil, errors.Newf(errors.ErrMalformedTag,
			"'%s': tag does not start and end with the given brackets '%s'", raw, brackets).
			WithDetail("tag", raw)
	}

	t := &Tag{Raw: raw, Brackets: brackets}
	content := runes[1 : len(runes)-1]
	if len(content) > 0 {
		if err := t.scan(content); err != nil {
			return nil, err
		}
	}

	t.ResetsSeq = sgr.Sequence(t.Resets, nil, nil, nil)
	t.StylesSeq = sgr.Sequence(nil, t.Styles, nil, nil)
	t.BGSeq = sgr.Sequence(nil, nil, t.BG, nil)
	t.FGSeq = sgr.Sequence(nil, nil, nil, t.FG)
	t.StyleResetsSeq = sgr.Sequence(t.StyleResets, nil, nil, nil)
	t.FullSeq = sgr.Sequence(t.Resets, t.Styles, t.BG, t.FG)
	return t, nil
}

// scan is a single left-to-right pass over the tag content. It keeps one
// sticky marker state and the start index of an open palette literal;
// there is no backtracking.
func (t *Tag) scan(content []rune) error {
	state := markerNone
	numStart := -1 // start index of an open palette literal, -1 if none

	// finalize closes an open palette literal ending just before end. The
	// literal lands in the slot the marker state selected when it opened
	// and overwrites any symbolic color already assigned there.
	finalize := func(end int) error {
		if numStart < 0 {
			return nil
		}
		lit := string(content[numStart:end])
		n, err := strconv.Atoi(lit)
		if err != nil || n > 255 {
			return t.invalidKey(lit)
		}
		if state == markerBackground {
			t.BG = sgr.Palette(n)
			state = markerNone
		} else {
			t.FG = sgr.Palette(n)
		}
		numStart = -1
		return nil
	}

	for i, r := range content {
		switch {
		case r == '#':
			if state == markerReset {
				return t.invalidKey("!#")
			}
			if state == markerBackground {
				return t.invalidKey("##")
			}
			if err := finalize(i); err != nil {
				return err
			}
			state = markerBackground

		case r == '!':
			if state == markerReset {
				return t.invalidKey("!!")
			}
			if state == markerBackground {
				return t.invalidKey("#!")
			}
			if err := finalize(i); err != nil {
				return err
			}
			state = markerReset

		case isSeparator(r):
			if state == markerReset {
				return t.invalidKey("!" + string(r))
			}
			if err := finalize(i); err != nil {
				return err
			}
			if state == markerBackground {
				return t.invalidKey("#" + string(r))
			}

		case r >= '0' && r <= '9':
			if state == markerReset {
				return t.invalidKey("!" + string(r))
			}
			if numStart < 0 {
				numStart = i
			}

		default:
			if !sgr.IsKeyLetter(r) {
				return t.invalidKey(string(r))
			}
			if err := finalize(i); err != nil {
				return err
			}
			switch state {
			case markerBackground:
				bg, ok := sgr.ColorByKey(r)
				if !ok {
					return t.invalidKey("#" + string(r))
				}
				t.BG = bg
				state = markerNone
			case markerReset:
				reset, ok := sgr.ResetByKey(r)
				if !ok {
					return t.invalidKey("!" + string(r))
				}
				t.Resets = appendUniqueReset(t.Resets, reset)
				state = markerNone
			default:
				if style, ok := sgr.StyleByKey(r); ok {
					t.Styles = appendUniqueStyle(t.Styles, style)
					t.StyleResets = appendUniqueReset(t.StyleResets, style.Reset)
				} else if fg, ok := sgr.ColorByKey(r); ok {
					t.FG = fg
				}
				// A reset-only letter without its '!' marker selects nothing.
			}
		}
	}

	if last := content[len(content)-1]; last == '!' || last == '#' {
		return t.invalidKey("expected key after '!' or '#'")
	}
	return finalize(len(content))
}

func (t *Tag) invalidKey(invalid string) error {
	return errors.Newf(errors.ErrMalformedTag, "'%s': invalid format key: '%s'", t.Raw, invalid).
		WithDetail("tag", t.Raw).
		WithDetail("key", invalid)
}

func isSeparator(r rune) bool {
	return strings.ContainsRune(" \t,;", r)
}

func appendUniqueStyle(modes []*sgr.StyleMode, m *sgr.StyleMode) []*sgr.StyleMode {
	for _, have := range modes {
		if have == m {
			return modes
		}
	}
	return append(modes, m)
}

func appendUniqueReset(modes []*sgr.ResetMode, m *sgr.ResetMode) []*sgr.ResetMode {
	for _, have := range modes {
		if have == m {
			return modes
		}
	}
	return append(modes, m)
}
