package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/sgr"
)

func TestCheckBrackets(t *testing.T) {
	valid := []string{
		"",
		"plain",
		"<r>styled<!a>",
		"<><>",
		"a<f>b<!a>c",
	}
	for _, text := range valid {
		assert.NoError(t, checkBrackets(text, DefaultBrackets), "text %q", text)
	}
}

func TestCheckBracketsMismatches(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantIndex int
		wantDesc  string
	}{
		{
			name:      "unclosed opener",
			text:      "before <r after",
			wantIndex: 7,
			wantDesc:  "Unclosed open tag bracket '<'",
		},
		{
			name:      "unmatched closer",
			text:      "before > after",
			wantIndex: 7,
			wantDesc:  "Unmatched closed tag bracket '>'",
		},
		{
			name:      "double opener reports the first",
			text:      "<r <g>",
			wantIndex: 0,
			wantDesc:  "Two consecutive open tag brackets '<' are not allowed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkBrackets(tt.text, DefaultBrackets)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrBracketMismatch))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.wantIndex, details["index"])
			assert.Equal(t, tt.wantDesc, details["description"])
		})
	}
}

func TestBracketErrorMessage(t *testing.T) {
	err := checkBrackets("oops > here", DefaultBrackets)
	require.Error(t, err)

	msg := err.Error()
	plain := sgr.StripEscapes(msg)
	// The diagnostic shows the quoted input, the description and the hint.
	assert.Contains(t, plain, `"oops > here"`)
	assert.Contains(t, plain, "Unmatched closed tag bracket '>'")
	assert.Contains(t, plain, bracketHint)
	// The offending character carries a red background mark.
	assert.Contains(t, msg, sgr.Red.BG.Sequence()+">")
}

func TestBracketErrorIndexAccountsForEscapes(t *testing.T) {
	// An escaped bracket before the problem occupies one sentinel rune in
	// the checked text but two characters in the diagnostic.
	text := strings.ReplaceAll(`\<x > y`, `\<`, string(sentinelOpen))
	err := checkBrackets(text, DefaultBrackets)
	require.Error(t, err)

	details := errors.GetErrorDetails(err)
	// Sentinel index 3, restored index 4 inside `\<x > y`.
	assert.Equal(t, 4, details["index"])
	assert.Contains(t, sgr.StripEscapes(err.Error()), `\<x > y`)
}

func TestBracketErrorMarksWholeRune(t *testing.T) {
	brackets := Brackets{Open: '«', Close: '»'}
	err := checkBrackets("oops » here", brackets)
	require.Error(t, err)
	// The multi-byte bracket character is marked as one rune, not a
	// split byte.
	assert.Contains(t, err.Error(), sgr.Red.BG.Sequence()+"»")
	assert.Contains(t, sgr.StripEscapes(err.Error()), `"oops » here"`)
}

func TestBracketErrorTwoIndexSpan(t *testing.T) {
	err := checkBrackets("<a <b>", DefaultBrackets)
	require.Error(t, err)

	msg := err.Error()
	// Both open brackets are marked with the red background.
	assert.Equal(t, 2, strings.Count(msg, sgr.Red.BG.Sequence()+"<"))
	// The span between them uses the stronger error zone styling.
	assert.Contains(t, msg, sgr.CombiSequence(zoneRestError))
}
