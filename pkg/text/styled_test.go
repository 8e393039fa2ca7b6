package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoelz/fancyio/pkg/markup"
	"github.com/jhoelz/fancyio/pkg/sgr"
)

func TestCenterStyled(t *testing.T) {
	c := sgr.Combi{FG: sgr.Cyan}

	// Only the value styled, filler plain.
	assert.Equal(t, " \x1b[36mab\x1b[0m ", CenterStyled("ab", 4, " ", AlignLeft, c, false))
	// Whole field styled.
	assert.Equal(t, "\x1b[36m ab \x1b[0m", CenterStyled("ab", 4, " ", AlignLeft, c, true))
	// Too wide still styled.
	assert.Equal(t, "\x1b[36mabc\x1b[0m", CenterStyled("abc", 2, " ", AlignLeft, c, false))
}

func TestPadStyled(t *testing.T) {
	c := sgr.Combi{FG: sgr.Green}

	assert.Equal(t, "\x1b[32mab\x1b[0m  ", PadRightStyled("ab", 4, " ", c, false))
	assert.Equal(t, "\x1b[32mab  \x1b[0m", PadRightStyled("ab", 4, " ", c, true))
	assert.Equal(t, "  \x1b[32mab\x1b[0m", PadLeftStyled("ab", 4, " ", c, false))
	assert.Equal(t, "\x1b[32m  ab\x1b[0m", PadLeftStyled("ab", 4, " ", c, true))
}

func TestCenterMarkup(t *testing.T) {
	got, err := CenterMarkup("<r>ab<!a>", 4, " ", AlignLeft, markup.Options{})
	require.NoError(t, err)
	// Centered by the two visible characters, not the escape bytes.
	assert.Equal(t, " \x1b[31mab\x1b[0m ", got)

	_, err = CenterMarkup("<r ab", 4, " ", AlignLeft, markup.Options{})
	assert.Error(t, err)
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"under a thousand", 999, "<f,B>999<!a>"},
		{"exactly grouped", 1000, "<f,B>1<!a><N>,<!a><f,B>000<!a>"},
		{"two separators", 1234567, "<f,B>1<!a><N>,<!a><f,B>234<!a><N>,<!a><f,B>567<!a>"},
		{"negative", -1234, "<f,B>-1<!a><N>,<!a><f,B>234<!a>"},
		{"zero", 0, "<f,B>0<!a>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupDigits(tt.n, ",", "<f,B>", "<N>"))
		})
	}
}

func TestGroupDigitsCompiles(t *testing.T) {
	out, err := markup.Render(GroupDigits(1234, ".", "<f>", "<D>"))
	require.NoError(t, err)
	assert.Equal(t, "1.234", sgr.StripEscapes(out))
}
