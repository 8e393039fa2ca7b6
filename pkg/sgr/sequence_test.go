package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence(t *testing.T) {
	tests := []struct {
		name   string
		resets []*ResetMode
		styles []*StyleMode
		bg     Color
		fg     Color
		want   string
	}{
		{
			name: "empty",
			want: "",
		},
		{
			name: "foreground only",
			fg:   Red,
			want: "\x1b[31m",
		},
		{
			name: "background only",
			bg:   Yellow,
			want: "\x1b[43m",
		},
		{
			name:   "fixed order resets styles background foreground",
			resets: []*ResetMode{ResetAll},
			styles: []*StyleMode{Bold, Underline},
			bg:     Red,
			fg:     Cyan,
			want:   "\x1b[0;1;4;41;36m",
		},
		{
			name:   "compound reset code",
			resets: []*ResetMode{ResetAllStyles},
			want:   "\x1b[22;23;24;25;27;28;29m",
		},
		{
			name: "palette foreground and background",
			bg:   Palette(208),
			fg:   Palette(13),
			want: "\x1b[48;5;208;38;5;13m",
		},
		{
			name: "bright color codes",
			bg:   BrightBlack,
			fg:   BrightWhite,
			want: "\x1b[100;97m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sequence(tt.resets, tt.styles, tt.bg, tt.fg))
		})
	}
}

func TestEscapeSequence(t *testing.T) {
	assert.Equal(t, "\x1b[0m", ResetAll.Esc.Sequence())
	assert.Equal(t, "\x1b[1m", Bold.Esc.Sequence())
	assert.Equal(t, "\x1b[31m", Red.FG.Sequence())
	assert.Equal(t, "\x1b[41m", Red.BG.Sequence())
}

func TestStylize(t *testing.T) {
	assert.Equal(t, "\x1b[31mhi\x1b[0m", Stylize("hi", Combi{FG: Red}, false))
	assert.Equal(t, "\x1b[0;31mhi\x1b[0m", Stylize("hi", Combi{FG: Red}, true))
	assert.Equal(t, "\x1b[1;46;30mx\x1b[0m",
		Stylize("x", Combi{FG: Black, BG: Cyan, Styles: []*StyleMode{Bold}}, false))
}

func TestStripEscapes(t *testing.T) {
	styled := Stylize("plain", Combi{FG: Green, Styles: []*StyleMode{Bold}}, true)
	assert.Equal(t, "plain", StripEscapes(styled))
	assert.Equal(t, "no escapes", StripEscapes("no escapes"))
	assert.Equal(t, "ab", StripEscapes("\x1b[48;5;208ma\x1b[0mb"))
}
