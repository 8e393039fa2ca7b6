package sgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogSizes(t *testing.T) {
	assert.Len(t, ColorModes, 17)
	assert.Len(t, StyleModes, 10)
	assert.Len(t, ResetModes, 9)
}

func TestKeysUniquePerNamespace(t *testing.T) {
	colors := map[string]bool{}
	for _, m := range ColorModes {
		assert.False(t, colors[m.FG.Key], "duplicate color key %q", m.FG.Key)
		colors[m.FG.Key] = true
	}

	styles := map[string]bool{}
	for _, m := range StyleModes {
		assert.False(t, styles[m.Esc.Key], "duplicate style key %q", m.Esc.Key)
		styles[m.Esc.Key] = true
	}

	resets := map[string]bool{}
	for _, m := range ResetModes {
		assert.False(t, resets[m.Esc.Key], "duplicate reset key %q", m.Esc.Key)
		resets[m.Esc.Key] = true
	}
}

func TestByKeyLookups(t *testing.T) {
	c, ok := ColorByKey('r')
	require.True(t, ok)
	assert.Same(t, Red, c)

	c, ok = ColorByKey('R')
	require.True(t, ok)
	assert.Same(t, BrightRed, c)

	s, ok := StyleByKey('f')
	require.True(t, ok)
	assert.Same(t, Bold, s)

	r, ok := ResetByKey('a')
	require.True(t, ok)
	assert.Same(t, ResetAll, r)

	_, ok = ColorByKey('z')
	assert.False(t, ok)
	_, ok = StyleByKey('r') // color key, not a style
	assert.False(t, ok)
}

func TestEveryStyleHasReset(t *testing.T) {
	for _, m := range StyleModes {
		require.NotNil(t, m.Reset, "style %s has no reset mode", m.Name)
	}
	assert.Same(t, ResetBoldDim, Bold.Reset)
	assert.Same(t, ResetBoldDim, Dim.Reset)
	assert.Same(t, ResetUnderline, Underline.Reset)
	assert.Same(t, ResetUnderline, DoubleUnderline.Reset)
	assert.Same(t, ResetBlink, Blink.Reset)
	assert.Same(t, ResetBlink, RapidBlink.Reset)
}

func TestKeyAlphabet(t *testing.T) {
	// 'f' is a style key only; 'r' is a color key only; both are letters of
	// the combined alphabet.
	assert.True(t, IsKeyLetter('f'))
	assert.True(t, IsKeyLetter('r'))
	assert.True(t, IsKeyLetter('a')) // reset-all's letter
	assert.False(t, IsKeyLetter('z'))
	assert.False(t, IsKeyLetter('#'))
	assert.NotEmpty(t, KeyAlphabet())
}
