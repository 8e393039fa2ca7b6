package sgr

import "strings"

func colorDesc(name string) string {
	return name + " color mode (can be used as a background and a foreground color)"
}

func color(name, desc string, fg, bg string, key string) *ColorMode {
	return &ColorMode{
		Name: name,
		Desc: desc,
		FG:   Escape{Code: fg, Key: key},
		BG:   Escape{Code: bg, Key: "#" + key},
	}
}

// Color modes: default plus the 8 base and 8 bright terminal colors.
// Lower-case keys select base colors, upper-case keys the bright variants.
var (
	DefaultColor  = color("DEFAULT_COLOR", colorDesc("default"), "39", "49", "d")
	Black         = color("BLACK", colorDesc("black"), "30", "40", "n")
	Red           = color("RED", colorDesc("red"), "31", "41", "r")
	Green         = color("GREEN", colorDesc("green"), "32", "42", "g")
	Yellow        = color("YELLOW", colorDesc("yellow"), "33", "43", "y")
	Blue          = color("BLUE", colorDesc("blue"), "34", "44", "b")
	Magenta       = color("MAGENTA", colorDesc("magenta"), "35", "45", "m")
	Cyan          = color("CYAN", colorDesc("cyan"), "36", "46", "c")
	White         = color("WHITE", colorDesc("white"), "37", "47", "w")
	BrightBlack   = color("BRIGHT_BLACK", colorDesc("bright black"), "90", "100", "N")
	BrightRed     = color("BRIGHT_RED", colorDesc("bright red"), "91", "101", "R")
	BrightGreen   = color("BRIGHT_GREEN", colorDesc("bright green"), "92", "102", "G")
	BrightYellow  = color("BRIGHT_YELLOW", colorDesc("bright yellow"), "93", "103", "Y")
	BrightBlue    = color("BRIGHT_BLUE", colorDesc("bright blue"), "94", "104", "B")
	BrightMagenta = color("BRIGHT_MAGENTA", colorDesc("bright magenta"), "95", "105", "M")
	BrightCyan    = color("BRIGHT_CYAN", colorDesc("bright cyan"), "96", "106", "C")
	BrightWhite   = color("BRIGHT_WHITE", colorDesc("bright white"), "97", "107", "W")
)

// Reset modes. They are declared before the styles so each style can carry
// its reset mode.
var (
	ResetAll           = &ResetMode{Name: "RESET_ALL", Desc: "mode to reset all modes", Esc: Escape{Code: "0", Key: "!a"}}
	ResetAllStyles     = &ResetMode{Name: "RESET_ALL_STYLES", Desc: "mode to reset all style modes", Esc: Escape{Code: "22;23;24;25;27;28;29", Key: "!s"}}
	ResetBoldDim       = &ResetMode{Name: "RESET_BOLD_DIM", Desc: "mode to reset the bold and the dim style modes", Esc: Escape{Code: "22", Key: "!f"}}
	ResetItalic        = &ResetMode{Name: "RESET_ITALIC", Desc: "mode to reset the italic style mode", Esc: Escape{Code: "23", Key: "!i"}}
	ResetUnderline     = &ResetMode{Name: "RESET_UNDERLINE", Desc: "mode to reset the underline and double underline style modes", Esc: Escape{Code: "24", Key: "!u"}}
	ResetBlink         = &ResetMode{Name: "RESET_BLINK", Desc: "mode to reset the blinking style modes", Esc: Escape{Code: "25", Key: "!o"}}
	ResetInverse       = &ResetMode{Name: "RESET_INVERSE", Desc: "mode to reset the inversed style mode", Esc: Escape{Code: "27", Key: "!I"}}
	ResetHidden        = &ResetMode{Name: "RESET_HIDDEN", Desc: "mode to reset the hidden style mode", Esc: Escape{Code: "28", Key: "!x"}}
	ResetStrikethrough = &ResetMode{Name: "RESET_STRIKETHROUGH", Desc: "mode to reset the strikethrough style mode", Esc: Escape{Code: "29", Key: "!S"}}
)

// Style modes.
var (
	Bold            = &StyleMode{Name: "BOLD", Desc: "bold style mode", Esc: Escape{Code: "1", Key: "f"}, Reset: ResetBoldDim}
	Dim             = &StyleMode{Name: "DIM", Desc: "dim style mode", Esc: Escape{Code: "2", Key: "D"}, Reset: ResetBoldDim}
	Italic          = &StyleMode{Name: "ITALIC", Desc: "italic style mode", Esc: Escape{Code: "3", Key: "i"}, Reset: ResetItalic}
	Underline       = &StyleMode{Name: "UNDERLINE", Desc: "underline style mode", Esc: Escape{Code: "4", Key: "u"}, Reset: ResetUnderline}
	DoubleUnderline = &StyleMode{Name: "DOUBLE_UNDERLINE", Desc: "double underline style mode", Esc: Escape{Code: "21", Key: "U"}, Reset: ResetUnderline}
	Blink           = &StyleMode{Name: "BLINK", Desc: "blinking style mode", Esc: Escape{Code: "5", Key: "o"}, Reset: ResetBlink}
	RapidBlink      = &StyleMode{Name: "RAPID_BLINK", Desc: "rapid blinking style mode", Esc: Escape{Code: "6", Key: "O"}, Reset: ResetBlink}
	Inverse         = &StyleMode{Name: "INVERSE", Desc: "inversed style mode", Esc: Escape{Code: "7", Key: "I"}, Reset: ResetInverse}
	Hidden          = &StyleMode{Name: "HIDDEN", Desc: "hidden style mode", Esc: Escape{Code: "8", Key: "x"}, Reset: ResetHidden}
	Strikethrough   = &StyleMode{Name: "STRIKETHROUGH", Desc: "strikethrough style mode", Esc: Escape{Code: "9", Key: "S"}, Reset: ResetStrikethrough}
)

// ColorModes lists all catalog colors in declaration order.
var ColorModes = []*ColorMode{
	DefaultColor, Black, Red, Green, Yellow, Blue, Magenta, Cyan, White,
	BrightBlack, BrightRed, BrightGreen, BrightYellow, BrightBlue,
	BrightMagenta, BrightCyan, BrightWhite,
}

// StyleModes lists all catalog styles in declaration order.
var StyleModes = []*StyleMode{
	Bold, Dim, Italic, Underline, DoubleUnderline, Blink, RapidBlink,
	Inverse, Hidden, Strikethrough,
}

// ResetModes lists all catalog resets in declaration order.
var ResetModes = []*ResetMode{
	ResetAll, ResetAllStyles, ResetBoldDim, ResetItalic, ResetUnderline,
	ResetBlink, ResetInverse, ResetHidden, ResetStrikethrough,
}

// Key lookup tables, one per namespace. Initialized once at startup and
// never mutated afterwards.
var (
	colorsByKey = make(map[rune]*ColorMode)
	stylesByKey = make(map[rune]*StyleMode)
	resetsByKey = make(map[rune]*ResetMode)
	keyAlphabet string
)

func init() {
	var alphabet strings.Builder
	for _, m := range ColorModes {
		registerKey(&alphabet, rune(m.FG.Key[0]))
		colorsByKey[rune(m.FG.Key[0])] = m
	}
	for _, m := range StyleModes {
		registerKey(&alphabet, rune(m.Esc.Key[0]))
		stylesByKey[rune(m.Esc.Key[0])] = m
	}
	for _, m := range ResetModes {
		// The letter after the '!' marker.
		registerKey(&alphabet, rune(m.Esc.Key[1]))
		resetsByKey[rune(m.Esc.Key[1])] = m
	}
	keyAlphabet = alphabet.String()
}

func registerKey(alphabet *strings.Builder, key rune) {
	if !strings.ContainsRune(alphabet.String(), key) {
		alphabet.WriteRune(key)
	}
}

// ColorByKey looks up a color mode by its key letter.
func ColorByKey(key rune) (*ColorMode, bool) {
	m, ok := colorsByKey[key]
	return m, ok
}

// StyleByKey looks up a style mode by its key letter.
func StyleByKey(key rune) (*StyleMode, bool) {
	m, ok := stylesByKey[key]
	return m, ok
}

// ResetByKey looks up a reset mode by the letter following the '!' marker.
func ResetByKey(key rune) (*ResetMode, bool) {
	m, ok := resetsByKey[key]
	return m, ok
}

// IsKeyLetter reports whether r is a key letter in any namespace.
func IsKeyLetter(r rune) bool {
	return strings.ContainsRune(keyAlphabet, r)
}

// KeyAlphabet returns every key letter known to the catalog, without
// duplicates, in registration order.
func KeyAlphabet() string {
	return keyAlphabet
}
