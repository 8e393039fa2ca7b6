// Package sgr defines the catalog of terminal color, style and reset modes
// and assembles ANSI SGR escape sequences from them.
//
// Every mode carries a numeric SGR code and a single-character markup key.
// Background variants of a color are reached through the '#' marker and
// reset modes through the '!' marker, so the foreground keys, background
// keys, style keys and reset keys form four independent namespaces.
package sgr

import "strconv"

// ESC introduces a control sequence.
const ESC = "\x1b"

// Escape holds one SGR parameter list and the markup key that selects it.
type Escape struct {
	// Code is the SGR parameter, either a single number ("31") or a
	// compound list ("22;23;24;25;27;28;29").
	Code string
	// Key is the markup key character(s), e.g. "r", "#r" or "!a".
	Key string
}

// Sequence returns the full escape sequence for this single escape.
func (e Escape) Sequence() string {
	return ESC + "[" + e.Code + "m"
}

// Color is anything that can occupy the foreground or background slot of a
// sequence: a catalog *ColorMode or a 256-color Palette index.
type Color interface {
	colorCode(background bool) string
}

// ColorMode is a named catalog color with distinct foreground and
// background SGR codes.
type ColorMode struct {
	Name string
	Desc string
	FG   Escape
	BG   Escape
}

func (m *ColorMode) colorCode(background bool) string {
	if background {
		return m.BG.Code
	}
	return m.FG.Code
}

// ResetMode cancels one or more style or color modes.
type ResetMode struct {
	Name string
	Desc string
	Esc  Escape
}

// StyleMode is a text attribute such as bold or underline. Reset is the
// catalog mode that cancels it.
type StyleMode struct {
	Name  string
	Desc  string
	Esc   Escape
	Reset *ResetMode
}

// Palette is an index into the extended 256-color table. It renders with
// the 38;5;n (foreground) or 48;5;n (background) prefix instead of the
// 16-color codes.
type Palette uint8

func (p Palette) colorCode(background bool) string {
	if background {
		return "48;5;" + strconv.Itoa(int(p))
	}
	return "38;5;" + strconv.Itoa(int(p))
}
