// Package game implements the mastermind code-breaking game played in the
// terminal. The computer draws a secret code of four colored pegs; the
// player fills board rows with guesses and confirms them, earning red and
// white pins for correct positions and correct colors.
package game

import "github.com/jhoelz/fancyio/pkg/sgr"

// Peg is one playable code color. Letter is what the player types; black
// uses K so every letter stays unique.
type Peg struct {
	Name   string
	Letter rune
	Color  *sgr.ColorMode
}

// HighlightedName renders the peg name in its own color. With
// highlightLetter the input letter is additionally bold.
func (p *Peg) HighlightedName(highlightLetter bool) string {
	if !highlightLetter {
		return sgr.Stylize(p.Name, sgr.Combi{FG: p.Color}, false)
	}
	first := sgr.Stylize(string(p.Letter), sgr.Combi{FG: p.Color, Styles: []*sgr.StyleMode{sgr.Bold}}, false)
	return first + sgr.Stylize(p.Name[1:], sgr.Combi{FG: p.Color}, false)
}

// The six playable pegs.
var (
	PegRed   = &Peg{Name: "Red", Letter: 'R', Color: sgr.Red}
	PegGreen = &Peg{Name: "Green", Letter: 'G', Color: sgr.Green}
	PegBlue  = &Peg{Name: "Blue", Letter: 'B', Color: sgr.Blue}
	PegWhite = &Peg{Name: "White", Letter: 'W', Color: sgr.White}
	PegBlack = &Peg{Name: "Black", Letter: 'K', Color: sgr.Black}
	PegCyan  = &Peg{Name: "Cyan", Letter: 'C', Color: sgr.Cyan}
)

// Pegs lists the playable pegs in display order.
var Pegs = []*Peg{PegRed, PegGreen, PegBlue, PegWhite, PegBlack, PegCyan}

// PegByLetter resolves an upper-case input letter to its peg.
func PegByLetter(letter rune) (*Peg, bool) {
	for _, p := range Pegs {
		if p.Letter == letter {
			return p, true
		}
	}
	return nil, false
}

// Board palette. The board draws on the 256-color table so the frame and
// the marked row stand out from the sixteen peg colors.
var (
	boardBG          sgr.Color = sgr.Palette(90)
	boardBGMarked    sgr.Color = sgr.Palette(164)
	boardLines       sgr.Color = sgr.Palette(213)
	boardLinesMarked sgr.Color = sgr.White
	boardHoles       sgr.Color = sgr.Palette(53)
	boardHolesMarked sgr.Color = boardBG
)
