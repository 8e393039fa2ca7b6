package game

import (
	"fmt"
	"io"
	"strings"

	"github.com/jhoelz/fancyio/pkg/sgr"
	"github.com/jhoelz/fancyio/pkg/term"
)

// Board holds the guess rows and their pins. Row 0 is the bottom row of
// the drawing; play fills rows bottom-up.
type Board struct {
	Rows   [][]*Peg
	Pins   [][]Pin
	Length int
}

// NewBoard returns an empty board with the given number of guess rows.
func NewBoard(length int) *Board {
	b := &Board{Length: length}
	b.Rows = make([][]*Peg, length)
	for i := range b.Rows {
		b.Rows[i] = make([]*Peg, CodeLength)
	}
	b.Pins = make([][]Pin, length)
	return b
}

// LineCount is how many terminal lines the drawn board occupies.
func (b *Board) LineCount() int {
	return 3*(b.Length+1) + 1
}

// Drawing fragments. Cells are seven columns wide; a ball or hole is drawn
// in two halves on consecutive lines.
const (
	ballTop    = " ▄███▄ "
	ballBottom = " ▀███▀ "
	holeTop    = "  ▄▄▄  "
	holeBottom = "  ▀▀▀  "
	pinTop     = " ▀ "
	pinBottom  = " ▄ "
)

// Render draws the board shifted right by shift columns. The marked row
// (pass -1 for none) is drawn on the highlighted background. A non-nil
// solution is revealed in the covered area at the top.
func (b *Board) Render(w io.Writer, solution []*Peg, markedRow, shift int) {
	cells := strings.Repeat("━━━━━━━", CodeLength)
	blank := strings.Repeat("       ", CodeLength)

	b.framePart(w, " ┏"+cells+"┓        ", shift, false)
	if solution == nil {
		for i := 0; i < 2; i++ {
			b.framePart(w, " ┃"+blank+"┃        ", shift, false)
		}
	} else {
		b.row(w, solution, nil, shift, false, true)
	}
	b.framePart(w, " ┣"+cells+"╋━━━━━━┓ ", shift, markedRow == b.Length-1)
	for i := b.Length - 1; i > 0; i-- {
		b.row(w, b.Rows[i], b.Pins[i], shift, i == markedRow, false)
		b.framePart(w, " ┣"+cells+"╋━━━━━━┫ ", shift, i == markedRow || i-1 == markedRow)
	}
	b.row(w, b.Rows[0], b.Pins[0], shift, markedRow == 0, false)
	b.framePart(w, " ┗"+cells+"┻━━━━━━┛ ", shift, markedRow == 0)
}

// row draws one board row as two terminal lines. completeRow is the
// revealed solution, which has no pin column but keeps the background
// running to the board edge.
func (b *Board) row(w io.Writer, row []*Peg, pins []Pin, shift int, marked, completeRow bool) {
	topPins, bottomPins := splitPins(pins, completeRow)
	b.rowHalf(w, row, topPins, shift, marked, ballTop, holeTop, pinTop)
	if completeRow {
		fmt.Fprint(w, sgr.Stylize("       ", sgr.Combi{BG: boardBG}, false))
	}
	fmt.Fprintln(w)
	b.rowHalf(w, row, bottomPins, shift, marked, ballBottom, holeBottom, pinBottom)
	if completeRow {
		fmt.Fprint(w, sgr.Stylize("       ", sgr.Combi{BG: boardBG}, false))
	}
	fmt.Fprintln(w)
}

// splitPins distributes up to four pins over the two row halves, two per
// half. The solution row has no pin column at all.
func splitPins(pins []Pin, completeRow bool) (top, bottom []Pin) {
	if completeRow {
		return nil, nil
	}
	if pins == nil {
		pins = []Pin{}
	}
	cut := len(pins)
	if cut > 2 {
		cut = 2
	}
	return pins[:cut], pins[cut:]
}

func (b *Board) rowHalf(w io.Writer, row []*Peg, pins []Pin, shift int, marked bool, ballHalf, holeHalf, pinStr string) {
	holes, bg := boardHoles, boardBG
	if marked {
		holes, bg = boardHolesMarked, boardBGMarked
	}
	fmt.Fprint(w, term.CursorRightSeq(shift))
	b.frameInline(w, " ┃", marked)
	for _, peg := range row {
		if peg == nil {
			fmt.Fprint(w, sgr.Stylize(holeHalf, sgr.Combi{FG: holes, BG: bg}, false))
		} else {
			fmt.Fprint(w, sgr.Stylize(ballHalf, sgr.Combi{FG: peg.Color, BG: bg}, false))
		}
	}
	if pins != nil {
		b.frameInline(w, "┃", marked)
		for _, p := range pins {
			fg := sgr.Color(sgr.White)
			if p == PinPosition {
				fg = sgr.Red
			}
			fmt.Fprint(w, sgr.Stylize(pinStr, sgr.Combi{FG: fg, BG: bg}, false))
		}
		for i := len(pins); i < 2; i++ {
			fmt.Fprint(w, sgr.Stylize(pinStr, sgr.Combi{FG: holes, BG: bg}, false))
		}
	}
	b.frameInline(w, "┃ ", marked)
}

func (b *Board) framePart(w io.Writer, part string, shift int, marked bool) {
	fmt.Fprint(w, term.CursorRightSeq(shift))
	b.frameInline(w, part, marked)
	fmt.Fprintln(w)
}

func (b *Board) frameInline(w io.Writer, part string, marked bool) {
	fg, bg := boardLines, boardBG
	if marked {
		fg, bg = boardLinesMarked, boardBGMarked
	}
	fmt.Fprint(w, sgr.Stylize(part, sgr.Combi{FG: fg, BG: bg, Styles: []*sgr.StyleMode{sgr.Dim}}, false))
}
