package game

import "strings"

// CellOp says what a guess does to one board cell.
type CellOp int

const (
	// OpSet places a peg.
	OpSet CellOp = iota
	// OpKeep leaves the cell as it is ('-' in the input).
	OpKeep
	// OpDelete empties the cell ('x' in the input).
	OpDelete
)

// Cell is one position of a parsed guess.
type Cell struct {
	Op  CellOp
	Peg *Peg // set for OpSet
}

// Guess is one parsed input line: a full row, a single cell, or nothing
// but a confirmation dot.
type Guess struct {
	// Row has CodeLength cells for a full-row guess, nil otherwise.
	Row []Cell
	// Single places one cell at Index; nil otherwise.
	Single *struct {
		Index int
		Cell  Cell
	}
	// Confirm submits the row for scoring once it is complete. A lone
	// "." confirms without changing anything.
	Confirm bool
}

// ParseGuess reads one guess line. Spaces and commas are filler and case
// does not matter. Accepted shapes: ".", "<column><letter>[.]" and four
// letters [.]; each letter is a peg letter, '-' (keep) or 'X' (delete).
// A nil result means the line is not a guess.
func ParseGuess(input string) *Guess {
	cleaned := strings.ToUpper(strings.Map(func(r rune) rune {
		if r == ' ' || r == ',' {
			return -1
		}
		return r
	}, input))

	if cleaned == "" {
		return nil
	}
	if cleaned == "." {
		return &Guess{Confirm: true}
	}

	confirm := false
	if strings.HasSuffix(cleaned, ".") {
		confirm = true
		cleaned = cleaned[:len(cleaned)-1]
	}
	runes := []rune(cleaned)

	if len(runes) == 2 && runes[0] >= '1' && runes[0] <= '0'+CodeLength {
		cell, ok := parseCell(runes[1])
		if !ok {
			return nil
		}
		g := &Guess{Confirm: confirm}
		g.Single = &struct {
			Index int
			Cell  Cell
		}{Index: int(runes[0] - '1'), Cell: cell}
		return g
	}

	if len(runes) != CodeLength {
		return nil
	}
	row := make([]Cell, 0, CodeLength)
	for _, r := range runes {
		cell, ok := parseCell(r)
		if !ok {
			return nil
		}
		row = append(row, cell)
	}
	return &Guess{Row: row, Confirm: confirm}
}

func parseCell(r rune) (Cell, bool) {
	switch r {
	case '-':
		return Cell{Op: OpKeep}, true
	case 'X':
		return Cell{Op: OpDelete}, true
	}
	if peg, ok := PegByLetter(r); ok {
		return Cell{Op: OpSet, Peg: peg}, true
	}
	return Cell{}, false
}

// Apply writes the guess into a board row.
func (g *Guess) Apply(row []*Peg) {
	apply := func(i int, c Cell) {
		switch c.Op {
		case OpSet:
			row[i] = c.Peg
		case OpDelete:
			row[i] = nil
		}
	}
	if g.Row != nil {
		for i, c := range g.Row {
			apply(i, c)
		}
	}
	if g.Single != nil {
		apply(g.Single.Index, g.Single.Cell)
	}
}
