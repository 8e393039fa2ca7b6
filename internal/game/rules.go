package game

// CodeLength is the number of pegs in the secret code and in every guess
// row.
const CodeLength = 4

// Pin is the feedback for one peg of a confirmed guess.
type Pin int

const (
	// PinPosition (red) marks a peg with the right color in the right
	// place.
	PinPosition Pin = iota + 1
	// PinColor (white) marks a right color in the wrong place.
	PinColor
)

// CalcPins scores a complete guess row against the solution. Position pins
// come first; each solution peg is consumed by at most one pin.
func CalcPins(guess, solution []*Peg) []Pin {
	exact := make([]bool, len(guess))
	positions := 0
	for i, g := range guess {
		if g == solution[i] {
			exact[i] = true
			positions++
		}
	}

	// Count color-only matches on what is left over.
	var remaining []*Peg
	for i, s := range solution {
		if !exact[i] {
			remaining = append(remaining, s)
		}
	}
	colors := 0
	for i, g := range guess {
		if exact[i] {
			continue
		}
		for j, s := range remaining {
			if g == s {
				remaining = append(remaining[:j], remaining[j+1:]...)
				colors++
				break
			}
		}
	}

	pins := make([]Pin, 0, positions+colors)
	for i := 0; i < positions; i++ {
		pins = append(pins, PinPosition)
	}
	for i := 0; i < colors; i++ {
		pins = append(pins, PinColor)
	}
	return pins
}

// Solved reports whether the guess row equals the solution.
func Solved(guess, solution []*Peg) bool {
	for i, g := range guess {
		if g != solution[i] {
			return false
		}
	}
	return true
}
