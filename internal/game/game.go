package game

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/jhoelz/fancyio/pkg/logging"
	"github.com/jhoelz/fancyio/pkg/markup"
	"github.com/jhoelz/fancyio/pkg/prompt"
	"github.com/jhoelz/fancyio/pkg/sgr"
	"github.com/jhoelz/fancyio/pkg/term"
)

var log = logging.GetLogger("game")

const title = ` _____         _                 _       _
|     |___ ___| |_ ___ ___ _____|_|___ _| |
| | | | .'|_ -|  _| -_|  _|     | |   | . |
|_|_|_|__,|___|_| |___|_| |_|_|_|_|_|_|___|
===========================================`

const boardShift = 15

// Input vocabulary shared by every prompt of the game.
const (
	helpCommand = "/help"
	exitCode    = "/quit"
)

var promptOpts = prompt.Options{
	Commands:     []string{helpCommand},
	ExitCodes:    []string{exitCode},
	FoldSpecials: true,
	ValidMark:    "<f,c>",
	InvalidMark:  "<r>",
	CommandMark:  "<f,c>",
	ExitMark:     "<f,r>",
	YesMark:      "<f,g>",
	NoMark:       "<f,r>",
	Fold:         prompt.FoldUpper,
}

var invalidGuessMsg = fmt.Sprintf(
	"<r>Invalid input. Enter »<f,c>%s<!f,r>« for the game instructions.", helpCommand)

// Game wires the board to the prompt engine. Output and randomness are
// injectable so games can be scripted in tests.
type Game struct {
	Rows   int
	Engine *prompt.Engine
	Out    io.Writer
	Rand   *rand.Rand
}

// New returns a game with the given number of board rows playing on the
// default prompt engine.
func New(rows int, engine *prompt.Engine, out io.Writer, rng *rand.Rand) *Game {
	return &Game{Rows: rows, Engine: engine, Out: out, Rand: rng}
}

// Play runs games until the player declines another round.
func (g *Game) Play() error {
	for {
		if err := g.playOne(); err != nil {
			return err
		}
		again, err := g.inputPlayAgain()
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}
	g.printEnded()
	return nil
}

func (g *Game) playOne() error {
	solution := g.randomCode()
	log.Debug().Int("rows", g.Rows).Msg("starting a game")

	board := NewBoard(g.Rows)
	row := 0
	var pending *Guess
	incomplete := false

	for {
		g.printAll(board, nil, row)
		if incomplete {
			fmt.Fprintln(g.Out, sgr.Stylize(
				"The guess cannot be confirmed because the row is not filled.",
				sgr.Combi{FG: sgr.Red}, false))
			fmt.Fprintln(g.Out)
			incomplete = false
		}

		guess, cmd, err := g.inputGuess()
		if err != nil {
			return err
		}
		if cmd != nil {
			g.printInstructions()
			continue
		}

		guess.Apply(board.Rows[row])
		if guess.Row != nil || guess.Single != nil {
			pending = guess
		}
		if !guess.Confirm {
			continue
		}

		if pending == nil || !rowComplete(board.Rows[row]) {
			incomplete = true
			continue
		}
		board.Pins[row] = CalcPins(board.Rows[row], solution)
		if Solved(board.Rows[row], solution) {
			g.printAll(board, solution, -1)
			fmt.Fprintln(g.Out, sgr.Stylize("You cracked the code and won the game!\n",
				sgr.Combi{FG: sgr.Green, Styles: []*sgr.StyleMode{sgr.Bold}}, false))
			return nil
		}
		row++
		if row == g.Rows {
			g.printAll(board, solution, -1)
			fmt.Fprintln(g.Out, sgr.Stylize("You did not manage to crack the code and lost the game.\n",
				sgr.Combi{FG: sgr.Red}, false))
			return nil
		}
		pending = nil
	}
}

func rowComplete(row []*Peg) bool {
	for _, p := range row {
		if p == nil {
			return false
		}
	}
	return true
}

// inputGuess asks for one guess line. The validator parses as a side
// check only; the accepted line is parsed again for the result.
func (g *Game) inputGuess() (*Guess, *prompt.Command, error) {
	fmt.Fprintln(g.Out, mustRender(fmt.Sprintf(
		"<b>These colors are available: %s<b> and %s<b>.", pegList(true), last(true))))
	fmt.Fprintln(g.Out)

	validate := func(line string) string {
		if ParseGuess(line) == nil {
			return invalidGuessMsg
		}
		return ""
	}
	opts := promptOpts
	opts.BeforeExit = g.printEnded
	line, cmd, err := g.Engine.Input(
		`<b>Enter your guess for the code. <!a,f>\>\> `, "<c>", validate, opts)
	if err != nil || cmd != nil {
		return nil, cmd, err
	}
	return ParseGuess(line), nil, nil
}

func (g *Game) inputPlayAgain() (bool, error) {
	for {
		opts := promptOpts
		opts.BeforeExit = g.printEnded
		opts.InvalidMsg = "<i,r>Invalid input. Enter »Y« or »n«."
		again, cmd, err := g.Engine.InputYN(
			`<m>Do you want to play again? (<f,g>Y<!f,m>/<f,r>n<!f,m>) <!a,f>\>\> `,
			"<b>", "Y", "n", true, opts)
		if err != nil {
			return false, err
		}
		if cmd == nil {
			return again, nil
		}
		g.printInstructions()
		fmt.Fprintln(g.Out)
	}
}

func (g *Game) printAll(board *Board, solution []*Peg, markedRow int) {
	fmt.Fprint(g.Out, term.ClearScreenSeq())
	fmt.Fprintln(g.Out, sgr.Stylize(title, sgr.Combi{FG: sgr.Cyan, Styles: []*sgr.StyleMode{sgr.Bold}}, false))
	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, mustRender(fmt.Sprintf(
		"<b>Enter »<f,c>%s<!a,b>« at any time for the game instructions.", helpCommand)))
	fmt.Fprintln(g.Out, mustRender(fmt.Sprintf(
		"<b>Enter »<f,r>%s<!a,b>« at any time to quit the program.", exitCode)))
	fmt.Fprintln(g.Out)
	board.Render(g.Out, solution, markedRow, boardShift)
	fmt.Fprintln(g.Out)
}

func (g *Game) printInstructions() {
	instructions := g.instructionsText()
	instructionLines := strings.Count(instructions, "\n") + 1

	example := exampleBoard(g.Rows)
	breaks := (instructionLines - example.LineCount()) / 2
	if breaks < 0 {
		breaks = 0
	}

	fmt.Fprint(g.Out, term.ClearScreenSeq())
	term.LineBreaks(g.Out, breaks)
	example.Render(g.Out, nil, 4, 84)
	fmt.Fprint(g.Out, term.CursorUpSeq(example.LineCount()+breaks))
	fmt.Fprintln(g.Out, mustRender(instructions))
	fmt.Fprintln(g.Out)
	if err := g.Engine.AwaitEnter("<m>Press enter to continue. ", prompt.Options{}); err != nil {
		log.Warn().Err(err).Msg("failed to wait for enter")
	}
}

func (g *Game) instructionsText() string {
	return fmt.Sprintf(`<fU,c>Game Instructions<!a>

<fu,c>Goal of the game<!a>

<b>The goal of the game is to crack the code the computer randomly draws at
the start of the game. You have %d tries.

The code consists of %d pegs, each in one of %d colors. The colors are:
%s<b> and %s<b>.

Red and white pins help you crack the code. What they mean is explained
further down.<!a>

<fu,c>Course of the game<!a>

<b>Until the code is cracked or your tries are used up, you are asked to
enter guesses for the code.

After you submit a guess, red and/or white pins may appear on the right.
A red pin means one color is correct and in the correct position. A white
pin means one color is correct but not in the correct position.

If you crack the code you win the game. If all your tries are used up and
the code is not cracked, you lose.<!a>

<fu,c>Entering guesses<!a>

<b>At the prompt you have two possibilities:

  1. You can guess the whole code by entering the first letters of %d
     colors. Case does not matter. Example input: »<f,c>BRRW<!f,b>«

  2. You can set a single color. The syntax is:
     <N>\<<f,c>column<!f,N>\>\<<f,c>color letter<!f,N>\><b>. Example input: »<f,c>3R<!f,b>«

You may also type spaces and commas to make the input easier to read.

A dash in your input keeps the color already in that place. An »x« in
your input deletes the color in that place.

A trailing ».« confirms the row; the guess only counts once every color
in the row is set.`,
		g.Rows, CodeLength, len(Pegs), pegList(false), last(false), CodeLength)
}

func (g *Game) printEnded() {
	fmt.Fprintln(g.Out)
	fmt.Fprintln(g.Out, sgr.Stylize("The program has ended.", sgr.Combi{FG: sgr.Magenta}, false))
}

func (g *Game) randomCode() []*Peg {
	code := make([]*Peg, CodeLength)
	for i := range code {
		code[i] = Pegs[g.Rand.Intn(len(Pegs))]
	}
	return code
}

// pegList renders all but the last peg name, comma separated, for the
// color enumerations in the instructions and the guess prompt.
func pegList(highlightLetter bool) string {
	names := make([]string, 0, len(Pegs)-1)
	for _, p := range Pegs[:len(Pegs)-1] {
		names = append(names, p.HighlightedName(highlightLetter))
	}
	return strings.Join(names, "<b>, ")
}

func last(highlightLetter bool) string {
	return Pegs[len(Pegs)-1].HighlightedName(highlightLetter)
}

// exampleBoard is the partially played board shown beside the
// instructions.
func exampleBoard(rows int) *Board {
	if rows < 5 {
		rows = 5
	}
	b := NewBoard(rows)
	b.Rows[0] = []*Peg{PegBlue, PegBlue, PegWhite, PegWhite}
	b.Rows[1] = []*Peg{PegBlue, PegBlue, PegBlack, PegBlack}
	b.Rows[2] = []*Peg{PegGreen, PegBlack, PegCyan, PegWhite}
	b.Rows[3] = []*Peg{PegGreen, PegBlack, PegRed, PegWhite}
	b.Rows[4] = []*Peg{nil, PegBlack, nil, PegWhite}
	b.Pins[0] = []Pin{PinPosition}
	b.Pins[1] = []Pin{PinColor}
	b.Pins[2] = []Pin{PinPosition, PinPosition, PinPosition}
	b.Pins[3] = []Pin{PinPosition, PinPosition, PinColor}
	return b
}

func mustRender(format string) string {
	out, err := markup.Render(format)
	if err != nil {
		log.Error().Err(err).Str("format", format).Msg("failed to render format string")
		return markup.Strip(format, markup.Brackets{})
	}
	return out
}
