// Package prompt implements blocking, line-based interactive prompts whose
// answers are re-marked in place.
//
// Every prompt variant shares one protocol: show the styled prompt, read a
// line, reset the terminal style, then classify the line as a command, an
// exit code, a valid answer or an invalid one. The classified text is
// re-rendered over the just-typed input with relative cursor movement,
// using a per-outcome marking tag. Commands are returned to the caller as
// a *Command; exit codes terminate the process after an optional cleanup
// callback; invalid answers print a message and loop.
package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/logging"
	"github.com/jhoelz/fancyio/pkg/markup"
	"github.com/jhoelz/fancyio/pkg/sgr"
)

var log = logging.GetLogger("prompt")

// Fold is an optional case fold applied to the text of a valid-input mark.
type Fold int

const (
	FoldNone Fold = iota
	FoldLower
	FoldUpper
)

func (f Fold) apply(s string) string {
	switch f {
	case FoldLower:
		return strings.ToLower(s)
	case FoldUpper:
		return strings.ToUpper(s)
	default:
		return s
	}
}

// Command is the non-local outcome of a prompt: the first token of the
// input matched a configured command. It is handed back to the caller
// instead of a value; the prompt does not interpret it.
type Command struct {
	// Name is the matched command as configured.
	Name string
	// Input is the whole line as typed.
	Input string
	// Args is the whitespace-split input, command token included.
	Args []string
	// Rest is everything after the command token, if anything.
	Rest string
}

// Options configures the shared behavior of all prompt variants. The zero
// value reads with default brackets, retries empty lines and marks
// nothing.
type Options struct {
	// Brackets overrides the tag delimiter pair of every format string.
	Brackets markup.Brackets

	// AllowEmpty submits empty lines to classification instead of
	// silently reading again. Empty lines are always submitted when ""
	// is itself a configured exit code or option.
	AllowEmpty bool

	// Commands are reserved first tokens returned to the caller as a
	// *Command. ExitCodes are reserved whole lines that terminate the
	// process. FoldSpecials makes both comparisons case-insensitive.
	Commands     []string
	ExitCodes    []string
	FoldSpecials bool

	// BeforeExit runs exactly once before an exit-code match terminates
	// the process.
	BeforeExit func()

	// Marking tags per outcome class, e.g. "<f,c>". An empty tag
	// disables the in-place mark for that outcome.
	ValidMark   string
	InvalidMark string
	CommandMark string
	ExitMark    string
	// YesMark and NoMark are used by the yes/no variant instead of
	// ValidMark.
	YesMark string
	NoMark  string

	// Fold is applied to the text of valid-input marks.
	Fold Fold

	// InvalidMsg overrides the variant's default invalid-input message.
	// The yes/no and option variants substitute their vocabulary into
	// the default; see the individual entry points for the supported
	// '*' placeholders.
	InvalidMsg string

	// NotIntMsg and OutOfRangeMsg override the integer variant's
	// messages. OutOfRangeMsg may contain two '*' placeholders for the
	// range bounds; '\*' keeps a literal asterisk.
	NotIntMsg     string
	OutOfRangeMsg string
}

// Engine binds the prompt protocol to an input source and output sink.
// The zero Engine is not usable; use New or the package-level Default.
type Engine struct {
	in   *bufio.Reader
	file *os.File // non-nil when the input source is a file, for no-echo reads
	out  io.Writer
	exit func(int)
}

// New creates an engine reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Engine {
	e := &Engine{
		in:   bufio.NewReader(in),
		out:  out,
		exit: os.Exit,
	}
	if f, ok := in.(*os.File); ok {
		e.file = f
	}
	return e
}

// Default is the engine bound to stdin and stdout.
var Default = New(os.Stdin, os.Stdout)

// session is the per-call state of one prompt: the compiled prompt text,
// its visible width and the resolved options. It lives from entry to
// return.
type session struct {
	e        *Engine
	opts     Options
	brackets markup.Brackets
	prompt   string // rendered prompt, escape sequences included
	width    int    // visible prompt width in characters
	retry    bool   // re-read empty lines silently
}

// resetTag is the implicit reset-all tag separating the prompt text from
// the input region's style.
func resetTag(b markup.Brackets) string {
	return string(b.Open) + "!a" + string(b.Close)
}

// newSession compiles the prompt once. emptyAnswers lists variant
// vocabulary that may legitimately be the empty string, which disables
// the empty-retry loop just like an empty exit code does.
func (e *Engine) newSession(promptFormat, inputTag string, opts Options, emptyAnswers []string) (*session, error) {
	brackets := opts.Brackets
	rendered, err := markup.Compile(promptFormat+resetTag(brackets.OrDefault())+inputTag,
		markup.Options{Brackets: brackets})
	if err != nil {
		return nil, err
	}

	s := &session{
		e:        e,
		opts:     opts,
		brackets: brackets.OrDefault(),
		prompt:   rendered,
		width:    visibleWidth(rendered),
		retry:    !opts.AllowEmpty,
	}
	if contains(opts.ExitCodes, "") || contains(emptyAnswers, "") {
		s.retry = false
	}
	return s, nil
}

// next runs the shared part of one iteration: show the prompt, read one
// line, reset the style, retry empties, then classify commands and exit
// codes. On a command match the command is marked and returned; on an
// exit-code match the process terminates (unless the engine's exit
// function was replaced, in which case exited is true).
func (s *session) next() (line string, cmd *Command, exited bool, err error) {
	for {
		line, err = s.read()
		if err != nil {
			return "", nil, false, err
		}
		if s.retry && line == "" {
			continue
		}
		break
	}

	if cmd := s.matchCommand(line); cmd != nil {
		log.Debug().Str("command", cmd.Name).Msg("prompt input matched a command")
		if err := s.mark(s.opts.CommandMark, cmd.Name); err != nil {
			return "", nil, false, err
		}
		return "", cmd, false, nil
	}

	if code, ok := s.matchSpecial(line, s.opts.ExitCodes); ok {
		log.Debug().Str("exitCode", code).Msg("prompt input matched an exit code")
		if err := s.mark(s.opts.ExitMark, code); err != nil {
			return "", nil, false, err
		}
		if s.opts.BeforeExit != nil {
			s.opts.BeforeExit()
		}
		s.e.exit(0)
		return "", nil, true, nil
	}

	return line, nil, false, nil
}

// read shows the prompt, reads one line and immediately resets the style
// so nothing the user typed keeps bleeding the input region's colors.
func (s *session) read() (string, error) {
	if _, err := io.WriteString(s.e.out, s.prompt); err != nil {
		return "", errors.Wrap(err, errors.ErrPromptRead, "failed to write prompt")
	}
	line, err := s.e.in.ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", errors.Wrap(err, errors.ErrPromptRead, "failed to read input line")
	}
	if _, err := io.WriteString(s.e.out, sgr.ResetAll.Esc.Sequence()); err != nil {
		return "", errors.Wrap(err, errors.ErrPromptRead, "failed to reset terminal style")
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// matchCommand compares the first space-delimited token against the
// configured commands.
func (s *session) matchCommand(line string) *Command {
	token := line
	if i := strings.IndexByte(line, ' '); i >= 0 {
		token = line[:i]
	}
	name, ok := s.matchSpecial(token, s.opts.Commands)
	if !ok {
		return nil
	}
	cmd := &Command{Name: name, Input: line, Args: strings.Fields(line)}
	if len(line) > len(token) {
		cmd.Rest = line[len(token)+1:]
	}
	return cmd
}

// matchSpecial returns the configured string the input matches, honoring
// the case-sensitivity toggle.
func (s *session) matchSpecial(input string, vocabulary []string) (string, bool) {
	for _, v := range vocabulary {
		if s.opts.FoldSpecials {
			if strings.EqualFold(input, v) {
				return v, true
			}
		} else if input == v {
			return v, true
		}
	}
	return "", false
}

// fail marks an invalid answer and prints the (markup) message.
func (s *session) fail(line, msgFormat string) error {
	if err := s.mark(s.opts.InvalidMark, line); err != nil {
		return err
	}
	return s.printMessage(msgFormat)
}

// printMessage compiles and prints a message followed by a line break and
// an implicit trailing reset.
func (s *session) printMessage(format string) error {
	rendered, err := markup.Compile(format, markup.Options{Brackets: s.opts.Brackets, EndReset: true})
	if err != nil {
		return err
	}
	_, err = io.WriteString(s.e.out, rendered+"\n")
	return err
}

func contains(list []string, s string) bool {
	for _, have := range list {
		if have == s {
			return true
		}
	}
	return false
}
