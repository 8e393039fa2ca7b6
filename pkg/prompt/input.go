package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoelz/fancyio/pkg/errors"
)

// Input prompts for one line of free text. The optional validate callback
// returns "" to accept the line or a markup message explaining the
// rejection. A command match comes back as a non-nil *Command with an
// empty value; the caller decides how to handle it.
func (e *Engine) Input(promptFormat, inputTag string, validate func(string) string, opts Options) (string, *Command, error) {
	s, err := e.newSession(promptFormat, inputTag, opts, nil)
	if err != nil {
		return "", nil, err
	}
	for {
		line, cmd, exited, err := s.next()
		if err != nil || cmd != nil || exited {
			return "", cmd, err
		}
		msg := ""
		if validate != nil {
			msg = validate(line)
		}
		if msg == "" {
			if err := s.mark(opts.ValidMark, opts.Fold.apply(line)); err != nil {
				return "", nil, err
			}
			return line, nil, nil
		}
		if err := s.fail(line, msg); err != nil {
			return "", nil, err
		}
	}
}

// InputYN prompts until the line matches one of the two configured
// literals and reports which. The matched literal is marked with YesMark
// or NoMark in its canonical spelling.
func (e *Engine) InputYN(promptFormat, inputTag, yes, no string, ignoreCase bool, opts Options) (bool, *Command, error) {
	invalidMsg := opts.InvalidMsg
	if invalidMsg == "" {
		invalidMsg = fmt.Sprintf("<i,r>Invalid input. Enter '%s' or '%s'.", yes, no)
	}

	s, err := e.newSession(promptFormat, inputTag, opts, []string{yes, no})
	if err != nil {
		return false, nil, err
	}
	for {
		line, cmd, exited, err := s.next()
		if err != nil || cmd != nil || exited {
			return false, cmd, err
		}
		if equal(line, yes, ignoreCase) {
			if err := s.mark(opts.YesMark, yes); err != nil {
				return false, nil, err
			}
			return true, nil, nil
		}
		if equal(line, no, ignoreCase) {
			if err := s.mark(opts.NoMark, no); err != nil {
				return false, nil, err
			}
			return false, nil, nil
		}
		if err := s.fail(line, invalidMsg); err != nil {
			return false, nil, err
		}
	}
}

// IntRange is an inclusive, optionally one-sided integer range. Nil bounds
// are open.
type IntRange struct {
	Min *int
	Max *int
}

// Bound returns a pointer usable as an IntRange bound.
func Bound(n int) *int { return &n }

func (r IntRange) contains(n int) bool {
	if r.Min != nil && n < *r.Min {
		return false
	}
	if r.Max != nil && n > *r.Max {
		return false
	}
	return true
}

// InputInt prompts for an integer within the given range. The optional
// validate callback runs after the range check and returns "" to accept.
// A custom OutOfRangeMsg may carry two '*' placeholders, substituted with
// the minimum and maximum; '\*' keeps a literal asterisk.
func (e *Engine) InputInt(r IntRange, promptFormat, inputTag string, validate func(int) string, opts Options) (int, *Command, error) {
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return 0, nil, errors.Newf(errors.ErrPromptConfig, "min %d is greater than max %d", *r.Min, *r.Max)
	}

	notIntMsg := opts.NotIntMsg
	if notIntMsg == "" {
		notIntMsg = "<ir>Input must be an integer.<!a>"
	}
	rangeMsg := opts.OutOfRangeMsg
	if r.Min != nil && r.Max != nil {
		if rangeMsg == "" {
			rangeMsg = fmt.Sprintf("<ir>Input integer out of range (%d–%d).<!a>", *r.Min, *r.Max)
		} else {
			rangeMsg = substitute(rangeMsg, strconv.Itoa(*r.Min), strconv.Itoa(*r.Max))
		}
	} else if rangeMsg == "" {
		rangeMsg = "<ir>Input integer out of range.<!a>"
	}

	s, err := e.newSession(promptFormat, inputTag, opts, nil)
	if err != nil {
		return 0, nil, err
	}
	for {
		line, cmd, exited, err := s.next()
		if err != nil || cmd != nil || exited {
			return 0, cmd, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			if err := s.fail(line, notIntMsg); err != nil {
				return 0, nil, err
			}
			continue
		}
		if !r.contains(n) {
			if err := s.fail(line, rangeMsg); err != nil {
				return 0, nil, err
			}
			continue
		}
		if validate != nil {
			if msg := validate(n); msg != "" {
				if err := s.fail(line, msg); err != nil {
					return 0, nil, err
				}
				continue
			}
		}
		if err := s.mark(opts.ValidMark, opts.Fold.apply(line)); err != nil {
			return 0, nil, err
		}
		return n, nil, nil
	}
}

func equal(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// substitute replaces successive unescaped '*' placeholders with the given
// values; '\*' stays a literal asterisk.
func substitute(msg string, values ...string) string {
	const hidden = "\x11"
	msg = strings.ReplaceAll(msg, `\*`, hidden)
	for _, v := range values {
		msg = strings.Replace(msg, "*", v, 1)
	}
	return strings.ReplaceAll(msg, hidden, "*")
}
