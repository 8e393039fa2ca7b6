package prompt

import (
	"io"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/markup"
	"github.com/jhoelz/fancyio/pkg/sgr"
)

// AwaitEnter shows a message and blocks until the user presses enter.
// Anything typed before enter is discarded. On a real terminal the typed
// characters are not echoed; piped input falls back to a plain line read.
func (e *Engine) AwaitEnter(messageFormat string, opts Options) error {
	rendered, err := markup.Compile(messageFormat, markup.Options{Brackets: opts.Brackets})
	if err != nil {
		return err
	}
	if _, err := io.WriteString(e.out, rendered); err != nil {
		return errors.Wrap(err, errors.ErrPromptRead, "failed to write message")
	}

	if e.file != nil && isatty.IsTerminal(e.file.Fd()) {
		// ReadPassword reads up to the line break without echoing.
		_, err = term.ReadPassword(int(e.file.Fd()))
	} else {
		_, err = e.in.ReadString('\n')
		if err == io.EOF {
			err = nil
		}
	}
	if err != nil {
		return errors.Wrap(err, errors.ErrPromptRead, "failed to await enter")
	}

	_, err = io.WriteString(e.out, sgr.ResetAll.Esc.Sequence()+"\n")
	return err
}

// AwaitEnter blocks on the default engine. See Engine.AwaitEnter.
func AwaitEnter(messageFormat string, opts Options) error {
	return Default.AwaitEnter(messageFormat, opts)
}
