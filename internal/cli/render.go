package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoelz/fancyio/pkg/config"
	"github.com/jhoelz/fancyio/pkg/errors"
	"github.com/jhoelz/fancyio/pkg/markup"
	"github.com/jhoelz/fancyio/pkg/sgr"
	"github.com/jhoelz/fancyio/pkg/term"
)

func newRenderCmd() *cobra.Command {
	var (
		brackets   string
		format     string
		startReset bool
		endReset   bool
	)

	cmd := &cobra.Command{
		Use:   "render [format-string...]",
		Short: "Compile format strings to styled terminal output",
		Long: `Render compiles its arguments (or standard input, when no arguments
are given) from bracket-tag markup to ANSI escape sequences, e.g.

  fancyio render '<f,c>Title<!a>' '<r>ERROR<!a>'

Bracket mismatches and malformed tags are reported with positional
diagnostics on standard error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if brackets == "" {
				brackets = cfg.Output.Brackets
			}
			if format == "" {
				format = cfg.Output.Format
			}
			pair, ok := markup.BracketsFromString(brackets)
			if !ok {
				return errors.Newf(errors.ErrInvalidInput,
					"brackets must be two distinct characters, got %q", brackets)
			}

			lines := args
			if len(lines) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.Wrap(err, errors.ErrInvalidInput, "failed to read standard input")
				}
				lines = strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
			}

			outFormat, err := term.ParseFormat(format)
			if err != nil {
				return errors.Wrap(err, errors.ErrInvalidInput, "invalid output format")
			}
			plain := outFormat == term.FormatText ||
				(outFormat == term.FormatAuto && term.DetectFormat(os.Stdout) == term.FormatText)

			opts := markup.Options{Brackets: pair, StartReset: startReset, EndReset: endReset}
			for _, line := range lines {
				rendered, err := markup.Compile(line, opts)
				if err != nil {
					// The compiler pretty-prints its own diagnostics.
					fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
					return errors.Wrap(err, errors.ErrInvalidInput, "invalid format string")
				}
				if plain {
					rendered = sgr.StripEscapes(rendered)
				}
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&brackets, "brackets", "", "Tag delimiter pair, e.g. '<>' or '{}'")
	cmd.Flags().StringVar(&format, "format", "", "Output format: auto, term or text")
	cmd.Flags().BoolVar(&startReset, "start-reset", false, "Prepend an implicit reset-all tag")
	cmd.Flags().BoolVar(&endReset, "end-reset", false, "Append an implicit reset-all tag")

	return cmd
}
