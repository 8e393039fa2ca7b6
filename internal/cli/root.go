// Package cli wires the fancyio commands together.
package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jhoelz/fancyio/internal/version"
	"github.com/jhoelz/fancyio/pkg/logging"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:   "fancyio",
		Short: "Terminal text styling and interactive prompts",
		Long: `fancyio compiles a compact bracket-tag markup into ANSI escape
sequences and ships the interactive prompt toolkit built on top of it,
including a round of mastermind to show both off.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (can be repeated: -v, -vv, -vvv)")

	rootCmd.SetVersionTemplate(fmt.Sprintf("fancyio version {{.Version}}\nCommit: %s\nBuilt:  %s\n",
		version.Commit, version.Date))

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newModesCmd())
	rootCmd.AddCommand(newPlayCmd())

	return rootCmd
}
