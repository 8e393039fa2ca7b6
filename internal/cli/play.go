package cli

import (
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoelz/fancyio/internal/game"
	"github.com/jhoelz/fancyio/pkg/config"
	"github.com/jhoelz/fancyio/pkg/prompt"
)

func newPlayCmd() *cobra.Command {
	var rows int

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a round of mastermind in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if rows == 0 {
				rows = cfg.Game.Rows
			}

			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			g := game.New(rows, prompt.Default, os.Stdout, rng)
			return g.Play()
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "Number of guesses (defaults to the configured value)")

	return cmd
}
