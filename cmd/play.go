package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizkit/internal/app"
	"github.com/abhisek/quizkit/internal/store"
)

var playCmd = &cobra.Command{
	Use:   "play [topic]",
	Short: "Start a practice session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args...)
	},
}

func init() {
	playCmd.Flags().Bool("no-shuffle", false, "Present options and items in bank order")
}

// runPlay opens the store, loads the bank and launches the TUI. A
// broken store disables history but does not block practice.
func runPlay(cmd *cobra.Command, args ...string) error {
	opts := app.Options{}
	if len(args) > 0 {
		opts.Topic = args[0]
	}
	opts.NoShuffle, _ = cmd.Flags().GetBool("no-shuffle")

	b, err := resolveBank(cmd)
	if err != nil {
		return err
	}
	if problems := b.Validate(); len(problems) > 0 {
		return fmt.Errorf("bank has %d problems; run `quizkit validate` for details", len(problems))
	}

	if dbPath, err := resolveDBPath(cmd); err != nil {
		fmt.Fprintln(os.Stderr, "History disabled:", err)
	} else if st, err := store.Open(dbPath); err != nil {
		fmt.Fprintln(os.Stderr, "History disabled:", err)
	} else {
		defer st.Close()
		opts.Repo = st.Attempts()
	}

	return app.Run(b, opts)
}
