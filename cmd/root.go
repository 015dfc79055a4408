package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizkit/internal/bank"
	"github.com/abhisek/quizkit/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizkit",
	Short: "Adaptive quiz practice in the terminal",
	Long:  "Quizkit — terminal quiz app with adaptive difficulty, shuffled question banks and LLM-drafted questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZKIT_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Directory of question bank files (default: built-in banks)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then QUIZKIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBank loads the question bank from --bank or the embedded
// defaults.
func resolveBank(cmd *cobra.Command) (*bank.Bank, error) {
	if dir, _ := cmd.Flags().GetString("bank"); dir != "" {
		b, err := bank.LoadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("load bank %s: %w", dir, err)
		}
		return b, nil
	}
	return bank.LoadDefault()
}
