package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizkit/internal/authoring"
	"github.com/abhisek/quizkit/internal/llm"
	"github.com/abhisek/quizkit/internal/quiz"
)

var genCmd = &cobra.Command{
	Use:   "gen <topic>",
	Short: "Draft new questions for a topic with an LLM",
	Long: `Draft new questions for a topic with an LLM.

The provider is selected with QUIZKIT_LLM_PROVIDER (anthropic, openai,
gemini) and the matching API key. The draft is printed as a bank file;
use --out to write it somewhere loadable with --bank.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		difficulty, _ := cmd.Flags().GetInt("difficulty")
		typeNames, _ := cmd.Flags().GetStringSlice("types")
		outPath, _ := cmd.Flags().GetString("out")

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("LLM not configured: %w", err)
		}

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		params := authoring.Params{
			Topic:      args[0],
			Count:      count,
			Difficulty: difficulty,
		}
		for _, name := range typeNames {
			params.Types = append(params.Types, quiz.Type(name))
		}

		// Seed the draft with ids already taken, so new questions can be
		// merged into the existing bank without collisions.
		if b, err := resolveBank(cmd); err == nil {
			for _, q := range b.Questions(args[0]) {
				params.ExistingIDs = append(params.ExistingIDs, q.Meta().ID)
			}
		}

		fmt.Fprintf(os.Stderr, "Drafting %d questions for %q with %s...\n", count, args[0], provider.ModelID())

		draft, err := authoring.NewGenerator(provider).Generate(ctx, params)
		if err != nil {
			return fmt.Errorf("draft questions: %w", err)
		}

		data, err := draft.BankFile()
		if err != nil {
			return fmt.Errorf("encode draft: %w", err)
		}

		if outPath == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d questions to %s\n", len(draft.Questions), outPath)
		return nil
	},
}

func init() {
	genCmd.Flags().IntP("count", "n", 5, "Number of questions to draft")
	genCmd.Flags().IntP("difficulty", "d", 0, "Pin all drafts to one difficulty (1-4, 0 for a mix)")
	genCmd.Flags().StringSlice("types", nil, "Restrict drafted variants (e.g. multiple-choice,type-in)")
	genCmd.Flags().StringP("out", "o", "", "Write the draft to a file instead of stdout")
}
