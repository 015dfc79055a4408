package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check question banks for structural problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBank(cmd)
		if err != nil {
			return err
		}

		problems := b.Validate()
		if len(problems) == 0 {
			fmt.Printf("OK: %s\n", b.Describe())
			return nil
		}

		for _, p := range problems {
			fmt.Println(p)
		}
		return fmt.Errorf("%d problems found", len(problems))
	},
}
