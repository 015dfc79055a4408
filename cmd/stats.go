package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizkit/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("sessions")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.Attempts()

		stats, err := repo.StatsByTopic(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No practice recorded yet.")
			return nil
		}

		fmt.Println("Accuracy by Topic")
		fmt.Println(strings.Repeat("─", 56))
		fmt.Printf("%-20s  %9s  %8s  %8s\n", "Topic", "Attempted", "Correct", "Points")
		fmt.Println(strings.Repeat("─", 56))
		for _, ts := range stats {
			fmt.Printf("%-20s  %9d  %7.0f%%  %8d\n",
				ts.Topic, ts.Attempted, ts.Accuracy()*100, ts.Points)
		}

		sessions, err := repo.RecentSessions(ctx, limit)
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println()
			fmt.Println("Recent Sessions")
			fmt.Println(strings.Repeat("─", 56))
			for _, s := range sessions {
				topic := s.Topic
				if topic == "" {
					topic = "(all topics)"
				}
				fmt.Printf("%s  %-16s  score %-6d  streak %d\n",
					s.StartedAt.Local().Format("2006-01-02 15:04"),
					topic, s.Score, s.BestStreak)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("sessions", "n", 10, "Number of recent sessions to show")
}
