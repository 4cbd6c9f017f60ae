package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walkinmyshoes/wims/internal/leaderboard"
	"github.com/walkinmyshoes/wims/internal/store"
)

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show best scores ranked across users",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		records, err := st.EventRepo().QueryScoreEvents(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query scores: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No scores recorded yet.")
			return nil
		}

		entries := make([]leaderboard.Entry, 0, len(records))
		for _, r := range records {
			name := r.UserName
			if name == "" {
				name = r.UserID
			}
			entries = append(entries, leaderboard.Entry{
				UserID: r.UserID,
				Name:   name,
				Score:  r.Total,
			})
		}
		standings := leaderboard.Build(entries)

		fmt.Printf("%-5s %-24s %8s  %s\n", "Rank", "Name", "Score", "Badge")
		for _, e := range standings.Entries {
			fmt.Printf("%-5d %-24s %8.0f  %s\n", e.Rank, e.Name, e.Score, e.Badge)
		}

		if me, ok := standings.RankOf(cfg.UserID); ok {
			fmt.Printf("\nYou are ranked #%d with a best score of %.0f\n", me.Rank, me.Score)
		}
		return nil
	},
}
