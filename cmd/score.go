package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/walkinmyshoes/wims/internal/empathy"
	"github.com/walkinmyshoes/wims/internal/report"
	"github.com/walkinmyshoes/wims/internal/store"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the most recent session",
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

		repo := st.EventRepo()
		sess, err := repo.LatestSession(ctx)
		if err != nil {
			return fmt.Errorf("load latest session: %w", err)
		}
		if sess == nil {
			fmt.Println("No completed sessions yet.")
			return nil
		}

		rep, err := report.FromSession(ctx, repo, cfg.Scoring(), sess)
		if err != nil {
			return fmt.Errorf("build report: %w", err)
		}

		fmt.Printf("Empathy Score: %.1f / 100\n", rep.OverallScore)
		fmt.Printf("Badge:         %s\n", rep.Level.Badge())
		fmt.Printf("Session:       %s\n", rep.SessionID)
		fmt.Println()
		fmt.Printf("  Knowledge gain   %+.1f pts\n", rep.Breakdown.Knowledge)
		fmt.Printf("  Engagement       %.0f / 100\n", rep.Breakdown.Engagement)
		fmt.Printf("  Persistence      %.0f / 100\n", rep.Breakdown.Retries)
		fmt.Printf("  Help seeking     %.0f / 100\n", rep.Breakdown.HelpSeeking)
		fmt.Printf("  Resilience       %.0f / 100\n", rep.Breakdown.Resilience)

		return refreshSnapshot(ctx, st, cfg.UserID, cfg.UserName, cfg.SnapshotKeep, sess, rep.OverallScore)
	},
}

// refreshSnapshot rolls the user's progress into a fresh profile snapshot
// so the TUI home screen loads without replaying the event log.
func refreshSnapshot(ctx context.Context, st *store.Store, userID, userName string, keep int, sess *store.SessionRecord, latest float64) error {
	repo := st.EventRepo()

	best, ok, err := repo.BestScore(ctx, userID)
	if err != nil {
		return fmt.Errorf("query best score: %w", err)
	}
	if !ok || latest > best {
		best = latest
	}
	completed, err := repo.ScenariosCompleted(ctx, userID)
	if err != nil {
		return fmt.Errorf("count scenarios: %w", err)
	}

	snapRepo := st.SnapshotRepo()
	err = snapRepo.Save(ctx, &store.ProfileSnapshot{
		Sequence:  sess.Sequence,
		Timestamp: time.Now().UTC(),
		Data: store.ProfileData{
			UserID:             userID,
			UserName:           userName,
			BestScore:          best,
			Badge:              string(empathy.Classify(best)),
			ScenariosCompleted: completed,
		},
	})
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if keep > 0 {
		if err := snapRepo.Prune(ctx, keep); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}
	return nil
}
