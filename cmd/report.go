package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/walkinmyshoes/wims/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the full report for the most recent session",
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

		fmt.Printf("Session Report — %s\n", rep.Timestamp.Format("Jan 02, 2006 15:04 MST"))
		fmt.Printf("Empathy Score: %.1f / 100   %s\n", rep.OverallScore, rep.Level.Badge())
		if len(rep.Scenarios) > 0 {
			fmt.Printf("Scenarios: %s\n", strings.Join(rep.Scenarios, ", "))
		}
		fmt.Println()

		printSection("Insights", rep.Insights)
		printSection("Recommendations", rep.Recommendations)
		printSection("Next Steps", report.ImprovementSuggestions(rep.OverallScore, cfg.TargetScore))

		fmt.Println(report.MotivationalMessage(rep.OverallScore))
		return nil
	},
}

func printSection(heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Println(heading + ":")
	for _, item := range items {
		fmt.Println("  - " + item)
	}
	fmt.Println()
}
