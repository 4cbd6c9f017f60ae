package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all session telemetry (certificates are kept)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Println("This deletes every recorded session, assessment, and score.")
			fmt.Println("Certificates are preserved. Re-run with --force to proceed.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.EventRepo().PurgeEvents(context.Background()); err != nil {
			return fmt.Errorf("purge events: %w", err)
		}
		fmt.Println("Session data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation and delete immediately")
}
