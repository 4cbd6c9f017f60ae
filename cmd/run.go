package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walkinmyshoes/wims/internal/app"
)

// runApp opens the store, loads configuration, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	return app.Run(app.Options{
		Store:  st,
		Config: cfg,
	})
}
