package cmd

import (
	"github.com/spf13/cobra"

	"github.com/walkinmyshoes/wims/internal/config"
	"github.com/walkinmyshoes/wims/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "wims",
	Short: "Empathy scoring for disability simulation training",
	Long:  "WalkInMyShoes — terminal companion for immersive disability empathy training: scores sessions, tracks progress, and issues certificates.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WIMS_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(certCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WIMS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadConfig reads the YAML config honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
