package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/walkinmyshoes/wims/internal/cert"
	"github.com/walkinmyshoes/wims/internal/store"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Manage training certificates",
}

var certGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Issue a certificate from your best recorded score",
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
		best, ok, err := repo.BestScore(ctx, cfg.UserID)
		if err != nil {
			return fmt.Errorf("query best score: %w", err)
		}
		if !ok {
			return fmt.Errorf("no scores recorded yet; finish a session first")
		}
		completed, err := repo.ScenariosCompleted(ctx, cfg.UserID)
		if err != nil {
			return fmt.Errorf("count scenarios: %w", err)
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = cfg.UserName
		}

		c := cert.New(name, best, completed)
		err = st.CertRepo().Add(ctx, store.CertificateData{
			CertID:             c.ID,
			UserName:           c.UserName,
			Score:              c.Score,
			Date:               c.Date,
			ScenariosCompleted: c.ScenariosCompleted,
			Badge:              c.Badge,
		})
		if err != nil {
			return fmt.Errorf("store certificate: %w", err)
		}

		fmt.Println(cert.Render(c, 64))
		return nil
	},
}

var certListCmd = &cobra.Command{
	Use:   "list",
	Short: "List earned certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		certs, err := st.CertRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list certificates: %w", err)
		}
		if len(certs) == 0 {
			fmt.Println("No certificates yet. Run `wims cert generate` after a session.")
			return nil
		}

		for _, c := range certs {
			fmt.Printf("%s  %-24s %3d/100  %-26s %s\n",
				c.Date, c.UserName, c.Score, c.Badge, c.CertID)
		}
		return nil
	},
}

var certVerifyCmd = &cobra.Command{
	Use:   "verify <certificate-id>",
	Short: "Look up a certificate by its public ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.CertRepo().Get(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("look up certificate: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("certificate %s not found", args[0])
		}

		fmt.Println(cert.Render(cert.Certificate{
			ID:                 rec.CertID,
			UserName:           rec.UserName,
			Score:              rec.Score,
			Date:               rec.Date,
			ScenariosCompleted: rec.ScenariosCompleted,
			Badge:              rec.Badge,
		}, 64))
		return nil
	},
}

func init() {
	certGenerateCmd.Flags().String("name", "", "Name to print on the certificate (default: configured user_name)")

	certCmd.AddCommand(certGenerateCmd)
	certCmd.AddCommand(certListCmd)
	certCmd.AddCommand(certVerifyCmd)
}
