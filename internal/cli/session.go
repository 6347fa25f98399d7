package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andreagrandi/icetool/internal/session"
)

func init() {
	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Manage the saved shell session",
	}

	sessionCmd.AddCommand(newSessionResetCmd())
	rootCmd.AddCommand(sessionCmd)
}

func newSessionResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved tab and list positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			store := session.NewStore(cfg.SessionFile())
			if err := store.Reset(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Session reset (%s).\n", store.Path())
			return nil
		},
	}
}
