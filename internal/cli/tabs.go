package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTabsCmd())
}

func newTabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List the shell tabs and mark the current one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openShellEnv()
			if err != nil {
				return err
			}
			defer rt.close()

			output := cmd.OutOrStdout()
			current := rt.shell.Host.CurrentTab()
			for i, tab := range rt.shell.Host.Tabs() {
				marker := " "
				if i == current {
					marker = "*"
				}

				fmt.Fprintf(output, "%s %d  %-10s %s\n", marker, i+1, tab.ID, tab.Title)
			}

			return nil
		},
	}
}
