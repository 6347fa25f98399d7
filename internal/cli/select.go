package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/andreagrandi/icetool/internal/shell"
	"github.com/andreagrandi/icetool/internal/tabhost"
)

func init() {
	rootCmd.AddCommand(newSelectCmd())
}

func newSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <tab> <action>",
		Short: "Select an item on a tab without the interactive shell",
		Long: `Select an item on a tab without the interactive shell.

<tab> is a tab ID (dsp, presets) or its 1-based number. The item is chosen by
its action. The resulting current tab is printed and stored in the session.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openShellEnv()
			if err != nil {
				return err
			}
			defer rt.close()

			index, err := resolveTab(rt.shell, args[0])
			if err != nil {
				return err
			}

			if err := rt.shell.Host.SetCurrentTab(index); err != nil {
				return err
			}

			handled, err := rt.shell.SelectAction(index, args[1])
			if err != nil {
				return err
			}

			output := cmd.OutOrStdout()
			if !handled {
				fmt.Fprintf(output, "No handler for %s\n", args[1])
			}

			if tab, ok := rt.shell.Host.Current(); ok {
				fmt.Fprintf(output, "Current tab: %s\n", tab.ID)
			}

			return rt.save()
		},
	}
}

func resolveTab(sh *shell.Shell, value string) (int, error) {
	if index, ok := sh.Host.IndexOf(value); ok {
		return index, nil
	}

	n, err := strconv.Atoi(value)
	if err == nil && n >= 1 && n <= sh.Host.Len() {
		return n - 1, nil
	}

	return 0, fmt.Errorf("tab %q: %w", value, tabhost.ErrUnknownTab)
}
