package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andreagrandi/icetool/internal/script"
)

func init() {
	scriptsCmd := &cobra.Command{
		Use:   "scripts",
		Short: "Inspect the loaded script definitions",
	}

	scriptsCmd.AddCommand(newScriptsListCmd())
	scriptsCmd.AddCommand(newScriptsShowCmd())
	rootCmd.AddCommand(scriptsCmd)
}

func newScriptsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available scripts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := loadLibrary()
			if err != nil {
				return err
			}

			printScriptsList(cmd.OutOrStdout(), lib)
			return nil
		},
	}
}

func newScriptsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the items of a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := loadLibrary()
			if err != nil {
				return err
			}

			s, err := lib.Get(args[0])
			if err != nil {
				return err
			}

			items, err := lib.Items(args[0])
			if err != nil {
				return err
			}

			printScript(cmd.OutOrStdout(), s, items)
			return nil
		},
	}
}

func loadLibrary() (*script.Library, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	scripts, err := loadScripts(firstNonEmpty(scriptsDirFlag, cfg.ScriptsDir()))
	if err != nil {
		return nil, fmt.Errorf("load scripts: %w", err)
	}

	return script.NewLibrary(scripts), nil
}

func printScriptsList(output io.Writer, lib *script.Library) {
	names := lib.Names()
	if len(names) == 0 {
		fmt.Fprintln(output, "No scripts available.")
		return
	}

	fmt.Fprintln(output, "Scripts:")
	fmt.Fprintln(output)

	maxNameWidth := 0
	for _, name := range names {
		if len(name) > maxNameWidth {
			maxNameWidth = len(name)
		}
	}

	for _, name := range names {
		s, err := lib.Get(name)
		if err != nil {
			continue
		}

		fmt.Fprintf(output, "  %-*s  %2d items  %s\n", maxNameWidth, name, len(s.Items), s.DisplayTitle())
	}
}

func printScript(output io.Writer, s script.Script, items []script.Item) {
	fmt.Fprintf(output, "%s (%s)\n", s.DisplayTitle(), s.Name)
	if s.Description != "" {
		fmt.Fprintln(output, s.Description)
	}
	fmt.Fprintln(output)

	maxActionWidth := 0
	for _, item := range items {
		if len(item.Action) > maxActionWidth {
			maxActionWidth = len(item.Action)
		}
	}

	for i, item := range items {
		fmt.Fprintf(output, "  %d) %-*s  %s\n", i+1, maxActionWidth, item.Action, item.Description)
	}
}
