package cli

import (
	"fmt"
	"io"

	"github.com/andreagrandi/icetool/internal/config"
	"github.com/spf13/cobra"
)

var loadConfig = config.Load

func init() {
	featureCmd := &cobra.Command{
		Use:   "feature",
		Short: "Manage feature flags",
		Long: `Manage feature flags.

  tui      full-screen shell when running in a terminal
  session  restore the active tab and list positions between runs`,
	}

	featureCmd.AddCommand(newFeatureEnableCmd())
	featureCmd.AddCommand(newFeatureDisableCmd())
	featureCmd.AddCommand(newFeatureListCmd())
	rootCmd.AddCommand(featureCmd)
}

func newFeatureEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <feature>",
		Short: "Enable a feature flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setFeatureFlag(cmd.OutOrStdout(), args[0], true)
		},
	}
}

func newFeatureDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <feature>",
		Short: "Disable a feature flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setFeatureFlag(cmd.OutOrStdout(), args[0], false)
		},
	}
}

func newFeatureListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all feature flags and their status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listFeatures(cmd.OutOrStdout())
		},
	}
}

func setFeatureFlag(output io.Writer, name string, enabled bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := cfg.SetFeature(name, enabled); err != nil {
		return err
	}

	action := "disabled"
	if enabled {
		action = "enabled"
	}

	fmt.Fprintf(output, "Feature %q %s. It applies the next time icetool starts.\n", name, action)

	return nil
}

func listFeatures(output io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	features := cfg.Features()
	if len(features) == 0 {
		fmt.Fprintln(output, "No feature flags available.")
		return nil
	}

	fmt.Fprintln(output, "Feature flags:")
	fmt.Fprintln(output)

	maxNameWidth := 0
	for _, f := range features {
		if len(f.Name) > maxNameWidth {
			maxNameWidth = len(f.Name)
		}
	}

	for _, f := range features {
		status := "disabled"
		if f.Enabled {
			status = "enabled"
		}

		description := f.Description
		if def, ok := config.FeatureRegistry[f.Name]; ok && def.Default != f.Enabled {
			description += " (changed from default)"
		}

		fmt.Fprintf(output, "  %-*s  %-8s  %s\n", maxNameWidth, f.Name, status, description)
	}

	return nil
}
