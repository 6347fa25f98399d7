package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreagrandi/icetool/internal/app"
	"github.com/andreagrandi/icetool/internal/shell"
	"github.com/andreagrandi/icetool/internal/tui"
)

var (
	scriptsDirFlag string
	logLevelFlag   string
)

var runTUI = tui.Run

var rootCmd = &cobra.Command{
	Use:   "icetool",
	Short: "Scripted tab shell for the DSP console",
	Long: `icetool is a tabbed terminal shell for driving a DSP device.

Each tab shows a list of actions loaded from a YAML script. Selecting an
item on the DSP tab switches the shell to the console tab, where the
output and log of the session are shown.

Scripts are bundled with the binary and can be overridden from
~/.config/icetool/scripts or --scripts-dir.`,
	Version: app.Version,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runShell(cmd)
	},
}

func init() {
	rootCmd.SetVersionTemplate(app.New().GetFullVersion() + "\n")
	rootCmd.PersistentFlags().StringVar(&scriptsDirFlag, "scripts-dir", "", "extra directory of script definitions")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level (debug, info, warn, error)")
}

func Execute() error {
	return rootCmd.Execute()
}

func runShell(cmd *cobra.Command) error {
	rt, err := openShellEnv()
	if err != nil {
		return err
	}
	defer rt.close()

	if canUseInteractiveUI(cmd.InOrStdin(), cmd.OutOrStdout()) {
		if rt.cfg.IsFeatureEnabled("tui") {
			err = runTUI(rt.shell, app.Version)
		} else {
			err = runShellSurvey(cmd, rt.shell)
		}
	} else {
		err = runShellPlain(cmd, rt.shell)
	}

	return errors.Join(err, rt.save())
}

func runShellPlain(cmd *cobra.Command, sh *shell.Shell) error {
	reader := bufio.NewReader(cmd.InOrStdin())
	output := cmd.OutOrStdout()

	fmt.Fprintln(output, app.New().Title())

	for {
		page := sh.ActivePage()
		fmt.Fprintln(output)
		printTabLine(output, sh)

		if page.HasList() {
			fmt.Fprintln(output, page.List.Title())
			for i, item := range page.List.Items() {
				fmt.Fprintf(output, "  %d) %s\n", i+1, item.Description)
			}
		} else {
			printConsole(output, sh)
		}

		choice, err := readTrimmedLine(reader, output, "Item number, t<N> to switch tab, q to quit: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}

			return fmt.Errorf("read menu option: %w", err)
		}

		if err := handlePlainChoice(output, sh, page, choice); err != nil {
			if errors.Is(err, errQuit) {
				fmt.Fprintln(output, "Goodbye.")
				return nil
			}

			fmt.Fprintf(output, "Error: %v\n", err)
		}
	}
}

var errQuit = errors.New("quit")

func handlePlainChoice(output io.Writer, sh *shell.Shell, page shell.Page, choice string) error {
	choice = strings.ToLower(choice)

	switch {
	case choice == "q" || choice == "quit" || choice == "exit":
		return errQuit
	case choice == "":
		return nil
	case strings.HasPrefix(choice, "t"):
		n, err := strconv.Atoi(strings.TrimPrefix(choice, "t"))
		if err != nil {
			return fmt.Errorf("invalid tab %q", choice)
		}

		return sh.Host.SetCurrentTab(n - 1)
	}

	if !page.HasList() {
		return fmt.Errorf("invalid option %q on the %s tab", choice, page.Tab.Title)
	}

	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(page.List.Items()) {
		return fmt.Errorf("invalid option %q, enter 1-%d", choice, len(page.List.Items()))
	}

	page.List.SetCursor(n - 1)

	handled, err := sh.Select(page.Index)
	if err != nil {
		return err
	}

	if !handled {
		item, _ := page.List.Selected()
		fmt.Fprintf(output, "No handler for %s\n", item.Action)
	}

	return nil
}

func printTabLine(output io.Writer, sh *shell.Shell) {
	current := sh.Host.CurrentTab()

	labels := make([]string, 0, sh.Host.Len())
	for i, tab := range sh.Host.Tabs() {
		label := fmt.Sprintf("%d %s", i+1, tab.Title)
		if i == current {
			label = "[" + label + "]"
		}

		labels = append(labels, label)
	}

	fmt.Fprintln(output, strings.Join(labels, " | "))
}

func printConsole(output io.Writer, sh *shell.Shell) {
	lines := sh.Console.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(output, "(console is empty)")
		return
	}

	for _, line := range lines {
		fmt.Fprintln(output, line)
	}
}

func readTrimmedLine(reader *bufio.Reader, output io.Writer, prompt string) (string, error) {
	fmt.Fprint(output, prompt)
	line, err := reader.ReadString('\n')
	if err != nil {
		if len(strings.TrimSpace(line)) == 0 {
			return "", err
		}
	}

	return strings.TrimSpace(line), nil
}
