package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	surveycore "github.com/AlecAivazis/survey/v2/core"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andreagrandi/icetool/internal/app"
	"github.com/andreagrandi/icetool/internal/shell"
)

const (
	surveyOptionSwitchTab = "Switch tab"
	surveyOptionQuit      = "Quit"
)

// errSurveyBack is returned by askSurveyPrompt when the user pressed Esc.
var errSurveyBack = errors.New("back")

var askSurveyOne = func(prompt survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	return survey.AskOne(prompt, response, opts...)
}

func canUseInteractiveUI(input io.Reader, output io.Writer) bool {
	inputFile, inputOK := input.(*os.File)
	outputFile, outputOK := output.(*os.File)
	if !inputOK || !outputOK {
		return false
	}

	return term.IsTerminal(int(inputFile.Fd())) && term.IsTerminal(int(outputFile.Fd()))
}

func runShellSurvey(cmd *cobra.Command, sh *shell.Shell) error {
	output := cmd.OutOrStdout()
	fmt.Fprintln(output, app.New().Title())

	for {
		page := sh.ActivePage()

		fmt.Fprintln(output)
		printTabLine(output, sh)
		printSurveyHint(output, "Use Up/Down arrows, Enter to select, Esc to switch tab.")

		options := make([]string, 0)
		itemByLabel := make(map[string]int)
		if page.HasList() {
			for i, item := range page.List.Items() {
				label := fmt.Sprintf("%d. %s", i+1, item.Description)
				options = append(options, label)
				itemByLabel[label] = i
			}
		} else {
			printConsole(output, sh)
		}
		options = append(options, surveyOptionSwitchTab, surveyOptionQuit)

		message := page.Tab.Title
		if page.HasList() {
			message = page.List.Title()
		}

		choice := ""
		prompt := &survey.Select{
			Message:  message,
			Options:  options,
			PageSize: 10,
		}
		if page.HasList() {
			prompt.Default = options[page.List.Cursor()]
		}

		err := askSurveyPrompt(cmd, prompt, &choice)
		switch {
		case errors.Is(err, errSurveyBack):
			choice = surveyOptionSwitchTab
		case errors.Is(err, terminal.InterruptErr):
			fmt.Fprintln(output, "Goodbye.")
			return nil
		case err != nil:
			return fmt.Errorf("read menu option: %w", err)
		}

		switch choice {
		case surveyOptionQuit:
			fmt.Fprintln(output, "Goodbye.")
			return nil
		case surveyOptionSwitchTab:
			if err := pickTabSurvey(cmd, sh); err != nil {
				return err
			}
		default:
			index, ok := itemByLabel[choice]
			if !ok {
				continue
			}

			page.List.SetCursor(index)
			handled, err := sh.Select(page.Index)
			if err != nil {
				fmt.Fprintf(output, "Error: %v\n", err)
				continue
			}

			if !handled {
				item, _ := page.List.Selected()
				fmt.Fprintf(output, "No handler for %s\n", item.Action)
			}
		}
	}
}

func pickTabSurvey(cmd *cobra.Command, sh *shell.Shell) error {
	tabs := sh.Host.Tabs()

	labels := make([]string, 0, len(tabs))
	for i, tab := range tabs {
		labels = append(labels, fmt.Sprintf("%d %s", i+1, tab.Title))
	}

	choice := ""
	prompt := &survey.Select{
		Message:  "Tab",
		Options:  labels,
		Default:  labels[sh.Host.CurrentTab()],
		PageSize: len(labels),
	}

	err := askSurveyPrompt(cmd, prompt, &choice)
	if errors.Is(err, errSurveyBack) || errors.Is(err, terminal.InterruptErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read tab: %w", err)
	}

	for i, label := range labels {
		if label == choice {
			return sh.Host.SetCurrentTab(i)
		}
	}

	return nil
}

func askSurveyPrompt(cmd *cobra.Command, prompt survey.Prompt, response interface{}) error {
	colorEnabled := surveyColorsEnabled()
	previousDisableColor := surveycore.DisableColor
	surveycore.DisableColor = !colorEnabled
	defer func() {
		surveycore.DisableColor = previousDisableColor
	}()

	questionFormat := "default"
	selectFocusFormat := "default"
	if colorEnabled {
		questionFormat = "cyan"
		selectFocusFormat = "cyan"
	}

	options := []survey.AskOpt{survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Text = ">"
		icons.Question.Format = questionFormat
		icons.SelectFocus.Text = ">"
		icons.SelectFocus.Format = selectFocusFormat
	})}

	var escInput *tabPickerInput
	inputFile, inputOK := cmd.InOrStdin().(*os.File)
	outputFile, outputOK := cmd.OutOrStdout().(*os.File)
	if inputOK && outputOK {
		escInput = newTabPickerInput(inputFile)
		options = append(options, survey.WithStdio(escInput, outputFile, outputFile))
	}

	err := askSurveyOne(prompt, response, options...)
	if errors.Is(err, terminal.InterruptErr) && escInput != nil && escInput.takeEsc() {
		return errSurveyBack
	}

	return err
}

func surveyColorsEnabled() bool {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}

	termValue := strings.TrimSpace(strings.ToLower(os.Getenv("TERM")))
	return termValue != "dumb"
}

func printSurveyHint(output io.Writer, message string) {
	fmt.Fprintln(output, message)
}
