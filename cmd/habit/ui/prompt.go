package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// promptModel is the bubbletea model behind the first-run username prompt.
type promptModel struct {
	input   textinput.Model
	styles  Styles
	done    bool
	aborted bool
}

func newPromptModel(styles Styles) promptModel {
	input := textinput.New()
	input.Placeholder = "your name"
	input.CharLimit = 64
	input.Focus()
	return promptModel{input: input, styles: styles}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	return fmt.Sprintf("%s %s\n%s\n",
		m.styles.Prompt.Render("Enter your name to set up Habit Tracker:"),
		m.input.View(),
		m.styles.Muted.Render("(enter to confirm, esc to cancel)"))
}

// PromptUsername asks for the username interactively. When stdin is not a
// terminal (tests, pipes) it falls back to reading one line from stdin.
// Returns an empty string when the user cancels.
func PromptUsername(styles Styles) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("failed to read username: %w", err)
		}
		return strings.TrimSpace(line), nil
	}

	program := tea.NewProgram(newPromptModel(styles))
	final, err := program.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	m := final.(promptModel)
	if m.aborted {
		return "", nil
	}
	return strings.TrimSpace(m.input.Value()), nil
}
