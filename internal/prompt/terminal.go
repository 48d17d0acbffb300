package prompt

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true)
)

// Terminal implements [Prompter] with small bubbletea programs, one per prompt.
type Terminal struct{}

// NewTerminal creates a terminal-backed Prompter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

type promptKeyMap struct {
	yes    key.Binding
	no     key.Binding
	accept key.Binding
	quit   key.Binding
}

func newPromptKeyMap() promptKeyMap {
	return promptKeyMap{
		yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		no: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "no"),
		),
		accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("ctrl+c", "cancel"),
		),
	}
}

// confirmModel is a yes/no question.
type confirmModel struct {
	message  string
	fallback bool
	answer   bool
	answered bool
	aborted  bool
	keys     promptKeyMap
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.yes):
		m.answer = true
		m.answered = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.no):
		m.answer = false
		m.answered = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.accept):
		m.answer = m.fallback
		m.answered = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.quit):
		m.aborted = true
		return m, tea.Quit
	}

	return m, nil
}

func (m confirmModel) View() string {
	if m.answered || m.aborted {
		return ""
	}
	hint := "y/N"
	if m.fallback {
		hint = "Y/n"
	}
	return fmt.Sprintf("%s %s\n%s\n",
		questionStyle.Render(m.message),
		answerStyle.Render("["+hint+"]"),
		helpStyle.Render("y yes • n no • enter default • esc cancel"),
	)
}

// Confirm asks a yes/no question.
func (t *Terminal) Confirm(message string, fallback bool) (bool, error) {
	model := confirmModel{message: message, fallback: fallback, keys: newPromptKeyMap()}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}

	result, ok := final.(confirmModel)
	if !ok || result.aborted {
		return false, fmt.Errorf("prompt cancelled")
	}

	return result.answer, nil
}

// choiceItem wraps a plain string to implement [list.Item].
type choiceItem string

func (i choiceItem) FilterValue() string { return string(i) }
func (i choiceItem) Title() string       { return string(i) }
func (i choiceItem) Description() string { return "" }

// selectModel is a pick-one list.
type selectModel struct {
	choices  list.Model
	selected string
	answered bool
	aborted  bool
	keys     promptKeyMap
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.choices.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.accept):
			if item, ok := m.choices.SelectedItem().(choiceItem); ok {
				m.selected = string(item)
				m.answered = true
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.quit):
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.choices, cmd = m.choices.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	if m.answered || m.aborted {
		return ""
	}
	return m.choices.View()
}

// SelectOne asks the user to pick exactly one of choices.
func (t *Terminal) SelectOne(message string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("no choices to select from")
	}

	items := make([]list.Item, len(choices))
	for i, choice := range choices {
		items[i] = choiceItem(choice)
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	choiceList := list.New(items, delegate, 60, len(choices)+8)
	choiceList.Title = message
	choiceList.SetShowStatusBar(false)
	choiceList.SetFilteringEnabled(false)

	model := selectModel{choices: choiceList, keys: newPromptKeyMap()}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	result, ok := final.(selectModel)
	if !ok || result.aborted || !result.answered {
		return "", fmt.Errorf("prompt cancelled")
	}

	return result.selected, nil
}

// textModel is a single-line input.
type textModel struct {
	message  string
	input    textinput.Model
	answered bool
	aborted  bool
	keys     promptKeyMap
}

func (m textModel) Init() tea.Cmd { return textinput.Blink }

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.keys.accept):
			m.answered = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.quit):
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.answered || m.aborted {
		return ""
	}
	return fmt.Sprintf("%s\n%s\n%s\n",
		questionStyle.Render(m.message),
		m.input.View(),
		helpStyle.Render("enter accept • esc cancel"),
	)
}

// FreeText collects a single line of input.
func (t *Terminal) FreeText(message string) (string, error) {
	input := textinput.New()
	input.Focus()
	input.CharLimit = 256
	input.Width = 60

	model := textModel{message: message, input: input, keys: newPromptKeyMap()}

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	result, ok := final.(textModel)
	if !ok || result.aborted {
		return "", fmt.Errorf("prompt cancelled")
	}

	return result.input.Value(), nil
}
