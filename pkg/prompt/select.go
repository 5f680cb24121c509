package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type selectKeys struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

var templateKeys = selectKeys{
	Up:     key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
	Choose: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear filter")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// selectModel picks one template name; typing narrows the list.
type selectModel struct {
	choices  []string
	visible  []string
	input    textinput.Model
	cursor   int
	selected string
	done     bool
	quitting bool
}

func initialSelectModel(choices []string) selectModel {
	input := textinput.New()
	input.Prompt = "Filter: "
	input.Placeholder = "type to narrow the list"
	input.Focus()

	return selectModel{
		choices: choices,
		visible: choices,
		input:   input,
	}
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, templateKeys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, templateKeys.Choose):
		if len(m.visible) == 0 {
			return m, nil
		}
		m.selected, m.done = m.visible[m.cursor], true
		return m, tea.Quit
	case key.Matches(keyMsg, templateKeys.Up):
		m.cursor = max(m.cursor-1, 0)
		return m, nil
	case key.Matches(keyMsg, templateKeys.Down):
		m.cursor = min(m.cursor+1, max(len(m.visible)-1, 0))
		return m, nil
	case key.Matches(keyMsg, templateKeys.Clear):
		m.input.SetValue("")
		m.narrow()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	m.narrow()
	return m, cmd
}

// narrow keeps the choices containing the filter, ignoring case.
func (m *selectModel) narrow() {
	needle := strings.ToLower(m.input.Value())

	m.visible = m.choices
	if needle != "" {
		m.visible = nil
		for _, choice := range m.choices {
			if strings.Contains(strings.ToLower(choice), needle) {
				m.visible = append(m.visible, choice)
			}
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m selectModel) View() string {
	if m.quitting || m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(questionStyle.Render("? Choose an ignore template:"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(hintStyle.Render("  no template matches"))
		b.WriteString("\n")
	}
	for i, choice := range m.visible {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + choice))
		} else {
			b.WriteString("  " + choice)
		}
		b.WriteString("\n")
	}

	help := make([]string, 0, 5)
	for _, binding := range []key.Binding{
		templateKeys.Up, templateKeys.Down, templateKeys.Choose, templateKeys.Clear, templateKeys.Quit,
	} {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(strings.Join(help, " • ")))

	return b.String()
}

func runTemplatePicker(choices []string) (string, error) {
	final, err := tea.NewProgram(initialSelectModel(choices)).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := final.(selectModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type %T", final)
	}
	if !model.done {
		return "", ErrNoSelection
	}
	return model.selected, nil
}
