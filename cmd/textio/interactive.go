package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/wippyai/text-toolkit/base64"
	"github.com/wippyai/text-toolkit/hexdump"
	"github.com/wippyai/text-toolkit/quoted"
	"github.com/wippyai/text-toolkit/split"
	"github.com/wippyai/text-toolkit/wordwrap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	transformStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Interactive transform playground",
		Long:    "Pick a transform, type input, and see the output update live.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := tea.NewProgram(newPlaygroundModel()).Run()
			return err
		},
	}
}

type transform struct {
	name  string
	apply func(string) (string, error)
}

func transforms() []transform {
	return []transform{
		{"base64 encode", func(s string) (string, error) {
			return base64.EncodeWrapped([]byte(s), 60), nil
		}},
		{"base64 decode", func(s string) (string, error) {
			out, err := base64.Decode(s)
			return string(out), err
		}},
		{"hex dump", func(s string) (string, error) {
			return hexdump.Dump([]byte(s)), nil
		}},
		{"hex parse", func(s string) (string, error) {
			out, err := hexdump.Parse(s)
			return string(out), err
		}},
		{"word wrap (width 40)", func(s string) (string, error) {
			return wordwrap.Wrap(s, 40), nil
		}},
		{"split words", func(s string) (string, error) {
			return strings.Join(split.Words(s), "\n"), nil
		}},
		{"unquote", func(s string) (string, error) {
			tokens, err := quoted.Split(s)
			return strings.Join(tokens, "\n"), err
		}},
		{"quote lines", func(s string) (string, error) {
			return quoted.Join(strings.Split(s, "\n")), nil
		}},
	}
}

type playgroundState int

const (
	stateSelectTransform playgroundState = iota
	stateInput
)

type playgroundModel struct {
	err        error
	transforms []transform
	input      textinput.Model
	result     string
	selected   int
	state      playgroundState
}

func newPlaygroundModel() *playgroundModel {
	ti := textinput.New()
	ti.Prompt = "input: "
	ti.Width = 60
	return &playgroundModel{
		transforms: transforms(),
		input:      ti,
		state:      stateSelectTransform,
	}
}

func (m *playgroundModel) Init() tea.Cmd {
	return nil
}

func (m *playgroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state == stateSelectTransform {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectTransform && m.selected > 0 {
				m.selected--
				return m, nil
			}

		case "down", "j":
			if m.state == stateSelectTransform && m.selected < len(m.transforms)-1 {
				m.selected++
				return m, nil
			}

		case "enter":
			if m.state == stateSelectTransform {
				m.state = stateInput
				m.input.SetValue("")
				m.result = ""
				m.err = nil
				m.input.Focus()
				return m, textinput.Blink
			}

		case "esc":
			if m.state == stateInput {
				m.state = stateSelectTransform
				m.input.Blur()
				return m, nil
			}
		}
	}

	if m.state == stateInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.result, m.err = m.transforms[m.selected].apply(m.input.Value())
		return m, cmd
	}

	return m, nil
}

func (m *playgroundModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("textio playground"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectTransform:
		b.WriteString("Select a transform:\n\n")
		for i, t := range m.transforms {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + t.name))
			} else {
				b.WriteString(cursor + transformStyle.Render(t.name))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInput:
		b.WriteString(fmt.Sprintf("Transform: %s\n\n", transformStyle.Render(m.transforms[m.selected].name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("type to preview • esc back • ctrl+c quit"))
	}

	return b.String()
}
