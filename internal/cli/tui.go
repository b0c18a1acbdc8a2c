package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/langcard/pkg/card"
	"github.com/matzehuels/langcard/pkg/card/langs"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// layoutChoices pairs each layout with a one-line description for the picker.
var layoutChoices = []struct {
	layout langs.Layout
	desc   string
}{
	{langs.LayoutNormal, "bar list with per-language progress"},
	{langs.LayoutCompact, "single cumulative strip with legend"},
	{langs.LayoutDonut, "ring with a side legend"},
	{langs.LayoutDonutVertical, "centered ring over a legend"},
	{langs.LayoutPie, "classic pie wedges"},
}

// pickerStep is the current selection stage.
type pickerStep int

const (
	stepLayout pickerStep = iota
	stepTheme
)

// CardSelection holds the result of the interactive picker.
type CardSelection struct {
	Layout langs.Layout
	Theme  string
}

// PickerModel is the bubbletea model for interactive layout and theme
// selection. It walks two steps: layout first, then theme.
type PickerModel struct {
	step     pickerStep
	themes   []string
	cursor   int
	Selected *CardSelection
}

// NewPickerModel creates a picker over all layouts and themes.
func NewPickerModel() PickerModel {
	return PickerModel{themes: card.ThemeNames()}
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.listLen()-1 {
				m.cursor++
			}
		case "enter":
			if m.step == stepLayout {
				m.Selected = &CardSelection{Layout: layoutChoices[m.cursor].layout}
				m.step = stepTheme
				m.cursor = 0
				return m, nil
			}
			m.Selected.Theme = m.themes[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m PickerModel) listLen() int {
	if m.step == stepLayout {
		return len(layoutChoices)
	}
	return len(m.themes)
}

func (m PickerModel) View() string {
	var b strings.Builder

	if m.step == stepLayout {
		b.WriteString(StyleTitle.Render("Select a layout") + "\n\n")
		for i, c := range layoutChoices {
			b.WriteString(m.renderRow(i, string(c.layout), c.desc))
		}
	} else {
		b.WriteString(StyleTitle.Render("Select a theme") + "\n\n")
		for i, name := range m.themes {
			b.WriteString(m.renderRow(i, name, ""))
		}
	}

	b.WriteString("\n" + listDimStyle.Render("  ↑/↓ move · enter select · q quit") + "\n")
	return b.String()
}

func (m PickerModel) renderRow(i int, name, desc string) string {
	cursor := "  "
	style := listNormalStyle
	if i == m.cursor {
		cursor = iconArrow + " "
		style = listSelectedStyle
	}
	line := cursor + style.Render(name)
	if desc != "" {
		line += "  " + listDimStyle.Render(desc)
	}
	return line + "\n"
}

// runPicker runs the interactive picker and returns the selection, or nil
// when the user aborted.
func runPicker() (*CardSelection, error) {
	final, err := tea.NewProgram(NewPickerModel()).Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	model, ok := final.(PickerModel)
	if !ok || model.Selected == nil || model.Selected.Theme == "" {
		return nil, nil
	}
	return model.Selected, nil
}
