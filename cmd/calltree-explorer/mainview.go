package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// MainViewModel wraps the main UI for use as overlay background
type MainViewModel struct {
	model *Model
}

func NewMainViewModel(m *Model) *MainViewModel {
	return &MainViewModel{model: m}
}

func (m *MainViewModel) Init() tea.Cmd {
	return nil
}

// Update is a no-op; the parent Model handles all messages.
func (m *MainViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

func (m *MainViewModel) View() string {
	return m.model.renderMain()
}

// helpModel is the foreground of the help overlay.
type helpModel struct {
	keys KeyMap
}

func (h helpModel) Init() tea.Cmd {
	return nil
}

func (h helpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return h, nil
}

func (h helpModel) View() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, binding := range h.keys.helpBindings() {
		help := binding.Help()
		b.WriteString(helpKeyStyle.Render(help.Key))
		b.WriteString(helpDescStyle.Render(help.Desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(messageStyle.Render("Press ? or esc to close"))
	return modalStyle.Render(b.String())
}
