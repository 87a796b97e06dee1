package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

const (
	headerLines = 2
	statusLines = 1
)

// View renders the entire UI
func (m Model) View() string {
	if m.showHelp {
		// Rebuilt on every render: Update hands back copies of the model.
		helpOverlay := overlay.New(
			helpModel{keys: m.keys},
			NewMainViewModel(&m),
			overlay.Center,
			overlay.Center,
			0,
			0,
		)
		return helpOverlay.View()
	}

	return m.renderMain()
}

func (m Model) renderMain() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderContent(),
		m.renderStatus(),
	)
}

// paneHeight is the height left for the tree pane.
func (m Model) paneHeight() int {
	return max(m.height-headerLines-statusLines, 1)
}

func (m Model) renderHeader() string {
	title := headerStyle.Render("Call Tree Explorer")
	file := pathStyle.Render(m.path)

	second := ""
	if m.doc != nil && m.doc.LogThreshold > 0 {
		second = messageStyle.Render(fmt.Sprintf("log threshold %s", m.doc.LogThreshold))
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", file),
		second,
	)
}

func (m Model) renderContent() string {
	if !m.table.HasData() {
		return messageStyle.Render(m.pane.View())
	}
	return m.pane.View()
}

func (m Model) renderStatus() string {
	if m.statusMessage != "" {
		return statusStyle.Render(statusMessageStyle.Render(m.statusMessage))
	}

	parts := []string{}
	if row, ok := m.currentRow(); ok {
		parts = append(parts, fmt.Sprintf("%d/%d", m.pane.Cursor()+1, len(m.pane.Rows())))
		parts = append(parts, row.ID)
	}
	if ev, ok := m.pane.LastEvent(); ok {
		parts = append(parts, fmt.Sprintf("%s: %d changed", ev.Op, len(ev.Changes)))
	}
	parts = append(parts, "? for help")
	return statusStyle.Render(strings.Join(parts, " │ "))
}
