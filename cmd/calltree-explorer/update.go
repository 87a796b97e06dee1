package main

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/virgo47/javasimon/cmd/calltree-explorer/treepane"
	"github.com/virgo47/javasimon/internal/calltree"
	"github.com/virgo47/javasimon/internal/logger"
	"github.com/virgo47/javasimon/pkg/treetable"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pane.SetSize(msg.Width, m.paneHeight())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case clearStatusMsg:
		m.statusMessage = ""
		return m, nil

	case copiedMsg:
		if msg.Err != nil {
			logger.Warn("copy failed", "id", msg.ID, "error", msg.Err)
			m.statusMessage = "Failed to copy node id"
		} else {
			m.statusMessage = fmt.Sprintf("✓ Copied: %s", msg.ID)
		}
		return m, clearStatusAfter()

	case reloadedMsg:
		if msg.Err == nil {
			msg.Err = m.load(msg.Doc)
		}
		if msg.Err != nil {
			logger.Error("reload failed", "path", m.path, "error", msg.Err)
			m.statusMessage = "Reload failed: " + msg.Err.Error()
		} else {
			m.statusMessage = "Reloaded"
		}
		return m, clearStatusAfter()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), msg.Type == tea.KeyEsc:
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Up):
		m.pane.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.pane.MoveDown()
	case key.Matches(msg, m.keys.PageUp):
		m.pane.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.pane.PageDown()
	case key.Matches(msg, m.keys.Home):
		m.pane.Home()
	case key.Matches(msg, m.keys.End):
		m.pane.End()
	case key.Matches(msg, m.keys.Left):
		return m.report(m.pane.Collapse())
	case key.Matches(msg, m.keys.Right):
		return m.report(m.pane.Expand())
	case key.Matches(msg, m.keys.Toggle):
		return m.report(m.pane.Toggle())
	case key.Matches(msg, m.keys.ExpandAll):
		m.table.ExpandAll()
	case key.Matches(msg, m.keys.CollapseAll):
		m.table.CollapseAll()
	case key.Matches(msg, m.keys.ExpandLevel):
		depth := int(msg.Runes[0] - '0')
		m.table.ExpandToDepth(depth)
		m.statusMessage = fmt.Sprintf("Expanded to depth %d", depth)
		return m, clearStatusAfter()
	case key.Matches(msg, m.keys.Copy):
		if row, ok := m.pane.Current(); ok {
			return m, copyID(row.ID)
		}
	case key.Matches(msg, m.keys.Reload):
		m.statusMessage = "Reloading..."
		return m, reload(m.path)
	}
	return m, nil
}

// report turns a pane error into a status message.
func (m Model) report(err error) (tea.Model, tea.Cmd) {
	if err == nil {
		return m, nil
	}
	if treepane.IsNotApplicable(err) {
		m.statusMessage = "Leaf node has nothing to expand"
	} else {
		logger.Error("tree operation failed", "error", err)
		m.statusMessage = err.Error()
	}
	return m, clearStatusAfter()
}

// currentRow returns the row under the cursor.
func (m Model) currentRow() (treetable.Row, bool) {
	return m.pane.Current()
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func copyID(id string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{ID: id, Err: clipboard.WriteAll(id)}
	}
}

func reload(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := calltree.Open(path)
		return reloadedMsg{Doc: doc, Err: err}
	}
}
