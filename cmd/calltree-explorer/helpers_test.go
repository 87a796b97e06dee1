package main

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/virgo47/javasimon/internal/config"
)

func testDataPath(name string) string {
	return filepath.Join("..", "..", "testdata", name)
}

// TestHelper drives a Model with synthetic messages. Commands are not run.
type TestHelper struct {
	t     *testing.T
	model Model
}

func NewTestHelper(t *testing.T, file string) *TestHelper {
	t.Helper()
	m, err := NewModel(&config.Config{TableID: config.DefaultTableID}, testDataPath(file))
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return &TestHelper{t: t, model: m}
}

func (h *TestHelper) Send(msg tea.Msg) tea.Cmd {
	updated, cmd := h.model.Update(msg)
	h.model = updated.(Model)
	return cmd
}

func (h *TestHelper) SendKey(keyType tea.KeyType) *TestHelper {
	h.Send(tea.KeyMsg{Type: keyType})
	return h
}

func (h *TestHelper) SendKeyRune(r rune) *TestHelper {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return h
}

func (h *TestHelper) SendWindowSize(width, height int) *TestHelper {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return h
}

func (h *TestHelper) CurrentID() string {
	h.t.Helper()
	row, ok := h.model.currentRow()
	require.True(h.t, ok, "no current row")
	return row.ID
}

func (h *TestHelper) RowCount() int {
	return len(h.model.pane.Rows())
}

func (h *TestHelper) View() string {
	return h.model.View()
}
