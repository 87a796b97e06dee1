package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/virgo47/javasimon/cmd/calltree-explorer/treepane"
	"github.com/virgo47/javasimon/internal/calltree"
	"github.com/virgo47/javasimon/internal/config"
	"github.com/virgo47/javasimon/internal/logger"
	"github.com/virgo47/javasimon/pkg/treetable"
)

// Model is the explorer's bubbletea model.
type Model struct {
	path  string
	table *treetable.Table
	doc   *calltree.Document
	pane  *treepane.Model
	keys  KeyMap

	width  int
	height int

	showHelp      bool
	statusMessage string
}

// NewModel opens the call tree at path and builds a table for it from cfg.
func NewModel(cfg *config.Config, path string) (Model, error) {
	table, err := cfg.NewTable()
	if err != nil {
		return Model{}, err
	}
	doc, err := calltree.Open(path)
	if err != nil {
		return Model{}, err
	}
	return newModel(path, table, doc)
}

func newModel(path string, table *treetable.Table, doc *calltree.Document) (Model, error) {
	m := Model{
		path:  path,
		table: table,
		keys:  DefaultKeyMap(),
		pane:  treepane.New(table),
	}
	if err := m.load(doc); err != nil {
		m.pane.Close()
		return Model{}, err
	}
	return m, nil
}

// load replaces the table data with doc.
func (m *Model) load(doc *calltree.Document) error {
	if doc.HasTree() {
		if err := m.table.SetData(doc.Root); err != nil {
			return err
		}
	} else {
		m.table.Clear()
	}
	m.doc = doc
	m.pane.SetEmptyText(doc.Message)
	m.pane.Refresh()
	logger.Debug("call tree loaded", "path", m.path, "nodes", m.table.Len(), "message", doc.Message)
	return nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Close releases the pane's table subscription.
func (m Model) Close() {
	if m.pane != nil {
		m.pane.Close()
	}
}

type clearStatusMsg struct{}

type copiedMsg struct {
	ID  string
	Err error
}

type reloadedMsg struct {
	Doc *calltree.Document
	Err error
}
