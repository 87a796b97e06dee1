// Package treepane is the scrolling tree-table view of the explorer. It keeps
// the visible rows of a treetable.Table and refreshes them whenever the table
// publishes an expand/collapse event.
package treepane

import (
	"github.com/cockroachdb/errors"

	"github.com/virgo47/javasimon/cmd/calltree-explorer/treepane/adapter"
	"github.com/virgo47/javasimon/cmd/calltree-explorer/treepane/display"
	"github.com/virgo47/javasimon/cmd/calltree-explorer/virtuallist"
	"github.com/virgo47/javasimon/internal/logger"
	"github.com/virgo47/javasimon/pkg/treetable"
)

// Model is the tree pane. Use it through a pointer: the table subscription
// refers to it.
type Model struct {
	table  *treetable.Table
	rows   []treetable.Row // visible rows
	widths []int
	list   *virtuallist.Renderer

	lastEvent *treetable.Event
	cancel    func()
}

// New creates a pane over table and subscribes to its events.
func New(table *treetable.Table) *Model {
	m := &Model{table: table}
	m.list = virtuallist.New(m)
	m.cancel = table.Subscribe(m.onEvent)
	m.reload("")
	return m
}

// Close stops listening to the table.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// SetEmptyText sets what the pane shows when the table has no rows.
func (m *Model) SetEmptyText(s string) {
	m.list.SetEmptyText(s)
}

// SetSize sets the pane size. The column header takes one line.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, max(height-1, 1))
}

// ItemCount implements virtuallist.VirtualList.
func (m *Model) ItemCount() int {
	return len(m.rows)
}

// RenderItem implements virtuallist.VirtualList.
func (m *Model) RenderItem(index int, isCursor bool, width int) string {
	props := adapter.RowToDisplayProps(m.rows[index], m.table.Glyphs(), m.widths, isCursor)
	return display.RenderRow(props, width)
}

// Rows returns the visible rows.
func (m *Model) Rows() []treetable.Row {
	return m.rows
}

// Cursor returns the cursor index into Rows.
func (m *Model) Cursor() int {
	return m.list.Cursor()
}

// Current returns the row under the cursor.
func (m *Model) Current() (treetable.Row, bool) {
	if len(m.rows) == 0 {
		return treetable.Row{}, false
	}
	return m.rows[m.list.Cursor()], true
}

// LastEvent returns the most recent table event, if any.
func (m *Model) LastEvent() (treetable.Event, bool) {
	if m.lastEvent == nil {
		return treetable.Event{}, false
	}
	return *m.lastEvent, true
}

// MoveUp moves the cursor one row up.
func (m *Model) MoveUp() { m.list.Move(-1) }

// MoveDown moves the cursor one row down.
func (m *Model) MoveDown() { m.list.Move(1) }

// PageUp moves the cursor one page up.
func (m *Model) PageUp() { m.list.Move(-m.list.PageSize()) }

// PageDown moves the cursor one page down.
func (m *Model) PageDown() { m.list.Move(m.list.PageSize()) }

// Home moves the cursor to the first row.
func (m *Model) Home() { m.list.Top() }

// End moves the cursor to the last row.
func (m *Model) End() { m.list.Bottom() }

// Toggle flips the node under the cursor.
func (m *Model) Toggle() error {
	row, ok := m.Current()
	if !ok {
		return nil
	}
	_, err := m.table.ToggleNode(row.Node)
	return err
}

// Expand expands a collapsed node, or steps into the first child of an
// expanded one.
func (m *Model) Expand() error {
	row, ok := m.Current()
	if !ok || !row.Node.HasChildren() {
		return nil
	}
	if row.Node.Expanded() {
		m.list.Move(1)
		return nil
	}
	_, err := m.table.ToggleNode(row.Node)
	return err
}

// Collapse collapses an expanded node, or steps to the parent otherwise.
func (m *Model) Collapse() error {
	row, ok := m.Current()
	if !ok {
		return nil
	}
	if row.Node.Expanded() {
		_, err := m.table.ToggleNode(row.Node)
		return err
	}
	if parent := row.Node.Parent(); parent != nil {
		m.selectID(parent.ID())
	}
	return nil
}

// IsNotApplicable reports whether err is a toggle on a leaf.
func IsNotApplicable(err error) bool {
	return errors.Is(err, treetable.ErrNotApplicable)
}

// Refresh reloads the rows, for example after SetData.
func (m *Model) Refresh() {
	id := ""
	if row, ok := m.Current(); ok {
		id = row.ID
	}
	m.reload(id)
}

// HeaderView renders the column titles.
func (m *Model) HeaderView() string {
	return display.RenderHeader(m.table.Header(), m.widths, m.list.Width())
}

// View renders the header and the visible window of rows.
func (m *Model) View() string {
	if len(m.rows) == 0 {
		return m.list.View()
	}
	return m.HeaderView() + "\n" + m.list.View()
}

func (m *Model) onEvent(ev treetable.Event) {
	m.lastEvent = &ev
	id := ""
	if row, ok := m.Current(); ok {
		id = row.ID
	}
	logger.Debug("tree pane refresh", "op", string(ev.Op), "node", ev.NodeID, "changes", len(ev.Changes))
	m.reload(id)
}

// reload redraws the visible rows and puts the cursor back on id, or on its
// nearest visible ancestor.
func (m *Model) reload(id string) {
	m.rows = m.table.VisibleRows()
	m.widths = adapter.ColumnWidths(m.table.Header(), m.table.Draw())
	m.list.Refresh()
	if id != "" {
		m.selectID(id)
	}
}

func (m *Model) selectID(id string) {
	n, err := m.table.Find(id)
	if err != nil {
		m.list.Top()
		return
	}
	for ; n != nil; n = n.Parent() {
		if !n.Visible() {
			continue
		}
		for i, r := range m.rows {
			if r.ID == n.ID() {
				m.list.SetCursor(i)
				return
			}
		}
	}
	m.list.Top()
}
