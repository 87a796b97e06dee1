// Package treetable turns nested records into the rows of a tree-table.
//
// A Table owns one node tree built from a RawNode. Each row carries the
// indentation connectors of its ancestors, an expand/collapse affordance and
// one Cell per column. Toggling a node cascades visibility to its subtree and
// notifies subscribers:
//
//	cols, err := treetable.NewColumns(
//	    treetable.Column{Title: "Name", Field: "name"},
//	)
//	t := treetable.New("callTree", cols)
//	if err := t.SetData(root); err != nil {
//	    return err
//	}
//	t.Subscribe(func(ev treetable.Event) { redraw(t.VisibleRows()) })
//	_, err = t.Toggle("callTree_Node_0")
//
// A Table is not safe for concurrent use. Columns may be shared.
package treetable

import (
	"github.com/cockroachdb/errors"

	"github.com/virgo47/javasimon/internal/logger"
	"github.com/virgo47/javasimon/pkg/settings"
)

// Table renders one node tree with a fixed column model.
type Table struct {
	id      string
	columns Columns
	glyphs  settings.Glyphs

	root  *TreeNode
	index map[string]*TreeNode

	subs    []subscription
	nextSub int
}

// Option configures a Table.
type Option func(*Table)

// WithGlyphs sets the glyph table used by Prefix-based output.
func WithGlyphs(g settings.Glyphs) Option {
	return func(t *Table) {
		t.glyphs = g
	}
}

// New creates an empty table. id prefixes every node id.
func New(id string, cols Columns, opts ...Option) *Table {
	t := &Table{
		id:      id,
		columns: cols,
		glyphs:  settings.DefaultGlyphs(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID returns the table identifier.
func (t *Table) ID() string { return t.id }

// Columns returns the column model.
func (t *Table) Columns() Columns { return t.columns }

// Glyphs returns the glyph table.
func (t *Table) Glyphs() settings.Glyphs { return t.glyphs }

// Root returns the root node, or nil when no data is set.
func (t *Table) Root() *TreeNode { return t.root }

// HasData reports whether a tree is set.
func (t *Table) HasData() bool { return t.root != nil }

// Len returns the number of nodes in the current tree.
func (t *Table) Len() int { return len(t.index) }

// SetData replaces the tree with one built from raw. The new tree is built
// completely before it replaces the old one; on error the old tree stays.
func (t *Table) SetData(raw RawNode) error {
	root, err := Build(raw, t.id)
	if err != nil {
		logger.Warn("set data rejected", "table", t.id, "error", err)
		return errors.Wrapf(err, "table %s", t.id)
	}

	index := make(map[string]*TreeNode)
	walk(root, func(n *TreeNode) {
		index[n.id] = n
	})

	t.root = root
	t.index = index
	logger.Debug("table data set", "table", t.id, "nodes", len(index))
	return nil
}

// Clear drops the current tree.
func (t *Table) Clear() {
	t.root = nil
	t.index = nil
}

// Find returns the node with the given id.
func (t *Table) Find(id string) (*TreeNode, error) {
	n, ok := t.index[id]
	if !ok {
		return nil, &NotFoundError{NodeID: id}
	}
	return n, nil
}

// Header returns the column titles. It does not depend on the data.
func (t *Table) Header() []string {
	return t.columns.Header()
}

// Draw returns one row per node in preorder, hidden rows included. A table
// without data yields an empty slice.
func (t *Table) Draw() []Row {
	rows := VisitFromRoot(t, func(n *TreeNode, cols Columns) (Row, bool) {
		return newRow(n, cols), true
	}, t.columns)
	if rows == nil {
		return []Row{}
	}
	return rows
}

// Redraw recomputes the full row sequence.
func (t *Table) Redraw() []Row {
	return t.Draw()
}

// VisibleRows returns the rows of Draw whose node is visible.
func (t *Table) VisibleRows() []Row {
	rows := t.Draw()
	out := rows[:0]
	for _, r := range rows {
		if r.Visible {
			out = append(out, r)
		}
	}
	return out
}

// Prefix renders the indentation and glyph of r with the table's glyphs.
func (t *Table) Prefix(r Row) string {
	return r.Prefix(t.glyphs)
}
