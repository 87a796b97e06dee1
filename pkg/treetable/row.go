package treetable

import (
	"strings"

	"github.com/virgo47/javasimon/pkg/settings"
)

// Connector is the indentation marker drawn for one ancestor.
type Connector int

const (
	// ConnectorBar continues a vertical line: the ancestor has later siblings.
	ConnectorBar Connector = iota
	// ConnectorBlank leaves the column empty: the ancestor is a last child.
	ConnectorBlank
)

// String returns "bar" or "blank".
func (c Connector) String() string {
	if c == ConnectorBlank {
		return "blank"
	}
	return "bar"
}

// Glyph returns the spacer glyph for c.
func (c Connector) Glyph(g settings.Glyphs) string {
	if c == ConnectorBlank {
		return g.LastSpacer
	}
	return g.Spacer
}

// Affordance describes the expand/collapse control of a row.
type Affordance struct {
	Present  bool // node has children
	Expanded bool
}

// Row is one rendered line of the table.
type Row struct {
	ID         string
	Depth      int
	Indent     []Connector // one per ancestor, root first
	Glyph      settings.GlyphType
	Affordance Affordance
	Visible    bool
	Cells      []Cell
	Node       *TreeNode
}

// Prefix renders the indentation and node glyph of r.
func (r Row) Prefix(g settings.Glyphs) string {
	var b strings.Builder
	for _, c := range r.Indent {
		b.WriteString(c.Glyph(g))
	}
	b.WriteString(g.For(r.Glyph))
	return b.String()
}

// Texts returns the text of every cell.
func (r Row) Texts() []string {
	out := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = c.Text()
	}
	return out
}

func newRow(n *TreeNode, cols Columns) Row {
	ancestors := n.Ancestors()
	indent := make([]Connector, len(ancestors))
	for i, a := range ancestors {
		if a.isLast {
			indent[i] = ConnectorBlank
		} else {
			indent[i] = ConnectorBar
		}
	}

	return Row{
		ID:         n.id,
		Depth:      n.depth,
		Indent:     indent,
		Glyph:      glyphType(n),
		Affordance: Affordance{Present: n.hasChildren, Expanded: n.Expanded()},
		Visible:    n.visible,
		Cells:      cols.render(n),
		Node:       n,
	}
}

func glyphType(n *TreeNode) settings.GlyphType {
	switch {
	case !n.hasChildren && n.isLast:
		return settings.GlyphLastLeaf
	case !n.hasChildren:
		return settings.GlyphLeaf
	case n.expanded && n.isLast:
		return settings.GlyphLastNodeExpanded
	case n.expanded:
		return settings.GlyphNodeExpanded
	case n.isLast:
		return settings.GlyphLastNodeCollapsed
	default:
		return settings.GlyphNodeCollapsed
	}
}
