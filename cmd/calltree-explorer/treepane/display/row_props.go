package display

import "github.com/charmbracelet/lipgloss"

// RowDisplayProps holds pre-computed display data for one tree-table row.
// The display layer only formats and styles; the adapter decides what to show.
type RowDisplayProps struct {
	Prefix string // tree connectors and node glyph
	Name   string // first column text
	Marker string // trailing marker on the name, e.g. "(3)" for collapsed nodes

	Cells  []string         // remaining column texts
	Widths []int            // display width of each remaining column
	Styles []lipgloss.Style // style of each remaining column

	PrefixStyle lipgloss.Style
	NameStyle   lipgloss.Style
	IsSelected  bool
}
