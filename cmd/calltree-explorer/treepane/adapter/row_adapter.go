// Package adapter turns tree-table rows into display props. The style and
// marker rules live here; the display package only formats.
package adapter

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/virgo47/javasimon/cmd/calltree-explorer/treepane/display"
	"github.com/virgo47/javasimon/pkg/settings"
	"github.com/virgo47/javasimon/pkg/treetable"
)

// Style tags understood by the adapter. Other tags render unstyled.
const (
	TagName   = "name"
	TagNumber = "number"
)

// RowToDisplayProps converts row into display props. widths holds the display
// width of every column after the first.
func RowToDisplayProps(row treetable.Row, glyphs settings.Glyphs, widths []int, isCursor bool) display.RowDisplayProps {
	props := display.RowDisplayProps{
		Prefix:      row.Prefix(glyphs),
		Widths:      widths,
		PrefixStyle: connectorStyle,
		NameStyle:   plainStyle,
		IsSelected:  isCursor,
	}

	if len(row.Cells) > 0 {
		props.Name = row.Cells[0].Text()
		props.NameStyle = styleFor(row.Cells[0])
	}
	for _, c := range row.Cells[min(1, len(row.Cells)):] {
		props.Cells = append(props.Cells, c.Text())
		props.Styles = append(props.Styles, styleFor(c))
	}

	if row.Affordance.Present && !row.Affordance.Expanded {
		props.Marker = fmt.Sprintf("(%d)", len(row.Node.Children()))
	}
	return props
}

// ColumnWidths returns, for every column after the first, the widest of its
// title and its cell texts in rows.
func ColumnWidths(titles []string, rows []treetable.Row) []int {
	if len(titles) <= 1 {
		return nil
	}
	widths := make([]int, len(titles)-1)
	for i, title := range titles[1:] {
		widths[i] = lipgloss.Width(title)
	}
	for _, r := range rows {
		for i := 1; i < len(r.Cells) && i < len(titles); i++ {
			widths[i-1] = max(widths[i-1], lipgloss.Width(r.Cells[i].Text()))
		}
	}
	return widths
}

func styleFor(c treetable.Cell) lipgloss.Style {
	switch {
	case c.HasStyle(TagNumber):
		return numberStyle
	case c.HasStyle(TagName):
		return nameStyle
	default:
		return plainStyle
	}
}

var (
	plainStyle     = lipgloss.NewStyle()
	connectorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	nameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#00D7FF"))
	numberStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
)
