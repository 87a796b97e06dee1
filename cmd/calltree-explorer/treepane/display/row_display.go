package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// RenderRow formats props into a single line of the given width. The tree
// part is truncated with an ellipsis; the remaining columns are right aligned.
func RenderRow(props RowDisplayProps, width int) string {
	cellsWidth := 0
	for _, w := range props.Widths {
		cellsWidth += columnGap + w
	}

	name := props.Name
	if props.Marker != "" {
		name += " " + props.Marker
	}
	treeText := Truncate(props.Prefix+name, max(width-cellsWidth, 0))

	var b strings.Builder
	prefix, rest := splitPrefix(treeText, props.Prefix)
	b.WriteString(props.PrefixStyle.Render(prefix))
	b.WriteString(props.NameStyle.Render(rest))

	if pad := width - cellsWidth - lipgloss.Width(treeText); pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}

	for i, cell := range props.Cells {
		w := 0
		if i < len(props.Widths) {
			w = props.Widths[i]
		}
		cell = Truncate(cell, w)
		b.WriteString(strings.Repeat(" ", columnGap+w-lipgloss.Width(cell)))
		if i < len(props.Styles) {
			cell = props.Styles[i].Render(cell)
		}
		b.WriteString(cell)
	}

	line := b.String()
	if props.IsSelected {
		return selectedStyle.Render(line)
	}
	return line
}

// RenderHeader formats the column titles to line up with RenderRow output.
func RenderHeader(titles []string, widths []int, width int) string {
	if len(titles) == 0 {
		return ""
	}
	row := RowDisplayProps{
		Name:        titles[0],
		Cells:       titles[1:],
		Widths:      widths,
		PrefixStyle: lipgloss.NewStyle(),
		NameStyle:   lipgloss.NewStyle(),
	}
	return headerStyle.Render(RenderRow(row, width))
}

// Truncate shortens s to at most width display cells, ending with "…" when
// something was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := lipgloss.Width(string(r))
		if used+rw > width-1 {
			break
		}
		b.WriteRune(r)
		used += rw
	}
	b.WriteString("…")
	return b.String()
}

// splitPrefix splits truncated text back into its prefix and name parts.
func splitPrefix(text, prefix string) (string, string) {
	if strings.HasPrefix(text, prefix) {
		return prefix, text[len(prefix):]
	}
	return text, ""
}
