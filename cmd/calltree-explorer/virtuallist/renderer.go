// Package virtuallist renders the visible window of a long list.
package virtuallist

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// VirtualList is implemented by components whose items are rendered on demand.
type VirtualList interface {
	// ItemCount returns the total number of items in the list
	ItemCount() int

	// RenderItem renders the item at index. isCursor marks the selected item.
	RenderItem(index int, isCursor bool, width int) string
}

// Renderer keeps a cursor and a scroll offset over a VirtualList and renders
// only the items that fit in its height.
type Renderer struct {
	list      VirtualList
	viewport  viewport.Model
	cursor    int
	offset    int
	width     int
	height    int
	emptyText string
}

// New creates a renderer for list.
func New(list VirtualList) *Renderer {
	return &Renderer{
		list:      list,
		viewport:  viewport.New(0, 0),
		emptyText: "(empty)",
	}
}

// SetEmptyText sets the text shown when the list has no items.
func (r *Renderer) SetEmptyText(s string) {
	r.emptyText = s
}

// SetSize updates the renderer size.
func (r *Renderer) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = width
	r.viewport.Height = height
	r.clamp()
}

// Width returns the current width.
func (r *Renderer) Width() int { return r.width }

// Height returns the current height.
func (r *Renderer) Height() int { return r.height }

// Cursor returns the cursor index.
func (r *Renderer) Cursor() int { return r.cursor }

// Offset returns the index of the first rendered item.
func (r *Renderer) Offset() int { return r.offset }

// SetCursor moves the cursor to index, clamped to the list, and scrolls it into view.
func (r *Renderer) SetCursor(index int) {
	r.cursor = index
	r.clamp()
}

// Move moves the cursor by delta items.
func (r *Renderer) Move(delta int) {
	r.SetCursor(r.cursor + delta)
}

// PageSize returns the number of items moved by a page step.
func (r *Renderer) PageSize() int {
	if r.height <= 1 {
		return 1
	}
	return r.height - 1
}

// Top moves the cursor to the first item.
func (r *Renderer) Top() { r.SetCursor(0) }

// Bottom moves the cursor to the last item.
func (r *Renderer) Bottom() { r.SetCursor(r.list.ItemCount() - 1) }

// Refresh re-clamps cursor and offset after the list changed.
func (r *Renderer) Refresh() { r.clamp() }

func (r *Renderer) clamp() {
	count := r.list.ItemCount()
	if r.cursor >= count {
		r.cursor = count - 1
	}
	if r.cursor < 0 {
		r.cursor = 0
	}

	if r.height <= 0 {
		return
	}
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if r.cursor >= r.offset+r.height {
		r.offset = r.cursor - r.height + 1
	}
	maxOffset := max(count-r.height, 0)
	r.offset = min(max(r.offset, 0), maxOffset)
}

// View renders the visible window.
func (r *Renderer) View() string {
	count := r.list.ItemCount()
	if count == 0 {
		return r.emptyText
	}

	height := r.height
	if height <= 0 {
		height = 20 // before the first WindowSizeMsg
	}
	end := min(r.offset+height, count)

	lines := make([]string, 0, end-r.offset)
	for i := r.offset; i < end; i++ {
		lines = append(lines, r.list.RenderItem(i, i == r.cursor, r.width))
	}

	r.viewport.SetContent(strings.Join(lines, "\n"))
	r.viewport.GotoTop()
	return r.viewport.View()
}
