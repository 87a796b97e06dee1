package treetable

import "slices"

// Cell collects the output of one column renderer.
type Cell struct {
	text   string
	styles []string
}

// WriteText appends s to the cell text.
func (c *Cell) WriteText(s string) {
	c.text += s
}

// Text returns the accumulated text.
func (c Cell) Text() string { return c.text }

// AddStyle adds a style tag once. Empty tags are ignored.
func (c *Cell) AddStyle(tag string) {
	if tag == "" || slices.Contains(c.styles, tag) {
		return
	}
	c.styles = append(c.styles, tag)
}

// Styles returns the style tags in the order they were added.
func (c Cell) Styles() []string { return c.styles }

// HasStyle reports whether tag was added.
func (c Cell) HasStyle(tag string) bool { return slices.Contains(c.styles, tag) }
