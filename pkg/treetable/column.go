package treetable

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Selector extracts a display value from a payload.
type Selector func(RawNode) any

// RenderFunc writes the content of one cell for n.
type RenderFunc func(n *TreeNode, out *Cell)

// Column describes one table column.
type Column struct {
	Title    string
	Field    string   // payload key read by the default selector
	Selector Selector // overrides Field when set
	StyleTag string
	Render   RenderFunc // DefaultRender when nil
}

// Validate requires a title, and a field unless a selector is given.
func (c Column) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Field, validation.When(c.Selector == nil, validation.Required)),
	)
}

// Value returns the display value of n for this column.
func (c Column) Value(n *TreeNode) any {
	if n == nil {
		return nil
	}
	if c.Selector != nil {
		return c.Selector(n.payload)
	}
	return n.payload.Get(c.Field)
}

// DefaultRender writes the column value as text unless it is empty, then
// applies the style tag.
func (c Column) DefaultRender(n *TreeNode, out *Cell) {
	if v := c.Value(n); !IsEmpty(v) {
		out.WriteText(FormatValue(v))
	}
	if c.StyleTag != "" {
		out.AddStyle(c.StyleTag)
	}
}

// IsEmpty reports whether v renders as nothing. Only nil and "" are empty;
// zero numbers and false are rendered.
func IsEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case json.Number:
		return x == ""
	default:
		return false
	}
}

// FormatValue converts a payload value to display text.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// Columns is an ordered, validated column list. It is not modified after
// NewColumns and may be shared between tables.
type Columns []Column

// NewColumns validates cols and returns a copy with default renderers filled in.
func NewColumns(cols ...Column) (Columns, error) {
	out := make(Columns, len(cols))
	for i, c := range cols {
		if err := c.Validate(); err != nil {
			return nil, errors.Wrapf(err, "column %d", i)
		}
		if c.Render == nil {
			c.Render = c.DefaultRender
		}
		out[i] = c
	}
	return out, nil
}

// Header returns the column titles in order.
func (cs Columns) Header() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Title
	}
	return out
}

// render produces the cells of n in column order.
func (cs Columns) render(n *TreeNode) []Cell {
	cells := make([]Cell, len(cs))
	for i, c := range cs {
		render := c.Render
		if render == nil {
			render = c.DefaultRender
		}
		render(n, &cells[i])
	}
	return cells
}
