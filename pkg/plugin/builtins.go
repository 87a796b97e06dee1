package plugin

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/virgo47/javasimon/pkg/treetable"
)

// Builtin renderer names.
const (
	Text     = "text"
	Percent  = "percent"
	Duration = "duration"
	Count    = "count"
)

// Builtins returns a registry holding the standard renderers:
//
//	text      the selected value as is
//	percent   12.5 -> "12.5%"
//	duration  nanoseconds -> "1.5ms"
//	count     12345 -> "12,345"
func Builtins() *Registry {
	r := NewRegistry()
	for name, f := range map[string]Factory{
		Text:     textRenderer,
		Percent:  numeric(formatPercent),
		Duration: numeric(formatDuration),
		Count:    numeric(formatCount),
	} {
		if err := r.Register(name, f); err != nil {
			panic(err)
		}
	}
	return r
}

func textRenderer(col treetable.Column) treetable.RenderFunc {
	return col.DefaultRender
}

// numeric renders the values format accepts and anything else as text.
func numeric(format func(v any) (string, bool)) Factory {
	return func(col treetable.Column) treetable.RenderFunc {
		return func(n *treetable.TreeNode, out *treetable.Cell) {
			text, ok := format(col.Value(n))
			if !ok {
				col.DefaultRender(n, out)
				return
			}
			out.WriteText(text)
			if col.StyleTag != "" {
				out.AddStyle(col.StyleTag)
			}
		}
	}
}

func printer() *message.Printer {
	return message.NewPrinter(language.English)
}

func formatPercent(v any) (string, bool) {
	f, ok := toFloat(v)
	if !ok {
		return "", false
	}
	return printer().Sprintf("%.1f%%", f), true
}

func formatCount(v any) (string, bool) {
	i, ok := toInt64(v)
	if !ok {
		return "", false
	}
	return printer().Sprintf("%d", i), true
}

func formatDuration(v any) (string, bool) {
	i, ok := toInt64(v)
	if !ok {
		return "", false
	}
	d := time.Duration(i)
	if d >= time.Millisecond || d <= -time.Millisecond {
		d = d.Round(time.Microsecond)
	}
	return d.String(), true
}

// toInt64 converts v to an integer, rounding fractions. Values outside the
// int64 range are rejected.
func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), uint64(x) <= math.MaxInt64
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), x <= math.MaxInt64
	}

	f, ok := toFloat(v)
	if !ok {
		return 0, false
	}
	f = math.Round(f)
	// -2^63 is representable, 2^63 is not.
	if math.IsNaN(f) || f < math.MinInt64 || f >= -math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
