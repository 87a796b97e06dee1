// Package plugin resolves column renderer names to render functions.
//
// A Registry is created empty with NewRegistry, populated with Register and
// queried with Lookup. Builtins returns one holding the standard renderers.
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/virgo47/javasimon/pkg/settings"
	"github.com/virgo47/javasimon/pkg/treetable"
)

// Factory builds the render function for one column.
type Factory func(col treetable.Column) treetable.RenderFunc

// ErrDuplicate is returned when a name is registered twice.
var ErrDuplicate = errors.New("renderer already registered")

// UnknownRendererError reports a column naming a renderer that is not registered.
type UnknownRendererError struct {
	Column   string
	Renderer string
}

// Error implements the error interface.
func (e *UnknownRendererError) Error() string {
	return fmt.Sprintf("column %q: unknown renderer %q", e.Column, e.Renderer)
}

// Registry maps renderer names to factories. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds f under name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" || f == nil {
		return errors.New("renderer needs a name and a factory")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return errors.Wrapf(ErrDuplicate, "%s", name)
	}
	r.factories[name] = f
	return nil
}

// Lookup returns the factory registered under name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Columns resolves specs into a column model. An empty renderer name means
// the default text renderer.
func Columns(r *Registry, specs []settings.ColumnSpec) (treetable.Columns, error) {
	cols := make([]treetable.Column, len(specs))
	for i, spec := range specs {
		col := treetable.Column{
			Title:    spec.Title,
			Field:    spec.Field,
			StyleTag: spec.Style,
		}
		if spec.Renderer != "" {
			f, ok := r.Lookup(spec.Renderer)
			if !ok {
				return nil, &UnknownRendererError{Column: spec.Title, Renderer: spec.Renderer}
			}
			col.Render = f(col)
		}
		cols[i] = col
	}
	return treetable.NewColumns(cols...)
}
