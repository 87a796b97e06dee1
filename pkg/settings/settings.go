// Package settings holds tree-table configuration: a tagged value model with a
// deep merge, the glyph table and column specifications.
//
// Settings are built in layers. Defaults are embedded; callers merge presets
// and user override files on top with Load:
//
//	overrides, err := settings.ReadFile("calltree.yaml")
//	if err != nil {
//	    return err
//	}
//	doc, err := settings.Load(settings.CallTreePreset(), overrides)
//
// Mappings merge key by key and sequences concatenate, so columns from an
// override file are appended after the preset's columns.
package settings

import (
	"embed"
	"os"
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// fieldPattern accepts plain payload keys.
var fieldPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.-]*$`)

// ColumnSpec is the declarative form of a column.
type ColumnSpec struct {
	Title    string `yaml:"title" json:"title"`
	Field    string `yaml:"field" json:"field"`
	Style    string `yaml:"style,omitempty" json:"style,omitempty"`
	Renderer string `yaml:"renderer,omitempty" json:"renderer,omitempty"`
}

// Validate checks that the column has a title and a usable field.
func (c ColumnSpec) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.Field,
			validation.Required,
			validation.Match(fieldPattern).Error("must be a plain field name"),
		),
	)
}

// Validate checks that every glyph is configured.
func (g Glyphs) Validate() error {
	missing := g.Missing()
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, t := range missing {
		names[i] = string(t)
	}
	return errors.Newf("missing glyphs: %s", strings.Join(names, ", "))
}

// Document is the effective configuration of a tree table.
type Document struct {
	Glyphs  Glyphs       `yaml:"glyphs" json:"glyphs"`
	Columns []ColumnSpec `yaml:"columns" json:"columns"`
}

// Validate checks the glyph table and every column.
func (d Document) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Glyphs),
		validation.Field(&d.Columns),
	)
}

// Defaults returns a fresh copy of the embedded base settings.
func Defaults() Map {
	return mustEmbedded("config/defaults.yaml")
}

// CallTreePreset returns the column layer for stopwatch call trees.
func CallTreePreset() Map {
	return mustEmbedded("config/calltree.yaml")
}

// DefaultGlyphs returns the embedded glyph table.
func DefaultGlyphs() Glyphs {
	doc, err := Load()
	if err != nil {
		panic(errors.Wrap(err, "embedded settings"))
	}
	return doc.Glyphs
}

func mustEmbedded(name string) Map {
	data, err := configFiles.ReadFile(name)
	if err != nil {
		panic(errors.Wrapf(err, "read %s", name))
	}
	m, err := Parse(data)
	if err != nil {
		panic(errors.Wrapf(err, "parse %s", name))
	}
	return m
}

// Parse decodes a YAML (or JSON) settings layer.
func Parse(data []byte) (Map, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "decode settings")
	}
	if raw == nil {
		return Map{}, nil
	}
	return FromMap(raw)
}

// ReadFile reads a settings layer from disk.
func ReadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read settings %s", path)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "settings %s", path)
	}
	return m, nil
}

// Load merges layers over the defaults, in order, and decodes the result.
func Load(layers ...Map) (Document, error) {
	merged := Defaults()
	for _, layer := range layers {
		merged = Merge(merged, layer, true)
	}
	return Decode(merged)
}

// Decode converts a merged Map into a validated Document.
func Decode(m Map) (Document, error) {
	data, err := yaml.Marshal(m.Any())
	if err != nil {
		return Document{}, errors.Wrap(err, "encode settings")
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, errors.Wrap(err, "decode settings")
	}
	if err := doc.Validate(); err != nil {
		return Document{}, errors.Wrap(err, "invalid settings")
	}
	return doc, nil
}
