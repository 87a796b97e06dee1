// Package config reads the environment shared by the calltree binaries and
// assembles a tree table from it.
package config

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/virgo47/javasimon/pkg/plugin"
	"github.com/virgo47/javasimon/pkg/settings"
	"github.com/virgo47/javasimon/pkg/treetable"
)

// DefaultTableID prefixes node ids when CALLTREE_TABLE_ID is unset.
const DefaultTableID = "callTree"

type Config struct {
	SettingsPath string // YAML override layer, optional
	TableID      string
	LogDir       string
	Debug        bool
}

func Load() *Config {
	return &Config{
		SettingsPath: getEnv("CALLTREE_SETTINGS", ""),
		TableID:      getEnv("CALLTREE_TABLE_ID", DefaultTableID),
		LogDir:       getEnv("CALLTREE_LOG_DIR", ""),
		Debug:        isTrue(getEnv("CALLTREE_DEBUG", "false")),
	}
}

// Document returns the effective settings: defaults, the call-tree column
// preset, then the override file if one is configured.
func (c *Config) Document() (settings.Document, error) {
	layers := []settings.Map{settings.CallTreePreset()}
	if c.SettingsPath != "" {
		overrides, err := settings.ReadFile(c.SettingsPath)
		if err != nil {
			return settings.Document{}, err
		}
		layers = append(layers, overrides)
	}
	return settings.Load(layers...)
}

// NewTable builds an empty table from the effective settings using the
// builtin renderers.
func (c *Config) NewTable() (*treetable.Table, error) {
	doc, err := c.Document()
	if err != nil {
		return nil, err
	}
	cols, err := plugin.Columns(plugin.Builtins(), doc.Columns)
	if err != nil {
		return nil, errors.Wrap(err, "columns")
	}
	return treetable.New(c.TableID, cols, treetable.WithGlyphs(doc.Glyphs)), nil
}

func isTrue(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
