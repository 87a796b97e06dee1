package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/virgo47/javasimon/internal/calltree"
	"github.com/virgo47/javasimon/internal/config"
	"github.com/virgo47/javasimon/internal/logger"
	"github.com/virgo47/javasimon/pkg/treetable"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	jsonOut      bool
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "calltreectl",
	Short: "Render stopwatch call trees as tree-tables",
	Long: `calltreectl reads call-tree JSON documents and renders them as
tree-tables with configurable columns, glyphs and expand/collapse state.

Settings come from the embedded defaults, then the file named by
CALLTREE_SETTINGS or --settings.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		return logger.Init(logger.Options{
			Enabled: cfg.Debug,
			Name:    "calltreectl",
			LogDir:  cfg.LogDir,
			Level:   slog.LevelDebug,
		})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&settingsPath, "settings", "", "YAML settings file (overrides CALLTREE_SETTINGS)")
}

func execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command. The log file is closed on failure too:
// cobra skips post-run hooks when a command returns an error.
func run() error {
	defer logger.Close()
	return rootCmd.Execute()
}

// loadConfig reads the environment and applies the --settings flag.
func loadConfig() *config.Config {
	cfg := config.Load()
	if settingsPath != "" {
		cfg.SettingsPath = settingsPath
	}
	return cfg
}

// openTable builds the configured table and loads the document at path into
// it. A document without a tree leaves the table empty.
func openTable(path string) (*treetable.Table, *calltree.Document, error) {
	cfg := loadConfig()
	printVerbose("Opening call tree: %s\n", path)

	table, err := cfg.NewTable()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load settings: %w", err)
	}

	doc, err := calltree.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open call tree: %w", err)
	}
	if !doc.HasTree() {
		return table, doc, nil
	}

	if err := table.SetData(doc.Root); err != nil {
		return nil, nil, fmt.Errorf("failed to build tree: %w", err)
	}
	printVerbose("Loaded %d nodes\n", table.Len())
	return table, doc, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
