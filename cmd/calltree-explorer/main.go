package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/virgo47/javasimon/internal/config"
	"github.com/virgo47/javasimon/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	args := os.Args[1:]
	debugMode := cfg.Debug

	filteredArgs := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "--debug" || arg == "-d" {
			debugMode = true
		} else {
			filteredArgs = append(filteredArgs, arg)
		}
	}

	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Name:    "calltree-explorer",
		LogDir:  cfg.LogDir,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	defer logger.Close()

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch filteredArgs[0] {
	case "--help", "-h":
		printHelp()
		os.Exit(0)
	case "--version", "-v":
		fmt.Printf("calltree-explorer %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		os.Exit(0)
	}

	path := filteredArgs[0]
	logger.Info("starting calltree-explorer", "path", path, "debug", debugMode)

	m, err := NewModel(cfg, path)
	if err != nil {
		logger.Error("failed to open call tree", "path", path, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	if model, ok := finalModel.(Model); ok {
		model.Close()
	}
	logger.Info("calltree-explorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: calltree-explorer [options] <calltree.json>\n")
	fmt.Fprintf(os.Stderr, "Try 'calltree-explorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("calltree-explorer - Interactive viewer for stopwatch call trees")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  calltree-explorer [options] <calltree.json>")
	fmt.Println()
	fmt.Println("  Navigation:")
	fmt.Println("    ↑/k, ↓/j    Move up/down")
	fmt.Println("    →/l         Expand node / go to first child")
	fmt.Println("    ←/h         Collapse node / go to parent")
	fmt.Println("    Enter       Toggle node")
	fmt.Println("    E, C        Expand all, collapse all")
	fmt.Println("    1-9         Expand to depth")
	fmt.Println("    y           Copy node id")
	fmt.Println("    r           Reload file")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Write a debug log")
	fmt.Println("  -h, --help     Show this help")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT:")
	fmt.Println("  CALLTREE_SETTINGS   YAML file overriding glyphs and columns")
	fmt.Println("  CALLTREE_TABLE_ID   Prefix of node ids (default callTree)")
	fmt.Println("  CALLTREE_LOG_DIR    Debug log directory")
	fmt.Println("  CALLTREE_DEBUG      Enable the debug log")
}
