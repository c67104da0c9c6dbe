package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/wingscore/internal/config"
	"github.com/jask/wingscore/internal/sheet"
	"github.com/jask/wingscore/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logFile, err := setupLogging(cfg.Log)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	gameID := uuid.NewString()
	log.Printf("session start game=%s", gameID)

	p := tea.NewProgram(tui.New(cfg, sheet.NewStore(), gameID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends log output to a file, since the terminal belongs to the
// UI. With no file configured logging is discarded.
func setupLogging(cfg config.LogConfig) (*os.File, error) {
	path := cfg.Path
	if path == "" && cfg.Debug {
		path = filepath.Join(os.TempDir(), "wingscore.log")
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "wingscore")
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
