package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jmtoutdoors/vallas/internal/analysis"
	"github.com/jmtoutdoors/vallas/internal/app"
	"github.com/jmtoutdoors/vallas/internal/config"
	"github.com/jmtoutdoors/vallas/internal/credentials"
	"github.com/jmtoutdoors/vallas/internal/favorites"
	"github.com/jmtoutdoors/vallas/internal/history"
	"github.com/jmtoutdoors/vallas/internal/inventory"
	"github.com/joho/godotenv"
)

func main() {
	// Local .env is optional; the keyring and real env still apply
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load config: %v (using defaults)\n", err)
		cfg = config.GetDefaults()
	}

	store, err := inventory.Load()
	if err != nil {
		log.Printf("Error loading inventory: %v\n", err)
		os.Exit(1)
	}

	requester := analysis.NewRequester(
		credentials.APIKey(),
		cfg.Analysis.Model,
		analysis.WithRecordCap(cfg.Analysis.RecordCap),
	)

	configDir, dirErr := config.GetConfigPath()
	if dirErr == nil {
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			dirErr = err
		}
	}

	var historyStore *history.Store
	if cfg.History.Enabled && dirErr == nil {
		historyStore, err = history.NewStore(filepath.Join(configDir, "history.db"))
		if err != nil {
			log.Printf("Warning: analysis history disabled: %v\n", err)
			historyStore = nil
		}
	}
	if historyStore != nil {
		defer func() { _ = historyStore.Close() }()
		if cfg.History.MaxEntries > 0 {
			_ = historyStore.Prune(cfg.History.MaxEntries)
		}
	}

	var bookmarks *favorites.Manager
	if dirErr == nil {
		bookmarks, err = favorites.NewManager(configDir)
		if err != nil {
			log.Printf("Warning: bookmarks disabled: %v\n", err)
			bookmarks = nil
		}
	}

	application := app.New(cfg, store, requester, historyStore, bookmarks)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.MouseEnabled {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(application, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
