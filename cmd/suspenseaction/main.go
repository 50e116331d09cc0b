package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/suspenseaction/internal/config"
	"github.com/jask/suspenseaction/internal/database"
	"github.com/jask/suspenseaction/internal/database/repository"
	"github.com/jask/suspenseaction/internal/service"
	"github.com/jask/suspenseaction/internal/tui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, closeLog, err := openLog(cfg.Log.Path)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer closeLog()

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if cfg.Database.Seed {
		if err := database.SeedDefaults(ctx, db); err != nil {
			log.Fatalf("seed defaults: %v", err)
		}
	}

	users := repository.NewUserRepo(db)
	greeter := &service.GreetingService{Users: users, Delay: cfg.UI.Delay}
	directory := &service.DirectoryService{Users: users, Delay: cfg.UI.Delay}

	app := tui.New(ctx,
		tui.Producers{Greet: greeter.Greet, Lookup: directory.Lookup},
		tui.Options{
			Fallback:          cfg.UI.Fallback,
			CancelOnSupersede: cfg.UI.CancelOnSupersede,
			InitialID:         cfg.UI.InitialID,
			Logger:            logger,
		},
	)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// openLog routes the standard logger to path and returns it for the
// coordinators. An empty path disables logging entirely; the terminal
// belongs to the TUI.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFile(path, "suspenseaction")
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}
