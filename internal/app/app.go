package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/notequarry/notequarry/internal/bridge"
	"github.com/notequarry/notequarry/internal/journal"
	"github.com/notequarry/notequarry/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Password   string
	Seed       bool
}

// Run bootstraps the bridge, the reference backend, and the Bubble Tea
// program, and blocks until the UI closes.
func Run(cfg Config) error {
	br := bridge.New()
	defer br.Close()

	store := journal.NewStore()
	if cfg.Seed {
		journal.Seed(store, time.Now())
	}
	backend := journal.New(br, store, cfg.Password)
	backend.Start()

	model := ui.NewModel(br, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()

	br.Close()
	backend.Wait()

	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
