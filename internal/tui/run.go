package tui

import (
	"fmt"

	"github.com/blackwell-systems/bookshelf/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the bookshelf screen and blocks until the user quits.
func Run(s *store.Store, opts Options) error {
	var programOpts []tea.ProgramOption
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(New(s, opts), programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
