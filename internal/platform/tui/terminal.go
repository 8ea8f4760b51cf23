package tui

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy/internal/registry"
)

// ID is the registry name of the local terminal frontend.
const ID = "terminal"

func init() {
	registry.Register(ID, func() registry.Frontend { return &Frontend{} })
}

// Frontend runs the game in the current terminal.
type Frontend struct{}

// ID returns the registry name.
func (f *Frontend) ID() string { return ID }

// Title returns a description for listings.
func (f *Frontend) Title() string { return "Terminal (Bubble Tea, half-block graphics)" }

// Run starts the Bubble Tea program and blocks until the player quits or ctx
// is cancelled.
func (f *Frontend) Run(ctx context.Context, opts registry.Options) error {
	if opts.Images == nil {
		return errors.New("tui: no images")
	}

	cols, rows := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols, rows = w, h
	}

	model := NewModel(opts, cols, rows, lipgloss.DefaultRenderer())
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
