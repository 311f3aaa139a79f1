package live

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KiyoScript/scavenger-hunt/internal/flow"
)

// Run starts the interactive UI and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, machine flow.Machine, deps flow.Deps, opts Options, output io.Writer) error {
	model := NewModel(ctx, machine, deps, opts)
	program := tea.NewProgram(model, tea.WithOutput(output), tea.WithContext(ctx))
	_, err := program.Run()
	if errors.Is(err, context.Canceled) || errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
