package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbonprofiling/carbonctl/internal/status"
)

// Run displays the status dashboard, re-collecting with collect every
// interval until the user quits or ctx is canceled.
func Run(ctx context.Context, namespace string, interval time.Duration, collect func(context.Context) *status.PlatformStatus) error {
	m := NewModel(namespace)

	p := tea.NewProgram(m, tea.WithAltScreen())

	// Poll platform status in background
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		p.Send(StatusMsg{Status: collect(ctx)})

		for {
			select {
			case <-ctx.Done():
				p.Send(ErrMsg{Err: ctx.Err()})
				return
			case <-ticker.C:
				p.Send(StatusMsg{Status: collect(ctx)})
			}
		}
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil && fm.Err != context.Canceled {
		return fm.Err
	}
	return nil
}
