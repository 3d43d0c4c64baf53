// Package tui implements the interactive terminal dashboard used by
// `carbonctl status --watch` on interactive terminals.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/carbonprofiling/carbonctl/internal/status"
)

// StatusMsg delivers a freshly collected platform status.
type StatusMsg struct {
	Status *status.PlatformStatus
}

// TickMsg drives the spinner and the "updated n ago" footer.
type TickMsg time.Time

// ErrMsg aborts the TUI with an error.
type ErrMsg struct {
	Err error
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Model is the Bubble Tea model for the status dashboard.
type Model struct {
	Namespace string
	Status    *status.PlatformStatus

	SpinnerFrame int
	LastUpdate   time.Time

	Width  int
	Height int
	Err    error
}

// NewModel creates a dashboard model for the given namespace.
func NewModel(namespace string) Model {
	return Model{Namespace: namespace}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StatusMsg:
		m.Status = msg.Status
		m.LastUpdate = time.Now()

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func currentSpinner(frame int) string {
	return spinnerFrames[frame%len(spinnerFrames)]
}
