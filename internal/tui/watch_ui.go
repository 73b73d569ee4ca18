package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SaveFunc runs one save cycle and returns a one-line summary
type SaveFunc func() (string, error)

// watchStyles holds the lipgloss styles for the watch view
type watchStyles struct {
	spinnerStyle lipgloss.Style
	okStyle      lipgloss.Style
	errorStyle   lipgloss.Style
	dimStyle     lipgloss.Style
}

// WatchModel is the bubbletea model for watch mode
type WatchModel struct {
	spinner    spinner.Model
	interval   time.Duration
	saveFunc   SaveFunc
	lastResult string
	lastErr    error
	lastRun    time.Time
	saves      int
	saving     bool
	quitting   bool
	styles     watchStyles
}

// tickMsg fires when the next save interval elapses
type tickMsg time.Time

// saveDoneMsg is sent when a save cycle completes
type saveDoneMsg struct {
	summary string
	err     error
}

// NewWatchModel creates a new watch model that saves every interval
func NewWatchModel(interval time.Duration, saveFunc SaveFunc) WatchModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return WatchModel{
		spinner:  s,
		interval: interval,
		saveFunc: saveFunc,
		saving:   true, // Init kicks off the first save right away
		styles: watchStyles{
			spinnerStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
			okStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
			errorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			dimStyle:     lipgloss.NewStyle().Faint(true),
		},
	}
}

// Init starts the spinner and runs the first save immediately
func (m WatchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runSave())
}

// Update handles bubbletea messages
func (m WatchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		if m.saving {
			return m, nil
		}
		m.saving = true
		return m, m.runSave()

	case saveDoneMsg:
		m.saving = false
		m.saves++
		m.lastRun = time.Now()
		m.lastErr = msg.err
		m.lastResult = msg.summary
		return m, m.scheduleTick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the watch status line
func (m WatchModel) View() string {
	if m.quitting {
		return ""
	}

	var status string
	switch {
	case m.saving:
		status = "saving..."
	case m.lastErr != nil:
		status = m.styles.errorStyle.Render(fmt.Sprintf("last save failed: %v", m.lastErr))
	case m.lastResult != "":
		status = m.styles.okStyle.Render(m.lastResult)
	default:
		status = m.styles.dimStyle.Render("waiting for first save")
	}

	line := fmt.Sprintf("%s watching (every %s): %s", m.spinner.View(), m.interval, status)
	hint := m.styles.dimStyle.Render(fmt.Sprintf("  saves: %d, press q to quit", m.saves))
	return line + "\n" + hint + "\n"
}

// runSave executes one save cycle off the event loop
func (m WatchModel) runSave() tea.Cmd {
	saveFunc := m.saveFunc
	return func() tea.Msg {
		summary, err := saveFunc()
		return saveDoneMsg{summary: summary, err: err}
	}
}

// scheduleTick queues the next save interval
func (m WatchModel) scheduleTick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
