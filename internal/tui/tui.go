// Package tui provides a Bubble Tea terminal user interface for artstream.
package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quietloop/artstream/internal/config"
	"github.com/quietloop/artstream/internal/gallery"
	"github.com/quietloop/artstream/internal/model"
	"github.com/quietloop/artstream/internal/render"
)

// Styles for the TUI chrome around the rendered block.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFE66D"))
)

// State represents the current UI state.
type State int

const (
	StateLoading State = iota
	StateStreaming
	StateEmpty
	StateError
)

// minInterval is the floor for interactive interval adjustment.
const minInterval = 500 * time.Millisecond

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	settings *config.Settings

	records  []*model.Record
	current  *model.Record
	interval time.Duration
	paused   bool
	shown    int
	err      error

	// block renders records; its writer is never used from the TUI.
	block *render.Terminal

	width  int
	height int
}

// NewModel creates a new TUI model from resolved settings.
func NewModel(settings *config.Settings) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	return Model{
		state:    StateLoading,
		spinner:  sp,
		settings: settings,
		interval: settings.Interval(),
		block:    render.NewTerminal(io.Discard),
	}
}

// Init starts the spinner and kicks off the database load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadDatabase())
}

// Message types
type (
	// loadDoneMsg is sent when the database load completes.
	loadDoneMsg struct {
		records []*model.Record
		err     error
	}

	// tickMsg advances to the next record.
	tickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case " ":
			if m.state == StateStreaming {
				m.paused = !m.paused
			}

		case "n":
			if m.state == StateStreaming && len(m.records) > 0 {
				m.advance()
			}

		case "+", "=":
			if m.state == StateStreaming {
				m.interval += 500 * time.Millisecond
			}

		case "-":
			if m.state == StateStreaming {
				m.interval -= 500 * time.Millisecond
				if m.interval < minInterval {
					m.interval = minInterval
				}
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadDoneMsg:
		if msg.err != nil {
			m.state = StateError
			m.err = msg.err
			return m, nil
		}
		if len(msg.records) == 0 {
			m.state = StateEmpty
			return m, nil
		}
		m.records = msg.records
		m.state = StateStreaming
		m.advance()
		return m, m.tick()

	case tickMsg:
		if m.state != StateStreaming {
			return m, nil
		}
		if !m.paused {
			m.advance()
		}
		return m, m.tick()
	}

	return m, nil
}

// advance picks the next record uniformly at random, with replacement.
func (m *Model) advance() {
	m.current = m.records[rand.IntN(len(m.records))]
	m.shown++
}

// tick schedules the next rotation.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(_ time.Time) tea.Msg {
		return tickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("artstream"))
	b.WriteString("\n\n")

	switch m.state {
	case StateLoading:
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(dimStyle.Render("loading database..."))

	case StateEmpty:
		b.WriteString(dimStyle.Render("no entries available in the database"))

	case StateError:
		b.WriteString(errorStyle.Render("error loading database:"))
		b.WriteString("\n\n")
		if m.err != nil {
			b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
		}

	case StateStreaming:
		status := fmt.Sprintf("%d entries · every %s · #%d", len(m.records), m.interval, m.shown)
		if m.paused {
			status += " · " + pausedStyle.Render("PAUSED")
		}
		b.WriteString(dimStyle.Render(status))
		b.WriteString("\n\n")
		if m.current != nil {
			b.WriteString(m.block.Block(m.current))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateStreaming:
		return "space: pause · n: next · +/-: interval · q: quit"
	default:
		return "q: quit"
	}
}

// loadDatabase parses the configured database files off the UI goroutine.
func (m Model) loadDatabase() tea.Cmd {
	return func() tea.Msg {
		records, err := gallery.LoadFiles(context.Background(), m.settings.DatabasePaths, m.settings.MaxParallelLoads)
		return loadDoneMsg{records: records, err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
