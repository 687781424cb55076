package monitor

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/jobdash/internal/refresh"
)

// ViewMode defines the current display mode of the dashboard.
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// uiTickInterval is how often the dashboard wakes up. Each tick re-renders
// the age displays and lets the coordinator schedule any due refreshes;
// actual fetch frequency is governed by per-job intervals, not this rate.
const uiTickInterval = time.Second

// Model is the Bubble Tea model for the job dashboard.
type Model struct {
	coord    *refresh.Coordinator
	selected int
	width    int
	height   int
	lastTick time.Time
	quitting bool
	viewMode ViewMode
	showHelp bool

	// Detail view viewport for scrollable content
	detailViewport viewport.Model
	viewportReady  bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// NewModel creates a dashboard model over the given coordinator. The
// coordinator is driven exclusively from this model's Update loop.
func NewModel(coord *refresh.Coordinator) Model {
	return Model{coord: coord}
}

// Init fires an immediate first tick so the dashboard starts fetching
// without waiting a full tick interval.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Reserve space for header and footer around the viewport
		headerHeight := 3
		footerHeight := 2
		viewportHeight := m.height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.viewportReady {
			m.detailViewport = viewport.New(m.width, viewportHeight)
			m.detailViewport.YPosition = headerHeight
			m.viewportReady = true
		} else {
			m.detailViewport.Width = m.width
			m.detailViewport.Height = viewportHeight
		}

		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}

	case tickMsg:
		m.lastTick = time.Time(msg)
		m.coord.Tick(time.Now())
		m.clampSelection()
		if m.viewMode == ViewDetail {
			m.updateDetailViewportContent()
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}
	if m.viewMode == ViewDetail {
		return m.renderDetail()
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends the next tick.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.tickInterval(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// tickInterval is how long the UI may wait before the next scheduling pass:
// the fixed redraw cadence, shortened if any target refreshes faster.
func (m Model) tickInterval() time.Duration {
	interval := uiTickInterval
	if min := m.coord.MinInterval(); min < interval {
		interval = min
	}
	return interval
}

// SelectedTarget returns the currently selected job, or nil.
func (m Model) SelectedTarget() *refresh.Target {
	targets := m.coord.Targets()
	if m.selected >= 0 && m.selected < len(targets) {
		return targets[m.selected]
	}
	return nil
}

// clampSelection keeps the selection inside the registry after removals.
func (m *Model) clampSelection() {
	n := len(m.coord.Targets())
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// SecondsSinceTick returns how many seconds have passed since the last tick.
func (m Model) SecondsSinceTick() int {
	if m.lastTick.IsZero() {
		return 0
	}
	return int(time.Since(m.lastTick).Seconds())
}
