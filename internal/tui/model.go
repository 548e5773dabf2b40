package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/siqnastee/internal/metrics"
	"github.com/san-kum/siqnastee/internal/sketch"
)

const (
	footerLines     = 1
	graphHeight     = 6
	historyCapacity = 240
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49"))
)

type TickMsg time.Time

// Model is the bubbletea model of the terminal frontend. The grid is built
// on the first WindowSizeMsg and keeps that geometry afterwards.
type Model struct {
	opts          sketch.Options
	fps           int
	sketch        *sketch.Sketch
	canvas        *canvas
	width, height int
	history       []float64
	coverage      *metrics.Coverage
	rate          *metrics.TouchRate
	showGraph     bool
	frames        int
}

func NewModel(opts sketch.Options, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	// a terminal cell is the grid unit
	opts.CellWidth, opts.CellHeight = 1, 1
	return Model{
		opts:     opts,
		fps:      fps,
		history:  make([]float64, 0, historyCapacity),
		coverage: metrics.NewCoverage(),
		rate:     metrics.NewTouchRate(),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "g":
			m.showGraph = !m.showGraph
		}
	case tea.WindowSizeMsg:
		if m.sketch == nil {
			m.width, m.height = msg.Width, msg.Height
			rows := msg.Height - footerLines
			if rows < 0 {
				rows = 0
			}
			m.sketch = sketch.New(m.opts, float32(msg.Width), float32(rows))
			m.canvas = newCanvas(msg.Width, rows)
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion && m.sketch != nil {
			m.sketch.PointerMoved(float32(msg.X)+0.5, float32(msg.Y)+0.5)
		}
	case TickMsg:
		m.frames++
		if m.sketch != nil {
			m.coverage.Observe(m.sketch)
			m.rate.Observe(m.sketch)
			m.record(float64(m.sketch.TouchedCount()))
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) record(v float64) {
	if len(m.history) == historyCapacity {
		copy(m.history, m.history[1:])
		m.history = m.history[:historyCapacity-1]
	}
	m.history = append(m.history, v)
}

// Sketch returns the running sketch, nil before the terminal size is known.
func (m Model) Sketch() *sketch.Sketch {
	return m.sketch
}

func (m Model) View() string {
	if m.sketch == nil {
		return "waiting for terminal size..."
	}

	sketch.Replay(m.sketch.Render(), m.canvas)

	rows := m.canvas.height
	var graph string
	if m.showGraph && len(m.history) > 0 {
		graph = graphStyle.Render(asciigraph.Plot(m.history,
			asciigraph.Height(graphHeight-1),
			asciigraph.Width(max(m.width-12, 10)),
			asciigraph.Caption("touched cells")))
		rows -= lipgloss.Height(graph)
	}

	var b strings.Builder
	for _, line := range m.canvas.Lines(max(rows, 0)) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if graph != "" {
		b.WriteString(graph)
		b.WriteByte('\n')
	}
	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	g := m.sketch.Grid()
	return statusStyle.Render(fmt.Sprintf("%dx%d ", g.Cols, g.Rows)) +
		statusStyle.Render("touched ") + valueStyle.Render(fmt.Sprintf("%d/%d", m.sketch.TouchedCount(), g.Len())) +
		statusStyle.Render(fmt.Sprintf(" (%.1f%%)  %.1f moves/frame", 100*m.coverage.Value(), m.rate.Value())) +
		statusStyle.Render(fmt.Sprintf("  %s/%s  ", m.opts.Policy, m.opts.Touch)) +
		helpStyle.Render("[g] graph  [q] quit")
}
