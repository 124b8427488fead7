// Package tui provides an interactive replay of an analyzed series:
// it steps through time and shows how the early-warning indicators
// evolved as each observation arrived.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/crashwatch/internal/csd"
	"github.com/san-kum/crashwatch/internal/engine"
	"github.com/san-kum/crashwatch/internal/report"
	"github.com/san-kum/crashwatch/internal/series"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	prices   series.Series
	analysis *engine.CSDResult
	lookback int

	cursor int
	paused bool
	width  int
}

// NewReplay builds the replay over a fully analyzed series. The
// indicators are precomputed once; replay only moves a cursor, so
// scrubbing backwards is free.
func NewReplay(prices series.Series, analysis *engine.CSDResult, lookback int) tea.Model {
	return model{
		prices:   prices,
		analysis: analysis,
		lookback: lookback,
		cursor:   1,
		width:    80,
	}
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "left", "h":
			if m.cursor > 1 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < len(m.prices) {
				m.cursor++
			}
		case "r":
			m.cursor = 1
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		if !m.paused && m.cursor < len(m.prices) {
			m.cursor++
		}
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render("crashwatch replay"))
	fmt.Fprintf(&b, "  %s\n\n", dim.Render(
		fmt.Sprintf("t=%d/%d", m.cursor, len(m.prices))))

	chartWidth := m.width - 10
	if chartWidth > 70 {
		chartWidth = 70
	}
	if chartWidth < 10 {
		chartWidth = 10
	}

	b.WriteString("  " + report.Sparkline(m.prices[:m.cursor], chartWidth) + "\n")
	b.WriteString("  " + dim.Render("price") + "\n\n")

	ar1 := m.analysis.AR1[:m.cursor]
	defined := ar1.Defined()
	if len(defined) > 0 {
		b.WriteString("  " + report.Sparkline(defined, chartWidth) + "\n")
		b.WriteString("  " + dim.Render("rolling AR(1)") + "\n\n")
	}

	current := ar1.LastDefined()
	tau, _ := csd.KendallTau(ar1, m.lookback)

	fmt.Fprintf(&b, "  %s %s   %s %s   %s %s\n\n",
		dim.Render("status"), report.StatusBadge(csd.Classify(current)),
		dim.Render("AR(1)"), white.Render(fmt.Sprintf("%.4f", current)),
		dim.Render("tau"), white.Render(fmt.Sprintf("%.3f", tau)))

	if vars := m.analysis.Variance[:m.cursor].Defined(); len(vars) > 0 {
		fmt.Fprintf(&b, "  %s %s\n\n",
			dim.Render("variance"), white.Render(fmt.Sprintf("%.6f", vars[len(vars)-1])))
	}

	state := "playing"
	if m.paused {
		state = yellow.Render("paused")
	}
	b.WriteString("  " + dim.Render("space pause · ←/→ step · r restart · q quit · ") + state + "\n")

	return b.String()
}

// Run starts the replay loop.
func Run(prices series.Series, analysis *engine.CSDResult, lookback int) error {
	p := tea.NewProgram(NewReplay(prices, analysis, lookback))
	_, err := p.Run()
	return err
}
