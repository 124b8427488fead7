package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/crashwatch/internal/config"
	"github.com/san-kum/crashwatch/internal/engine"
	"github.com/san-kum/crashwatch/internal/synth"
)

func replayModel(t *testing.T) model {
	t.Helper()

	prices := synth.CSDRamp(120, 60, 100, 0.4, 0.85, 1.0, 2)
	cfg := &config.Config{DetrendBandwidth: 10, CSDWindow: 20, TauLookback: 30}

	analysis, err := engine.RunCSD(prices, cfg)
	require.NoError(t, err)

	return NewReplay(prices, analysis, cfg.TauLookback).(model)
}

func TestReplayAdvancesOnTick(t *testing.T) {
	m := replayModel(t)
	start := m.cursor

	next, _ := m.Update(tickMsg{})
	assert.Equal(t, start+1, next.(model).cursor)
}

func TestReplayPauseStopsAdvance(t *testing.T) {
	m := replayModel(t)

	paused, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	next, _ := paused.(model).Update(tickMsg{})

	assert.Equal(t, paused.(model).cursor, next.(model).cursor)
	assert.True(t, next.(model).paused)
}

func TestReplayStepKeys(t *testing.T) {
	m := replayModel(t)
	m.cursor = 50

	right, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 51, right.(model).cursor)

	left, _ := right.(model).Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 50, left.(model).cursor)
}

func TestReplayCursorStaysInRange(t *testing.T) {
	m := replayModel(t)
	m.cursor = len(m.prices)

	next, _ := m.Update(tickMsg{})
	assert.Equal(t, len(m.prices), next.(model).cursor)

	m.cursor = 1
	back, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, back.(model).cursor)
}

func TestReplayViewRenders(t *testing.T) {
	m := replayModel(t)
	m.cursor = 100

	view := m.View()
	assert.Contains(t, view, "crashwatch replay")
	assert.Contains(t, view, "status")
	assert.Contains(t, view, "AR(1)")
}

func TestReplayQuit(t *testing.T) {
	m := replayModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}