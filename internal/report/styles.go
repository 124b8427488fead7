package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/crashwatch/internal/csd"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	statusStyles = map[csd.Status]lipgloss.Style{
		csd.StatusNormal:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")),
		csd.StatusRising:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffcc00")),
		csd.StatusElevated: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00")),
		csd.StatusCritical: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")),
	}

	alertStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))

	sparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
	sparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	sparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
)

// StatusBadge renders a colored status label.
func StatusBadge(status csd.Status) string {
	style, ok := statusStyles[status]
	if !ok {
		return string(status)
	}
	return style.Render(string(status))
}

// Sparkline renders a mini chart of the values at the given width.
// High values draw in red: the indicators here are risk measures.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return subtleStyle.Render(strings.Repeat("─", width))
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var b strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			b.WriteString(sparkHigh.Render(c))
		case norm > 0.3:
			b.WriteString(sparkMid.Render(c))
		default:
			b.WriteString(sparkLow.Render(c))
		}
	}
	return b.String()
}
