package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashdeck/internal/ui/theme"
)

// minBarWidth keeps the bar visible even when the label and percent eat
// most of the available width.
const minBarWidth = 4

// ProgressBar renders a horizontal bar filled to Percent (0..1), with an
// optional leading label and trailing percentage.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar builds a progress bar sized to width.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar. The fill is clamped so a Percent outside 0..1
// never over- or under-draws.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(theme.Body.Render(p.Label))
		b.WriteString("  ")
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}
	barWidth := p.Width - lipgloss.Width(b.String()) - percentWidth
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	b.WriteString(theme.ProgressFilled.Render(strings.Repeat(" ", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		percent := lipgloss.NewStyle().Foreground(theme.TextDim)
		b.WriteString(percent.Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}
	return b.String()
}
