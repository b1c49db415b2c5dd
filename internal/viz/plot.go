// Package viz renders run trajectories as terminal graphs.
package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/oscsim/internal/driver"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Plot renders the value and forcing series of a run as an ASCII graph
// with a metric footer.
func Plot(result *driver.Result, title string, width, height int) string {
	if len(result.Values) < 2 {
		return "not enough samples to plot"
	}

	graph := asciigraph.PlotMany(
		[][]float64{result.Forcings, result.Values},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Silver, asciigraph.Green),
	)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")
	sb.WriteString(graph)
	sb.WriteString("\n")
	sb.WriteString(legendStyle.Render("forcing (silver)  value (green)"))
	sb.WriteString("\n")

	for name, v := range result.Metrics {
		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-14s", name)))
		sb.WriteString(valueStyle.Render(fmt.Sprintf("%.4f", v)))
		sb.WriteString("\n")
	}
	if result.Diverged {
		sb.WriteString(labelStyle.Render("run diverged (non-finite state)\n"))
	}

	return sb.String()
}

// Sparkline is a small single-series graph for run summaries.
func Sparkline(values []float64, width, height int) string {
	if len(values) < 2 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
	)
}
