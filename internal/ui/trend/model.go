package trend

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/nutrition"
	"github.com/nhle/yumyum/internal/theme"
)

// chartNutrients are the series drawn in the trend view, matching the
// original chart's dataset selection.
var chartNutrients = []string{
	nutrition.NutrientCalories,
	nutrition.NutrientProtein,
	nutrition.NutrientFiber,
}

const barWidth = 28

// Model is the progress view: a last-7-days bar chart for calories, protein,
// and fiber, plus the per-nutrient averages over the window.
type Model struct {
	series []nutrition.DayTotals
	width  int
	height int
}

// New creates a new trend model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetSeries replaces the displayed series. Entries are expected in ascending
// chronological order and to cover the whole window, zero days included.
func (m *Model) SetSeries(series []nutrition.DayTotals) {
	m.series = series
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the trend view. Navigation is global.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the chart and the averages row.
func (m Model) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	b.WriteString(title.Render("Last 7 Days"))
	b.WriteString("\n\n")

	for _, nutrient := range chartNutrients {
		b.WriteString(m.renderSeries(nutrient))
		b.WriteString("\n")
	}

	b.WriteString(title.Render("Averages"))
	b.WriteString("\n")
	b.WriteString(m.renderAverages())

	return theme.PanelStyle.Width(m.width - 2).Render(b.String())
}

// renderSeries renders one nutrient's per-day bars, scaled to the largest
// value in the window.
func (m Model) renderSeries(nutrient string) string {
	var b strings.Builder

	label := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.NutrientColor(nutrient)).
		Render(nutrient)
	b.WriteString(label)
	b.WriteString("\n")

	max := 0.0
	for _, entry := range m.series {
		v, err := entry.Value(nutrient)
		if err != nil {
			return ""
		}
		if v > max {
			max = v
		}
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.NutrientColor(nutrient))
	for _, entry := range m.series {
		v, _ := entry.Value(nutrient)

		filled := 0
		if max > 0 {
			filled = int(v / max * barWidth)
		}
		bar := barStyle.Render(strings.Repeat("▇", filled))

		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			theme.HelpStyle.Render(shortDate(entry.Date)),
			bar,
			fmt.Sprintf("%.0f", v),
		))
	}

	return b.String()
}

// renderAverages renders the mean of each charted nutrient across every day
// in the window, empty days included.
func (m Model) renderAverages() string {
	var parts []string
	for _, nutrient := range chartNutrients {
		avg, err := nutrition.Average(m.series, nutrient)
		if err != nil {
			continue
		}
		part := lipgloss.NewStyle().
			Foreground(theme.NutrientColor(nutrient)).
			Render(fmt.Sprintf("%s %.0f", nutrient, avg))
		parts = append(parts, part)
	}
	return "  " + strings.Join(parts, "   ")
}

// shortDate renders a day string as "Aug 8" for axis labels.
func shortDate(date string) string {
	t, err := model.ParseDay(date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}
