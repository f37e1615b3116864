package dashboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/nutrition"
	"github.com/nhle/yumyum/internal/theme"
)

const gaugeWidth = 30

// Model is the dashboard view: the selected day's totals rendered as one
// progress gauge per nutrient against the fixed daily goals.
type Model struct {
	date   string
	totals nutrition.Totals
	width  int
	height int
}

// New creates a new dashboard model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetData replaces the displayed day and its totals. The totals are derived
// by the caller from the authoritative meal collection; nothing is cached
// here beyond one render's worth of data.
func (m *Model) SetData(date string, totals nutrition.Totals) {
	m.date = date
	m.totals = totals
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the dashboard view. All keys of interest are
// global and handled by the root model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	var b strings.Builder

	dateStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	b.WriteString(dateStyle.Render(formatDisplayDate(m.date)))
	b.WriteString("\n\n")

	for _, nutrient := range nutrition.Nutrients {
		b.WriteString(m.renderGauge(nutrient))
		b.WriteString("\n\n")
	}

	return theme.PanelStyle.Width(m.width - 2).Render(b.String())
}

// renderGauge renders one nutrient's progress line: label, filled bar,
// current/goal amounts, and the remaining amount.
func (m Model) renderGauge(nutrient string) string {
	current, err := m.totals.Value(nutrient)
	if err != nil {
		return ""
	}
	goal, err := nutrition.GoalFor(nutrient)
	if err != nil {
		return ""
	}

	pct := nutrition.Percentage(current, goal)
	status := nutrition.Status(current, goal)

	filled := int(pct / 100 * gaugeWidth)
	if filled > gaugeWidth {
		filled = gaugeWidth
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.NutrientColor(nutrient))
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.ColorSubtle).Render(strings.Repeat("░", gaugeWidth-filled))

	label := lipgloss.NewStyle().
		Width(10).
		Foreground(theme.ColorWhite).
		Render(nutrient)

	amounts := theme.GoalStatusStyle(status).Render(
		fmt.Sprintf("%s / %s %s", formatAmount(current, nutrient), formatAmount(goal, nutrient), unitFor(nutrient)),
	)

	var tail string
	if status == nutrition.StatusOver {
		tail = theme.HelpStyle.Render("over goal")
	} else {
		tail = theme.HelpStyle.Render(
			fmt.Sprintf("%s %s left", formatAmount(nutrition.Remaining(current, goal), nutrient), unitFor(nutrient)),
		)
	}

	return fmt.Sprintf("%s %s  %s  %s", label, bar, amounts, tail)
}

// formatDisplayDate renders a day string for the header, e.g.
// "Friday, August 8, 2025". Unparsable input is shown as-is.
func formatDisplayDate(date string) string {
	t, err := model.ParseDay(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}

// formatAmount renders calories as whole numbers and gram nutrients with
// one decimal at most.
func formatAmount(v float64, nutrient string) string {
	if nutrient == nutrition.NutrientCalories {
		return fmt.Sprintf("%.0f", v)
	}
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}

// unitFor returns the display unit for a nutrient.
func unitFor(nutrient string) string {
	if nutrient == nutrition.NutrientCalories {
		return "cal"
	}
	return "g"
}
