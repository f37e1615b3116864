package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yumyum/internal/nutrition"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps a content area in a rounded border.
var PanelStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// EmptyStateStyle renders "nothing logged" placeholders.
var EmptyStateStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true).
	PaddingLeft(2)

// NutrientColor returns the accent color for a tracked nutrient, matching
// the trend chart palette (calories blue, protein red, fiber green).
func NutrientColor(nutrient string) lipgloss.AdaptiveColor {
	switch nutrient {
	case nutrition.NutrientCalories:
		return ColorBlue
	case nutrition.NutrientProtein:
		return ColorRed
	case nutrition.NutrientCarbs:
		return ColorOrange
	case nutrition.NutrientFat:
		return ColorYellow
	case nutrition.NutrientFiber:
		return ColorGreen
	default:
		return ColorGray
	}
}

// GoalStatusStyle returns a color-coded style for a goal status: green while
// under, yellow when near the goal, red once over it.
func GoalStatusStyle(status nutrition.GoalStatus) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch status {
	case nutrition.StatusOver:
		return base.Foreground(ColorRed)
	case nutrition.StatusNear:
		return base.Foreground(ColorYellow)
	default:
		return base.Foreground(ColorGreen)
	}
}

// MealTypeStyle returns a color-coded style for the given meal type label.
func MealTypeStyle(mealType string) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch mealType {
	case "breakfast":
		return base.Foreground(ColorYellow)
	case "lunch":
		return base.Foreground(ColorGreen)
	case "dinner":
		return base.Foreground(ColorMagenta)
	case "snack":
		return base.Foreground(ColorBlue)
	default:
		return base.Foreground(ColorGray)
	}
}
