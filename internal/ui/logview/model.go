package logview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/theme"
)

// EditRequestMsg is sent when the user asks to edit the selected meal.
type EditRequestMsg struct {
	MealID string
}

// DeleteConfirmedMsg is sent after the user confirms deletion of a meal.
type DeleteConfirmedMsg struct {
	MealID string
}

// Model is the daily log view: the selected day's meals grouped by meal type
// in fixed order, with cursor selection and a confirm-before-delete flow.
type Model struct {
	date   string
	meals  []model.Meal // flattened in display order
	cursor int

	// pendingDelete holds the meal id awaiting y/n confirmation.
	pendingDelete string

	width  int
	height int
}

// New creates a new daily log model.
func New(width, height int) Model {
	return Model{width: width, height: height}
}

// SetData replaces the displayed day and its meals. Meals are regrouped by
// type in the fixed breakfast/lunch/dinner/snack order while keeping
// insertion order within each group.
func (m *Model) SetData(date string, meals []model.Meal) {
	m.date = date
	m.meals = m.meals[:0]
	for _, mt := range model.MealTypes {
		for _, meal := range meals {
			if meal.Type == mt {
				m.meals = append(m.meals, meal)
			}
		}
	}
	if m.cursor >= len(m.meals) {
		m.cursor = len(m.meals) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.pendingDelete = ""
}

// SetSize updates the view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedMeal returns the meal under the cursor.
func (m Model) SelectedMeal() (model.Meal, bool) {
	if len(m.meals) == 0 || m.cursor < 0 || m.cursor >= len(m.meals) {
		return model.Meal{}, false
	}
	return m.meals[m.cursor], true
}

// ConfirmPending reports whether a delete confirmation is being shown; the
// root model uses it to suppress global key handling.
func (m Model) ConfirmPending() bool {
	return m.pendingDelete != ""
}

// Update handles messages for the daily log view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.pendingDelete != "" {
		switch keyMsg.String() {
		case "y", "Y":
			id := m.pendingDelete
			m.pendingDelete = ""
			return m, func() tea.Msg { return DeleteConfirmedMsg{MealID: id} }
		default:
			m.pendingDelete = ""
			return m, nil
		}
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.meals)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "d":
		if meal, ok := m.SelectedMeal(); ok {
			m.pendingDelete = meal.ID
		}
	case "e", "enter":
		if meal, ok := m.SelectedMeal(); ok {
			id := meal.ID
			return m, func() tea.Msg { return EditRequestMsg{MealID: id} }
		}
	}

	return m, nil
}

// View renders the daily log grouped by meal type.
func (m Model) View() string {
	var b strings.Builder

	dateStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	b.WriteString(dateStyle.Render(displayDate(m.date)))
	b.WriteString("\n\n")

	idx := 0
	for _, mt := range model.MealTypes {
		b.WriteString(theme.MealTypeStyle(mt).Render(titleCase(mt)))
		b.WriteString("\n")

		empty := true
		for _, meal := range m.meals {
			if meal.Type != mt {
				continue
			}
			empty = false
			b.WriteString(m.renderMeal(meal, idx == m.cursor))
			b.WriteString("\n")
			idx++
		}
		if empty {
			b.WriteString(theme.EmptyStateStyle.Render(fmt.Sprintf("No %s logged yet", mt)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.pendingDelete != "" {
		confirm := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorRed).
			Render("Delete this meal? y/n")
		b.WriteString(confirm)
		b.WriteString("\n")
	}

	return theme.PanelStyle.Width(m.width - 2).Render(b.String())
}

// titleCase upper-cases the first letter of a meal type label.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderMeal renders a single meal row with its nutrient summary.
func (m Model) renderMeal(meal model.Meal, selected bool) string {
	name := meal.Name
	if meal.Quantity != 1 {
		name = fmt.Sprintf("%s ×%g", meal.Name, meal.Quantity)
	}

	summary := fmt.Sprintf(
		"%.0f cal · %.1fg protein · %.1fg carbs · %.1fg fat · %.1fg fiber",
		meal.Calories*meal.Quantity,
		meal.Protein*meal.Quantity,
		meal.Carbs*meal.Quantity,
		meal.Fat*meal.Quantity,
		meal.Fiber*meal.Quantity,
	)

	line := name + "  " + theme.HelpStyle.Render(summary)
	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// displayDate renders a day string for the section header.
func displayDate(date string) string {
	t, err := model.ParseDay(date)
	if err != nil {
		return date
	}
	return t.Format("Monday, January 2, 2006")
}
