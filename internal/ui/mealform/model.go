package mealform

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yumyum/internal/estimator"
	"github.com/nhle/yumyum/internal/meallog"
	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/theme"
)

// MealSubmittedMsg is dispatched when the form completes. EditID is empty
// for a new meal.
type MealSubmittedMsg struct {
	Fields meallog.Fields
	EditID string
}

// MealFormCancelMsg is dispatched when the user cancels the form.
type MealFormCancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies. Numeric fields are
// strings on purpose: unparsable input coerces to zero at submit, it never
// blocks the form.
type formBindings struct {
	name     string
	mealType string
	quantity string
	calories string
	protein  string
	carbs    string
	fat      string
	fiber    string
}

// Model is the Bubble Tea model for the meal create/edit form.
type Model struct {
	form   *huh.Form
	fb     *formBindings
	editID string
	width  int
	height int
}

// New creates a new meal form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{mealType: model.MealTypeBreakfast, quantity: "1"},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for logging a new meal. A non-nil
// prefill (from the ingredient calculator) populates the nutrient fields.
func (m *Model) StartCreate(prefill *estimator.Nutrition) tea.Cmd {
	m.editID = ""
	m.fb.name = ""
	m.fb.mealType = model.MealTypeBreakfast
	m.fb.quantity = "1"
	m.fb.calories = ""
	m.fb.protein = ""
	m.fb.carbs = ""
	m.fb.fat = ""
	m.fb.fiber = ""
	if prefill != nil {
		m.fb.calories = formatNum(prefill.Calories)
		m.fb.protein = formatNum(prefill.Protein)
		m.fb.carbs = formatNum(prefill.Carbs)
		m.fb.fat = formatNum(prefill.Fat)
		m.fb.fiber = formatNum(prefill.Fiber)
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form pre-populated from an existing meal.
func (m *Model) StartEdit(meal model.Meal) tea.Cmd {
	m.editID = meal.ID
	m.fb.name = meal.Name
	m.fb.mealType = meal.Type
	m.fb.quantity = formatNum(meal.Quantity)
	m.fb.calories = formatNum(meal.Calories)
	m.fb.protein = formatNum(meal.Protein)
	m.fb.carbs = formatNum(meal.Carbs)
	m.fb.fat = formatNum(meal.Fat)
	m.fb.fiber = formatNum(meal.Fiber)
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the meal form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return MealFormCancelMsg{} }
	}

	return m, cmd
}

// View renders the meal form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "Add Meal"
	if m.editID != "" {
		titleText = "Edit Meal"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	typeOpts := make([]huh.Option[string], len(model.MealTypes))
	for i, mt := range model.MealTypes {
		typeOpts[i] = huh.NewOption(strings.ToUpper(mt[:1])+mt[1:], mt)
	}

	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder("What did you eat?").
			Value(&m.fb.name).
			Validate(validateRequired("Name")),
		huh.NewSelect[string]().
			Title("Meal Type").
			Options(typeOpts...).
			Value(&m.fb.mealType),
		huh.NewInput().
			Title("Quantity").
			Placeholder("servings (default 1)").
			Value(&m.fb.quantity),
		huh.NewInput().Title("Calories").Value(&m.fb.calories),
		huh.NewInput().Title("Protein (g)").Value(&m.fb.protein),
		huh.NewInput().Title("Carbs (g)").Value(&m.fb.carbs),
		huh.NewInput().Title("Fat (g)").Value(&m.fb.fat),
		huh.NewInput().Title("Fiber (g)").Value(&m.fb.fiber),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	fields := meallog.Fields{
		Name:     m.fb.name,
		Type:     m.fb.mealType,
		Quantity: meallog.ParseAmount(m.fb.quantity),
		Calories: meallog.ParseAmount(m.fb.calories),
		Protein:  meallog.ParseAmount(m.fb.protein),
		Carbs:    meallog.ParseAmount(m.fb.carbs),
		Fat:      meallog.ParseAmount(m.fb.fat),
		Fiber:    meallog.ParseAmount(m.fb.fiber),
	}
	editID := m.editID

	return func() tea.Msg { return MealSubmittedMsg{Fields: fields, EditID: editID} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// formatNum renders a float without a trailing ".0" for whole values.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
