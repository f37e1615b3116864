package app

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/yumyum/internal/estimator"
	"github.com/nhle/yumyum/internal/keys"
	"github.com/nhle/yumyum/internal/meallog"
	"github.com/nhle/yumyum/internal/model"
	"github.com/nhle/yumyum/internal/nutrition"
	"github.com/nhle/yumyum/internal/ui"
	"github.com/nhle/yumyum/internal/ui/calculator"
	"github.com/nhle/yumyum/internal/ui/dashboard"
	helpview "github.com/nhle/yumyum/internal/ui/help"
	"github.com/nhle/yumyum/internal/ui/logview"
	"github.com/nhle/yumyum/internal/ui/mealform"
	"github.com/nhle/yumyum/internal/ui/trend"
)

// trendWindowDays is the size of the progress chart window.
const trendWindowDays = 7

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewLog
	ViewProgress
	ViewMealForm
	ViewCalculator
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing, the selected
// date, and the meal lifecycle. All displayed aggregates are recomputed from
// the controller's collection in one place (refreshViews), exactly once per
// mutation or date change.
type Model struct {
	currentView  ViewState
	previousView ViewState
	layout       ui.Layout
	controller   *meallog.Controller
	keys         *keys.KeyMap

	// selectedDate is the day the dashboard and log display.
	selectedDate time.Time

	dashboardView dashboard.Model
	logView       logview.Model
	trendView     trend.Model
	mealFormView  mealform.Model
	calcView      calculator.Model
	helpView      helpview.Model

	ready        bool
	errorMessage string
}

// New creates the root application model.
func New(ctrl *meallog.Controller, est *estimator.Estimator) Model {
	km := keys.DefaultKeyMap()

	m := Model{
		currentView:   ViewDashboard,
		controller:    ctrl,
		keys:          km,
		selectedDate:  time.Now(),
		dashboardView: dashboard.New(80, 24),
		logView:       logview.New(80, 24),
		trendView:     trend.New(80, 24),
		mealFormView:  mealform.New(80, 24),
		calcView:      calculator.New(est, 80, 24),
		helpView:      helpview.New(km, 80, 24),
	}
	m.refreshViews()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// refreshViews recomputes every derived view from the authoritative meal
// collection. This is the single recomputation point: each mutation and
// each date change funnels through here once.
func (m *Model) refreshViews() {
	meals := m.controller.Meals()
	date := model.FormatDay(m.selectedDate)

	m.dashboardView.SetData(date, nutrition.DailyTotals(meals, date))
	m.logView.SetData(date, m.controller.MealsForDate(date))

	window := nutrition.LastNDays(time.Now(), trendWindowDays)
	m.trendView.SetSeries(nutrition.RangeSeries(meals, window))
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.dashboardView.SetSize(contentWidth, contentHeight)
		m.logView.SetSize(contentWidth, contentHeight)
		m.trendView.SetSize(contentWidth, contentHeight)
		m.mealFormView.SetSize(contentWidth, contentHeight)
		m.calcView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		// Forward to the active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case mealform.MealSubmittedMsg:
		return m.handleMealSubmit(msg)

	case mealform.MealFormCancelMsg:
		m.controller.Cancel()
		m.currentView = m.previousView
		return m, nil

	case logview.EditRequestMsg:
		meal, err := m.controller.BeginEdit(msg.MealID)
		if err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.previousView = m.currentView
		m.currentView = ViewMealForm
		m.errorMessage = ""
		return m, m.mealFormView.StartEdit(meal)

	case logview.DeleteConfirmedMsg:
		if err := m.controller.Delete(context.Background(), msg.MealID); err != nil {
			m.errorMessage = err.Error()
			return m, nil
		}
		m.errorMessage = ""
		m.refreshViews()
		return m, nil

	case calculator.ResultMsg:
		var cmd tea.Cmd
		m.calcView, cmd = m.calcView.Update(msg)
		return m, cmd

	case calculator.CopyToMealMsg:
		m.calcView.Reset()
		m.controller.BeginAdd()
		m.previousView = ViewDashboard
		m.currentView = ViewMealForm
		n := msg.Nutrition
		return m, m.mealFormView.StartCreate(&n)

	case calculator.CloseMsg:
		m.calcView.Reset()
		m.currentView = m.previousView
		return m, nil

	case tea.KeyMsg:
		if newModel, cmd, handled := m.handleGlobalKeys(msg); handled {
			return newModel, cmd
		}
	}

	// Delegate to the active sub-view.
	return m.updateActiveView(msg)
}

// handleMealSubmit commits an add or edit session and refreshes the derived
// views exactly once.
func (m Model) handleMealSubmit(msg mealform.MealSubmittedMsg) (tea.Model, tea.Cmd) {
	_, err := m.controller.Commit(
		context.Background(),
		msg.Fields,
		model.FormatDay(m.selectedDate),
	)
	if err != nil {
		// Bad input never touches the store. The form is gone at this
		// point, so end the session and surface the error instead.
		m.errorMessage = err.Error()
		m.controller.Cancel()
		m.currentView = m.previousView
		return m, nil
	}

	m.errorMessage = ""
	m.currentView = m.previousView
	m.refreshViews()
	return m, nil
}

// handleGlobalKeys processes keys that apply regardless of (or across) the
// active view. The third result reports whether the key was consumed.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	// Text-entry views own their keys entirely.
	if m.currentView == ViewMealForm || m.currentView == ViewCalculator {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit, true
		}
		return m, nil, false
	}
	// While a delete confirmation is showing, the log view owns the keys.
	if m.currentView == ViewLog && m.logView.ConfirmPending() {
		return m, nil, false
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true

	case "q":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		return m, tea.Quit, true

	case "?":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		m.previousView = m.currentView
		m.currentView = ViewHelp
		return m, nil, true

	case "esc":
		if m.currentView == ViewHelp {
			m.currentView = m.previousView
			return m, nil, true
		}
		return m, nil, false

	case "1":
		m.currentView = ViewDashboard
		return m, nil, true

	case "2":
		m.currentView = ViewLog
		return m, nil, true

	case "3":
		m.currentView = ViewProgress
		return m, nil, true

	case "h", "left":
		if m.currentView == ViewDashboard || m.currentView == ViewLog {
			m.selectedDate = m.selectedDate.AddDate(0, 0, -1)
			m.refreshViews()
			return m, nil, true
		}

	case "l", "right":
		if m.currentView == ViewDashboard || m.currentView == ViewLog {
			m.selectedDate = m.selectedDate.AddDate(0, 0, 1)
			m.refreshViews()
			return m, nil, true
		}

	case "t":
		if m.currentView == ViewDashboard || m.currentView == ViewLog {
			m.selectedDate = time.Now()
			m.refreshViews()
			return m, nil, true
		}

	case "n":
		if m.currentView == ViewDashboard || m.currentView == ViewLog {
			m.controller.BeginAdd()
			m.previousView = m.currentView
			m.currentView = ViewMealForm
			m.errorMessage = ""
			return m, m.mealFormView.StartCreate(nil), true
		}

	case "a":
		if m.currentView == ViewDashboard || m.currentView == ViewLog {
			m.previousView = m.currentView
			m.currentView = ViewCalculator
			return m, m.calcView.Focus(), true
		}
	}

	return m, nil, false
}

// updateActiveView dispatches the message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewDashboard:
		m.dashboardView, cmd = m.dashboardView.Update(msg)
	case ViewLog:
		m.logView, cmd = m.logView.Update(msg)
	case ViewProgress:
		m.trendView, cmd = m.trendView.Update(msg)
	case ViewMealForm:
		m.mealFormView, cmd = m.mealFormView.Update(msg)
	case ViewCalculator:
		m.calcView, cmd = m.calcView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Yumyum", m.tabStrip())
	content := m.renderContent()
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the current active view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewLog:
		return m.logView.View()
	case ViewProgress:
		return m.trendView.View()
	case ViewMealForm:
		return m.mealFormView.View()
	case ViewCalculator:
		return m.calcView.View()
	case ViewHelp:
		return m.helpView.View()
	default:
		return ""
	}
}

// tabStrip renders the header tab indicator with the active tab marked.
func (m Model) tabStrip() string {
	tabs := []struct {
		view  ViewState
		label string
	}{
		{ViewDashboard, "1 dashboard"},
		{ViewLog, "2 log"},
		{ViewProgress, "3 progress"},
	}

	out := ""
	for i, t := range tabs {
		if i > 0 {
			out += " | "
		}
		if t.view == m.currentView {
			out += fmt.Sprintf("[%s]", t.label)
		} else {
			out += t.label
		}
	}
	return out
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	// Show the last error prominently when present.
	if m.errorMessage != "" && m.currentView != ViewMealForm {
		return m.errorMessage
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewMealForm:
		return "enter submit | esc cancel"
	case ViewCalculator:
		return "enter estimate | ctrl+y copy to meal | esc close"
	case ViewLog:
		if m.logView.ConfirmPending() {
			return "y confirm delete | any other key cancels"
		}
		return "j/k move | e edit | d delete | n new | h/l day | t today | 1/3 tabs"
	case ViewProgress:
		return "1/2 tabs | q quit | ? help"
	default:
		return "n new meal | a calculator | h/l day | t today | 2/3 tabs | q quit | ? help"
	}
}
