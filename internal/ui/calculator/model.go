package calculator

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/yumyum/internal/estimator"
	"github.com/nhle/yumyum/internal/theme"
)

// CloseMsg signals the parent to close the calculator panel.
type CloseMsg struct{}

// ResultMsg carries a finished nutrition estimate.
type ResultMsg struct {
	Nutrition estimator.Nutrition
}

// CopyToMealMsg signals the parent to open the meal form pre-filled with the
// last estimate.
type CopyToMealMsg struct {
	Nutrition estimator.Nutrition
}

// Model is the ingredient calculator panel: free-text ingredients in, a
// best-effort nutrition estimate out.
type Model struct {
	est     *estimator.Estimator
	input   textarea.Model
	spin    spinner.Model
	pending bool
	result  *estimator.Nutrition
	width   int
	height  int
}

// New creates a new calculator model.
func New(est *estimator.Estimator, width, height int) Model {
	ta := textarea.New()
	ta.Placeholder = "1 cup oats\n1 banana\n2 tbsp olive oil..."
	ta.Prompt = "> "
	ta.ShowLineNumbers = false
	ta.SetWidth(width - 4)
	ta.SetHeight(5)
	ta.CharLimit = 2000

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.ColorBlue)

	return Model{
		est:    est,
		input:  ta,
		spin:   sp,
		width:  width,
		height: height,
	}
}

// Focus prepares the panel for input.
func (m *Model) Focus() tea.Cmd {
	m.input.Focus()
	return textarea.Blink
}

// Reset clears the input and any previous result.
func (m *Model) Reset() {
	m.input.Reset()
	m.result = nil
	m.pending = false
}

// SetSize updates the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.SetWidth(width - 4)
}

// Update handles messages for the calculator panel.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		m.pending = false
		n := msg.Nutrition
		m.result = &n
		return m, nil

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg processes keyboard input for the calculator panel.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.pending {
			return m, nil
		}
		return m, func() tea.Msg { return CloseMsg{} }

	case "enter":
		if m.pending {
			return m, nil
		}
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.pending = true
		m.result = nil
		return m, tea.Batch(m.spin.Tick, m.estimate(text))

	case "ctrl+y":
		if m.result != nil {
			n := *m.result
			return m, func() tea.Msg { return CopyToMealMsg{Nutrition: n} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// estimate runs the estimator off the UI loop. Estimate never fails: any
// remote problem already fell back to the local table.
func (m Model) estimate(ingredients string) tea.Cmd {
	est := m.est
	return func() tea.Msg {
		return ResultMsg{Nutrition: est.Estimate(context.Background(), ingredients)}
	}
}

// View renders the calculator panel.
func (m Model) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	b.WriteString(titleStyle.Render("Ingredient Calculator"))
	b.WriteString("\n\n")
	b.WriteString(theme.HelpStyle.Render("One ingredient per line. enter estimate | ctrl+y copy to meal | esc close"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.pending:
		b.WriteString(m.spin.View() + " estimating...")
	case m.result != nil:
		b.WriteString(m.renderResult())
	}

	return theme.PanelStyle.Width(m.width - 2).Render(b.String())
}

// renderResult renders the estimate table.
func (m Model) renderResult() string {
	n := m.result
	rows := []struct {
		label string
		value string
	}{
		{"Calories", fmt.Sprintf("%.0f", n.Calories)},
		{"Protein", fmt.Sprintf("%.1fg", n.Protein)},
		{"Carbs", fmt.Sprintf("%.1fg", n.Carbs)},
		{"Fat", fmt.Sprintf("%.1fg", n.Fat)},
		{"Fiber", fmt.Sprintf("%.1fg", n.Fiber)},
	}

	var b strings.Builder
	labelStyle := lipgloss.NewStyle().Width(10).Foreground(theme.ColorGray)
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	for _, row := range rows {
		b.WriteString(labelStyle.Render(row.label))
		b.WriteString(valueStyle.Render(row.value))
		b.WriteString("\n")
	}
	return b.String()
}
