package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Help toggle
	Help key.Binding

	// Tabs
	TabDashboard key.Binding
	TabLog       key.Binding
	TabProgress  key.Binding

	// Date navigation
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding

	// Meal actions
	NewMeal    key.Binding
	EditMeal   key.Binding
	DeleteMeal key.Binding

	// Ingredient calculator
	Calculator key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		TabDashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		TabLog: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "daily log"),
		),
		TabProgress: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "progress"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		NewMeal: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "add meal"),
		),
		EditMeal: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit meal"),
		),
		DeleteMeal: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete meal"),
		),
		Calculator: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "ingredient calculator"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Up, k.Down, k.Select, k.Back,
		k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
		{k.TabDashboard, k.TabLog, k.TabProgress, k.Help},
		{k.PrevDay, k.NextDay, k.Today},
		{k.NewMeal, k.EditMeal, k.DeleteMeal, k.Calculator},
	}
}
