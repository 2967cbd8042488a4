package tui

import "github.com/charmbracelet/bubbles/key"

type appKeys struct {
	Quit      key.Binding
	ForceQuit key.Binding
	Suspend   key.Binding
}

func newAppKeys() appKeys {
	return appKeys{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Suspend:   key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "suspend")),
	}
}

type navKeys struct {
	NextTab key.Binding
	PrevTab key.Binding
}

func newNavKeys() navKeys {
	return navKeys{
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next screen")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev screen")),
	}
}

type dashboardKeys struct {
	Week     key.Binding
	Month    key.Binding
	ViewMore key.Binding
	Up       key.Binding
	Down     key.Binding
	Reload   key.Binding
}

func newDashboardKeys() dashboardKeys {
	return dashboardKeys{
		Week:     key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "this week")),
		Month:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "this month")),
		ViewMore: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view more/less")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Reload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
	}
}

type counterKeys struct {
	Increment key.Binding
	Decrement key.Binding
	Reset     key.Binding
}

func newCounterKeys() counterKeys {
	return counterKeys{
		Increment: key.NewBinding(key.WithKeys("+", "=", "up", "k"), key.WithHelp("+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-", "down", "j"), key.WithHelp("-", "decrement")),
		Reset:     key.NewBinding(key.WithKeys("r", "0"), key.WithHelp("r", "reset")),
	}
}
