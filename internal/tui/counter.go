package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cashlyze/cashlyze/internal/logging"
	"github.com/cashlyze/cashlyze/internal/viewmodel"
)

// counterScreen is the MVVM starter: a counter driven through a binding.
type counterScreen struct {
	initial int
	binding *viewmodel.CounterBinding
	keys    counterKeys
}

func newCounterScreen(initial int, log *logging.Logger) *counterScreen {
	return &counterScreen{
		initial: initial,
		binding: viewmodel.NewCounterBinding(log),
		keys:    newCounterKeys(),
	}
}

func (s *counterScreen) Title() string { return "Counter" }

func (s *counterScreen) Mount() tea.Cmd {
	s.binding.Bind(s.initial)
	return nil
}

func (s *counterScreen) Unmount() {
	s.binding.Close()
}

func (s *counterScreen) Resize(int, int) {}

func (s *counterScreen) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(km, s.keys.Increment):
		s.binding.Increment()
	case key.Matches(km, s.keys.Decrement):
		s.binding.Decrement()
	case key.Matches(km, s.keys.Reset):
		s.binding.Reset(0)
	}
	return nil
}

func (s *counterScreen) View(width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Render("Cashlyze")
	subtitle := mutedStyle.Render("MVVM Starter (Counter)")
	value := counterValueStyle.Render(strconv.Itoa(s.binding.Count()))
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		primaryBtnStyle.Render("+ Increment"),
		"  ",
		secondaryBtnStyle.Render("- Decrement"),
	)
	reset := outlineBtnStyle.Render("r Reset")
	body := lipgloss.JoinVertical(lipgloss.Left, title, subtitle, value, buttons, "", reset)
	return lipgloss.NewStyle().Padding(1, 3).Render(body)
}

func (s *counterScreen) Bindings() []key.Binding {
	return []key.Binding{s.keys.Increment, s.keys.Decrement, s.keys.Reset}
}
