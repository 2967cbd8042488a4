package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// screen is one navigator destination. A screen is built fresh on every
// visit, mounted, and unmounted when the user leaves.
type screen interface {
	Title() string
	Mount() tea.Cmd
	Unmount()
	Update(msg tea.Msg) tea.Cmd
	// Resize reports the body area the screen is drawn into.
	Resize(width, height int)
	View(width, height int) string
	Bindings() []key.Binding
}

type route struct {
	title string
	build func() screen
}

// Navigator is a flat, placeholder navigator over a fixed route list.
type Navigator struct {
	routes  []route
	active  int
	current screen
	keys    navKeys
	help    help.Model
	status  string
	isErr   bool
	width   int
	height  int
}

func newNavigator(routes []route) *Navigator {
	h := help.New()
	h.ShortSeparator = "  "
	return &Navigator{routes: routes, keys: newNavKeys(), help: h}
}

func (n *Navigator) Mounted() bool { return n.current != nil }

// Active returns the title of the visible route.
func (n *Navigator) Active() string {
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[n.active].title
}

// Mount builds and mounts the active route.
func (n *Navigator) Mount() tea.Cmd {
	if n.current != nil || len(n.routes) == 0 {
		return nil
	}
	n.current = n.routes[n.active].build()
	cmd := n.current.Mount()
	n.resizeCurrent()
	return cmd
}

// SetSize records the full terminal area and passes the body area on.
func (n *Navigator) SetSize(width, height int) {
	n.width, n.height = width, height
	n.resizeCurrent()
}

func (n *Navigator) resizeCurrent() {
	if n.current != nil {
		n.current.Resize(n.width, n.bodyHeight(n.width, n.height))
	}
}

func (n *Navigator) bodyHeight(width, height int) int {
	h := height - lipgloss.Height(n.renderHeader(width)) - lipgloss.Height(n.renderFooter(width))
	if h < 1 {
		h = 1
	}
	return h
}

// Unmount tears down the visible screen.
func (n *Navigator) Unmount() {
	if n.current == nil {
		return
	}
	n.current.Unmount()
	n.current = nil
}

func (n *Navigator) switchTo(index int) tea.Cmd {
	if len(n.routes) == 0 {
		return nil
	}
	index = (index + len(n.routes)) % len(n.routes)
	if index == n.active && n.current != nil {
		return nil
	}
	n.Unmount()
	n.active = index
	n.status = ""
	return n.Mount()
}

func (n *Navigator) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(m, n.keys.NextTab):
			return n.switchTo(n.active + 1)
		case key.Matches(m, n.keys.PrevTab):
			return n.switchTo(n.active - 1)
		}
	case statusMsg:
		n.status, n.isErr = string(m), false
		n.resizeCurrent()
		return nil
	case errMsg:
		n.status, n.isErr = "error: "+m.Error(), true
		n.resizeCurrent()
		return nil
	}
	if n.current == nil {
		return nil
	}
	return n.current.Update(msg)
}

func (n *Navigator) View(width, height int) string {
	header := n.renderHeader(width)
	footer := n.renderFooter(width)
	bodyHeight := n.bodyHeight(width, height)
	body := ""
	if n.current != nil {
		body = n.current.View(width, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (n *Navigator) renderHeader(width int) string {
	parts := []string{appNameStyle.Render("Cashlyze")}
	for i, r := range n.routes {
		if i == n.active {
			parts = append(parts, activeTabStyle.Render(r.title))
		} else {
			parts = append(parts, inactiveTabStyle.Render(r.title))
		}
	}
	bar := strings.Join(parts, "")
	if w := ansi.StringWidth(bar); w < width {
		bar += headerBarStyle.Render(strings.Repeat(" ", width-w))
	}
	return ansi.Truncate(bar, width, "")
}

func (n *Navigator) renderFooter(width int) string {
	bindings := []key.Binding{n.keys.NextTab, n.keys.PrevTab}
	if n.current != nil {
		bindings = append(n.current.Bindings(), bindings...)
	}
	bindings = append(bindings, newAppKeys().Quit)
	h := n.help
	h.Width = width
	line := h.ShortHelpView(bindings)
	if n.status == "" {
		return line
	}
	st := statusBarStyle
	if n.isErr {
		st = errorStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, st.Render(ansi.Truncate(n.status, width, "…")), line)
}

// fitHeight pads or clips s to exactly h lines.
func fitHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
