// Package platform adapts host signals (terminal focus, suspend/resume) and
// the pre-launch overlay to the app.
package platform

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cashlyze/cashlyze/internal/logging"
	"github.com/cashlyze/cashlyze/internal/observe"
)

// LifecycleState mirrors the host application state.
type LifecycleState string

const (
	StateBackground LifecycleState = "background"
	StateInactive   LifecycleState = "inactive"
	StateActive     LifecycleState = "active"
)

// Lifecycle tracks the host state and emits every change to listeners.
type Lifecycle struct {
	state LifecycleState
	subs  *observe.Subject[LifecycleState]
	log   *logging.Logger
}

// NewLifecycle starts in the active state. log may be nil.
func NewLifecycle(log *logging.Logger) *Lifecycle {
	log = log.WithComponent(logging.ComponentPlatform)
	return &Lifecycle{
		state: StateActive,
		subs:  observe.NewSubject[LifecycleState](log),
		log:   log,
	}
}

// AddListener registers fn for future changes and returns its removal.
func (l *Lifecycle) AddListener(fn func(LifecycleState)) (remove func()) {
	if fn == nil {
		return func() {}
	}
	return l.subs.Subscribe(observe.ObserverFunc[LifecycleState](fn))
}

// Set moves to s, notifying listeners only when the state changes.
func (l *Lifecycle) Set(s LifecycleState) {
	if s == l.state {
		return
	}
	l.log.Debug("lifecycle change", "from", string(l.state), "to", string(s))
	l.state = s
	l.subs.Notify(s)
}

func (l *Lifecycle) State() LifecycleState { return l.state }

// Listeners reports how many listeners are registered.
func (l *Lifecycle) Listeners() int { return l.subs.Len() }

// Observe maps terminal messages to lifecycle states and reports whether
// msg was a lifecycle signal. Focus reporting must be enabled on the
// program (tea.WithReportFocus).
func (l *Lifecycle) Observe(msg tea.Msg) bool {
	switch msg.(type) {
	case tea.FocusMsg:
		l.Set(StateActive)
	case tea.BlurMsg:
		l.Set(StateInactive)
	case tea.ResumeMsg:
		l.Set(StateActive)
	default:
		return false
	}
	return true
}

// Suspend records the move to background and returns the command that
// suspends the program. The matching resume arrives as tea.ResumeMsg.
func (l *Lifecycle) Suspend() tea.Cmd {
	l.Set(StateBackground)
	return tea.Suspend
}
