package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cashlyze/cashlyze/internal/config"
	"github.com/cashlyze/cashlyze/internal/logging"
	"github.com/cashlyze/cashlyze/internal/platform"
	"github.com/cashlyze/cashlyze/internal/splash"
)

// App is the root composer. It owns the ready flag: while false the splash
// is shown, once the splash reports done the navigator takes over. The
// host coming back to the foreground flips ready to false again.
type App struct {
	ctx       context.Context
	cfg       config.Config
	log       *logging.Logger
	keys      appKeys
	lifecycle *platform.Lifecycle
	overlay   platform.Overlay
	now       func() time.Time

	ready           bool
	splash          *splash.Model
	nav             *Navigator
	removeLifecycle func()
	laidOut         bool
	closed          bool
	width           int
	height          int
}

// Deps are the collaborators the root composer needs.
type Deps struct {
	Repos     Repos
	Lifecycle *platform.Lifecycle
	Overlay   platform.Overlay
	Logger    *logging.Logger
	// Now defaults to time.Now; tests pin it.
	Now func() time.Time
}

func New(ctx context.Context, cfg config.Config, deps Deps) *App {
	if deps.Lifecycle == nil {
		deps.Lifecycle = platform.NewLifecycle(deps.Logger)
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	a := &App{
		ctx:       ctx,
		cfg:       cfg,
		log:       deps.Logger.WithComponent(logging.ComponentApp),
		keys:      newAppKeys(),
		lifecycle: deps.Lifecycle,
		overlay:   deps.Overlay,
		now:       deps.Now,
		width:     100,
		height:    32,
	}
	a.nav = newNavigator([]route{
		{title: "Dashboard", build: func() screen {
			return newDashboardScreen(ctx, deps.Repos, cfg.UI, a.now)
		}},
		{title: "Counter", build: func() screen {
			return newCounterScreen(cfg.Counter.Initial, deps.Logger)
		}},
	})
	a.nav.SetSize(a.width, a.height)
	a.removeLifecycle = a.lifecycle.AddListener(a.onLifecycle)
	return a
}

func (a *App) onLifecycle(s platform.LifecycleState) {
	if s == platform.StateActive {
		a.log.Info("foregrounded, replaying splash")
		a.ready = false
	}
}

func (a *App) onSplashDone() {
	a.ready = true
}

func (a *App) splashConfig() splash.Config {
	fadeIn, scaleIn, reveal, hold, fadeOut, frame := a.cfg.Splash.Durations()
	return splash.Config{FadeIn: fadeIn, ScaleIn: scaleIn, Reveal: reveal, Hold: hold, FadeOut: fadeOut, Frame: frame}
}

// sync mounts whichever side of the gate ready selects and unmounts the other.
func (a *App) sync() tea.Cmd {
	if a.closed {
		return nil
	}
	if a.ready {
		if a.splash != nil {
			a.splash.Unmount()
			a.splash = nil
		}
		return a.nav.Mount()
	}
	a.nav.Unmount()
	if a.splash != nil {
		return nil
	}
	a.splash = splash.New(a.splashConfig(), a.onSplashDone,
		splash.WithClock(a.now), splash.WithLogger(a.log))
	return a.splash.Mount()
}

func (a *App) Init() tea.Cmd {
	return a.sync()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.nav.SetSize(m.Width, m.Height)
		a.firstLayout()
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(m, a.keys.ForceQuit):
			return a, a.quit()
		case key.Matches(m, a.keys.Suspend):
			return a, a.lifecycle.Suspend()
		case a.ready && key.Matches(m, a.keys.Quit):
			return a, a.quit()
		}
	}

	if a.lifecycle.Observe(msg) {
		return a, a.sync()
	}

	if a.ready {
		cmd = a.nav.Update(msg)
	} else if a.splash != nil {
		cmd = a.splash.Update(msg)
	}
	return a, tea.Batch(cmd, a.sync())
}

// firstLayout dismisses the host overlay after the first layout pass.
// Failure is logged and otherwise ignored.
func (a *App) firstLayout() {
	if a.laidOut {
		return
	}
	a.laidOut = true
	if a.overlay == nil {
		return
	}
	if err := a.overlay.Hide(); err != nil {
		a.log.Debug("hide overlay failed", "error", err)
	}
}

func (a *App) quit() tea.Cmd {
	a.Close()
	return tea.Quit
}

// Close tears down the composer: the lifecycle listener is removed and both
// sides of the gate are unmounted. Safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.removeLifecycle != nil {
		a.removeLifecycle()
		a.removeLifecycle = nil
	}
	if a.splash != nil {
		a.splash.Unmount()
		a.splash = nil
	}
	a.nav.Unmount()
}

func (a *App) View() string {
	if a.closed {
		return ""
	}
	if a.ready {
		return a.nav.View(a.width, a.height)
	}
	if a.splash == nil {
		return ""
	}
	return a.splash.View(a.width, a.height)
}

// Ready reports which side of the gate is shown.
func (a *App) Ready() bool { return a.ready }
