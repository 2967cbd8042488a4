package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/cashlyze/cashlyze/internal/config"
	"github.com/cashlyze/cashlyze/internal/database"
	"github.com/cashlyze/cashlyze/internal/database/repository"
	"github.com/cashlyze/cashlyze/internal/logging"
	"github.com/cashlyze/cashlyze/internal/platform"
	"github.com/cashlyze/cashlyze/internal/splash"
)

var t0 = time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC)

func pinned() time.Time { return t0 }

func seededRepos(t *testing.T) Repos {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:tui_%s?mode=memory&cache=shared", name)
	ctx := context.Background()
	db, err := database.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.RunMigrations(dsn))
	require.NoError(t, database.SeedMockData(ctx, db))
	return Repos{
		Dashboard:    repository.NewDashboardRepo(db),
		Categories:   repository.NewCategoryRepo(db),
		Transactions: repository.NewTransactionRepo(db),
	}
}

func testConfig() config.Config {
	cfg, err := config.Default()
	if err != nil {
		panic(err)
	}
	cfg.UI.GreetingName = "Aarav"
	cfg.Counter.Initial = 3
	return cfg
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// deliverData runs cmd and hands any dashboard load results back to update.
// Ticks are not followed.
func deliverData(t *testing.T, cmd tea.Cmd, update func(tea.Msg) tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	switch m := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range m {
			deliverData(t, c, update)
		}
	case dashboardDataMsg, dashboardErrMsg:
		update(m)
	}
}

// finishSplash feeds the current splash run a frame past its end.
func finishSplash(t *testing.T, a *App) tea.Cmd {
	t.Helper()
	require.NotNil(t, a.splash, "splash should be mounted")
	msg := splash.FrameMsg{Run: a.splash.Run(), At: t0.Add(a.splash.Duration() + time.Millisecond)}
	_, cmd := a.Update(msg)
	return cmd
}

func appUpdate(a *App) func(tea.Msg) tea.Cmd {
	return func(msg tea.Msg) tea.Cmd {
		_, cmd := a.Update(msg)
		return cmd
	}
}

type fakeOverlay struct {
	hides int
	err   error
}

func (o *fakeOverlay) Hide() error {
	o.hides++
	return o.err
}

func newTestApp(t *testing.T, overlay platform.Overlay) (*App, *platform.Lifecycle) {
	t.Helper()
	lc := platform.NewLifecycle(logging.Discard())
	a := New(context.Background(), testConfig(), Deps{
		Repos:     seededRepos(t),
		Lifecycle: lc,
		Overlay:   overlay,
		Logger:    logging.Discard(),
		Now:       pinned,
	})
	return a, lc
}

func TestAppShowsSplashUntilDone(t *testing.T) {
	a, _ := newTestApp(t, nil)
	require.NotNil(t, a.Init())
	require.False(t, a.Ready())
	require.False(t, a.nav.Mounted())

	a.Update(tea.WindowSizeMsg{Width: 90, Height: 40})
	require.Contains(t, ansi.Strip(a.View()), "Know where your money flows.")

	// keys do not skip the splash
	a.Update(keyMsg("q"))
	a.Update(keyMsg("tab"))
	require.False(t, a.Ready())

	cmd := finishSplash(t, a)
	require.True(t, a.Ready())
	require.Nil(t, a.splash)
	require.True(t, a.nav.Mounted())
	require.Equal(t, "Dashboard", a.nav.Active())

	deliverData(t, cmd, appUpdate(a))
	view := ansi.Strip(a.View())
	require.Contains(t, view, "Hi, Aarav!")
	require.Contains(t, view, "₹ 12,340")
}

func TestAppStaleSplashFramesIgnored(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.Init()
	stale := a.splash.Run() - 1
	a.Update(splash.FrameMsg{Run: stale, At: t0.Add(time.Hour)})
	require.False(t, a.Ready())
}

func TestAppReplaysSplashOnForeground(t *testing.T) {
	a, lc := newTestApp(t, nil)
	a.Init()
	finishSplash(t, a)
	require.True(t, a.Ready())

	a.Update(tea.BlurMsg{})
	require.Equal(t, platform.StateInactive, lc.State())
	require.True(t, a.Ready(), "losing focus keeps the main view")

	a.Update(tea.FocusMsg{})
	require.Equal(t, platform.StateActive, lc.State())
	require.False(t, a.Ready())
	require.False(t, a.nav.Mounted())
	require.NotNil(t, a.splash)
	require.True(t, a.splash.Mounted())

	finishSplash(t, a)
	require.True(t, a.Ready())
}

func TestAppReplaysSplashAfterSuspend(t *testing.T) {
	a, lc := newTestApp(t, nil)
	a.Init()
	finishSplash(t, a)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	require.NotNil(t, cmd)
	require.Equal(t, platform.StateBackground, lc.State())
	require.True(t, a.Ready())

	a.Update(tea.ResumeMsg{})
	require.False(t, a.Ready())
	require.NotNil(t, a.splash)
}

func TestAppFocusDuringSplashKeepsRun(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.Init()
	run := a.splash.Run()
	a.Update(tea.BlurMsg{})
	a.Update(tea.FocusMsg{})
	require.Equal(t, run, a.splash.Run())
}

func TestAppHidesOverlayOnceAfterFirstLayout(t *testing.T) {
	o := &fakeOverlay{}
	a, _ := newTestApp(t, o)
	a.Init()
	require.Zero(t, o.hides)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	require.Equal(t, 1, o.hides)
}

func TestAppOverlayFailureIgnored(t *testing.T) {
	o := &fakeOverlay{err: errors.New("no overlay")}
	a, _ := newTestApp(t, o)
	a.Init()
	require.NotPanics(t, func() { a.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) })
	require.Equal(t, 1, o.hides)
	require.False(t, a.Ready())
}

func TestAppQuitRemovesLifecycleListener(t *testing.T) {
	a, lc := newTestApp(t, nil)
	a.Init()
	require.Equal(t, 1, lc.Listeners())

	// q is ignored while the splash is up; ctrl+c always quits
	_, cmd := a.Update(keyMsg("q"))
	require.Nil(t, cmd)
	_, cmd = a.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Zero(t, lc.Listeners())
	require.Nil(t, a.splash)

	// later lifecycle changes do not reach the closed app
	lc.Set(platform.StateBackground)
	lc.Set(platform.StateActive)
	require.Nil(t, a.splash)
	require.Empty(t, a.View())
}

func TestAppQuitFromMainView(t *testing.T) {
	a, lc := newTestApp(t, nil)
	a.Init()
	finishSplash(t, a)
	_, cmd := a.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.False(t, a.nav.Mounted())
	require.Zero(t, lc.Listeners())
}

func TestNavigatorSwitchClosesCounterBinding(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.Init()
	finishSplash(t, a)

	a.Update(keyMsg("tab"))
	require.Equal(t, "Counter", a.nav.Active())
	cs, ok := a.nav.current.(*counterScreen)
	require.True(t, ok)
	require.True(t, cs.binding.Bound())
	require.Equal(t, 3, cs.binding.Count())
	require.Equal(t, 1, cs.binding.Model().Subscribers())

	a.Update(keyMsg("shift+tab"))
	require.Equal(t, "Dashboard", a.nav.Active())
	require.Zero(t, cs.binding.Model().Subscribers())
}

func TestNavigatorStatusAndError(t *testing.T) {
	n := newNavigator([]route{{title: "Counter", build: func() screen {
		return newCounterScreen(0, logging.Discard())
	}}})
	n.Mount()
	n.Update(statusMsg("saved"))
	require.Contains(t, ansi.Strip(n.View(60, 20)), "saved")
	n.Update(errMsg{errors.New("boom")})
	require.Contains(t, ansi.Strip(n.View(60, 20)), "error: boom")
	require.Equal(t, 20, strings.Count(n.View(60, 20), "\n")+1)
}

func TestCounterScreenKeys(t *testing.T) {
	s := newCounterScreen(5, logging.Discard())
	s.Mount()
	require.Equal(t, 5, s.binding.Count())

	s.Update(keyMsg("+"))
	s.Update(keyMsg("up"))
	require.Equal(t, 7, s.binding.Count())
	s.Update(keyMsg("-"))
	require.Equal(t, 6, s.binding.Count())
	require.Contains(t, ansi.Strip(s.View(60, 20)), "6")

	s.Update(keyMsg("r"))
	require.Equal(t, 0, s.binding.Count())
	s.Update(keyMsg("-"))
	require.Equal(t, -1, s.binding.Count())

	s.Unmount()
	s.Update(keyMsg("+"))
	require.Equal(t, -1, s.binding.Count(), "closed binding stops reacting")
}

func loadedDashboard(t *testing.T) *dashboardScreen {
	t.Helper()
	ui := testConfig().UI
	s := newDashboardScreen(context.Background(), seededRepos(t), ui, pinned)
	deliverData(t, s.Mount(), s.Update)
	require.True(t, s.loaded)
	return s
}

func TestDashboardRendersSeededData(t *testing.T) {
	s := loadedDashboard(t)
	view := ansi.Strip(s.View(100, 0))
	for _, want := range []string{
		"Hi, Aarav!",
		"Total Spend – This Month",
		"₹ 12,340",
		"+8% from last month",
		"Spend by Category",
		"Food",
		"₹ 5,400",
		"Weekly Trend",
		"Recent Transactions",
		"Zomato",
		"Active EMIs",
		"Laptop",
		"6 months left · 50% paid",
	} {
		require.Contains(t, view, want)
	}
}

func TestDashboardPeriodToggleFades(t *testing.T) {
	s := loadedDashboard(t)
	cmd := s.Update(keyMsg("w"))
	require.NotNil(t, cmd)
	require.Equal(t, repository.PeriodWeek, s.period)
	run := s.fadeRun
	require.NotZero(t, run)

	view := ansi.Strip(s.View(100, 0))
	require.Contains(t, view, "Total Spend – This Week")
	require.Contains(t, view, "₹ 3,560")
	require.Contains(t, view, "+3% from last week")

	// midway through the fade-out
	require.NotNil(t, s.Update(fadeFrameMsg{run: run, at: t0.Add(75 * time.Millisecond)}))
	require.InDelta(t, 0.5, s.opacity, 0.01)

	// frames from another run are ignored
	require.Nil(t, s.Update(fadeFrameMsg{run: run + 100, at: t0.Add(time.Second)}))
	require.InDelta(t, 0.5, s.opacity, 0.01)

	require.Nil(t, s.Update(fadeFrameMsg{run: run, at: t0.Add(time.Second)}))
	require.Equal(t, 1.0, s.opacity)
	require.Zero(t, s.fadeRun)

	// selecting the active period again does nothing
	require.Nil(t, s.Update(keyMsg("w")))
}

func TestDashboardMountPlaysValueFade(t *testing.T) {
	s := newDashboardScreen(context.Background(), seededRepos(t), testConfig().UI, pinned)
	require.NotNil(t, s.Mount())
	run := s.fadeRun
	require.NotZero(t, run)
	require.Equal(t, 1.0, s.opacity)

	// fully faded out at the end of the first step, back in afterwards
	require.NotNil(t, s.Update(fadeFrameMsg{run: run, at: t0.Add(150 * time.Millisecond)}))
	require.InDelta(t, 0.0, s.opacity, 0.01)
	require.Nil(t, s.Update(fadeFrameMsg{run: run, at: t0.Add(400 * time.Millisecond)}))
	require.Equal(t, 1.0, s.opacity)

	// a remount starts a new run
	s.Unmount()
	s.Mount()
	require.NotZero(t, s.fadeRun)
	require.NotEqual(t, run, s.fadeRun)
}

func TestDashboardViewMoreTogglesTransactions(t *testing.T) {
	s := loadedDashboard(t)
	s.ui.TransactionsPreview = 2
	view := ansi.Strip(s.View(100, 0))
	require.Contains(t, view, "View more")
	require.Contains(t, view, "Zomato")
	require.NotContains(t, view, "Electricity Bill")

	s.Update(keyMsg("v"))
	view = ansi.Strip(s.View(100, 0))
	require.Contains(t, view, "View less")
	require.Contains(t, view, "Electricity Bill")
}

func TestDashboardScrollClampsInUpdate(t *testing.T) {
	s := loadedDashboard(t)
	s.Resize(100, 10)
	limit := maxOffset(s.content(100), 10)
	require.Positive(t, limit)

	for i := 0; i < 500; i++ {
		s.Update(keyMsg("down"))
	}
	require.Equal(t, limit, s.offset)

	out := s.View(100, 10)
	require.Equal(t, 10, strings.Count(out, "\n")+1)
	require.Equal(t, out, s.View(100, 10))
	require.Equal(t, limit, s.offset, "rendering leaves the offset alone")

	s.Update(keyMsg("up"))
	require.Equal(t, limit-1, s.offset)

	// a taller body shrinks the scroll range
	s.Resize(100, 1000)
	require.Zero(t, s.offset)
}

func TestDashboardViewDoesNotMutateOffset(t *testing.T) {
	s := loadedDashboard(t)
	s.offset = 10_000
	out := s.View(100, 10)
	require.Equal(t, 10_000, s.offset)
	require.Equal(t, 10, strings.Count(out, "\n")+1)
}

func TestNavigatorResizesBodyForStatusLine(t *testing.T) {
	s := loadedDashboard(t)
	n := newNavigator([]route{{title: "Dashboard", build: func() screen { return s }}})
	n.SetSize(100, 30)
	n.Mount()
	before := s.height
	require.Positive(t, before)
	n.Update(statusMsg("saved"))
	require.Equal(t, before-1, s.height)
}

func TestDashboardStaleLoadIgnored(t *testing.T) {
	s := newDashboardScreen(context.Background(), seededRepos(t), testConfig().UI, pinned)
	first := s.Mount()
	second := s.loadCmd()
	deliverData(t, first, s.Update)
	require.False(t, s.loaded)
	deliverData(t, second, s.Update)
	require.True(t, s.loaded)
}

func TestDashboardLoadErrorSurfaces(t *testing.T) {
	s := newDashboardScreen(context.Background(), Repos{}, testConfig().UI, pinned)
	var cmd tea.Cmd
	deliverData(t, s.Mount(), func(m tea.Msg) tea.Cmd {
		cmd = s.Update(m)
		return cmd
	})
	require.NotNil(t, cmd)
	_, ok := cmd().(errMsg)
	require.True(t, ok)
	require.Contains(t, ansi.Strip(s.View(80, 10)), "Could not load dashboard")
}

func TestTrendYMax(t *testing.T) {
	require.Equal(t, 100.0, trendYMax(0))
	require.Equal(t, 750.0, trendYMax(730))
	require.Equal(t, 9.0, trendYMax(9))
}

func TestShareBarFillsWidth(t *testing.T) {
	s := loadedDashboard(t)
	bar := ansi.Strip(renderShareBar(s.data.categories, 40))
	require.Equal(t, 40, ansi.StringWidth(bar))
	require.Equal(t, "", renderShareBar(nil, 40))
}
