package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sync/errgroup"

	"github.com/cashlyze/cashlyze/internal/anim"
	"github.com/cashlyze/cashlyze/internal/config"
	"github.com/cashlyze/cashlyze/internal/database/repository"
	"github.com/cashlyze/cashlyze/internal/money"
	"github.com/cashlyze/cashlyze/internal/theme"
)

// Repos bundles the repositories the dashboard reads.
type Repos struct {
	Dashboard    *repository.DashboardRepo
	Categories   *repository.CategoryRepo
	Transactions *repository.TransactionRepo
}

const fadeFrame = 16 * time.Millisecond

// the total-spend value dips out and back in when the period changes
var valueFade = anim.Timeline{
	Initial: anim.Frame{anim.Opacity: 1},
	Root: anim.Sequence(
		anim.Tween{Track: anim.Opacity, From: 1, To: 0, D: 150 * time.Millisecond},
		anim.Tween{Track: anim.Opacity, From: 0, To: 1, D: 250 * time.Millisecond},
	),
}

var (
	loadSeq atomic.Uint64
	fadeSeq atomic.Uint64
)

type dashboardScreen struct {
	ctx   context.Context
	repos Repos
	ui    config.UIConfig
	now   func() time.Time
	keys  dashboardKeys

	period   repository.Period
	showMore bool
	offset   int
	width    int
	height   int

	load    uint64
	loaded  bool
	loadErr error
	data    dashboardDataMsg

	fadeRun   uint64
	fadeStart time.Time
	opacity   float64
}

func newDashboardScreen(ctx context.Context, repos Repos, ui config.UIConfig, now func() time.Time) *dashboardScreen {
	if now == nil {
		now = time.Now
	}
	return &dashboardScreen{
		ctx:     ctx,
		repos:   repos,
		ui:      ui,
		now:     now,
		keys:    newDashboardKeys(),
		period:  repository.PeriodMonth,
		opacity: 1,
	}
}

func (s *dashboardScreen) Title() string { return "Dashboard" }

// Mount loads the data and plays the value fade once, as a period change does.
func (s *dashboardScreen) Mount() tea.Cmd {
	return tea.Batch(s.loadCmd(), s.startFade())
}

func (s *dashboardScreen) Resize(width, height int) {
	s.width, s.height = width, height
	s.clampOffset()
}

// Unmount drops in-flight loads and fades; their messages are ignored.
func (s *dashboardScreen) Unmount() {
	s.load = 0
	s.fadeRun = 0
	s.opacity = 1
}

func (s *dashboardScreen) loadCmd() tea.Cmd {
	s.load = loadSeq.Add(1)
	load := s.load
	ctx, repos := s.ctx, s.repos
	return func() tea.Msg {
		data, err := loadDashboard(ctx, repos)
		if err != nil {
			return dashboardErrMsg{load: load, err: err}
		}
		data.load = load
		return data
	}
}

// loadDashboard reads every dashboard section concurrently. Each goroutine
// fills its own field of d.
func loadDashboard(ctx context.Context, repos Repos) (dashboardDataMsg, error) {
	var d dashboardDataMsg
	if repos.Dashboard == nil || repos.Categories == nil || repos.Transactions == nil {
		return d, errors.New("dashboard repositories not configured")
	}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if d.month, err = repos.Dashboard.Summary(ctx, repository.PeriodMonth); err != nil {
			return fmt.Errorf("load month summary: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if d.week, err = repos.Dashboard.Summary(ctx, repository.PeriodWeek); err != nil {
			return fmt.Errorf("load week summary: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if d.categories, err = repos.Categories.List(ctx); err != nil {
			return fmt.Errorf("load categories: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if d.trend, err = repos.Dashboard.WeeklyTrend(ctx); err != nil {
			return fmt.Errorf("load trend: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if d.transactions, err = repos.Transactions.Recent(ctx, 0); err != nil {
			return fmt.Errorf("load transactions: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if d.emis, err = repos.Dashboard.ActiveEMIs(ctx); err != nil {
			return fmt.Errorf("load emis: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		in, err := repos.Dashboard.Insight(ctx)
		switch {
		case errors.Is(err, repository.ErrNotFound):
		case err != nil:
			return fmt.Errorf("load insight: %w", err)
		default:
			d.insight = in.Body
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return dashboardDataMsg{}, err
	}
	return d, nil
}

func (s *dashboardScreen) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case dashboardDataMsg:
		if m.load != s.load {
			return nil
		}
		s.data = m
		s.loaded = true
		s.loadErr = nil
		s.clampOffset()
		return nil
	case dashboardErrMsg:
		if m.load != s.load {
			return nil
		}
		s.loadErr = m.err
		return func() tea.Msg { return errMsg{m.err} }
	case fadeFrameMsg:
		return s.advanceFade(m)
	case tea.KeyMsg:
		switch {
		case key.Matches(m, s.keys.Week):
			return s.setPeriod(repository.PeriodWeek)
		case key.Matches(m, s.keys.Month):
			return s.setPeriod(repository.PeriodMonth)
		case key.Matches(m, s.keys.ViewMore):
			s.showMore = !s.showMore
			s.clampOffset()
		case key.Matches(m, s.keys.Up):
			if s.offset > 0 {
				s.offset--
			}
		case key.Matches(m, s.keys.Down):
			s.offset++
			s.clampOffset()
		case key.Matches(m, s.keys.Reload):
			return s.loadCmd()
		}
	}
	return nil
}

func (s *dashboardScreen) setPeriod(p repository.Period) tea.Cmd {
	if p == s.period {
		return nil
	}
	s.period = p
	return s.startFade()
}

func (s *dashboardScreen) startFade() tea.Cmd {
	s.fadeRun = fadeSeq.Add(1)
	s.fadeStart = s.now()
	s.opacity = valueFade.Sample(0).Get(anim.Opacity)
	return s.fadeTick()
}

func (s *dashboardScreen) fadeTick() tea.Cmd {
	run := s.fadeRun
	return tea.Tick(fadeFrame, func(t time.Time) tea.Msg { return fadeFrameMsg{run: run, at: t} })
}

func (s *dashboardScreen) advanceFade(m fadeFrameMsg) tea.Cmd {
	if m.run == 0 || m.run != s.fadeRun {
		return nil
	}
	elapsed := m.at.Sub(s.fadeStart)
	s.opacity = valueFade.Sample(elapsed).Get(anim.Opacity)
	if valueFade.Done(elapsed) {
		s.fadeRun = 0
		return nil
	}
	return s.fadeTick()
}

func (s *dashboardScreen) Bindings() []key.Binding {
	return []key.Binding{s.keys.Week, s.keys.Month, s.keys.ViewMore, s.keys.Down}
}

func (s *dashboardScreen) summary() repository.PeriodSummary {
	if s.period == repository.PeriodWeek {
		return s.data.week
	}
	return s.data.month
}

func (s *dashboardScreen) visibleTransactions() []repository.Transaction {
	txs := s.data.transactions
	if s.showMore || s.ui.TransactionsPreview <= 0 || len(txs) <= s.ui.TransactionsPreview {
		return txs
	}
	return txs[:s.ui.TransactionsPreview]
}

func (s *dashboardScreen) View(width, height int) string {
	if !s.loaded {
		if s.loadErr != nil {
			return errorStyle.Render("Could not load dashboard: " + s.loadErr.Error())
		}
		return mutedStyle.Render("Loading your spending summary…")
	}
	content := s.content(width)
	return scrollWindow(content, min(s.offset, maxOffset(content, height)), height)
}

func (s *dashboardScreen) content(width int) string {
	if width <= 0 {
		width = 80
	}
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	sections := []string{
		s.renderGreeting(),
		s.renderTotal(inner),
	}
	if s.data.insight != "" {
		sections = append(sections, insightStyle.Width(inner+4).Render(s.data.insight))
	}
	sections = append(sections,
		sectionStyle.Render("Spend by Category"),
		cardStyle.Width(inner+2).Render(s.renderCategories(inner)),
		sectionStyle.Render("Weekly Trend"),
		cardStyle.Width(inner+2).Render(renderTrendChart(s.data.trend, inner)),
		sectionHeader("Recent Transactions", s.viewMoreLabel(), inner+4),
		cardStyle.Width(inner+2).Render(s.renderTransactions(inner)),
		sectionHeader("Active EMIs", "View All", inner+4),
		cardStyle.Width(inner+2).Render(s.renderEMIs(inner)),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// clampOffset keeps the scroll offset within the content last laid out at
// the screen's size.
func (s *dashboardScreen) clampOffset() {
	if !s.loaded || s.height <= 0 {
		return
	}
	s.offset = min(s.offset, maxOffset(s.content(s.width), s.height))
}

func maxOffset(content string, height int) int {
	if height <= 0 {
		return 0
	}
	return max(lipgloss.Height(content)-height, 0)
}

func (s *dashboardScreen) viewMoreLabel() string {
	if s.showMore {
		return "View less"
	}
	return "View more"
}

func (s *dashboardScreen) renderGreeting() string {
	name := s.ui.GreetingName
	if name == "" {
		name = "there"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		greetingStyle.Render(fmt.Sprintf("👋 Hi, %s!", name)),
		subGreetingStyle.Render("Here’s your spending summary."),
	)
}

func (s *dashboardScreen) renderTotal(inner int) string {
	sum := s.summary()
	label := "This Month"
	if s.period == repository.PeriodWeek {
		label = "This Week"
	}
	toggles := lipgloss.JoinHorizontal(lipgloss.Top,
		toggle("This Week", s.period == repository.PeriodWeek),
		" ",
		toggle("This Month", s.period == repository.PeriodMonth),
	)
	title := sectionStyle.Render("Total Spend – " + label)
	head := spaceBetween(title, toggles, inner)

	valueStyle := amountStyle.Foreground(theme.Blend(theme.BackgroundLight, theme.TextLight, s.opacity))
	value := valueStyle.Render(money.Format(s.ui.CurrencySymbol, sum.Total))
	delta := deltaStyle.Render(fmt.Sprintf("%+d%% from %s 📈", sum.DeltaPct, sum.CompareLabel))
	return cardStyle.Width(inner + 2).Render(lipgloss.JoinVertical(lipgloss.Left, head, value, delta))
}

func toggle(label string, active bool) string {
	if active {
		return toggleActiveStyle.Render(label)
	}
	return toggleInactiveStyle.Render(label)
}

func (s *dashboardScreen) renderCategories(inner int) string {
	cats := s.data.categories
	if len(cats) == 0 {
		return mutedStyle.Render("(no categories)")
	}
	lines := []string{renderShareBar(cats, inner), ""}
	for _, c := range cats {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("●")
		left := dot + " " + c.Name
		lines = append(lines, spaceBetween(left, amountStyle.Render(money.Format(s.ui.CurrencySymbol, c.Spend)), inner))
	}
	return strings.Join(lines, "\n")
}

func (s *dashboardScreen) renderTransactions(inner int) string {
	txs := s.visibleTransactions()
	if len(txs) == 0 {
		return mutedStyle.Render("(no transactions)")
	}
	lines := make([]string, 0, len(txs))
	for _, t := range txs {
		left := linkStyle.Render(iconGlyph(t.Icon)) + "  " + t.Title + " " + mutedStyle.Render(t.Category)
		lines = append(lines, spaceBetween(left, amountStyle.Render(money.Format(s.ui.CurrencySymbol, t.Amount)), inner))
	}
	return strings.Join(lines, "\n")
}

func (s *dashboardScreen) renderEMIs(inner int) string {
	if len(s.data.emis) == 0 {
		return mutedStyle.Render("(no active EMIs)")
	}
	bar := progress.New(
		progress.WithSolidFill(string(theme.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(inner),
	)
	bar.EmptyColor = string(theme.DividerLight)
	var blocks []string
	for _, e := range s.data.emis {
		head := spaceBetween(sectionStyle.Render(e.Title),
			amountStyle.Render(money.Format(s.ui.CurrencySymbol, e.PerMonth)+" / month"), inner)
		sub := mutedStyle.Render(fmt.Sprintf("%d months left · %d%% paid", e.MonthsLeft, emiPercent(e)))
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left, head, sub, bar.ViewAs(e.Progress())))
	}
	return strings.Join(blocks, "\n\n")
}

func emiPercent(e repository.EMI) int {
	return int(e.Progress()*100 + 0.5)
}

var iconGlyphs = map[string]string{
	"fast-food":     "🍔",
	"local-taxi":    "🚕",
	"shopping-cart": "🛒",
	"receipt":       "🧾",
}

func iconGlyph(name string) string {
	if g, ok := iconGlyphs[name]; ok {
		return g
	}
	return "•"
}

func sectionHeader(title, link string, width int) string {
	return spaceBetween(sectionStyle.Render(title), linkStyle.Render(link), width)
}

// spaceBetween puts left and right on one line of width cells.
func spaceBetween(left, right string, width int) string {
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func scrollWindow(content string, offset, height int) string {
	if height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	if offset > len(lines) {
		offset = len(lines)
	}
	lines = lines[offset:]
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
