// Package splash implements the launch splash: a fixed, non-interactive
// animation that reports completion exactly once per mount.
package splash

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cashlyze/cashlyze/internal/anim"
	"github.com/cashlyze/cashlyze/internal/logging"
	"github.com/cashlyze/cashlyze/internal/theme"
)

const (
	logoText = "Cashlyze"
	tagline  = "Know where your money flows."
	// underline spans this share of the logo track once fully revealed
	underlineShare = 0.6
	trackWidth     = 24
)

// Phase is the controller state.
type Phase int

const (
	Presenting Phase = iota
	Done
)

func (p Phase) String() string {
	if p == Done {
		return "done"
	}
	return "presenting"
}

// Config holds phase durations. Defaults are a starting point, not a contract.
type Config struct {
	FadeIn  time.Duration
	ScaleIn time.Duration
	Reveal  time.Duration
	Hold    time.Duration
	FadeOut time.Duration
	Frame   time.Duration
}

func DefaultConfig() Config {
	return Config{
		FadeIn:  450 * time.Millisecond,
		ScaleIn: 450 * time.Millisecond,
		Reveal:  500 * time.Millisecond,
		Hold:    200 * time.Millisecond,
		FadeOut: 300 * time.Millisecond,
		Frame:   16 * time.Millisecond,
	}
}

// Timeline builds fade+scale together, then the underline reveal, a hold,
// and the fade out.
func (c Config) Timeline() anim.Timeline {
	return anim.Timeline{
		Initial: anim.Frame{anim.Opacity: 0, anim.Scale: 0.96, anim.Reveal: 0},
		Root: anim.Sequence(
			anim.Parallel(
				anim.Tween{Track: anim.Opacity, From: 0, To: 1, D: c.FadeIn, Ease: anim.EaseOut},
				anim.Tween{Track: anim.Scale, From: 0.96, To: 1, D: c.ScaleIn, Ease: anim.EaseOut},
			),
			anim.Tween{Track: anim.Reveal, From: 0, To: 1, D: c.Reveal, Ease: anim.OutQuad},
			anim.Delay(c.Hold),
			anim.Tween{Track: anim.Opacity, From: 1, To: 0, D: c.FadeOut, Ease: anim.EaseIn},
		),
	}
}

// FrameMsg is one animation tick for run Run.
type FrameMsg struct {
	Run uint64
	At  time.Time
}

// run ids are unique across controllers so a stale tick from a discarded
// controller never matches a fresh one.
var runSeq atomic.Uint64

// Model is the splash controller. It runs its timeline once per Mount and
// calls onDone once when the last phase completes. Unmount cancels the run.
type Model struct {
	cfg      Config
	timeline anim.Timeline
	onDone   func()
	now      func() time.Time
	log      *logging.Logger

	run     uint64
	start   time.Time
	mounted bool
	phase   Phase
	frame   anim.Frame
	fired   bool
}

type Option func(*Model)

// WithClock replaces time.Now for Mount.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

func WithLogger(l *logging.Logger) Option {
	return func(m *Model) { m.log = l.WithComponent(logging.ComponentSplash) }
}

// New returns an unmounted controller.
func New(cfg Config, onDone func(), opts ...Option) *Model {
	if cfg.Frame <= 0 {
		cfg.Frame = DefaultConfig().Frame
	}
	m := &Model{
		cfg:      cfg,
		timeline: cfg.Timeline(),
		onDone:   onDone,
		now:      time.Now,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.frame = m.timeline.Sample(0)
	return m
}

// Mount starts the timeline from phase one and schedules the first frame.
func (m *Model) Mount() tea.Cmd {
	m.run = runSeq.Add(1)
	m.start = m.now()
	m.mounted = true
	m.phase = Presenting
	m.fired = false
	m.frame = m.timeline.Sample(0)
	m.log.Debug("splash mounted", "run", m.run, "duration_ms", m.timeline.Duration().Milliseconds())
	return m.tick()
}

// Unmount cancels the current run. Ticks already in flight are dropped when
// they arrive and onDone is never called for this run.
func (m *Model) Unmount() {
	if !m.mounted {
		return
	}
	m.log.Debug("splash unmounted", "run", m.run, "phase", m.phase.String())
	m.mounted = false
	m.run = 0
}

// Update advances the animation. Everything except frames of the current
// run is ignored, including key presses.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	fm, ok := msg.(FrameMsg)
	if !ok || !m.mounted || fm.Run != m.run || m.phase == Done {
		return nil
	}
	elapsed := fm.At.Sub(m.start)
	m.frame = m.timeline.Sample(elapsed)
	if !m.timeline.Done(elapsed) {
		return m.tick()
	}
	m.phase = Done
	if !m.fired {
		m.fired = true
		m.log.Debug("splash done", "run", m.run)
		if m.onDone != nil {
			m.onDone()
		}
	}
	return nil
}

func (m *Model) tick() tea.Cmd {
	run := m.run
	return tea.Tick(m.cfg.Frame, func(t time.Time) tea.Msg {
		return FrameMsg{Run: run, At: t}
	})
}

// Run returns the id of the active run, 0 when unmounted.
func (m *Model) Run() uint64 { return m.run }

func (m *Model) Phase() Phase { return m.phase }

func (m *Model) Mounted() bool { return m.mounted }

// Frame returns the last sampled track values.
func (m *Model) Frame() anim.Frame { return m.frame }

// Duration is the nominal timeline length.
func (m *Model) Duration() time.Duration { return m.timeline.Duration() }

// View draws the logo, the underline and the tagline centred in the area.
func (m *Model) View(width, height int) string {
	opacity := m.frame.Get(anim.Opacity)
	scale := m.frame.Get(anim.Scale)
	reveal := m.frame.Get(anim.Reveal)

	bg := theme.BackgroundLight
	logoStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Blend(bg, theme.Primary, opacity)).Background(bg)
	tagStyle := lipgloss.NewStyle().Foreground(theme.Blend(bg, theme.SubtleTextLight, opacity)).Background(bg)
	lineStyle := lipgloss.NewStyle().Foreground(theme.Blend(bg, theme.Primary, opacity)).Background(bg)

	track := int(math.Round(trackWidth * scale))
	// letters spread out as the logo scales up to full size
	gap := ""
	if scale >= 0.99 {
		gap = " "
	}
	logo := strings.Join(strings.Split(logoText, ""), gap)
	filled := int(math.Round(float64(track) * underlineShare * reveal))
	underline := strings.Repeat("━", filled)

	block := lipgloss.JoinVertical(lipgloss.Center,
		logoStyle.Render(logo),
		lineStyle.Render(ansi.Truncate(underline, track, "")),
		"",
		tagStyle.Render(tagline),
	)
	if width <= 0 || height <= 0 {
		return block
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block,
		lipgloss.WithWhitespaceBackground(bg))
}
