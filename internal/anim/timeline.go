// Package anim samples small declarative animation timelines. A timeline
// is a tree of tweens, delays, sequences and parallel groups; sampling it
// at an elapsed time yields the value of every track. There are no timers
// here: callers drive time themselves, usually from tea.Tick messages.
package anim

import (
	"math"
	"time"
)

// Track names an animated property.
type Track string

const (
	Opacity Track = "opacity"
	Scale   Track = "scale"
	Reveal  Track = "reveal"
)

// Easing maps linear progress in [0,1] to eased progress.
type Easing func(float64) float64

func Linear(t float64) float64 { return t }

// EaseIn and EaseOut are cubic curves.
func EaseIn(t float64) float64 { return t * t * t }

func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func OutQuad(t float64) float64 { return 1 - (1-t)*(1-t) }

// Step is one node of a timeline.
type Step interface {
	Duration() time.Duration
	apply(f Frame, elapsed time.Duration)
}

// Tween moves Track from From to To over D.
type Tween struct {
	Track    Track
	From, To float64
	D        time.Duration
	Ease     Easing
}

func (tw Tween) Duration() time.Duration { return tw.D }

func (tw Tween) apply(f Frame, elapsed time.Duration) {
	p := 1.0
	if tw.D > 0 {
		p = clamp01(float64(elapsed) / float64(tw.D))
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	f[tw.Track] = tw.From + (tw.To-tw.From)*ease(p)
}

type delay time.Duration

// Delay holds every track still for d.
func Delay(d time.Duration) Step { return delay(d) }

func (d delay) Duration() time.Duration    { return time.Duration(d) }
func (d delay) apply(Frame, time.Duration) {}

type sequence []Step

// Sequence runs steps one after another.
func Sequence(steps ...Step) Step { return sequence(steps) }

func (s sequence) Duration() time.Duration {
	var total time.Duration
	for _, st := range s {
		total += st.Duration()
	}
	return total
}

func (s sequence) apply(f Frame, elapsed time.Duration) {
	for _, st := range s {
		d := st.Duration()
		if elapsed < d {
			st.apply(f, elapsed)
			return
		}
		st.apply(f, d)
		elapsed -= d
	}
}

type parallel []Step

// Parallel runs steps together. The group ends when its slowest member
// ends, so whatever follows waits for all of them.
func Parallel(steps ...Step) Step { return parallel(steps) }

func (p parallel) Duration() time.Duration {
	var longest time.Duration
	for _, st := range p {
		if d := st.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

func (p parallel) apply(f Frame, elapsed time.Duration) {
	for _, st := range p {
		e := elapsed
		if d := st.Duration(); e > d {
			e = d
		}
		st.apply(f, e)
	}
}

// Frame is a snapshot of track values.
type Frame map[Track]float64

// Get returns the value of tr, zero when the track is unknown.
func (f Frame) Get(tr Track) float64 { return f[tr] }

// Timeline pairs initial track values with a root step.
type Timeline struct {
	Initial Frame
	Root    Step
}

// Duration is the nominal length of the whole timeline.
func (tl Timeline) Duration() time.Duration {
	if tl.Root == nil {
		return 0
	}
	return tl.Root.Duration()
}

// Sample returns every track value at elapsed. Negative elapsed samples the
// initial frame; elapsed past the end samples the final frame.
func (tl Timeline) Sample(elapsed time.Duration) Frame {
	f := make(Frame, len(tl.Initial))
	for k, v := range tl.Initial {
		f[k] = v
	}
	if tl.Root == nil || elapsed < 0 {
		return f
	}
	if total := tl.Root.Duration(); elapsed > total {
		elapsed = total
	}
	tl.Root.apply(f, elapsed)
	return f
}

// Done reports whether elapsed has reached the end of the timeline.
func (tl Timeline) Done(elapsed time.Duration) bool {
	return elapsed >= tl.Duration()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
