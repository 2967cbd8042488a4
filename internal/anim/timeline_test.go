package anim

import (
	"math"
	"testing"
	"time"
)

const ms = time.Millisecond

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func splashLike(fade, scale time.Duration) Timeline {
	return Timeline{
		Initial: Frame{Opacity: 0, Scale: 0.96, Reveal: 0},
		Root: Sequence(
			Parallel(
				Tween{Track: Opacity, From: 0, To: 1, D: fade, Ease: EaseOut},
				Tween{Track: Scale, From: 0.96, To: 1, D: scale, Ease: EaseOut},
			),
			Tween{Track: Reveal, From: 0, To: 1, D: 500 * ms, Ease: OutQuad},
			Delay(200*ms),
			Tween{Track: Opacity, From: 1, To: 0, D: 300 * ms, Ease: EaseIn},
		),
	}
}

func TestDurationSumsSequentialAndJoinsParallel(t *testing.T) {
	tl := splashLike(450*ms, 450*ms)
	if got := tl.Duration(); got != 1450*ms {
		t.Fatalf("duration = %v, want 1.45s", got)
	}
	// the slower branch of the parallel group sets its length
	tl = splashLike(200*ms, 700*ms)
	if got := tl.Duration(); got != 1700*ms {
		t.Fatalf("duration = %v, want 1.7s", got)
	}
}

func TestParallelJoinWaitsForSlowerBranch(t *testing.T) {
	tl := splashLike(200*ms, 700*ms)

	// fade finished, scale still running, reveal must not have started
	f := tl.Sample(500 * ms)
	if !approx(f.Get(Opacity), 1) {
		t.Fatalf("opacity = %v, want 1", f.Get(Opacity))
	}
	if f.Get(Scale) >= 1 {
		t.Fatalf("scale = %v, want < 1 while running", f.Get(Scale))
	}
	if f.Get(Reveal) != 0 {
		t.Fatalf("reveal = %v, started before join", f.Get(Reveal))
	}

	f = tl.Sample(950 * ms)
	if f.Get(Reveal) <= 0 || f.Get(Reveal) >= 1 {
		t.Fatalf("reveal = %v, want mid-tween", f.Get(Reveal))
	}
}

func TestSampleBoundaries(t *testing.T) {
	tl := splashLike(450*ms, 450*ms)

	start := tl.Sample(0)
	if start.Get(Opacity) != 0 || !approx(start.Get(Scale), 0.96) {
		t.Fatalf("start frame = %v", start)
	}
	before := tl.Sample(-time.Second)
	if !approx(before.Get(Scale), 0.96) {
		t.Fatalf("negative elapsed frame = %v", before)
	}

	hold := tl.Sample(1000 * ms)
	if !approx(hold.Get(Opacity), 1) || !approx(hold.Get(Reveal), 1) || !approx(hold.Get(Scale), 1) {
		t.Fatalf("hold frame = %v", hold)
	}

	end := tl.Sample(5 * time.Second)
	if !approx(end.Get(Opacity), 0) || !approx(end.Get(Reveal), 1) {
		t.Fatalf("end frame = %v", end)
	}
	if !tl.Done(1450*ms) || tl.Done(1449*ms) {
		t.Fatal("Done boundary wrong")
	}
}

func TestEasingEndpoints(t *testing.T) {
	for name, e := range map[string]Easing{"linear": Linear, "in": EaseIn, "out": EaseOut, "quad": OutQuad} {
		if !approx(e(0), 0) || !approx(e(1), 1) {
			t.Errorf("%s endpoints = %v/%v", name, e(0), e(1))
		}
	}
	if EaseOut(0.5) <= 0.5 {
		t.Error("ease-out should lead linear at midpoint")
	}
	if EaseIn(0.5) >= 0.5 {
		t.Error("ease-in should lag linear at midpoint")
	}
}

func TestZeroDurationTweenJumpsToEnd(t *testing.T) {
	tl := Timeline{
		Initial: Frame{Opacity: 0},
		Root:    Sequence(Tween{Track: Opacity, From: 0, To: 1}),
	}
	if got := tl.Sample(0).Get(Opacity); got != 1 {
		t.Fatalf("opacity = %v, want 1", got)
	}
	if !tl.Done(0) {
		t.Fatal("empty timeline should be done at 0")
	}
}

func TestEmptyTimeline(t *testing.T) {
	var tl Timeline
	if tl.Duration() != 0 {
		t.Fatal("nil root duration should be 0")
	}
	if len(tl.Sample(time.Second)) != 0 {
		t.Fatal("nil root should sample empty frame")
	}
}
