package platform

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ErrOverlayHidden is returned when the overlay was already dismissed.
var ErrOverlayHidden = errors.New("overlay already hidden")

// Overlay is the host-level splash shown before the first frame.
type Overlay interface {
	Hide() error
}

// TerminalOverlay prints a launch banner before the TUI takes over the
// screen. The banner can only be erased while the cursor still sits right
// below it, so Handoff erases it just before the renderer starts; once
// handed off, Hide records the dismissal without touching the terminal.
type TerminalOverlay struct {
	w         io.Writer
	lines     int
	shown     bool
	erased    bool
	handedOff bool
	hidden    bool
}

func NewTerminalOverlay(w io.Writer) *TerminalOverlay {
	return &TerminalOverlay{w: w}
}

// Show writes the banner. It is shown at most once and never after Handoff.
func (o *TerminalOverlay) Show(text string) error {
	if o.shown || o.handedOff || o.w == nil {
		return nil
	}
	o.shown = true
	o.lines = strings.Count(text, "\n") + 1
	if _, err := fmt.Fprintln(o.w, text); err != nil {
		return fmt.Errorf("show overlay: %w", err)
	}
	return nil
}

// Handoff erases the banner and gives the terminal to the renderer. Call it
// after startup work and immediately before the program runs; nothing may
// be written to the terminal between Show and Handoff.
func (o *TerminalOverlay) Handoff() error {
	if o.handedOff {
		return nil
	}
	o.handedOff = true
	return o.erase()
}

// Hide dismisses the banner. After Handoff the terminal belongs to the
// renderer, so Hide writes nothing. A second call returns ErrOverlayHidden.
func (o *TerminalOverlay) Hide() error {
	if o.hidden {
		return ErrOverlayHidden
	}
	o.hidden = true
	if o.handedOff {
		return nil
	}
	return o.erase()
}

func (o *TerminalOverlay) erase() error {
	if !o.shown || o.erased || o.w == nil {
		return nil
	}
	o.erased = true
	var b strings.Builder
	for i := 0; i < o.lines; i++ {
		b.WriteString(ansi.CursorUp(1))
		b.WriteString(ansi.EraseEntireLine)
	}
	if _, err := io.WriteString(o.w, b.String()); err != nil {
		return fmt.Errorf("hide overlay: %w", err)
	}
	return nil
}
