// Package theme holds the design tokens shared by every screen.
package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	Primary         lipgloss.Color = "#2A9D8F"
	Accent          lipgloss.Color = "#E9C46A"
	Error           lipgloss.Color = "#E76F51"
	Success         lipgloss.Color = "#2F9E44"
	BackgroundLight lipgloss.Color = "#F7FAFC"
	BackgroundDark  lipgloss.Color = "#0B1220"
	TextLight       lipgloss.Color = "#0F172A"
	SubtleTextLight lipgloss.Color = "#64748B"
	DividerLight    lipgloss.Color = "#E2E8F0"
	DividerDark     lipgloss.Color = "#334155"
	// Insight is the second stop of the insight bubble gradient.
	Insight lipgloss.Color = "#10B981"
)

// Category colors used by the spend breakdown.
const (
	CategoryFood     lipgloss.Color = "#10B981"
	CategoryTravel   lipgloss.Color = "#3B82F6"
	CategoryShopping lipgloss.Color = "#F59E0B"
	CategoryBills    lipgloss.Color = "#EF4444"
	CategoryMisc     lipgloss.Color = "#6B7280"
)

// Counter demo button colors.
const (
	ButtonPrimary   lipgloss.Color = "#2563eb"
	ButtonSecondary lipgloss.Color = "#ef4444"
)

// Palette returns every token for validation.
func Palette() []lipgloss.Color {
	return []lipgloss.Color{
		Primary, Accent, Error, Success,
		BackgroundLight, BackgroundDark, TextLight, SubtleTextLight,
		DividerLight, DividerDark, Insight,
		CategoryFood, CategoryTravel, CategoryShopping, CategoryBills, CategoryMisc,
		ButtonPrimary, ButtonSecondary,
	}
}

// Blend mixes from toward to by t in [0,1]. Terminals have no alpha, so
// opacity is drawn as a blend against the background color.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	t = math.Max(0, math.Min(1, t))
	fr, fg, fb, ok1 := parseHex(string(from))
	tr, tg, tb, ok2 := parseHex(string(to))
	if !ok1 || !ok2 {
		if t < 0.5 {
			return from
		}
		return to
	}
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", mix(fr, tr), mix(fg, tg), mix(fb, tb)))
}

func parseHex(s string) (r, g, b uint8, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
