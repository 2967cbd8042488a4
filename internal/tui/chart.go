package tui

import (
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart"
	tslc "github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/cashlyze/cashlyze/internal/database/repository"
	"github.com/cashlyze/cashlyze/internal/money"
	"github.com/cashlyze/cashlyze/internal/theme"
)

const trendChartHeight = 9

// trendWeekStart anchors the Mon..Sun trend to a fixed week; only weekday
// labels are shown so the actual dates never reach the screen.
var trendWeekStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) // a Monday

// renderTrendChart draws the weekly trend as a braille line chart.
func renderTrendChart(points []repository.TrendPoint, width int) string {
	if len(points) == 0 {
		return mutedStyle.Render("(no data)")
	}
	if width < 20 {
		width = 20
	}
	maxVal := 0.0
	for _, p := range points {
		if v := p.Amount.InexactFloat64(); v > maxVal {
			maxVal = v
		}
	}
	yMax := trendYMax(maxVal)

	labels := make(map[int64]string, len(points))
	start := trendWeekStart
	end := start.AddDate(0, 0, len(points)-1)
	for i, p := range points {
		labels[start.AddDate(0, 0, i).Unix()] = p.Label
	}

	chart := tslc.New(width, trendChartHeight)
	chart.SetXStep(1)
	chart.SetYStep(2)
	chart.SetStyle(lipgloss.NewStyle().Foreground(theme.Primary))
	chart.AxisStyle = lipgloss.NewStyle().Foreground(theme.DividerLight)
	chart.LabelStyle = lipgloss.NewStyle().Foreground(theme.SubtleTextLight)
	chart.SetTimeRange(start, end)
	chart.SetViewTimeRange(start, end)
	chart.SetYRange(0, yMax)
	chart.SetViewYRange(0, yMax)
	chart.Model.XLabelFormatter = trendXLabelFormatter(labels)
	chart.Model.YLabelFormatter = trendYLabelFormatter()

	for i, p := range points {
		chart.Push(tslc.TimePoint{Time: start.AddDate(0, 0, i), Value: p.Amount.InexactFloat64()})
	}
	chart.DrawBraille()
	return chart.View()
}

// trendYMax rounds the top of the axis up to a tidy step.
func trendYMax(maxVal float64) float64 {
	if maxVal <= 0 {
		return 100
	}
	step := math.Pow(10, math.Floor(math.Log10(maxVal)))
	if step >= 100 {
		step /= 2
	}
	return math.Ceil(maxVal/step) * step
}

func trendXLabelFormatter(labels map[int64]string) linechart.LabelFormatter {
	return func(_ int, v float64) string {
		ts := time.Unix(int64(math.Round(v)), 0).UTC()
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		return labels[day.Unix()]
	}
}

func trendYLabelFormatter() linechart.LabelFormatter {
	return func(_ int, v float64) string {
		return money.FormatInt("", int64(math.Round(v)))
	}
}

// renderShareBar draws a single-line stacked bar, one colored run per
// category sized by its share of the total.
func renderShareBar(cats []repository.Category, width int) string {
	if width <= 0 || len(cats) == 0 {
		return ""
	}
	total := 0.0
	for _, c := range cats {
		total += c.Spend.InexactFloat64()
	}
	if total <= 0 {
		return mutedStyle.Render(strings.Repeat("░", width))
	}
	var b strings.Builder
	used := 0
	for i, c := range cats {
		n := int(math.Round(c.Spend.InexactFloat64() / total * float64(width)))
		if i == len(cats)-1 {
			n = width - used
		}
		if used+n > width {
			n = width - used
		}
		if n <= 0 {
			continue
		}
		used += n
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render(strings.Repeat("█", n)))
	}
	return b.String()
}
