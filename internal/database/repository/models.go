package repository

import "github.com/shopspring/decimal"

// Period selects the dashboard summary window.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// Category represents a spend category with its share of the month.
type Category struct {
	ID        string
	Name      string
	Color     string
	Spend     decimal.Decimal
	SortOrder int
}

// Transaction represents a recent transaction row.
type Transaction struct {
	ID         string
	Title      string
	Icon       string
	CategoryID string
	Category   string // joined category name
	Amount     decimal.Decimal
	SortOrder  int
}

// PeriodSummary is the total spend of a period and its change.
type PeriodSummary struct {
	Period       Period
	Total        decimal.Decimal
	DeltaPct     int
	CompareLabel string // "last month", "last week"
}

// TrendPoint is one day of the weekly trend.
type TrendPoint struct {
	DayIndex int
	Label    string
	Amount   decimal.Decimal
}

// EMI is an active instalment plan.
type EMI struct {
	ID          string
	Title       string
	PerMonth    decimal.Decimal
	MonthsLeft  int
	TotalMonths int
	SortOrder   int
}

// Progress is the paid share in [0,1].
func (e EMI) Progress() float64 {
	if e.TotalMonths <= 0 {
		return 0
	}
	return float64(e.TotalMonths-e.MonthsLeft) / float64(e.TotalMonths)
}

// Insight is a one-line spending observation.
type Insight struct {
	ID        string
	Body      string
	SortOrder int
}
