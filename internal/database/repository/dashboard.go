package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// DashboardRepo reads and writes the summary data behind the home screen.
type DashboardRepo struct {
	db *sql.DB
}

func NewDashboardRepo(db *sql.DB) *DashboardRepo { return &DashboardRepo{db: db} }

func (r *DashboardRepo) UpsertSummary(ctx context.Context, s PeriodSummary) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO period_summaries(period, total, delta_pct, compare_label)
	VALUES(?, ?, ?, ?)
	ON CONFLICT(period) DO UPDATE SET
	 total=excluded.total,
	 delta_pct=excluded.delta_pct,
	 compare_label=excluded.compare_label;
	`, string(s.Period), s.Total.String(), s.DeltaPct, s.CompareLabel)
	return err
}

func (r *DashboardRepo) Summary(ctx context.Context, p Period) (PeriodSummary, error) {
	var s PeriodSummary
	var period string
	err := r.db.QueryRowContext(ctx, `SELECT period, total, delta_pct, compare_label FROM period_summaries WHERE period = ?`, string(p)).
		Scan(&period, &s.Total, &s.DeltaPct, &s.CompareLabel)
	if errors.Is(err, sql.ErrNoRows) {
		return PeriodSummary{}, fmt.Errorf("summary %q: %w", p, ErrNotFound)
	}
	if err != nil {
		return PeriodSummary{}, err
	}
	s.Period = Period(period)
	return s, nil
}

func (r *DashboardRepo) UpsertTrendPoint(ctx context.Context, p TrendPoint) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO weekly_trend(day_index, label, amount) VALUES(?, ?, ?)
	ON CONFLICT(day_index) DO UPDATE SET label=excluded.label, amount=excluded.amount;
	`, p.DayIndex, p.Label, p.Amount.String())
	return err
}

// WeeklyTrend lists the trend in day order.
func (r *DashboardRepo) WeeklyTrend(ctx context.Context) ([]TrendPoint, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT day_index, label, amount FROM weekly_trend ORDER BY day_index`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []TrendPoint
	for rows.Next() {
		var p TrendPoint
		if err := rows.Scan(&p.DayIndex, &p.Label, &p.Amount); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) UpsertEMI(ctx context.Context, e EMI) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO emis(id, title, per_month, months_left, total_months, sort_order)
	VALUES(?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 per_month=excluded.per_month,
	 months_left=excluded.months_left,
	 total_months=excluded.total_months,
	 sort_order=excluded.sort_order;
	`, e.ID, e.Title, e.PerMonth.String(), e.MonthsLeft, e.TotalMonths, e.SortOrder)
	return err
}

// ActiveEMIs lists plans with months left.
func (r *DashboardRepo) ActiveEMIs(ctx context.Context) ([]EMI, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, per_month, months_left, total_months, sort_order
	FROM emis WHERE months_left > 0 ORDER BY sort_order, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []EMI
	for rows.Next() {
		var e EMI
		if err := rows.Scan(&e.ID, &e.Title, &e.PerMonth, &e.MonthsLeft, &e.TotalMonths, &e.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *DashboardRepo) UpsertInsight(ctx context.Context, in Insight) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO insights(id, body, sort_order) VALUES(?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET body=excluded.body, sort_order=excluded.sort_order;
	`, in.ID, in.Body, in.SortOrder)
	return err
}

// Insight returns the first insight, ErrNotFound when there is none.
func (r *DashboardRepo) Insight(ctx context.Context) (Insight, error) {
	var in Insight
	err := r.db.QueryRowContext(ctx, `SELECT id, body, sort_order FROM insights ORDER BY sort_order LIMIT 1`).
		Scan(&in.ID, &in.Body, &in.SortOrder)
	if errors.Is(err, sql.ErrNoRows) {
		return Insight{}, fmt.Errorf("insight: %w", ErrNotFound)
	}
	return in, err
}
