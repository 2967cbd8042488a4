package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashlyze/cashlyze/internal/database/repository"
	"github.com/cashlyze/cashlyze/internal/theme"
)

func seedID(kind, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+name)).String()
}

type seedCategory struct {
	name  string
	color string
	spend int64
}

var mockCategories = []seedCategory{
	{"Food", string(theme.CategoryFood), 5400},
	{"Travel", string(theme.CategoryTravel), 2300},
	{"Shopping", string(theme.CategoryShopping), 1200},
	{"Bills", string(theme.CategoryBills), 1800},
	{"Misc", string(theme.CategoryMisc), 640},
}

var mockTransactions = []struct {
	icon, title, category string
	amount                int64
}{
	{"fast-food", "Zomato", "Food", 540},
	{"local-taxi", "Uber", "Travel", 230},
	{"shopping-cart", "Amazon", "Shopping", 1200},
	{"receipt", "Electricity Bill", "Bills", 1450},
}

var mockTrend = []struct {
	label  string
	amount int64
}{
	{"Mon", 420}, {"Tue", 310}, {"Wed", 560}, {"Thu", 280}, {"Fri", 730}, {"Sat", 640}, {"Sun", 390},
}

var mockEMIs = []struct {
	title                   string
	perMonth                int64
	monthsLeft, totalMonths int
}{
	{"Laptop EMI", 4500, 6, 12},
	{"Credit Card EMI", 3200, 3, 9},
}

// SeedMockData fills the dashboard tables with the demo data set. It is
// idempotent and safe to run on every startup.
func SeedMockData(ctx context.Context, db *sql.DB) error {
	cats := repository.NewCategoryRepo(db)
	txs := repository.NewTransactionRepo(db)
	dash := repository.NewDashboardRepo(db)

	for i, c := range mockCategories {
		err := cats.Upsert(ctx, repository.Category{
			ID:        seedID("cat", c.name),
			Name:      c.name,
			Color:     c.color,
			Spend:     decimal.NewFromInt(c.spend),
			SortOrder: i,
		})
		if err != nil {
			return fmt.Errorf("seed category %s: %w", c.name, err)
		}
	}
	for i, t := range mockTransactions {
		err := txs.Upsert(ctx, repository.Transaction{
			ID:         seedID("txn", t.title),
			Title:      t.title,
			Icon:       t.icon,
			CategoryID: seedID("cat", t.category),
			Amount:     decimal.NewFromInt(t.amount),
			SortOrder:  i,
		})
		if err != nil {
			return fmt.Errorf("seed transaction %s: %w", t.title, err)
		}
	}
	summaries := []repository.PeriodSummary{
		{Period: repository.PeriodMonth, Total: decimal.NewFromInt(12340), DeltaPct: 8, CompareLabel: "last month"},
		{Period: repository.PeriodWeek, Total: decimal.NewFromInt(3560), DeltaPct: 3, CompareLabel: "last week"},
	}
	for _, s := range summaries {
		if err := dash.UpsertSummary(ctx, s); err != nil {
			return fmt.Errorf("seed summary %s: %w", s.Period, err)
		}
	}
	for i, p := range mockTrend {
		if err := dash.UpsertTrendPoint(ctx, repository.TrendPoint{DayIndex: i, Label: p.label, Amount: decimal.NewFromInt(p.amount)}); err != nil {
			return fmt.Errorf("seed trend %s: %w", p.label, err)
		}
	}
	for i, e := range mockEMIs {
		err := dash.UpsertEMI(ctx, repository.EMI{
			ID:          seedID("emi", e.title),
			Title:       e.title,
			PerMonth:    decimal.NewFromInt(e.perMonth),
			MonthsLeft:  e.monthsLeft,
			TotalMonths: e.totalMonths,
			SortOrder:   i,
		})
		if err != nil {
			return fmt.Errorf("seed emi %s: %w", e.title, err)
		}
	}
	insight := repository.Insight{ID: seedID("insight", "food-week"), Body: "You spent 12% more on food this week 🍔"}
	if err := dash.UpsertInsight(ctx, insight); err != nil {
		return fmt.Errorf("seed insight: %w", err)
	}
	return nil
}
