package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cashlyze/cashlyze/internal/database/repository"
)

func openTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, RunMigrations(dsn))
	return db, dsn
}

func TestWithPragmas(t *testing.T) {
	cases := map[string]string{
		"cashlyze.db":                     "file:cashlyze.db?_foreign_keys=on&_busy_timeout=5000",
		"file:x?mode=memory&cache=shared": "file:x?mode=memory&cache=shared&_foreign_keys=on&_busy_timeout=5000",
		"file:y?_foreign_keys=off":        "file:y?_foreign_keys=off&_busy_timeout=5000",
	}
	for in, want := range cases {
		if got := withPragmas(in); got != want {
			t.Errorf("withPragmas(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMigrationsAreRepeatable(t *testing.T) {
	_, dsn := openTestDB(t)
	require.NoError(t, RunMigrations(dsn))
}

func TestSeedMockDataIsIdempotent(t *testing.T) {
	db, _ := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, SeedMockData(ctx, db))
	require.NoError(t, SeedMockData(ctx, db))

	n, err := repository.NewTransactionRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	cats, err := repository.NewCategoryRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 5)
	require.Equal(t, "Food", cats[0].Name)
	require.Equal(t, "5400", cats[0].Spend.String())
	require.Equal(t, "#10B981", cats[0].Color)
}

func TestDashboardQueries(t *testing.T) {
	db, _ := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, SeedMockData(ctx, db))
	dash := repository.NewDashboardRepo(db)

	month, err := dash.Summary(ctx, repository.PeriodMonth)
	require.NoError(t, err)
	require.Equal(t, "12340", month.Total.String())
	require.Equal(t, 8, month.DeltaPct)
	require.Equal(t, "last month", month.CompareLabel)

	week, err := dash.Summary(ctx, repository.PeriodWeek)
	require.NoError(t, err)
	require.Equal(t, "3560", week.Total.String())

	_, err = dash.Summary(ctx, repository.Period("year"))
	require.True(t, errors.Is(err, repository.ErrNotFound))

	trend, err := dash.WeeklyTrend(ctx)
	require.NoError(t, err)
	require.Len(t, trend, 7)
	require.Equal(t, "Mon", trend[0].Label)
	require.Equal(t, "730", trend[4].Amount.String())

	emis, err := dash.ActiveEMIs(ctx)
	require.NoError(t, err)
	require.Len(t, emis, 2)
	require.Equal(t, "Laptop EMI", emis[0].Title)
	require.InDelta(t, 0.5, emis[0].Progress(), 1e-9)
	require.InDelta(t, 6.0/9.0, emis[1].Progress(), 1e-9)

	in, err := dash.Insight(ctx)
	require.NoError(t, err)
	require.Contains(t, in.Body, "12% more on food")
}

func TestRecentTransactionsLimit(t *testing.T) {
	db, _ := openTestDB(t)
	ctx := context.Background()
	require.NoError(t, SeedMockData(ctx, db))
	repo := repository.NewTransactionRepo(db)

	top, err := repo.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, "Zomato", top[0].Title)
	require.Equal(t, "Food", top[0].Category)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "Electricity Bill", all[3].Title)
}

func TestPaidOffEMIsAreHidden(t *testing.T) {
	db, _ := openTestDB(t)
	ctx := context.Background()
	dash := repository.NewDashboardRepo(db)
	require.NoError(t, dash.UpsertEMI(ctx, repository.EMI{ID: "done", Title: "Phone", MonthsLeft: 0, TotalMonths: 6}))
	emis, err := dash.ActiveEMIs(ctx)
	require.NoError(t, err)
	require.Empty(t, emis)
}

func TestWithTxRollsBack(t *testing.T) {
	db, _ := openTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")
	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO insights(id, body) VALUES('x', 'y')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = repository.NewDashboardRepo(db).Insight(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
