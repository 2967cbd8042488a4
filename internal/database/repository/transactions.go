package repository

import (
	"context"
	"database/sql"
)

// TransactionRepo handles recent transactions.
type TransactionRepo struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepo { return &TransactionRepo{db: db} }

func (r *TransactionRepo) Upsert(ctx context.Context, t Transaction) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO transactions(id, title, icon, category_id, amount, sort_order)
	VALUES(?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 icon=excluded.icon,
	 category_id=excluded.category_id,
	 amount=excluded.amount,
	 sort_order=excluded.sort_order;
	`, t.ID, t.Title, t.Icon, t.CategoryID, t.Amount.String(), t.SortOrder)
	return err
}

// Recent lists transactions newest first; limit <= 0 means all.
func (r *TransactionRepo) Recent(ctx context.Context, limit int) ([]Transaction, error) {
	q := `
	SELECT t.id, t.title, t.icon, t.category_id, c.name, t.amount, t.sort_order
	FROM transactions t
	JOIN categories c ON c.id = t.category_id
	ORDER BY t.sort_order, t.title`
	var args []interface{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.Title, &t.Icon, &t.CategoryID, &t.Category, &t.Amount, &t.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Count returns the number of stored transactions.
func (r *TransactionRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n)
	return n, err
}
