package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, t *Transaction) (*Transaction, error)
	List(ctx context.Context, filter ListFilter) ([]*Transaction, int64, error)
	// Between returns every transaction in the optional [from, to] range.
	Between(ctx context.Context, from, to *time.Time) ([]*Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const transactionColumns = `id, type, category, amount, description, date, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*Transaction, error) {
	var t Transaction
	if err := row.Scan(&t.ID, &t.Type, &t.Category, &t.Amount, &t.Description, &t.Date, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Create(ctx context.Context, t *Transaction) (*Transaction, error) {
	created, err := scanTransaction(r.db.QueryRowContext(ctx, `
		INSERT INTO transactions (type, category, amount, description, date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+transactionColumns,
		t.Type, t.Category, t.Amount, t.Description, t.Date,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert transaction", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func buildWhere(filter ListFilter) (string, []any) {
	where := []string{}
	args := []any{}

	if filter.Type != "" {
		where = append(where, fmt.Sprintf("type = $%d", len(args)+1))
		args = append(args, filter.Type)
	}
	if filter.Category != "" {
		where = append(where, fmt.Sprintf("category = $%d", len(args)+1))
		args = append(args, filter.Category)
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("date >= $%d", len(args)+1))
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("date <= $%d", len(args)+1))
		args = append(args, *filter.To)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func (r *repository) query(ctx context.Context, query string, args ...any) ([]*Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []*Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Transaction, int64, error) {
	whereSQL, args := buildWhere(filter)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`+whereSQL, args...).Scan(&total); err != nil {
		logger.FromCtx(ctx).Error("failed to count transactions", zap.Error(err))
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := `SELECT ` + transactionColumns + ` FROM transactions` + whereSQL +
		` ORDER BY date DESC, id DESC` +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, offset)

	ts, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return ts, total, nil
}

func (r *repository) Between(ctx context.Context, from, to *time.Time) ([]*Transaction, error) {
	whereSQL, args := buildWhere(ListFilter{From: from, To: to})
	return r.query(ctx, `SELECT `+transactionColumns+` FROM transactions`+whereSQL+` ORDER BY date, id`, args...)
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete transaction", zap.Int64("transaction_id", id), zap.Error(err))
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
