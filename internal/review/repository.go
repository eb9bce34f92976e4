package review

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"grocery-be/internal/db"
	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Create(ctx context.Context, r *Review) (*Review, error)
	List(ctx context.Context, filter ListFilter) ([]*Review, int64, error)
	Rating(ctx context.Context, productID int64) (*ProductRating, error)
	Approve(ctx context.Context, id int64) (*Review, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReview(row rowScanner) (*Review, error) {
	var r Review
	if err := row.Scan(
		&r.ID, &r.ProductID, &r.ProductName, &r.CustomerName,
		&r.Rating, &r.Comment, &r.IsApproved, &r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *repository) Create(ctx context.Context, rv *Review) (*Review, error) {
	created, err := scanReview(r.db.QueryRowContext(ctx, `
		WITH inserted AS (
			INSERT INTO reviews (product_id, customer_name, rating, comment, is_approved)
			VALUES ($1, $2, $3, $4, FALSE)
			RETURNING *
		)
		SELECT i.id, i.product_id, p.name, i.customer_name, i.rating, i.comment, i.is_approved, i.created_at
		FROM inserted i
		JOIN products p ON p.id = i.product_id
	`, rv.ProductID, rv.CustomerName, rv.Rating, rv.Comment))
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, ErrProductNotFound
		}
		logger.FromCtx(ctx).Error("failed to insert review", zap.Int64("product_id", rv.ProductID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Review, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListReviews"),
	)

	where := []string{}
	args := []any{}
	if filter.ProductID > 0 {
		args = append(args, filter.ProductID)
		where = append(where, fmt.Sprintf("r.product_id = $%d", len(args)))
	}
	if filter.Approved != nil {
		args = append(args, *filter.Approved)
		where = append(where, fmt.Sprintf("r.is_approved = $%d", len(args)))
	}
	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews r`+whereSQL, args...).Scan(&total); err != nil {
		log.Error("failed to count reviews", zap.Error(err))
		return nil, 0, err
	}

	query := `
		SELECT r.id, r.product_id, p.name, r.customer_name, r.rating, r.comment, r.is_approved, r.created_at
		FROM reviews r
		JOIN products p ON p.id = r.product_id` + whereSQL +
		` ORDER BY r.created_at DESC, r.id DESC` +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query reviews", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	reviews := []*Review{}
	for rows.Next() {
		rv, err := scanReview(rows)
		if err != nil {
			return nil, 0, err
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *repository) Rating(ctx context.Context, productID int64) (*ProductRating, error) {
	var (
		pr  ProductRating
		avg sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(rating)
		FROM reviews
		WHERE product_id = $1 AND is_approved = TRUE
	`, productID).Scan(&pr.Count, &avg)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to aggregate rating", zap.Int64("product_id", productID), zap.Error(err))
		return nil, err
	}
	if avg.Valid {
		pr.Average = math.Round(avg.Float64*10) / 10
	}
	return &pr, nil
}

// Approve returns nil, nil when the review does not exist.
func (r *repository) Approve(ctx context.Context, id int64) (*Review, error) {
	rv, err := scanReview(r.db.QueryRowContext(ctx, `
		UPDATE reviews r
		SET is_approved = TRUE
		FROM products p
		WHERE r.id = $1 AND p.id = r.product_id
		RETURNING r.id, r.product_id, p.name, r.customer_name, r.rating, r.comment, r.is_approved, r.created_at
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to approve review", zap.Int64("review_id", id), zap.Error(err))
		return nil, err
	}
	return rv, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete review", zap.Int64("review_id", id), zap.Error(err))
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
