package analytics

import (
	"context"
	"database/sql"
	"time"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// OrdersBetween returns every order dated in [start, end] with its items.
	OrdersBetween(ctx context.Context, start, end time.Time) ([]OrderRecord, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OrdersBetween(ctx context.Context, start, end time.Time) ([]OrderRecord, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "OrdersBetween"),
	)

	query := `
		SELECT
			o.id, o.status, o.total, o.order_date,
			COALESCE(oi.product_id::text, ''),
			COALESCE(oi.name, ''),
			COALESCE(oi.quantity, 0),
			COALESCE(oi.price, 0)
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.order_date >= $1 AND o.order_date <= $2
		ORDER BY o.order_date, o.id, oi.id
	`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		log.Error("failed to query orders for analytics", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var (
		out     []OrderRecord
		current *OrderRecord
	)
	for rows.Next() {
		var (
			o  OrderRecord
			it ItemRecord
		)
		if err := rows.Scan(
			&o.ID, &o.Status, &o.Total, &o.OrderDate,
			&it.ProductRef, &it.Name, &it.Quantity, &it.Price,
		); err != nil {
			log.Error("failed to scan analytics row", zap.Error(err))
			return nil, err
		}

		if current == nil || current.ID != o.ID {
			out = append(out, o)
			current = &out[len(out)-1]
		}
		// orders without items come back as a single zero row
		if it.Quantity > 0 {
			current.Items = append(current.Items, it)
		}
	}

	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, err
	}

	log.Debug("OrdersBetween success", zap.Int("count", len(out)))
	return out, nil
}
