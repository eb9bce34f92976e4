package cart

import (
	"context"
	"database/sql"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Items(ctx context.Context, sessionID string) ([]*Item, error)
	AddItem(ctx context.Context, sessionID string, productID int64, quantity int) error
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (bool, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (bool, error)
	Clear(ctx context.Context, sessionID string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Items(ctx context.Context, sessionID string) ([]*Item, error) {
	query := `
		SELECT
			ci.product_id, ci.quantity,
			p.name, p.price, p.image_url, p.stock, p.is_active,
			ci.created_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.session_id = $1
		ORDER BY ci.created_at ASC, ci.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query cart items", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	items := []*Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(
			&it.ProductID, &it.Quantity,
			&it.Name, &it.Price, &it.ImageURL, &it.Stock, &it.IsActive,
			&it.AddedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem creates the cart on first use and adds quantity to an existing line.
func (r *repository) AddItem(ctx context.Context, sessionID string, productID int64, quantity int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "AddItem"),
		zap.String("session_id", sessionID),
		zap.Int64("product_id", productID),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO carts (session_id) VALUES ($1)
		ON CONFLICT (session_id) DO UPDATE SET updated_at = NOW()
	`, sessionID); err != nil {
		log.Error("failed to upsert cart", zap.Error(err))
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO cart_items (session_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (session_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
	`, sessionID, productID, quantity); err != nil {
		log.Error("failed to upsert cart item", zap.Error(err))
		return err
	}

	return tx.Commit()
}

func (r *repository) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE cart_items SET quantity = $3, updated_at = NOW()
		WHERE session_id = $1 AND product_id = $2
	`, sessionID, productID, quantity)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update cart quantity", zap.Error(err))
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) RemoveItem(ctx context.Context, sessionID string, productID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE session_id = $1 AND product_id = $2`,
		sessionID, productID,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to remove cart item", zap.Error(err))
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *repository) Clear(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID); err != nil {
		logger.FromCtx(ctx).Error("failed to clear cart", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}
