package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"grocery-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	// Create inserts the order with its items and reserves stock in one
	// transaction.
	Create(ctx context.Context, o *Order) (*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
	// FindForCourier matches on consignment id first, then on order number.
	FindForCourier(ctx context.Context, consignmentID, invoice string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, int64, error)
	UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error)
	UpdateCourier(ctx context.Context, id int64, update CourierUpdate) (*Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = `
	o.id, o.order_number,
	o.customer_name, o.customer_phone, o.customer_email, o.customer_address, o.notes,
	o.subtotal, o.tax, o.shipping, o.total, o.status,
	o.consignment_id, o.tracking_code, o.courier_status,
	o.order_date, o.created_at, o.updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*Order, error) {
	var o Order
	if err := row.Scan(
		&o.ID, &o.OrderNumber,
		&o.CustomerName, &o.CustomerPhone, &o.CustomerEmail, &o.CustomerAddress, &o.Notes,
		&o.Subtotal, &o.Tax, &o.Shipping, &o.Total, &o.Status,
		&o.ConsignmentID, &o.TrackingCode, &o.CourierStatus,
		&o.OrderDate, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *repository) Create(ctx context.Context, o *Order) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateOrder"),
		zap.String("order_number", o.OrderNumber),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// 1. Insert order
	created, err := scanOrder(tx.QueryRowContext(ctx, `
		INSERT INTO orders AS o (
			order_number, customer_name, customer_phone, customer_email,
			customer_address, notes, subtotal, tax, shipping, total,
			status, order_date
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+orderColumns,
		o.OrderNumber, o.CustomerName, o.CustomerPhone, o.CustomerEmail,
		o.CustomerAddress, o.Notes, o.Subtotal, o.Tax, o.Shipping, o.Total,
		o.Status, o.OrderDate,
	))
	if err != nil {
		log.Error("failed to insert order", zap.Error(err))
		return nil, err
	}

	// 2. Insert items and reserve stock
	for _, it := range o.Items {
		var itemID int64
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, name, price, image_url, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, created.ID, it.ProductID, it.Name, it.Price, it.ImageURL, it.Quantity).Scan(&itemID); err != nil {
			log.Error("failed to insert order item", zap.Error(err))
			return nil, err
		}
		it.ID = itemID
		it.OrderID = created.ID
		created.Items = append(created.Items, it)

		if it.ProductID == nil {
			continue
		}
		res, err := tx.ExecContext(ctx, `
			UPDATE products
			SET stock = stock - $1, updated_at = NOW()
			WHERE id = $2 AND stock >= $1
		`, it.Quantity, *it.ProductID)
		if err != nil {
			log.Error("failed to reserve stock", zap.Error(err))
			return nil, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			log.Warn("stock changed during checkout", zap.Int64("product_id", *it.ProductID))
			return nil, ErrInsufficientStock
		}
	}

	// 3. Commit
	if err := tx.Commit(); err != nil {
		log.Error("failed to commit order", zap.Error(err))
		return nil, err
	}

	return created, nil
}

func (r *repository) itemsFor(ctx context.Context, ids []int64) (map[int64][]Item, error) {
	out := make(map[int64][]Item, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, name, price, image_url, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id
	`, pq.Array(ids))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query order items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			it        Item
			productID sql.NullInt64
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &productID, &it.Name, &it.Price, &it.ImageURL, &it.Quantity); err != nil {
			return nil, err
		}
		if productID.Valid {
			id := productID.Int64
			it.ProductID = &id
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

func (r *repository) getOne(ctx context.Context, where string, args ...any) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders o WHERE `+where, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get order", zap.Any("args", args), zap.Error(err))
		return nil, err
	}

	items, err := r.itemsFor(ctx, []int64{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return o, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Order, error) {
	return r.getOne(ctx, "o.id = $1", id)
}

func (r *repository) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	return r.getOne(ctx, "o.order_number = $1", orderNumber)
}

func (r *repository) FindForCourier(ctx context.Context, consignmentID, invoice string) (*Order, error) {
	return r.getOne(ctx, `
		(o.consignment_id <> '' AND o.consignment_id = $1) OR o.order_number = $2
		ORDER BY (o.consignment_id = $1) DESC
		LIMIT 1`, consignmentID, invoice)
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Order, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListOrders"),
		zap.Int("limit", filter.Limit),
		zap.Int("page", filter.Page),
	)

	where := []string{}
	args := []any{}
	argIndex := 1

	// ---------- FILTERING ----------
	if filter.Status != "" {
		where = append(where, fmt.Sprintf("o.status = $%d", argIndex))
		args = append(args, filter.Status)
		argIndex++
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(o.order_number ILIKE $%d OR o.customer_name ILIKE $%d OR o.customer_phone ILIKE $%d)",
			argIndex, argIndex, argIndex,
		))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}
	if filter.From != nil {
		where = append(where, fmt.Sprintf("o.order_date >= $%d", argIndex))
		args = append(args, *filter.From)
		argIndex++
	}
	if filter.To != nil {
		where = append(where, fmt.Sprintf("o.order_date <= $%d", argIndex))
		args = append(args, *filter.To)
		argIndex++
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM orders o`+whereSQL, args...).Scan(&total); err != nil {
		log.Error("failed to count orders", zap.Error(err))
		return nil, 0, err
	}

	// ---------- PAGINATION ----------
	offset := (filter.Page - 1) * filter.Limit
	query := `SELECT ` + orderColumns + ` FROM orders o` + whereSQL +
		` ORDER BY o.order_date DESC, o.id DESC` +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, filter.Limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query orders", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	orders := []*Order{}
	ids := []int64{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			log.Error("failed to scan order row", zap.Error(err))
			return nil, 0, err
		}
		orders = append(orders, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, 0, err
	}

	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for _, o := range orders {
		o.Items = items[o.ID]
	}

	log.Info("list orders success", zap.Int("count", len(orders)))
	return orders, total, nil
}

// UpdateStatus returns nil, nil when the order does not exist.
func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		UPDATE orders o SET status = $2, updated_at = NOW()
		WHERE o.id = $1
		RETURNING `+orderColumns, id, status))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update order status", zap.Int64("order_id", id), zap.Error(err))
		return nil, err
	}
	return o, nil
}

// UpdateCourier returns nil, nil when the order does not exist.
func (r *repository) UpdateCourier(ctx context.Context, id int64, u CourierUpdate) (*Order, error) {
	o, err := scanOrder(r.db.QueryRowContext(ctx, `
		UPDATE orders o SET
			consignment_id = COALESCE(NULLIF($2, ''), o.consignment_id),
			tracking_code = COALESCE(NULLIF($3, ''), o.tracking_code),
			courier_status = COALESCE(NULLIF($4, ''), o.courier_status),
			status = COALESCE(NULLIF($5, ''), o.status),
			updated_at = NOW()
		WHERE o.id = $1
		RETURNING `+orderColumns,
		id, u.ConsignmentID, u.TrackingCode, u.CourierStatus, string(u.Status),
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update courier fields", zap.Int64("order_id", id), zap.Error(err))
		return nil, err
	}
	return o, nil
}
