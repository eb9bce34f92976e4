package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"grocery-be/internal/db"
	"grocery-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Product, int64, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*Product, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productSelect = `
	SELECT
		p.id, p.category_id, COALESCE(c.name, ''),
		p.name, p.slug, p.description,
		p.price, p.compare_at_price, p.unit, p.stock,
		p.image_url, p.is_active, p.created_at, p.updated_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*Product, error) {
	var (
		p          Product
		categoryID sql.NullInt64
		compareAt  sql.NullFloat64
	)
	if err := row.Scan(
		&p.ID, &categoryID, &p.CategoryName,
		&p.Name, &p.Slug, &p.Description,
		&p.Price, &compareAt, &p.Unit, &p.Stock,
		&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if categoryID.Valid {
		id := categoryID.Int64
		p.CategoryID = &id
	}
	if compareAt.Valid {
		v := compareAt.Float64
		p.CompareAtPrice = &v
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Product, int64, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
		zap.Int("page", filter.Page),
		zap.Int("limit", filter.Limit),
	)

	where := []string{}
	args := []any{}

	// ---------- FILTER ----------
	if filter.CategoryID > 0 {
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)+1))
		args = append(args, filter.CategoryID)
	}
	if filter.CategorySlug != "" {
		where = append(where, fmt.Sprintf("c.slug = $%d", len(args)+1))
		args = append(args, filter.CategorySlug)
	}
	if filter.Search != "" {
		where = append(where, fmt.Sprintf("(p.name ILIKE $%d OR p.description ILIKE $%d)", len(args)+1, len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.InStock {
		where = append(where, "p.stock > 0")
	}
	if filter.ActiveOnly {
		where = append(where, "p.is_active = TRUE")
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	// ---------- COUNT ----------
	var total int64
	countQuery := `SELECT COUNT(*) FROM products p LEFT JOIN categories c ON c.id = p.category_id` + whereSQL
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count products", zap.Error(err))
		return nil, 0, err
	}

	// ---------- PAGINATION ----------
	offset := (filter.Page - 1) * filter.Limit
	query := productSelect + whereSQL + " ORDER BY p.created_at DESC, p.id DESC" +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, offset)

	log.Debug("executing list products query", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", zap.Error(err))
			return nil, 0, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration error", zap.Error(err))
		return nil, 0, err
	}

	return products, total, nil
}

func (r *repository) getOne(ctx context.Context, where string, arg any) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+" WHERE "+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get product", zap.Any("key", arg), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Product, error) {
	return r.getOne(ctx, "p.id = $1", id)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	return r.getOne(ctx, "p.slug = $1", slug)
}

// GetByIDs loads products for pricing a cart or checkout. Missing ids are
// absent from the result.
func (r *repository) GetByIDs(ctx context.Context, ids []int64) (map[int64]*Product, error) {
	out := make(map[int64]*Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	rows, err := r.db.QueryContext(ctx, productSelect+" WHERE p.id = ANY($1)", pq.Array(ids))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get products by ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *repository) translate(ctx context.Context, err error, msg string, p *Product) error {
	switch {
	case db.IsUniqueViolation(err):
		return ErrDuplicateSlug
	case db.IsForeignKeyViolation(err):
		return ErrCategoryNotFound
	}
	logger.FromCtx(ctx).Error(msg, zap.String("slug", p.Slug), zap.Error(err))
	return err
}

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	query := `
		WITH inserted AS (
			INSERT INTO products (
				category_id, name, slug, description,
				price, compare_at_price, unit, stock,
				image_url, is_active
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING *
		)
		SELECT
			p.id, p.category_id, COALESCE(c.name, ''),
			p.name, p.slug, p.description,
			p.price, p.compare_at_price, p.unit, p.stock,
			p.image_url, p.is_active, p.created_at, p.updated_at
		FROM inserted p
		LEFT JOIN categories c ON c.id = p.category_id
	`

	created, err := scanProduct(r.db.QueryRowContext(ctx, query,
		p.CategoryID, p.Name, p.Slug, p.Description,
		p.Price, p.CompareAtPrice, p.Unit, p.Stock,
		p.ImageURL, p.IsActive,
	))
	if err != nil {
		return nil, r.translate(ctx, err, "failed to insert product", p)
	}
	return created, nil
}

// Update returns nil, nil when the product does not exist.
func (r *repository) Update(ctx context.Context, p *Product) (*Product, error) {
	query := `
		WITH updated AS (
			UPDATE products SET
				category_id = $2, name = $3, slug = $4, description = $5,
				price = $6, compare_at_price = $7, unit = $8, stock = $9,
				image_url = $10, is_active = $11, updated_at = NOW()
			WHERE id = $1
			RETURNING *
		)
		SELECT
			p.id, p.category_id, COALESCE(c.name, ''),
			p.name, p.slug, p.description,
			p.price, p.compare_at_price, p.unit, p.stock,
			p.image_url, p.is_active, p.created_at, p.updated_at
		FROM updated p
		LEFT JOIN categories c ON c.id = p.category_id
	`

	updated, err := scanProduct(r.db.QueryRowContext(ctx, query,
		p.ID, p.CategoryID, p.Name, p.Slug, p.Description,
		p.Price, p.CompareAtPrice, p.Unit, p.Stock,
		p.ImageURL, p.IsActive,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.translate(ctx, err, "failed to update product", p)
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete product", zap.Int64("product_id", id), zap.Error(err))
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
