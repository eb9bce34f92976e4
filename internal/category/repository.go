package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"grocery-be/internal/db"
	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Category, error)
	GetByID(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, c *Category) (*Category, error)
	Update(ctx context.Context, c *Category) (*Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const categorySelect = `
	SELECT
		c.id, c.name, c.slug, c.description, c.image_url,
		c.sort_order, c.is_active,
		(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS product_count,
		c.created_at, c.updated_at
	FROM categories c
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCategory(row rowScanner) (*Category, error) {
	var c Category
	if err := row.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.ImageURL,
		&c.SortOrder, &c.IsActive, &c.ProductCount,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListCategories"),
	)

	query := categorySelect
	where := []string{}
	args := []any{}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf("c.name ILIKE $%d", len(args)+1))
		args = append(args, "%"+filter.Search+"%")
	}
	if filter.ActiveOnly {
		where = append(where, "c.is_active = TRUE")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY c.sort_order ASC, c.name ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return categories, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Category, error) {
	c, err := scanCategory(r.db.QueryRowContext(ctx, categorySelect+" WHERE c.id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get category", zap.Int64("category_id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *repository) Create(ctx context.Context, c *Category) (*Category, error) {
	query := `
		INSERT INTO categories (name, slug, description, image_url, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, slug, description, image_url, sort_order, is_active, 0, created_at, updated_at
	`

	created, err := scanCategory(r.db.QueryRowContext(ctx, query,
		c.Name, c.Slug, c.Description, c.ImageURL, c.SortOrder, c.IsActive,
	))
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		logger.FromCtx(ctx).Error("failed to insert category", zap.String("slug", c.Slug), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update returns nil, nil when the category does not exist.
func (r *repository) Update(ctx context.Context, c *Category) (*Category, error) {
	query := `
		UPDATE categories c
		SET name = $2, slug = $3, description = $4, image_url = $5,
			sort_order = $6, is_active = $7, updated_at = NOW()
		WHERE c.id = $1
		RETURNING c.id, c.name, c.slug, c.description, c.image_url, c.sort_order, c.is_active,
			(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id),
			c.created_at, c.updated_at
	`

	updated, err := scanCategory(r.db.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Slug, c.Description, c.ImageURL, c.SortOrder, c.IsActive,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, ErrDuplicateSlug
		}
		logger.FromCtx(ctx).Error("failed to update category", zap.Int64("category_id", c.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return false, ErrCategoryInUse
		}
		logger.FromCtx(ctx).Error("failed to delete category", zap.Int64("category_id", id), zap.Error(err))
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
