package menu

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]*Menu, error)
	GetByID(ctx context.Context, id int64) (*Menu, error)
	Create(ctx context.Context, m *Menu) (*Menu, error)
	Update(ctx context.Context, m *Menu) (*Menu, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const menuColumns = `id, name, location, items, is_active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMenu(row rowScanner) (*Menu, error) {
	var (
		m   Menu
		raw []byte
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Location, &raw, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.Items = []Item{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &m.Items); err != nil {
			return nil, fmt.Errorf("decode items of menu %d: %w", m.ID, err)
		}
	}
	return &m, nil
}

func encodeItems(items []Item) ([]byte, error) {
	if items == nil {
		items = []Item{}
	}
	return json.Marshal(items)
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Menu, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListMenus"),
	)

	query := `SELECT ` + menuColumns + ` FROM menus`
	where := []string{}
	args := []any{}

	if filter.Location != "" {
		where = append(where, fmt.Sprintf("location = $%d", len(args)+1))
		args = append(args, filter.Location)
	}
	if filter.ActiveOnly {
		where = append(where, "is_active = TRUE")
	}
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY location, name, id"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	menus := []*Menu{}
	for rows.Next() {
		m, err := scanMenu(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		menus = append(menus, m)
	}
	return menus, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Menu, error) {
	m, err := scanMenu(r.db.QueryRowContext(ctx, `SELECT `+menuColumns+` FROM menus WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get menu", zap.Int64("menu_id", id), zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (r *repository) Create(ctx context.Context, m *Menu) (*Menu, error) {
	raw, err := encodeItems(m.Items)
	if err != nil {
		return nil, err
	}

	created, err := scanMenu(r.db.QueryRowContext(ctx, `
		INSERT INTO menus (name, location, items, is_active)
		VALUES ($1, $2, $3::jsonb, $4)
		RETURNING `+menuColumns,
		m.Name, m.Location, raw, m.IsActive,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert menu", zap.String("name", m.Name), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update returns nil, nil when the menu does not exist.
func (r *repository) Update(ctx context.Context, m *Menu) (*Menu, error) {
	raw, err := encodeItems(m.Items)
	if err != nil {
		return nil, err
	}

	updated, err := scanMenu(r.db.QueryRowContext(ctx, `
		UPDATE menus
		SET name = $2, location = $3, items = $4::jsonb, is_active = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING `+menuColumns,
		m.ID, m.Name, m.Location, raw, m.IsActive,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update menu", zap.Int64("menu_id", m.ID), zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *repository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menus WHERE id = $1`, id)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete menu", zap.Int64("menu_id", id), zap.Error(err))
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
