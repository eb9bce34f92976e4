package module

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	Get(ctx context.Context, moduleID string) (*Entitlement, error)
	List(ctx context.Context) ([]*Entitlement, error)
	UpsertPurchase(ctx context.Context, def Definition, purchasedAt time.Time) (*Entitlement, error)
	SetEnabled(ctx context.Context, moduleID string, enabled bool) (*Entitlement, error)
	SaveSettings(ctx context.Context, moduleID string, settings map[string]any) (*Entitlement, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const entitlementColumns = `
	module_id, name, description, version,
	purchased, enabled, settings, purchased_at,
	created_at, updated_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntitlement(row rowScanner) (*Entitlement, error) {
	var (
		e           Entitlement
		rawSettings []byte
		purchasedAt sql.NullTime
	)

	if err := row.Scan(
		&e.ModuleID,
		&e.Name,
		&e.Description,
		&e.Version,
		&e.Purchased,
		&e.Enabled,
		&rawSettings,
		&purchasedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Settings = map[string]any{}
	if len(rawSettings) > 0 {
		if err := json.Unmarshal(rawSettings, &e.Settings); err != nil {
			return nil, fmt.Errorf("decode settings of module %s: %w", e.ModuleID, err)
		}
	}
	if purchasedAt.Valid {
		t := purchasedAt.Time
		e.PurchasedAt = &t
	}

	return &e, nil
}

// Get returns nil, nil when the module has no entitlement row.
func (r *repository) Get(ctx context.Context, moduleID string) (*Entitlement, error) {
	query := `SELECT ` + entitlementColumns + ` FROM modules WHERE module_id = $1`

	e, err := scanEntitlement(r.db.QueryRowContext(ctx, query, moduleID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to get module entitlement",
			zap.String("module_id", moduleID),
			zap.Error(err),
		)
		return nil, err
	}
	return e, nil
}

func (r *repository) List(ctx context.Context) ([]*Entitlement, error) {
	query := `SELECT ` + entitlementColumns + ` FROM modules ORDER BY module_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list module entitlements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []*Entitlement
	for rows.Next() {
		e, err := scanEntitlement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertPurchase creates the row purchased and disabled, or refreshes the
// denormalized catalog fields of an existing row. enabled is never touched.
func (r *repository) UpsertPurchase(ctx context.Context, def Definition, purchasedAt time.Time) (*Entitlement, error) {
	query := `
		INSERT INTO modules (
			module_id, name, description, version,
			purchased, enabled, settings, purchased_at,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, TRUE, FALSE, '{}'::jsonb, $5, $5, $5)
		ON CONFLICT (module_id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			version = EXCLUDED.version,
			purchased = TRUE,
			purchased_at = EXCLUDED.purchased_at,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + entitlementColumns

	e, err := scanEntitlement(r.db.QueryRowContext(ctx, query,
		def.ID, def.Name, def.Description, def.Version, purchasedAt,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to upsert module purchase",
			zap.String("module_id", def.ID),
			zap.Error(err),
		)
		return nil, err
	}
	return e, nil
}

// SetEnabled returns nil, nil when no purchased row exists.
func (r *repository) SetEnabled(ctx context.Context, moduleID string, enabled bool) (*Entitlement, error) {
	query := `
		UPDATE modules
		SET enabled = $2, updated_at = NOW()
		WHERE module_id = $1 AND purchased = TRUE
		RETURNING ` + entitlementColumns

	e, err := scanEntitlement(r.db.QueryRowContext(ctx, query, moduleID, enabled))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to toggle module",
			zap.String("module_id", moduleID),
			zap.Bool("enabled", enabled),
			zap.Error(err),
		)
		return nil, err
	}
	return e, nil
}

// SaveSettings replaces the stored settings bag. Returns nil, nil when the
// row does not exist.
func (r *repository) SaveSettings(ctx context.Context, moduleID string, settings map[string]any) (*Entitlement, error) {
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	query := `
		UPDATE modules
		SET settings = $2::jsonb, updated_at = NOW()
		WHERE module_id = $1
		RETURNING ` + entitlementColumns

	e, err := scanEntitlement(r.db.QueryRowContext(ctx, query, moduleID, raw))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromCtx(ctx).Error("failed to save module settings",
			zap.String("module_id", moduleID),
			zap.Error(err),
		)
		return nil, err
	}
	return e, nil
}
