package settings

import (
	"context"
	"database/sql"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	// GetOrCreate returns the singleton, inserting the defaults row when missing.
	GetOrCreate(ctx context.Context) (*Settings, error)
	Save(ctx context.Context, s *Settings) (*Settings, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const settingsColumns = `
	id, site_name, tagline, logo_url, favicon_url,
	contact_email, contact_phone, address, currency,
	delivery_fee, free_delivery_threshold, tax_rate, theme_color,
	courier_api_key, courier_secret_key,
	whatsapp_token, whatsapp_phone_number_id, fraud_check_api_key,
	created_at, updated_at
`

func scanSettings(row *sql.Row) (*Settings, error) {
	var s Settings
	err := row.Scan(
		&s.ID, &s.SiteName, &s.Tagline, &s.LogoURL, &s.FaviconURL,
		&s.ContactEmail, &s.ContactPhone, &s.Address, &s.Currency,
		&s.DeliveryFee, &s.FreeDeliveryThreshold, &s.TaxRate, &s.ThemeColor,
		&s.CourierAPIKey, &s.CourierSecretKey,
		&s.WhatsAppToken, &s.WhatsAppPhoneNumberID, &s.FraudCheckAPIKey,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) GetOrCreate(ctx context.Context) (*Settings, error) {
	// Concurrent first reads race on the insert; the unique singleton_key
	// makes the loser a no-op.
	insert := `
		INSERT INTO settings (singleton_key)
		VALUES ($1)
		ON CONFLICT (singleton_key) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, insert, SingletonKey); err != nil {
		logger.FromCtx(ctx).Error("failed to ensure settings row", zap.Error(err))
		return nil, err
	}

	query := `SELECT ` + settingsColumns + ` FROM settings WHERE singleton_key = $1`
	s, err := scanSettings(r.db.QueryRowContext(ctx, query, SingletonKey))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load settings", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *repository) Save(ctx context.Context, s *Settings) (*Settings, error) {
	query := `
		UPDATE settings SET
			site_name = $2, tagline = $3, logo_url = $4, favicon_url = $5,
			contact_email = $6, contact_phone = $7, address = $8, currency = $9,
			delivery_fee = $10, free_delivery_threshold = $11, tax_rate = $12, theme_color = $13,
			courier_api_key = $14, courier_secret_key = $15,
			whatsapp_token = $16, whatsapp_phone_number_id = $17, fraud_check_api_key = $18,
			updated_at = NOW()
		WHERE singleton_key = $1
		RETURNING ` + settingsColumns

	saved, err := scanSettings(r.db.QueryRowContext(ctx, query,
		SingletonKey,
		s.SiteName, s.Tagline, s.LogoURL, s.FaviconURL,
		s.ContactEmail, s.ContactPhone, s.Address, s.Currency,
		s.DeliveryFee, s.FreeDeliveryThreshold, s.TaxRate, s.ThemeColor,
		s.CourierAPIKey, s.CourierSecretKey,
		s.WhatsAppToken, s.WhatsAppPhoneNumberID, s.FraudCheckAPIKey,
	))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to save settings", zap.Error(err))
		return nil, err
	}
	return saved, nil
}
