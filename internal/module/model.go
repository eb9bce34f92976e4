package module

import "time"

// Entitlement is the persisted purchase/enable state of one module.
type Entitlement struct {
	ModuleID    string
	Name        string
	Description string
	Version     string
	Purchased   bool
	Enabled     bool
	Settings    map[string]any
	PurchasedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// View is a catalog entry joined with its entitlement row.
type View struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Version        string         `json:"version"`
	Category       Category       `json:"category"`
	Price          float64        `json:"price"`
	IsCoreModule   bool           `json:"isCoreModule"`
	Purchased      bool           `json:"purchased"`
	Enabled        bool           `json:"enabled"`
	Settings       map[string]any `json:"settings"`
	SettingsSchema []SettingField `json:"settingsSchema"`
	PurchasedAt    *time.Time     `json:"purchasedAt,omitempty"`
}

// Status is the public gating answer for one module.
type Status struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}
