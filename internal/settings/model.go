package settings

import "time"

const SingletonKey = "global"

// Settings is the single site-wide configuration record.
type Settings struct {
	ID                    int64
	SiteName              string
	Tagline               string
	LogoURL               string
	FaviconURL            string
	ContactEmail          string
	ContactPhone          string
	Address               string
	Currency              string
	DeliveryFee           float64
	FreeDeliveryThreshold float64
	TaxRate               float64
	ThemeColor            string

	CourierAPIKey         string
	CourierSecretKey      string
	WhatsAppToken         string
	WhatsAppPhoneNumberID string
	FraudCheckAPIKey      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	SiteName              *string  `json:"siteName"`
	Tagline               *string  `json:"tagline"`
	LogoURL               *string  `json:"logoUrl"`
	FaviconURL            *string  `json:"faviconUrl"`
	ContactEmail          *string  `json:"contactEmail"`
	ContactPhone          *string  `json:"contactPhone"`
	Address               *string  `json:"address"`
	Currency              *string  `json:"currency"`
	DeliveryFee           *float64 `json:"deliveryFee"`
	FreeDeliveryThreshold *float64 `json:"freeDeliveryThreshold"`
	TaxRate               *float64 `json:"taxRate"`
	ThemeColor            *string  `json:"themeColor"`

	CourierAPIKey         *string `json:"courierApiKey"`
	CourierSecretKey      *string `json:"courierSecretKey"`
	WhatsAppToken         *string `json:"whatsappToken"`
	WhatsAppPhoneNumberID *string `json:"whatsappPhoneNumberId"`
	FraudCheckAPIKey      *string `json:"fraudCheckApiKey"`
}

type Theme struct {
	Hex string `json:"hex"`
	HSL string `json:"hsl"`
	RGB string `json:"rgb"`
}

// PublicView is what the storefront may see: no credentials.
type PublicView struct {
	SiteName              string  `json:"siteName"`
	Tagline               string  `json:"tagline"`
	LogoURL               string  `json:"logoUrl"`
	FaviconURL            string  `json:"faviconUrl"`
	ContactEmail          string  `json:"contactEmail"`
	ContactPhone          string  `json:"contactPhone"`
	Address               string  `json:"address"`
	Currency              string  `json:"currency"`
	DeliveryFee           float64 `json:"deliveryFee"`
	FreeDeliveryThreshold float64 `json:"freeDeliveryThreshold"`
	TaxRate               float64 `json:"taxRate"`
	Theme                 Theme   `json:"theme"`
}

// AdminView adds masked credentials to the public view.
type AdminView struct {
	PublicView
	CourierAPIKey         string    `json:"courierApiKey"`
	CourierSecretKey      string    `json:"courierSecretKey"`
	WhatsAppToken         string    `json:"whatsappToken"`
	WhatsAppPhoneNumberID string    `json:"whatsappPhoneNumberId"`
	FraudCheckAPIKey      string    `json:"fraudCheckApiKey"`
	UpdatedAt             time.Time `json:"updatedAt"`
}
