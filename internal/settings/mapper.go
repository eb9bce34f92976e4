package settings

import "strings"

func ToPublicView(s *Settings) PublicView {
	return PublicView{
		SiteName:              s.SiteName,
		Tagline:               s.Tagline,
		LogoURL:               s.LogoURL,
		FaviconURL:            s.FaviconURL,
		ContactEmail:          s.ContactEmail,
		ContactPhone:          s.ContactPhone,
		Address:               s.Address,
		Currency:              s.Currency,
		DeliveryFee:           s.DeliveryFee,
		FreeDeliveryThreshold: s.FreeDeliveryThreshold,
		TaxRate:               s.TaxRate,
		Theme:                 ThemeFor(s.ThemeColor),
	}
}

func ToAdminView(s *Settings) AdminView {
	return AdminView{
		PublicView:            ToPublicView(s),
		CourierAPIKey:         maskSecret(s.CourierAPIKey),
		CourierSecretKey:      maskSecret(s.CourierSecretKey),
		WhatsAppToken:         maskSecret(s.WhatsAppToken),
		WhatsAppPhoneNumberID: s.WhatsAppPhoneNumberID,
		FraudCheckAPIKey:      maskSecret(s.FraudCheckAPIKey),
		UpdatedAt:             s.UpdatedAt,
	}
}

func maskSecret(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return strings.Repeat("*", len(v))
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}
