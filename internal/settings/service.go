package settings

import (
	"context"
	"strings"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context) (*Settings, error)
	Update(ctx context.Context, input UpdateInput) (*Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (*Settings, error) {
	return s.repo.GetOrCreate(ctx)
}

func (s *service) Update(ctx context.Context, input UpdateInput) (*Settings, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateSettings"),
	)
	log.Info("UpdateSettings started")

	if input == (UpdateInput{}) {
		return nil, ErrNothingToUpdate
	}
	if err := validate(&input); err != nil {
		return nil, err
	}

	current, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	apply(current, input)

	saved, err := s.repo.Save(ctx, current)
	if err != nil {
		log.Error("failed to save settings", zap.Error(err))
		return nil, err
	}

	log.Info("UpdateSettings success")
	return saved, nil
}

// validate also normalizes the theme color in place.
func validate(in *UpdateInput) error {
	if in.SiteName != nil && strings.TrimSpace(*in.SiteName) == "" {
		return ErrEmptySiteName
	}
	if in.TaxRate != nil && (*in.TaxRate < 0 || *in.TaxRate > 100) {
		return ErrInvalidTaxRate
	}
	if in.DeliveryFee != nil && *in.DeliveryFee < 0 {
		return ErrNegativeFee
	}
	if in.FreeDeliveryThreshold != nil && *in.FreeDeliveryThreshold < 0 {
		return ErrNegativeFee
	}
	if in.ThemeColor != nil {
		norm, err := NormalizeHex(*in.ThemeColor)
		if err != nil {
			return err
		}
		in.ThemeColor = &norm
	}
	return nil
}

func apply(s *Settings, in UpdateInput) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	setNum := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}

	set(&s.SiteName, in.SiteName)
	set(&s.Tagline, in.Tagline)
	set(&s.LogoURL, in.LogoURL)
	set(&s.FaviconURL, in.FaviconURL)
	set(&s.ContactEmail, in.ContactEmail)
	set(&s.ContactPhone, in.ContactPhone)
	set(&s.Address, in.Address)
	set(&s.Currency, in.Currency)
	setNum(&s.DeliveryFee, in.DeliveryFee)
	setNum(&s.FreeDeliveryThreshold, in.FreeDeliveryThreshold)
	setNum(&s.TaxRate, in.TaxRate)
	set(&s.ThemeColor, in.ThemeColor)
	set(&s.CourierAPIKey, in.CourierAPIKey)
	set(&s.CourierSecretKey, in.CourierSecretKey)
	set(&s.WhatsAppToken, in.WhatsAppToken)
	set(&s.WhatsAppPhoneNumberID, in.WhatsAppPhoneNumberID)
	set(&s.FraudCheckAPIKey, in.FraudCheckAPIKey)
}
