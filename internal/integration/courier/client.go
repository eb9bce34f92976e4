package courier

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"grocery-be/internal/integration"
	"grocery-be/internal/logger"
	"grocery-be/internal/settings"

	"go.uber.org/zap"
)

const provider = "courier"

// CredentialSource returns the store settings holding the courier keys.
type CredentialSource interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type Client interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Consignment, error)
	GetBalance(ctx context.Context) (*Balance, error)
	GetStatusByConsignmentID(ctx context.Context, consignmentID string) (*DeliveryStatus, error)
	GetStatusByTrackingCode(ctx context.Context, trackingCode string) (*DeliveryStatus, error)
	GetStatusByInvoice(ctx context.Context, invoice string) (*DeliveryStatus, error)
}

type client struct {
	baseURL    string
	creds      CredentialSource
	httpClient *http.Client
}

func NewClient(baseURL string, creds CredentialSource) Client {
	if baseURL == "" {
		logger.L().Warn("courier base URL is empty")
	}
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: integration.NewHTTPClient(),
	}
}

func (c *client) headers(ctx context.Context) (http.Header, error) {
	s, err := c.creds.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s.CourierAPIKey == "" || s.CourierSecretKey == "" {
		return nil, integration.ErrNotConfigured
	}
	return http.Header{
		"Api-Key":    {s.CourierAPIKey},
		"Secret-Key": {s.CourierSecretKey},
	}, nil
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	h, err := c.headers(ctx)
	if err != nil {
		return err
	}
	return integration.DoJSON(ctx, c.httpClient, integration.Request{
		Provider: provider,
		Method:   method,
		URL:      c.baseURL + path,
		Header:   h,
		Body:     body,
	}, out)
}

func (c *client) CreateOrder(ctx context.Context, req OrderRequest) (*Consignment, error) {
	log := logger.FromCtx(ctx).With(zap.String("invoice", req.Invoice))

	var res createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/create_order", req, &res); err != nil {
		return nil, err
	}
	if res.Status != http.StatusOK || res.Consignment == nil {
		log.Warn("courier rejected consignment", zap.Int("status", res.Status), zap.String("message", res.Message))
		return nil, ErrRejected
	}

	log.Info("courier consignment created",
		zap.Int64("consignment_id", res.Consignment.ConsignmentID),
		zap.String("tracking_code", res.Consignment.TrackingCode),
	)
	return res.Consignment, nil
}

func (c *client) GetBalance(ctx context.Context) (*Balance, error) {
	var b Balance
	if err := c.do(ctx, http.MethodGet, "/get_balance", nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *client) status(ctx context.Context, kind, ref string) (*DeliveryStatus, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrMissingReference
	}
	var st DeliveryStatus
	if err := c.do(ctx, http.MethodGet, "/"+kind+"/"+url.PathEscape(ref), nil, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *client) GetStatusByConsignmentID(ctx context.Context, consignmentID string) (*DeliveryStatus, error) {
	return c.status(ctx, "status_by_cid", consignmentID)
}

func (c *client) GetStatusByTrackingCode(ctx context.Context, trackingCode string) (*DeliveryStatus, error) {
	return c.status(ctx, "status_by_trackingcode", trackingCode)
}

func (c *client) GetStatusByInvoice(ctx context.Context, invoice string) (*DeliveryStatus, error) {
	return c.status(ctx, "status_by_invoice", invoice)
}
