// Package integration holds the outbound HTTP plumbing shared by the courier,
// WhatsApp and fraud-check clients.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"grocery-be/internal/apperr"
	"grocery-be/internal/logger"
	"grocery-be/internal/metrics"

	"go.uber.org/zap"
)

const DefaultTimeout = 15 * time.Second

// ErrNotConfigured is returned when the provider credentials are missing
// from the store settings.
var ErrNotConfigured = apperr.New(apperr.ErrInvalidInput, "integration_not_configured",
	"integration credentials are not configured in settings")

// APIError is a non-2xx answer from a provider.
type APIError struct {
	Provider string
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s error: status %d: %s", e.Provider, e.Status, e.Body)
}

func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: DefaultTimeout}
}

// Request describes one JSON call to a provider.
type Request struct {
	Provider string
	Method   string
	URL      string
	Header   http.Header
	Body     any
}

// DoJSON sends req and decodes a 2xx JSON answer into out (when non-nil).
// There is no retry; a failure is returned to the caller as is.
func DoJSON(ctx context.Context, client *http.Client, req Request, out any) error {
	log := logger.FromCtx(ctx).With(
		zap.String("provider", req.Provider),
		zap.String("http_method", req.Method),
		zap.String("url", req.URL),
	)

	metrics.Default.Counter(metrics.OutboundCalls).Inc()
	timer := metrics.StartTimer()

	err := doJSON(ctx, client, req, out)
	if err != nil {
		metrics.Default.Counter(metrics.OutboundFailures).Inc()
		log.Error("outbound request failed", zap.Duration("duration", timer.Duration()), zap.Error(err))
		return err
	}

	log.Debug("outbound request success", zap.Duration("duration", timer.Duration()))
	return nil
}

func doJSON(ctx context.Context, client *http.Client, req Request, out any) error {
	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("marshal %s request: %w", req.Provider, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return err
	}
	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", req.Provider, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Provider: req.Provider, Status: resp.StatusCode, Body: string(respBody)}
	}
	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.Provider, err)
	}
	return nil
}
