package whatsapp

import (
	"context"
	"net/http"
	"strings"

	"grocery-be/internal/integration"
	"grocery-be/internal/logger"
	"grocery-be/internal/settings"
	"grocery-be/internal/utils"

	"go.uber.org/zap"
)

const provider = "whatsapp"

type CredentialSource interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

type Client interface {
	// SendMessage sends a plain text message. to may be in local or
	// international form.
	SendMessage(ctx context.Context, to, text string) (*SendResult, error)
}

type client struct {
	baseURL    string
	creds      CredentialSource
	httpClient *http.Client
}

func NewClient(baseURL string, creds CredentialSource) Client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
		httpClient: integration.NewHTTPClient(),
	}
}

// recipient returns the 8801XXXXXXXXX form the messaging API expects.
func recipient(phone string) (string, error) {
	n := utils.NormalizePhone(phone)
	if len(n) != 13 || !strings.HasPrefix(n, "8801") {
		return "", ErrInvalidPhone
	}
	return n, nil
}

func (c *client) SendMessage(ctx context.Context, to, text string) (*SendResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}
	phone, err := recipient(to)
	if err != nil {
		return nil, err
	}

	s, err := c.creds.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s.WhatsAppToken == "" || s.WhatsAppPhoneNumberID == "" {
		return nil, integration.ErrNotConfigured
	}

	msg := textMessage{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               phone,
		Type:             "text",
	}
	msg.Text.Body = text

	var res sendResponse
	err = integration.DoJSON(ctx, c.httpClient, integration.Request{
		Provider: provider,
		Method:   http.MethodPost,
		URL:      c.baseURL + "/" + s.WhatsAppPhoneNumberID + "/messages",
		Header:   http.Header{"Authorization": {"Bearer " + s.WhatsAppToken}},
		Body:     msg,
	}, &res)
	if err != nil {
		return nil, err
	}

	out := &SendResult{To: phone}
	if len(res.Messages) > 0 {
		out.MessageID = res.Messages[0].ID
	}
	logger.FromCtx(ctx).Info("whatsapp message sent", zap.String("message_id", out.MessageID))
	return out, nil
}
