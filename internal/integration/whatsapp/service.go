package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"grocery-be/internal/logger"
	"grocery-be/internal/module"
	"grocery-be/internal/order"

	"go.uber.org/zap"
)

const (
	maxBroadcast = 500

	defaultCartRecoveryMessage = "Hi {name}, you left some items in your cart. Complete your order here: {link}"
)

// Modules answers entitlement and settings questions for the whatsapp module.
type Modules interface {
	IsModuleEnabled(ctx context.Context, moduleID string) bool
	Settings(ctx context.Context, moduleID string) (map[string]any, error)
}

type Service interface {
	Send(ctx context.Context, input SendInput) (*SendResult, error)
	Broadcast(ctx context.Context, input BroadcastInput) (*BroadcastResult, error)
	CartRecovery(ctx context.Context, input CartRecoveryInput) (*SendResult, error)
	OrderNotification(ctx context.Context, o *order.Order) (*SendResult, error)
	// OrderPlaced notifies the customer when the module is enabled and
	// order notifications are on.
	OrderPlaced(ctx context.Context, o *order.Order) error
}

type service struct {
	client  Client
	modules Modules
}

func NewService(client Client, modules Modules) Service {
	return &service{client: client, modules: modules}
}

func (s *service) settings(ctx context.Context) map[string]any {
	cfg, err := s.modules.Settings(ctx, module.IDWhatsApp)
	if err != nil || cfg == nil {
		return map[string]any{}
	}
	return cfg
}

func (s *service) Send(ctx context.Context, input SendInput) (*SendResult, error) {
	return s.client.SendMessage(ctx, input.To, input.Message)
}

func (s *service) Broadcast(ctx context.Context, input BroadcastInput) (*BroadcastResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Broadcast"),
		zap.Int("recipients", len(input.Recipients)),
	)

	if strings.TrimSpace(input.Message) == "" {
		return nil, ErrEmptyMessage
	}
	if len(input.Recipients) == 0 {
		return nil, ErrNoRecipients
	}
	if len(input.Recipients) > maxBroadcast {
		return nil, ErrTooManyPeople
	}

	out := &BroadcastResult{Results: make([]RecipientResult, 0, len(input.Recipients))}
	for _, to := range input.Recipients {
		res, err := s.client.SendMessage(ctx, to, input.Message)
		if err != nil {
			out.Failed++
			out.Results = append(out.Results, RecipientResult{To: to, Error: err.Error()})
			continue
		}
		out.Sent++
		out.Results = append(out.Results, RecipientResult{To: to, Success: true, MessageID: res.MessageID})
	}

	log.Info("Broadcast finished", zap.Int("sent", out.Sent), zap.Int("failed", out.Failed))
	return out, nil
}

func (s *service) CartRecovery(ctx context.Context, input CartRecoveryInput) (*SendResult, error) {
	tmpl, _ := s.settings(ctx)["cartRecoveryMessage"].(string)
	if strings.TrimSpace(tmpl) == "" {
		tmpl = defaultCartRecoveryMessage
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = "there"
	}
	msg := strings.NewReplacer("{name}", name, "{link}", strings.TrimSpace(input.CartURL)).Replace(tmpl)

	return s.client.SendMessage(ctx, input.Phone, msg)
}

func orderMessage(o *order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s, thank you for your order!\n", o.CustomerName)
	fmt.Fprintf(&b, "Order: %s\n", o.OrderNumber)
	for _, it := range o.Items {
		fmt.Fprintf(&b, "- %s x%d\n", it.Name, it.Quantity)
	}
	fmt.Fprintf(&b, "Total: %.2f\n", o.Total)
	b.WriteString("We will let you know when it ships.")
	return b.String()
}

func (s *service) OrderNotification(ctx context.Context, o *order.Order) (*SendResult, error) {
	return s.client.SendMessage(ctx, o.CustomerPhone, orderMessage(o))
}

func (s *service) OrderPlaced(ctx context.Context, o *order.Order) error {
	if !s.modules.IsModuleEnabled(ctx, module.IDWhatsApp) {
		return nil
	}
	if on, ok := s.settings(ctx)["orderNotifications"].(bool); ok && !on {
		return nil
	}
	_, err := s.OrderNotification(ctx, o)
	return err
}
