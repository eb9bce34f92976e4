package fraudcheck

import (
	"context"

	"grocery-be/internal/logger"
	"grocery-be/internal/module"
	"grocery-be/internal/order"

	"go.uber.org/zap"
)

type Modules interface {
	IsModuleEnabled(ctx context.Context, moduleID string) bool
	Settings(ctx context.Context, moduleID string) (map[string]any, error)
}

type Service interface {
	Check(ctx context.Context, phone string) (*Result, error)
	// OrderPlaced runs a check on new orders when autoCheckOnOrder is set.
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
	cfg, err := s.modules.Settings(ctx, module.IDFraudCheck)
	if err != nil || cfg == nil {
		return map[string]any{}
	}
	return cfg
}

func (s *service) Check(ctx context.Context, phone string) (*Result, error) {
	res, err := s.client.CheckFraud(ctx, phone)
	if err != nil {
		return nil, err
	}
	if minRatio, ok := s.settings(ctx)["minSuccessRatio"].(float64); ok && res.Risk != RiskUnknown {
		res.BelowMinimum = res.SuccessRatio < minRatio
	}
	return res, nil
}

func (s *service) OrderPlaced(ctx context.Context, o *order.Order) error {
	if !s.modules.IsModuleEnabled(ctx, module.IDFraudCheck) {
		return nil
	}
	if on, _ := s.settings(ctx)["autoCheckOnOrder"].(bool); !on {
		return nil
	}

	res, err := s.Check(ctx, o.CustomerPhone)
	if err != nil {
		return err
	}

	log := logger.FromCtx(ctx).With(
		zap.String("order_number", o.OrderNumber),
		zap.String("risk", string(res.Risk)),
		zap.Float64("success_ratio", res.SuccessRatio),
	)
	if res.Risk == RiskHigh || res.BelowMinimum {
		log.Warn("risky order placed")
	} else {
		log.Info("order fraud check done")
	}
	return nil
}
