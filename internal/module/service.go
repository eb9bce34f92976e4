package module

import (
	"context"
	"time"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context) ([]View, error)
	Get(ctx context.Context, moduleID string) (*View, error)
	Purchase(ctx context.Context, moduleID string) (*View, error)
	Enable(ctx context.Context, moduleID string) (*View, error)
	Disable(ctx context.Context, moduleID string) (*View, error)
	UpdateSettings(ctx context.Context, moduleID string, partial map[string]any) (*View, error)
	Settings(ctx context.Context, moduleID string) (map[string]any, error)
	IsModuleEnabled(ctx context.Context, moduleID string) bool
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListModules"),
	)

	rows, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list entitlements", zap.Error(err))
		return nil, err
	}

	byID := make(map[string]*Entitlement, len(rows))
	for _, e := range rows {
		byID[e.ModuleID] = e
	}

	defs := Definitions()
	views := make([]View, 0, len(defs))
	for _, def := range defs {
		views = append(views, ToView(def, byID[def.ID]))
	}

	log.Debug("ListModules success", zap.Int("count", len(views)))
	return views, nil
}

func (s *service) Get(ctx context.Context, moduleID string) (*View, error) {
	def, ok := Lookup(moduleID)
	if !ok {
		return nil, ErrUnknownModule
	}

	e, err := s.repo.Get(ctx, moduleID)
	if err != nil {
		return nil, err
	}

	v := ToView(def, e)
	return &v, nil
}

// Purchase is idempotent and never enables the module.
func (s *service) Purchase(ctx context.Context, moduleID string) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Purchase"),
		zap.String("module_id", moduleID),
	)
	log.Info("Purchase started")

	def, ok := Lookup(moduleID)
	if !ok {
		log.Warn("unknown module")
		return nil, ErrUnknownModule
	}

	e, err := s.repo.UpsertPurchase(ctx, def, s.now().UTC())
	if err != nil {
		log.Error("failed to record purchase", zap.Error(err))
		return nil, err
	}

	v := ToView(def, e)
	log.Info("Purchase success", zap.Bool("enabled", v.Enabled))
	return &v, nil
}

func (s *service) Enable(ctx context.Context, moduleID string) (*View, error) {
	return s.setEnabled(ctx, moduleID, true)
}

func (s *service) Disable(ctx context.Context, moduleID string) (*View, error) {
	return s.setEnabled(ctx, moduleID, false)
}

func (s *service) setEnabled(ctx context.Context, moduleID string, enabled bool) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "SetEnabled"),
		zap.String("module_id", moduleID),
		zap.Bool("enabled", enabled),
	)

	def, known := Lookup(moduleID)
	if known && def.IsCore() {
		if !enabled {
			log.Warn("attempt to disable core module")
			return nil, ErrCoreModule
		}
		v := ToView(def, nil)
		return &v, nil
	}

	e, err := s.repo.SetEnabled(ctx, moduleID, enabled)
	if err != nil {
		log.Error("failed to toggle module", zap.Error(err))
		return nil, err
	}
	if e == nil {
		log.Warn("module not purchased")
		return nil, ErrNotPurchased
	}

	if !known {
		def = Definition{ID: e.ModuleID, Name: e.Name, Description: e.Description, Version: e.Version}
	}

	v := ToView(def, e)
	log.Info("module toggled")
	return &v, nil
}

// UpdateSettings shallow-merges partial into the stored settings bag.
// Concurrent merges on the same module are last-write-wins.
func (s *service) UpdateSettings(ctx context.Context, moduleID string, partial map[string]any) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateSettings"),
		zap.String("module_id", moduleID),
	)

	if len(partial) == 0 {
		return nil, ErrEmptySettings
	}

	current, err := s.repo.Get(ctx, moduleID)
	if err != nil {
		log.Error("failed to load module", zap.Error(err))
		return nil, err
	}
	if current == nil {
		return nil, ErrNotPurchased
	}

	merged := make(map[string]any, len(current.Settings)+len(partial))
	for k, v := range current.Settings {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}

	saved, err := s.repo.SaveSettings(ctx, moduleID, merged)
	if err != nil {
		log.Error("failed to save settings", zap.Error(err))
		return nil, err
	}
	if saved == nil {
		return nil, ErrNotPurchased
	}

	def, ok := Lookup(moduleID)
	if !ok {
		def = Definition{ID: saved.ModuleID, Name: saved.Name, Description: saved.Description, Version: saved.Version}
	}

	v := ToView(def, saved)
	log.Info("UpdateSettings success", zap.Int("keys", len(partial)))
	return &v, nil
}

// Settings returns the stored settings bag, empty when never purchased.
func (s *service) Settings(ctx context.Context, moduleID string) (map[string]any, error) {
	e, err := s.repo.Get(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	if e == nil || e.Settings == nil {
		return map[string]any{}, nil
	}
	return e.Settings, nil
}

// IsModuleEnabled fails closed: lookup errors read as disabled.
func (s *service) IsModuleEnabled(ctx context.Context, moduleID string) bool {
	if IsCore(moduleID) {
		return true
	}

	e, err := s.repo.Get(ctx, moduleID)
	if err != nil {
		logger.FromCtx(ctx).Warn("entitlement lookup failed, treating module as disabled",
			zap.String("module_id", moduleID),
			zap.Error(err),
		)
		return false
	}
	if e == nil {
		return false
	}
	return e.Purchased && e.Enabled
}
