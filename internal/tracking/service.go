package tracking

import (
	"context"
	"strings"
	"time"

	"grocery-be/internal/logger"
	"grocery-be/internal/module"
	"grocery-be/internal/utils"

	"go.uber.org/zap"
)

const (
	maxMetadataKeys = 50
	maxFieldLen     = 512
	topViewed       = 10
)

// ModuleSettings reads the tracking module's stored settings.
type ModuleSettings interface {
	Settings(ctx context.Context, moduleID string) (map[string]any, error)
}

type Service interface {
	// Record stores an event. It returns nil, nil when the event is dropped
	// by the tracking module settings.
	Record(ctx context.Context, input RecordInput, meta RequestMeta) (*Event, error)
	List(ctx context.Context, filter ListFilter) (*Page, error)
	Summary(ctx context.Context, days int) (*Summary, error)
}

type service struct {
	repo    Repository
	modules ModuleSettings
	now     func() time.Time
}

func NewService(repo Repository, modules ModuleSettings) Service {
	return &service{repo: repo, modules: modules, now: time.Now}
}

func clip(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxFieldLen {
		return s[:maxFieldLen]
	}
	return s
}

// searchesTracked defaults to true when the setting is unset or unreadable.
func (s *service) searchesTracked(ctx context.Context) bool {
	settings, err := s.modules.Settings(ctx, module.IDTracking)
	if err != nil {
		return true
	}
	v, ok := settings["trackSearches"].(bool)
	return !ok || v
}

func (s *service) Record(ctx context.Context, input RecordInput, meta RequestMeta) (*Event, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RecordEvent"),
		zap.String("event_type", input.EventType),
	)

	t := EventType(strings.TrimSpace(input.EventType))
	if !t.Valid() {
		return nil, ErrInvalidEventType
	}
	if len(input.Metadata) > maxMetadataKeys {
		return nil, ErrMetadataTooLarge
	}
	if t == EventSearch && !s.searchesTracked(ctx) {
		log.Debug("search tracking disabled, dropping event")
		return nil, nil
	}

	e, err := s.repo.Insert(ctx, &Event{
		EventType: t,
		SessionID: clip(input.SessionID),
		UserID:    clip(input.UserID),
		ProductID: clip(input.ProductID),
		OrderID:   clip(input.OrderID),
		PageURL:   clip(input.PageURL),
		Referrer:  clip(input.Referrer),
		UserAgent: clip(meta.UserAgent),
		IPAddress: clip(meta.IPAddress),
		Metadata:  input.Metadata,
	})
	if err != nil {
		log.Error("failed to record event", zap.Error(err))
		return nil, err
	}
	return e, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) (*Page, error) {
	if filter.EventType != "" && !EventType(filter.EventType).Valid() {
		return nil, ErrInvalidEventType
	}
	filter.Page, filter.Limit, _ = utils.Paging(filter.Page, filter.Limit)

	events, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &Page{Items: ToViews(events), Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *service) Summary(ctx context.Context, days int) (*Summary, error) {
	if days < 1 || days > 365 {
		return nil, ErrInvalidDays
	}

	now := s.now().UTC()
	since := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(days - 1))

	sum, err := s.repo.Summary(ctx, since, topViewed)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to summarize events", zap.Error(err))
		return nil, err
	}
	sum.Days = days
	return sum, nil
}
