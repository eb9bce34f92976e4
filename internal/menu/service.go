package menu

import (
	"context"
	"strings"

	"grocery-be/internal/logger"

	"go.uber.org/zap"
)

const maxDepth = 3

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]*Menu, error)
	Get(ctx context.Context, id int64) (*Menu, error)
	Create(ctx context.Context, input CreateInput) (*Menu, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Menu, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// cleanItems trims labels and urls and rejects blank or overly nested nodes.
func cleanItems(items []Item, depth int) ([]Item, error) {
	if len(items) == 0 {
		return []Item{}, nil
	}
	if depth > maxDepth {
		return nil, ErrTooDeep
	}

	out := make([]Item, 0, len(items))
	for _, it := range items {
		label := strings.TrimSpace(it.Label)
		url := strings.TrimSpace(it.URL)
		if label == "" || url == "" {
			return nil, ErrInvalidItem
		}
		children, err := cleanItems(it.Children, depth+1)
		if err != nil {
			return nil, err
		}
		if len(children) == 0 {
			children = nil
		}
		out = append(out, Item{Label: label, URL: url, Children: children})
	}
	return out, nil
}

func parseLocation(raw string) (Location, error) {
	loc := Location(strings.ToLower(strings.TrimSpace(raw)))
	if !loc.Valid() {
		return "", ErrInvalidLocation
	}
	return loc, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]*Menu, error) {
	if filter.Location != "" && !filter.Location.Valid() {
		return nil, ErrInvalidLocation
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Get(ctx context.Context, id int64) (*Menu, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMenuNotFound
	}
	return m, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Menu, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateMenu"),
	)
	log.Info("CreateMenu started")

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	loc, err := parseLocation(input.Location)
	if err != nil {
		return nil, err
	}
	items, err := cleanItems(input.Items, 1)
	if err != nil {
		return nil, err
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	m, err := s.repo.Create(ctx, &Menu{Name: name, Location: loc, Items: items, IsActive: active})
	if err != nil {
		log.Error("failed to create menu", zap.Error(err))
		return nil, err
	}

	log.Info("CreateMenu success", zap.Int64("menu_id", m.ID))
	return m, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Menu, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateMenu"),
		zap.Int64("menu_id", id),
	)

	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		m.Name = name
	}
	if input.Location != nil {
		loc, err := parseLocation(*input.Location)
		if err != nil {
			return nil, err
		}
		m.Location = loc
	}
	if input.Items != nil {
		items, err := cleanItems(input.Items, 1)
		if err != nil {
			return nil, err
		}
		m.Items = items
	}
	if input.IsActive != nil {
		m.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, m)
	if err != nil {
		log.Error("failed to update menu", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrMenuNotFound
	}

	log.Info("UpdateMenu success")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMenuNotFound
	}
	logger.FromCtx(ctx).Info("menu deleted", zap.Int64("menu_id", id))
	return nil
}
