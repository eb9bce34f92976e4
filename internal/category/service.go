package category

import (
	"context"
	"strings"

	"grocery-be/internal/logger"
	"grocery-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter ListFilter) ([]*Category, error)
	Get(ctx context.Context, id int64) (*Category, error)
	Create(ctx context.Context, input CreateInput) (*Category, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Category, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListCategories"),
	)

	categories, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list categories", zap.Error(err))
		return nil, err
	}

	log.Debug("ListCategories success", zap.Int("count", len(categories)))
	return categories, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCategory"),
		zap.String("name", input.Name),
	)
	log.Info("CreateCategory started")

	name := strings.TrimSpace(input.Name)
	slug := utils.Slugify(name)
	if slug == "" {
		return nil, ErrEmptyName
	}

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	c, err := s.repo.Create(ctx, &Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(input.Description),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		SortOrder:   input.SortOrder,
		IsActive:    active,
	})
	if err != nil {
		log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	log.Info("CreateCategory success", zap.Int64("category_id", c.ID))
	return c, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateCategory"),
		zap.Int64("category_id", id),
	)
	log.Info("UpdateCategory started")

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		slug := utils.Slugify(name)
		if slug == "" {
			return nil, ErrEmptyName
		}
		c.Name, c.Slug = name, slug
	}
	if input.Description != nil {
		c.Description = strings.TrimSpace(*input.Description)
	}
	if input.ImageURL != nil {
		c.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.SortOrder != nil {
		c.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		c.IsActive = *input.IsActive
	}

	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		log.Error("failed to update category", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrCategoryNotFound
	}

	log.Info("UpdateCategory success")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteCategory"),
		zap.Int64("category_id", id),
	)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete category", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrCategoryNotFound
	}

	log.Info("DeleteCategory success")
	return nil
}
