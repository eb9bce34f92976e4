package product

import (
	"context"
	"strconv"
	"strings"

	"grocery-be/internal/apperr"
	"grocery-be/internal/logger"
	"grocery-be/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, filter ListFilter) (*Page, error)
	Get(ctx context.Context, id int64) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*Product, error)
	Create(ctx context.Context, input CreateInput) (*Product, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Product, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter ListFilter) (*Page, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	filter.Page, filter.Limit, _ = utils.Paging(filter.Page, filter.Limit)
	filter.Search = strings.TrimSpace(filter.Search)

	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list products", zap.Error(err))
		return nil, err
	}

	log.Debug("ListProducts success", zap.Int("count", len(products)), zap.Int64("total", total))
	return &Page{
		Items: ToViews(products),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) GetByIDs(ctx context.Context, ids []int64) (map[int64]*Product, error) {
	return s.repo.GetByIDs(ctx, ids)
}

func parseCategoryID(raw *string) (*int64, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(strings.TrimSpace(*raw), 10, 64)
	if err != nil || id < 1 {
		return nil, apperr.Invalid("categoryId must be a numeric id")
	}
	return &id, nil
}

func validate(p *Product) error {
	if p.Slug == "" {
		return ErrEmptyName
	}
	if p.Price < 0 || (p.CompareAtPrice != nil && *p.CompareAtPrice < 0) {
		return ErrNegativePrice
	}
	if p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
		zap.String("name", input.Name),
	)
	log.Info("CreateProduct started")

	categoryID, err := parseCategoryID(input.CategoryID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	p := &Product{
		CategoryID:     categoryID,
		Name:           name,
		Slug:           utils.Slugify(name),
		Description:    strings.TrimSpace(input.Description),
		Price:          input.Price,
		CompareAtPrice: input.CompareAtPrice,
		Unit:           strings.TrimSpace(input.Unit),
		Stock:          input.Stock,
		ImageURL:       strings.TrimSpace(input.ImageURL),
		IsActive:       true,
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if err := validate(p); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	log.Info("CreateProduct success", zap.Int64("product_id", created.ID))
	return created, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProduct"),
		zap.Int64("product_id", id),
	)
	log.Info("UpdateProduct started")

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = strings.TrimSpace(*input.Name)
		p.Slug = utils.Slugify(p.Name)
	}
	if input.Description != nil {
		p.Description = strings.TrimSpace(*input.Description)
	}
	if input.Price != nil {
		p.Price = *input.Price
	}
	if input.CompareAtPrice != nil {
		p.CompareAtPrice = input.CompareAtPrice
	}
	if input.Unit != nil {
		p.Unit = strings.TrimSpace(*input.Unit)
	}
	if input.Stock != nil {
		p.Stock = *input.Stock
	}
	if input.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*input.ImageURL)
	}
	if input.CategoryID != nil {
		if p.CategoryID, err = parseCategoryID(input.CategoryID); err != nil {
			return nil, err
		}
	}
	if input.IsActive != nil {
		p.IsActive = *input.IsActive
	}
	if err := validate(p); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrProductNotFound
	}

	log.Info("UpdateProduct success")
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteProduct"),
		zap.Int64("product_id", id),
	)

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		log.Error("failed to delete product", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}

	log.Info("DeleteProduct success")
	return nil
}
