package review

import (
	"context"
	"strings"
	"unicode/utf8"

	"grocery-be/internal/logger"
	"grocery-be/internal/utils"

	"go.uber.org/zap"
)

const maxCommentLen = 2000

type Service interface {
	// Create stores a review awaiting moderation.
	Create(ctx context.Context, productID int64, input CreateInput) (*Review, error)
	ListApproved(ctx context.Context, productID int64, page, limit int) (*Page, *ProductRating, error)
	List(ctx context.Context, filter ListFilter) (*Page, error)
	Approve(ctx context.Context, id int64) (*Review, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, productID int64, input CreateInput) (*Review, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateReview"),
		zap.Int64("product_id", productID),
	)

	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrEmptyName
	}
	comment := strings.TrimSpace(input.Comment)
	if utf8.RuneCountInString(comment) > maxCommentLen {
		return nil, ErrCommentTooLong
	}

	rv, err := s.repo.Create(ctx, &Review{
		ProductID:    productID,
		CustomerName: name,
		Rating:       input.Rating,
		Comment:      comment,
	})
	if err != nil {
		log.Error("failed to create review", zap.Error(err))
		return nil, err
	}

	log.Info("CreateReview success", zap.Int64("review_id", rv.ID))
	return rv, nil
}

func (s *service) ListApproved(ctx context.Context, productID int64, page, limit int) (*Page, *ProductRating, error) {
	approved := true
	p, err := s.List(ctx, ListFilter{ProductID: productID, Approved: &approved, Page: page, Limit: limit})
	if err != nil {
		return nil, nil, err
	}
	rating, err := s.repo.Rating(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	return p, rating, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) (*Page, error) {
	filter.Page, filter.Limit, _ = utils.Paging(filter.Page, filter.Limit)

	reviews, total, err := s.repo.List(ctx, filter)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list reviews", zap.Error(err))
		return nil, err
	}
	return &Page{Items: ToViews(reviews), Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *service) Approve(ctx context.Context, id int64) (*Review, error) {
	rv, err := s.repo.Approve(ctx, id)
	if err != nil {
		return nil, err
	}
	if rv == nil {
		return nil, ErrReviewNotFound
	}
	logger.FromCtx(ctx).Info("review approved", zap.Int64("review_id", id))
	return rv, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReviewNotFound
	}
	return nil
}
