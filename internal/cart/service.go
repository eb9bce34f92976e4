package cart

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"grocery-be/internal/logger"
	"grocery-be/internal/product"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductGetter interface {
	Get(ctx context.Context, id int64) (*product.Product, error)
}

type Service interface {
	Get(ctx context.Context, sessionID string) (*View, error)
	// AddItem issues a new session id when sessionID is empty.
	AddItem(ctx context.Context, sessionID string, input AddItemInput) (*View, error)
	SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*View, error)
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*View, error)
	Clear(ctx context.Context, sessionID string) error
}

type service struct {
	repo     Repository
	products ProductGetter
}

func NewService(repo Repository, products ProductGetter) Service {
	return &service{repo: repo, products: products}
}

// ParseSession validates a session id and returns its canonical form.
func ParseSession(sessionID string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(sessionID))
	if err != nil {
		return "", ErrInvalidSession
	}
	return id.String(), nil
}

func (s *service) view(ctx context.Context, sessionID string) (*View, error) {
	items, err := s.repo.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	v := ToView(sessionID, items)
	return &v, nil
}

func (s *service) Get(ctx context.Context, sessionID string) (*View, error) {
	sessionID, err := ParseSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID)
}

// availableProduct loads productID and checks it can be sold in quantity.
func (s *service) availableProduct(ctx context.Context, productID int64, quantity int) (*product.Product, error) {
	p, err := s.products.Get(ctx, productID)
	if errors.Is(err, product.ErrProductNotFound) {
		return nil, ErrProductUnavailable
	}
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, ErrProductUnavailable
	}
	if p.Stock < quantity {
		return nil, ErrInsufficientStock
	}
	return p, nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*View, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddCartItem"),
	)

	if strings.TrimSpace(sessionID) == "" {
		sessionID = uuid.NewString()
		log.Debug("issued cart session", zap.String("session_id", sessionID))
	}
	sessionID, err := ParseSession(sessionID)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("session_id", sessionID))
	log.Info("AddCartItem started")

	productID, err := strconv.ParseInt(strings.TrimSpace(input.ProductID), 10, 64)
	if err != nil || productID < 1 {
		return nil, ErrInvalidProduct
	}
	if input.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	items, err := s.repo.Items(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	want := input.Quantity
	for _, it := range items {
		if it.ProductID == productID {
			want += it.Quantity
		}
	}

	if _, err := s.availableProduct(ctx, productID, want); err != nil {
		log.Warn("product not addable", zap.Int64("product_id", productID), zap.Error(err))
		return nil, err
	}

	if err := s.repo.AddItem(ctx, sessionID, productID, input.Quantity); err != nil {
		log.Error("failed to add cart item", zap.Error(err))
		return nil, err
	}

	log.Info("AddCartItem success")
	return s.view(ctx, sessionID)
}

// SetQuantity removes the line when quantity is 0.
func (s *service) SetQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*View, error) {
	if quantity == 0 {
		return s.RemoveItem(ctx, sessionID, productID)
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	sessionID, err := ParseSession(sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.availableProduct(ctx, productID, quantity); err != nil {
		return nil, err
	}

	ok, err := s.repo.SetQuantity(ctx, sessionID, productID, quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartItemNotFound
	}
	return s.view(ctx, sessionID)
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID int64) (*View, error) {
	sessionID, err := ParseSession(sessionID)
	if err != nil {
		return nil, err
	}

	ok, err := s.repo.RemoveItem(ctx, sessionID, productID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCartItemNotFound
	}
	return s.view(ctx, sessionID)
}

func (s *service) Clear(ctx context.Context, sessionID string) error {
	sessionID, err := ParseSession(sessionID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, sessionID)
}
