package order

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"grocery-be/internal/cart"
	"grocery-be/internal/logger"
	"grocery-be/internal/product"
	"grocery-be/internal/settings"
	"grocery-be/internal/utils"

	"go.uber.org/zap"
)

type ProductLookup interface {
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*product.Product, error)
}

type CartStore interface {
	Items(ctx context.Context, sessionID string) ([]*cart.Item, error)
	Clear(ctx context.Context, sessionID string) error
}

type SettingsGetter interface {
	Get(ctx context.Context) (*settings.Settings, error)
}

// Notifier is told about placed orders. Failures never fail the checkout.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *Order) error
}

// Notifiers calls every notifier in order and joins their errors.
type Notifiers []Notifier

func (ns Notifiers) OrderPlaced(ctx context.Context, o *Order) error {
	var errs []error
	for _, n := range ns {
		if err := n.OrderPlaced(ctx, o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type Service interface {
	Checkout(ctx context.Context, input CheckoutInput) (*Order, error)
	Get(ctx context.Context, id int64) (*Order, error)
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
	List(ctx context.Context, filter ListFilter) (*Page, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*Order, error)
	BulkUpdateStatus(ctx context.Context, ids []string, status string) ([]BulkResult, error)
	AttachShipment(ctx context.Context, id int64, update CourierUpdate) (*Order, error)
	ApplyCourierStatus(ctx context.Context, consignmentID, invoice, courierStatus string) (*Order, error)
}

type service struct {
	repo     Repository
	products ProductLookup
	carts    CartStore
	settings SettingsGetter
	notifier Notifier
	now      func() time.Time
}

// NewService wires the order service. notifier may be nil.
func NewService(repo Repository, products ProductLookup, carts CartStore, settings SettingsGetter, notifier Notifier) Service {
	return &service{
		repo:     repo,
		products: products,
		carts:    carts,
		settings: settings,
		notifier: notifier,
		now:      time.Now,
	}
}

type line struct {
	productID int64
	quantity  int
}

// requestedLines merges explicit items, or falls back to the cart session.
func (s *service) requestedLines(ctx context.Context, input CheckoutInput) ([]line, string, error) {
	var (
		lines     []line
		sessionID string
	)

	if len(input.Items) > 0 {
		for _, it := range input.Items {
			id, err := strconv.ParseInt(strings.TrimSpace(it.ProductID), 10, 64)
			if err != nil || id < 1 {
				return nil, "", ErrInvalidProduct
			}
			if it.Quantity < 1 {
				return nil, "", ErrInvalidQuantity
			}
			lines = append(lines, line{productID: id, quantity: it.Quantity})
		}
	} else if strings.TrimSpace(input.SessionID) != "" {
		sid, err := cart.ParseSession(input.SessionID)
		if err != nil {
			return nil, "", err
		}
		items, err := s.carts.Items(ctx, sid)
		if err != nil {
			return nil, "", err
		}
		for _, it := range items {
			lines = append(lines, line{productID: it.ProductID, quantity: it.Quantity})
		}
		sessionID = sid
	}

	if len(lines) == 0 {
		return nil, "", ErrEmptyOrder
	}

	merged := make([]line, 0, len(lines))
	index := map[int64]int{}
	for _, l := range lines {
		if i, ok := index[l.productID]; ok {
			merged[i].quantity += l.quantity
			continue
		}
		index[l.productID] = len(merged)
		merged = append(merged, l)
	}
	return merged, sessionID, nil
}

func validateCustomer(input *CheckoutInput) error {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerAddress = strings.TrimSpace(input.CustomerAddress)
	input.CustomerEmail = strings.TrimSpace(input.CustomerEmail)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.CustomerName == "" || strings.TrimSpace(input.CustomerPhone) == "" || input.CustomerAddress == "" {
		return ErrMissingCustomerInfo
	}

	phone := utils.NormalizePhone(input.CustomerPhone)
	if len(phone) != 13 || !strings.HasPrefix(phone, "8801") {
		return ErrInvalidPhone
	}
	input.CustomerPhone = utils.LocalPhone(phone)
	return nil
}

func (s *service) Checkout(ctx context.Context, input CheckoutInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
	)
	log.Info("Checkout started")

	if err := validateCustomer(&input); err != nil {
		return nil, err
	}

	// 1. Resolve requested lines
	lines, sessionID, err := s.requestedLines(ctx, input)
	if err != nil {
		log.Warn("invalid checkout lines", zap.Error(err))
		return nil, err
	}

	// 2. Price against live products
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.productID)
	}
	products, err := s.products.GetByIDs(ctx, ids)
	if err != nil {
		log.Error("failed to load products", zap.Error(err))
		return nil, err
	}

	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		p, ok := products[l.productID]
		if !ok || !p.IsActive {
			log.Warn("product unavailable", zap.Int64("product_id", l.productID))
			return nil, ErrProductUnavailable
		}
		if p.Stock < l.quantity {
			log.Warn("insufficient stock", zap.Int64("product_id", l.productID))
			return nil, ErrInsufficientStock
		}
		productID := p.ID
		items = append(items, Item{
			ProductID: &productID,
			Name:      p.Name,
			Price:     p.Price,
			ImageURL:  p.ImageURL,
			Quantity:  l.quantity,
		})
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		log.Error("failed to load settings", zap.Error(err))
		return nil, err
	}
	totals := Price(items, Rates{
		TaxRate:               cfg.TaxRate,
		DeliveryFee:           cfg.DeliveryFee,
		FreeDeliveryThreshold: cfg.FreeDeliveryThreshold,
	})

	// 3. Persist
	now := s.now()
	created, err := s.repo.Create(ctx, &Order{
		OrderNumber:     utils.GenerateOrderNumber(now),
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		CustomerEmail:   input.CustomerEmail,
		CustomerAddress: input.CustomerAddress,
		Notes:           input.Notes,
		Items:           items,
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		Shipping:        totals.Shipping,
		Total:           totals.Total,
		Status:          StatusPending,
		OrderDate:       now,
	})
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}
	log = log.With(zap.String("order_number", created.OrderNumber))

	// 4. Side effects
	if sessionID != "" {
		if err := s.carts.Clear(ctx, sessionID); err != nil {
			log.Warn("failed to clear cart after checkout", zap.Error(err))
		}
	}
	if s.notifier != nil {
		if err := s.notifier.OrderPlaced(ctx, created); err != nil {
			log.Warn("order notification failed", zap.Error(err))
		}
	}

	log.Info("Checkout success", zap.Float64("total", created.Total))
	return created, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) GetByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	o, err := s.repo.GetByNumber(ctx, strings.ToUpper(strings.TrimSpace(orderNumber)))
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (s *service) List(ctx context.Context, filter ListFilter) (*Page, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListOrders"),
	)

	if filter.Status != "" && !Status(filter.Status).Valid() {
		return nil, ErrInvalidStatus
	}
	filter.Page, filter.Limit, _ = utils.Paging(filter.Page, filter.Limit)
	filter.Search = strings.TrimSpace(filter.Search)

	orders, total, err := s.repo.List(ctx, filter)
	if err != nil {
		log.Error("failed to list orders", zap.Error(err))
		return nil, err
	}

	return &Page{Items: ToViews(orders), Total: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateOrderStatus"),
		zap.Int64("order_id", id),
		zap.String("status", status),
	)

	st := Status(strings.ToLower(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.UpdateStatus(ctx, id, st)
	if err != nil {
		log.Error("failed to update status", zap.Error(err))
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}

	log.Info("UpdateOrderStatus success")
	return s.withItems(ctx, o), nil
}

// BulkUpdateStatus applies status to each id independently. Failed items are
// reported, not rolled back or retried.
func (s *service) BulkUpdateStatus(ctx context.Context, ids []string, status string) ([]BulkResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "BulkUpdateStatus"),
		zap.Int("count", len(ids)),
	)

	if len(ids) == 0 {
		return nil, ErrNoIDs
	}
	st := Status(strings.ToLower(strings.TrimSpace(status)))
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}

	results := make([]BulkResult, 0, len(ids))
	failed := 0
	for _, raw := range ids {
		res := BulkResult{ID: raw}

		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		switch {
		case err != nil || id < 1:
			res.Error = "invalid order id"
		default:
			o, err := s.repo.UpdateStatus(ctx, id, st)
			switch {
			case err != nil:
				res.Error = "failed to update order"
			case o == nil:
				res.Error = ErrOrderNotFound.Error()
			default:
				res.Success = true
			}
		}

		if !res.Success {
			failed++
		}
		results = append(results, res)
	}

	log.Info("BulkUpdateStatus done", zap.Int("failed", failed))
	return results, nil
}

func (s *service) AttachShipment(ctx context.Context, id int64, update CourierUpdate) (*Order, error) {
	if update.Status != "" && !update.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	o, err := s.repo.UpdateCourier(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return s.withItems(ctx, o), nil
}

// withItems reloads o with its items; the update queries return the order
// row only.
func (s *service) withItems(ctx context.Context, o *Order) *Order {
	full, err := s.repo.GetByID(ctx, o.ID)
	if err != nil || full == nil {
		return o
	}
	return full
}

// ApplyCourierStatus records a courier callback on the matching order and
// moves it to delivered/cancelled when the courier reports so.
func (s *service) ApplyCourierStatus(ctx context.Context, consignmentID, invoice, courierStatus string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ApplyCourierStatus"),
		zap.String("consignment_id", consignmentID),
		zap.String("invoice", invoice),
		zap.String("courier_status", courierStatus),
	)

	o, err := s.repo.FindForCourier(ctx, consignmentID, invoice)
	if err != nil {
		return nil, err
	}
	if o == nil {
		log.Warn("no order matches courier update")
		return nil, ErrOrderNotFound
	}

	update := CourierUpdate{CourierStatus: courierStatus}
	if st, ok := StatusFromCourier(courierStatus); ok {
		update.Status = st
	}

	updated, err := s.repo.UpdateCourier(ctx, o.ID, update)
	if err != nil {
		log.Error("failed to apply courier status", zap.Error(err))
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	log.Info("ApplyCourierStatus success", zap.String("status", string(updated.Status)))
	return updated, nil
}
