package courier

import (
	"context"
	"strconv"
	"strings"

	"grocery-be/internal/logger"
	"grocery-be/internal/module"
	"grocery-be/internal/order"

	"go.uber.org/zap"
)

// Orders is the slice of the order service that shipping needs.
type Orders interface {
	Get(ctx context.Context, id int64) (*order.Order, error)
	AttachShipment(ctx context.Context, id int64, update order.CourierUpdate) (*order.Order, error)
}

type ModuleSettings interface {
	Settings(ctx context.Context, moduleID string) (map[string]any, error)
}

type Service interface {
	// Ship sends the order to the courier and stores the consignment on it.
	Ship(ctx context.Context, orderID int64, input ShipInput) (*order.Order, error)
	Balance(ctx context.Context) (*Balance, error)
	// Status looks a shipment up by the first non-empty reference.
	Status(ctx context.Context, consignmentID, trackingCode, invoice string) (*DeliveryStatus, error)
}

type service struct {
	client  Client
	orders  Orders
	modules ModuleSettings
}

func NewService(client Client, orders Orders, modules ModuleSettings) Service {
	return &service{client: client, orders: orders, modules: modules}
}

func (s *service) Ship(ctx context.Context, orderID int64, input ShipInput) (*order.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ShipOrder"),
		zap.Int64("order_id", orderID),
	)
	log.Info("ShipOrder started")

	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.ConsignmentID != "" {
		return nil, ErrAlreadyShipped
	}
	if o.Status == order.StatusCancelled || o.Status == order.StatusDelivered {
		return nil, ErrOrderNotShippable
	}

	note := strings.TrimSpace(input.Note)
	cod := true
	if cfg, err := s.modules.Settings(ctx, module.IDCourier); err == nil {
		if note == "" {
			note, _ = cfg["defaultNote"].(string)
		}
		if v, ok := cfg["codEnabled"].(bool); ok {
			cod = v
		}
	}

	req := OrderRequest{
		Invoice:          o.OrderNumber,
		RecipientName:    o.CustomerName,
		RecipientPhone:   o.CustomerPhone,
		RecipientAddress: o.CustomerAddress,
		Note:             note,
	}
	if cod {
		req.CODAmount = o.Total
	}

	c, err := s.client.CreateOrder(ctx, req)
	if err != nil {
		log.Error("courier create order failed", zap.Error(err))
		return nil, err
	}

	updated, err := s.orders.AttachShipment(ctx, orderID, order.CourierUpdate{
		ConsignmentID: strconv.FormatInt(c.ConsignmentID, 10),
		TrackingCode:  c.TrackingCode,
		CourierStatus: c.Status,
		Status:        order.StatusShipped,
	})
	if err != nil {
		log.Error("failed to store consignment", zap.Int64("consignment_id", c.ConsignmentID), zap.Error(err))
		return nil, err
	}

	log.Info("ShipOrder success", zap.Int64("consignment_id", c.ConsignmentID))
	return updated, nil
}

func (s *service) Balance(ctx context.Context) (*Balance, error) {
	return s.client.GetBalance(ctx)
}

func (s *service) Status(ctx context.Context, consignmentID, trackingCode, invoice string) (*DeliveryStatus, error) {
	switch {
	case strings.TrimSpace(consignmentID) != "":
		return s.client.GetStatusByConsignmentID(ctx, consignmentID)
	case strings.TrimSpace(trackingCode) != "":
		return s.client.GetStatusByTrackingCode(ctx, trackingCode)
	case strings.TrimSpace(invoice) != "":
		return s.client.GetStatusByInvoice(ctx, invoice)
	default:
		return nil, ErrMissingReference
	}
}
