package order

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func ToView(o *Order) View {
	v := View{
		ID:              strconv.FormatInt(o.ID, 10),
		OrderNumber:     o.OrderNumber,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		CustomerAddress: o.CustomerAddress,
		Notes:           o.Notes,
		Items:           make([]ItemView, 0, len(o.Items)),
		Subtotal:        o.Subtotal,
		Tax:             o.Tax,
		Shipping:        o.Shipping,
		Total:           o.Total,
		Status:          o.Status,
		ConsignmentID:   o.ConsignmentID,
		TrackingCode:    o.TrackingCode,
		CourierStatus:   o.CourierStatus,
		OrderDate:       o.OrderDate,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}

	for _, it := range o.Items {
		iv := ItemView{
			Name:      it.Name,
			Price:     it.Price,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			LineTotal: decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))).InexactFloat64(),
		}
		if it.ProductID != nil {
			id := strconv.FormatInt(*it.ProductID, 10)
			iv.ProductID = &id
		}
		v.Items = append(v.Items, iv)
	}
	return v
}

func ToViews(orders []*Order) []View {
	out := make([]View, 0, len(orders))
	for _, o := range orders {
		out = append(out, ToView(o))
	}
	return out
}
