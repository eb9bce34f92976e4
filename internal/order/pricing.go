package order

import "github.com/shopspring/decimal"

// Rates are the pricing inputs taken from site settings.
type Rates struct {
	TaxRate               float64
	DeliveryFee           float64
	FreeDeliveryThreshold float64
}

type Totals struct {
	Subtotal float64
	Tax      float64
	Shipping float64
	Total    float64
}

// Price computes order totals. Tax is a percentage of the subtotal; delivery
// is free once the subtotal reaches a positive threshold. The total is
// always subtotal + tax + shipping.
func Price(items []Item, rates Rates) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(2)

	tax := subtotal.Mul(decimal.NewFromFloat(rates.TaxRate)).Div(decimal.NewFromInt(100)).Round(2)

	shipping := decimal.NewFromFloat(rates.DeliveryFee).Round(2)
	threshold := decimal.NewFromFloat(rates.FreeDeliveryThreshold)
	if threshold.IsPositive() && subtotal.GreaterThanOrEqual(threshold) {
		shipping = decimal.Zero
	}

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Total:    subtotal.Add(tax).Add(shipping).InexactFloat64(),
	}
}

// StatusFromCourier maps a courier delivery status to the order status it
// implies, if any.
func StatusFromCourier(courierStatus string) (Status, bool) {
	switch courierStatus {
	case "delivered", "partial_delivered":
		return StatusDelivered, true
	case "cancelled":
		return StatusCancelled, true
	}
	return "", false
}
