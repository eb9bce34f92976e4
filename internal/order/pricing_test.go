package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	items := []Item{
		{Name: "Rice", Price: 45.5, Quantity: 2},
		{Name: "Oil", Price: 120, Quantity: 1},
	}

	t.Run("TaxAndDelivery", func(t *testing.T) {
		got := Price(items, Rates{TaxRate: 5, DeliveryFee: 60, FreeDeliveryThreshold: 500})
		assert.Equal(t, Totals{Subtotal: 211, Tax: 10.55, Shipping: 60, Total: 281.55}, got)
	})

	t.Run("FreeDeliveryAtThreshold", func(t *testing.T) {
		got := Price(items, Rates{TaxRate: 5, DeliveryFee: 60, FreeDeliveryThreshold: 211})
		assert.Equal(t, 0.0, got.Shipping)
		assert.Equal(t, 221.55, got.Total)
	})

	t.Run("ZeroThresholdNeverFree", func(t *testing.T) {
		got := Price(items, Rates{DeliveryFee: 60})
		assert.Equal(t, 60.0, got.Shipping)
	})
}

// total == subtotal + tax + shipping is only guaranteed for orders priced
// here; rows written by other tools are not checked.
func TestPrice_TotalIsSumOfParts(t *testing.T) {
	rates := []Rates{
		{TaxRate: 0, DeliveryFee: 0},
		{TaxRate: 7.5, DeliveryFee: 49.99, FreeDeliveryThreshold: 1000},
		{TaxRate: 15, DeliveryFee: 120, FreeDeliveryThreshold: 300},
	}
	baskets := [][]Item{
		{{Price: 0.1, Quantity: 3}},
		{{Price: 19.99, Quantity: 7}, {Price: 3.33, Quantity: 3}},
		{{Price: 999.95, Quantity: 2}},
	}

	for _, r := range rates {
		for _, b := range baskets {
			got := Price(b, r)
			sum := decimal.NewFromFloat(got.Subtotal).
				Add(decimal.NewFromFloat(got.Tax)).
				Add(decimal.NewFromFloat(got.Shipping))
			assert.True(t, sum.Equal(decimal.NewFromFloat(got.Total)), "rates=%+v basket=%+v", r, b)
		}
	}
}

func TestStatusFromCourier(t *testing.T) {
	st, ok := StatusFromCourier("delivered")
	assert.True(t, ok)
	assert.Equal(t, StatusDelivered, st)

	st, ok = StatusFromCourier("cancelled")
	assert.True(t, ok)
	assert.Equal(t, StatusCancelled, st)

	_, ok = StatusFromCourier("in_review")
	assert.False(t, ok)
}

func TestToView(t *testing.T) {
	pid := int64(4)
	v := ToView(&Order{
		ID:     12,
		Status: StatusPending,
		Items: []Item{
			{ProductID: &pid, Name: "Egg", Price: 12.5, Quantity: 2},
			{Name: "Gone", Price: 1, Quantity: 1},
		},
	})

	assert.Equal(t, "12", v.ID)
	assert.Equal(t, "4", *v.Items[0].ProductID)
	assert.Equal(t, 25.0, v.Items[0].LineTotal)
	assert.Nil(t, v.Items[1].ProductID)
}
