package cart

import (
	"strconv"

	"github.com/shopspring/decimal"
)

func ToView(sessionID string, items []*Item) View {
	v := View{SessionID: sessionID, Items: make([]ItemView, 0, len(items))}

	subtotal := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
		v.ItemCount += it.Quantity

		v.Items = append(v.Items, ItemView{
			ProductID: strconv.FormatInt(it.ProductID, 10),
			Name:      it.Name,
			Price:     it.Price,
			ImageURL:  it.ImageURL,
			Quantity:  it.Quantity,
			LineTotal: line.InexactFloat64(),
			InStock:   it.IsActive && it.Stock >= it.Quantity,
		})
	}
	v.Subtotal = subtotal.InexactFloat64()
	return v
}
