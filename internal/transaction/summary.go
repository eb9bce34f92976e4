package transaction

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Summarize totals income and expense overall and per (type, category).
// Categories are ordered by type, then descending total.
func Summarize(ts []*Transaction) Summary {
	type key struct {
		typ      Type
		category string
	}
	type bucket struct {
		total decimal.Decimal
		count int
	}

	income, expense := decimal.Zero, decimal.Zero
	buckets := map[key]*bucket{}
	var order []key

	for _, t := range ts {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case TypeIncome:
			income = income.Add(amount)
		case TypeExpense:
			expense = expense.Add(amount)
		default:
			continue
		}

		k := key{t.Type, t.Category}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
			order = append(order, k)
		}
		b.total = b.total.Add(amount)
		b.count++
	}

	byCategory := make([]CategoryTotal, 0, len(order))
	for _, k := range order {
		b := buckets[k]
		byCategory = append(byCategory, CategoryTotal{
			Type:     k.typ,
			Category: k.category,
			Total:    b.total.InexactFloat64(),
			Count:    b.count,
		})
	}
	sort.SliceStable(byCategory, func(i, j int) bool {
		if byCategory[i].Type != byCategory[j].Type {
			return byCategory[i].Type == TypeIncome
		}
		return byCategory[i].Total > byCategory[j].Total
	})

	return Summary{
		TotalIncome:  income.InexactFloat64(),
		TotalExpense: expense.InexactFloat64(),
		Net:          income.Sub(expense).InexactFloat64(),
		Count:        len(ts),
		ByCategory:   byCategory,
	}
}
