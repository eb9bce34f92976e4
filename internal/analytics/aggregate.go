package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

const dayKeyLayout = "2006-01-02"

// Window returns the reporting range for the last days calendar days: UTC
// midnight days-1 days before now, through now.
func Window(now time.Time, days int) (start, end time.Time) {
	end = now.UTC()
	today := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	start = today.AddDate(0, 0, -(days - 1))
	return start, end
}

type dayBucket struct {
	orders  int
	revenue decimal.Decimal
}

type productBucket struct {
	ref      string
	name     string
	quantity int
	revenue  decimal.Decimal
}

// Aggregate builds the report in a single pass over orders. Orders dated
// outside [start, end] are ignored so the daily series always sums to the
// summary.
func Aggregate(orders []OrderRecord, start, end time.Time, top int) Report {
	days := make(map[string]*dayBucket)
	statuses := make(map[string]int)
	products := make(map[string]*productBucket)
	var encounter []*productBucket

	totalOrders := 0
	totalRevenue := decimal.Zero

	for _, o := range orders {
		if o.OrderDate.Before(start) || o.OrderDate.After(end) {
			continue
		}

		total := decimal.NewFromFloat(o.Total)
		key := o.OrderDate.UTC().Format(dayKeyLayout)

		b, ok := days[key]
		if !ok {
			b = &dayBucket{}
			days[key] = b
		}
		b.orders++
		b.revenue = b.revenue.Add(total)

		statuses[o.Status]++
		totalOrders++
		totalRevenue = totalRevenue.Add(total)

		for _, it := range o.Items {
			ref := it.ProductRef
			if ref == "" {
				ref = "name:" + it.Name
			}

			p, ok := products[ref]
			if !ok {
				p = &productBucket{ref: it.ProductRef, name: it.Name}
				products[ref] = p
				encounter = append(encounter, p)
			}
			p.quantity += it.Quantity
			p.revenue = p.revenue.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	return Report{
		DailyOrders:        fillDays(days, start, end),
		StatusDistribution: statuses,
		TopProducts:        topProducts(encounter, top),
		Summary:            summarize(totalOrders, totalRevenue),
	}
}

func fillDays(days map[string]*dayBucket, start, end time.Time) []DailyPoint {
	first := start.UTC()
	first = time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	last := end.UTC()

	var series []DailyPoint
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayKeyLayout)
		point := DailyPoint{Date: key}
		if b, ok := days[key]; ok {
			point.Orders = b.orders
			// float copy of the exact bucket; sums of points can drift from
			// Summary.TotalRevenue in the last float digits
			point.Revenue = b.revenue.InexactFloat64()
		}
		series = append(series, point)
	}
	return series
}

func topProducts(encounter []*productBucket, top int) []ProductStat {
	ranked := make([]*productBucket, len(encounter))
	copy(ranked, encounter)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].quantity > ranked[j].quantity
	})

	if top >= 0 && len(ranked) > top {
		ranked = ranked[:top]
	}

	out := make([]ProductStat, 0, len(ranked))
	for _, p := range ranked {
		out = append(out, ProductStat{
			ProductID: p.ref,
			Name:      p.name,
			Quantity:  p.quantity,
			Revenue:   p.revenue.InexactFloat64(),
		})
	}
	return out
}

func summarize(orders int, revenue decimal.Decimal) Summary {
	s := Summary{
		TotalOrders:  orders,
		TotalRevenue: revenue.InexactFloat64(),
	}
	if orders > 0 {
		s.AvgOrderValue = revenue.Div(decimal.NewFromInt(int64(orders))).InexactFloat64()
	}
	return s
}
