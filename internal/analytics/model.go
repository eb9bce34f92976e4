package analytics

import "time"

const (
	DefaultDays = 30
	DefaultTop  = 5
	MaxDays     = 365
	MaxTop      = 50
)

// OrderRecord is the slice of an order the aggregator needs.
type OrderRecord struct {
	ID        int64
	Status    string
	Total     float64
	OrderDate time.Time
	Items     []ItemRecord
}

type ItemRecord struct {
	// ProductRef is the product id in canonical string form. Empty when the
	// product has since been deleted.
	ProductRef string
	Name       string
	Quantity   int
	Price      float64
}

type DailyPoint struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type ProductStat struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

type Summary struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

type Period struct {
	Days      int       `json:"days"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type Report struct {
	DailyOrders        []DailyPoint   `json:"dailyOrders"`
	StatusDistribution map[string]int `json:"statusDistribution"`
	TopProducts        []ProductStat  `json:"topProducts"`
	Summary            Summary        `json:"summary"`
	Period             Period         `json:"period"`
}
