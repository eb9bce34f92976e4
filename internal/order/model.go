package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var validStatuses = map[Status]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusCancelled:  true,
}

func (s Status) Valid() bool {
	return validStatuses[s]
}

type Order struct {
	ID              int64
	OrderNumber     string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string
	Notes           string
	Items           []Item
	Subtotal        float64
	Tax             float64
	Shipping        float64
	Total           float64
	Status          Status
	ConsignmentID   string
	TrackingCode    string
	CourierStatus   string
	OrderDate       time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Item is a denormalized copy of the product at purchase time. ProductID is
// nil once the product has been deleted.
type Item struct {
	ID        int64
	OrderID   int64
	ProductID *int64
	Name      string
	Price     float64
	ImageURL  string
	Quantity  int
}

type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type CheckoutInput struct {
	SessionID       string         `json:"sessionId"`
	Items           []CheckoutItem `json:"items"`
	CustomerName    string         `json:"customerName"`
	CustomerPhone   string         `json:"customerPhone"`
	CustomerEmail   string         `json:"customerEmail"`
	CustomerAddress string         `json:"customerAddress"`
	Notes           string         `json:"notes"`
}

type ListFilter struct {
	Status string
	Search string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

// CourierUpdate carries consignment fields; empty strings leave the stored
// value unchanged. Status is applied when non-empty.
type CourierUpdate struct {
	ConsignmentID string
	TrackingCode  string
	CourierStatus string
	Status        Status
}

type BulkResult struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type ItemView struct {
	ProductID *string `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

type View struct {
	ID              string     `json:"id"`
	OrderNumber     string     `json:"orderNumber"`
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	CustomerEmail   string     `json:"customerEmail"`
	CustomerAddress string     `json:"customerAddress"`
	Notes           string     `json:"notes"`
	Items           []ItemView `json:"items"`
	Subtotal        float64    `json:"subtotal"`
	Tax             float64    `json:"tax"`
	Shipping        float64    `json:"shipping"`
	Total           float64    `json:"total"`
	Status          Status     `json:"status"`
	ConsignmentID   string     `json:"consignmentId"`
	TrackingCode    string     `json:"trackingCode"`
	CourierStatus   string     `json:"courierStatus"`
	OrderDate       time.Time  `json:"orderDate"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type Page struct {
	Items []View `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
