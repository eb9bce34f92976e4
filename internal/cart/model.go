package cart

import "time"

// Item is a cart line joined with the live product row.
type Item struct {
	ProductID int64
	Quantity  int
	Name      string
	Price     float64
	ImageURL  string
	Stock     int
	IsActive  bool
	AddedAt   time.Time
}

type ItemView struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"imageUrl"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
	InStock   bool    `json:"inStock"`
}

type View struct {
	SessionID string     `json:"sessionId"`
	Items     []ItemView `json:"items"`
	ItemCount int        `json:"itemCount"`
	Subtotal  float64    `json:"subtotal"`
}

type AddItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}
