package review

import "time"

type Review struct {
	ID           int64
	ProductID    int64
	ProductName  string
	CustomerName string
	Rating       int
	Comment      string
	IsApproved   bool
	CreatedAt    time.Time
}

type CreateInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ListFilter struct {
	ProductID int64
	Approved  *bool
	Page      int
	Limit     int
}

type View struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"productId"`
	ProductName  string    `json:"productName,omitempty"`
	CustomerName string    `json:"name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"createdAt"`
}

type Page struct {
	Items []View `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

// ProductRating is the public aggregate shown next to a product's reviews.
type ProductRating struct {
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
}
