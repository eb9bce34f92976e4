package product

import "time"

type Product struct {
	ID             int64
	CategoryID     *int64
	CategoryName   string
	Name           string
	Slug           string
	Description    string
	Price          float64
	CompareAtPrice *float64
	Unit           string
	Stock          int
	ImageURL       string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ListFilter struct {
	CategoryID   int64
	CategorySlug string
	Search       string
	InStock      bool
	ActiveOnly   bool
	Page         int
	Limit        int
}

type CreateInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	CompareAtPrice *float64 `json:"compareAtPrice"`
	Unit           string   `json:"unit"`
	Stock          int      `json:"stock"`
	ImageURL       string   `json:"imageUrl"`
	CategoryID     *string  `json:"categoryId"`
	IsActive       *bool    `json:"isActive"`
}

type UpdateInput struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	Price          *float64 `json:"price"`
	CompareAtPrice *float64 `json:"compareAtPrice"`
	Unit           *string  `json:"unit"`
	Stock          *int     `json:"stock"`
	ImageURL       *string  `json:"imageUrl"`
	CategoryID     *string  `json:"categoryId"`
	IsActive       *bool    `json:"isActive"`
}

type View struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Price          float64   `json:"price"`
	CompareAtPrice *float64  `json:"compareAtPrice"`
	Unit           string    `json:"unit"`
	Stock          int       `json:"stock"`
	InStock        bool      `json:"inStock"`
	ImageURL       string    `json:"imageUrl"`
	CategoryID     *string   `json:"categoryId"`
	CategoryName   string    `json:"categoryName"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Page struct {
	Items []View `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}
