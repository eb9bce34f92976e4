package transaction

import "time"

type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

type Transaction struct {
	ID          int64
	Type        Type
	Category    string
	Amount      float64
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

type CreateInput struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	// Date is YYYY-MM-DD or RFC3339; empty means now.
	Date string `json:"date"`
}

type ListFilter struct {
	Type     string
	Category string
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type View struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Page struct {
	Items []View `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type CategoryTotal struct {
	Type     Type    `json:"type"`
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type Summary struct {
	TotalIncome  float64         `json:"totalIncome"`
	TotalExpense float64         `json:"totalExpense"`
	Net          float64         `json:"net"`
	Count        int             `json:"count"`
	ByCategory   []CategoryTotal `json:"byCategory"`
	From         *time.Time      `json:"from"`
	To           *time.Time      `json:"to"`
}
