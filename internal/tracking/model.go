package tracking

import "time"

type EventType string

const (
	EventPageView       EventType = "page_view"
	EventClick          EventType = "click"
	EventPurchase       EventType = "purchase"
	EventAddToCart      EventType = "add_to_cart"
	EventRemoveFromCart EventType = "remove_from_cart"
	EventSearch         EventType = "search"
	EventCustom         EventType = "custom"
)

var eventTypes = map[EventType]bool{
	EventPageView:       true,
	EventClick:          true,
	EventPurchase:       true,
	EventAddToCart:      true,
	EventRemoveFromCart: true,
	EventSearch:         true,
	EventCustom:         true,
}

func (t EventType) Valid() bool {
	return eventTypes[t]
}

// Event is append-only; it is never updated after insert.
type Event struct {
	ID        int64
	EventType EventType
	SessionID string
	UserID    string
	ProductID string
	OrderID   string
	PageURL   string
	Referrer  string
	UserAgent string
	IPAddress string
	Metadata  map[string]any
	CreatedAt time.Time
}

type RecordInput struct {
	EventType string         `json:"eventType"`
	SessionID string         `json:"sessionId"`
	UserID    string         `json:"userId"`
	ProductID string         `json:"productId"`
	OrderID   string         `json:"orderId"`
	PageURL   string         `json:"pageUrl"`
	Referrer  string         `json:"referrer"`
	Metadata  map[string]any `json:"metadata"`
}

// RequestMeta is taken from the HTTP request, not the body.
type RequestMeta struct {
	UserAgent string
	IPAddress string
}

type ListFilter struct {
	EventType string
	SessionID string
	ProductID string
	From      *time.Time
	To        *time.Time
	Page      int
	Limit     int
}

type View struct {
	ID        string         `json:"id"`
	EventType EventType      `json:"eventType"`
	SessionID string         `json:"sessionId,omitempty"`
	UserID    string         `json:"userId,omitempty"`
	ProductID string         `json:"productId,omitempty"`
	OrderID   string         `json:"orderId,omitempty"`
	PageURL   string         `json:"pageUrl,omitempty"`
	Referrer  string         `json:"referrer,omitempty"`
	UserAgent string         `json:"userAgent,omitempty"`
	IPAddress string         `json:"ipAddress,omitempty"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

type Page struct {
	Items []View `json:"items"`
	Total int64  `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

type ProductViews struct {
	ProductID string `json:"productId"`
	Views     int64  `json:"views"`
}

type Summary struct {
	Days           int                 `json:"days"`
	Since          time.Time           `json:"since"`
	TotalEvents    int64               `json:"totalEvents"`
	UniqueSessions int64               `json:"uniqueSessions"`
	ByType         map[EventType]int64 `json:"byType"`
	TopProducts    []ProductViews      `json:"topProducts"`
}
