package courier

import "time"

// OrderRequest is the consignment payload accepted by the courier.
type OrderRequest struct {
	Invoice          string  `json:"invoice"`
	RecipientName    string  `json:"recipient_name"`
	RecipientPhone   string  `json:"recipient_phone"`
	RecipientAddress string  `json:"recipient_address"`
	CODAmount        float64 `json:"cod_amount"`
	Note             string  `json:"note,omitempty"`
}

type Consignment struct {
	ConsignmentID  int64     `json:"consignment_id"`
	Invoice        string    `json:"invoice"`
	TrackingCode   string    `json:"tracking_code"`
	RecipientName  string    `json:"recipient_name"`
	RecipientPhone string    `json:"recipient_phone"`
	CODAmount      float64   `json:"cod_amount"`
	Status         string    `json:"status"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
}

type createOrderResponse struct {
	Status      int          `json:"status"`
	Message     string       `json:"message"`
	Consignment *Consignment `json:"consignment"`
}

type Balance struct {
	Status         int     `json:"status"`
	CurrentBalance float64 `json:"current_balance"`
}

type DeliveryStatus struct {
	Status         int    `json:"status"`
	DeliveryStatus string `json:"delivery_status"`
}

// WebhookPayload is the body of a courier status callback.
type WebhookPayload struct {
	NotificationType string  `json:"notification_type"`
	ConsignmentID    int64   `json:"consignment_id"`
	Invoice          string  `json:"invoice"`
	CODAmount        float64 `json:"cod_amount"`
	Status           string  `json:"status"`
	DeliveryCharge   float64 `json:"delivery_charge"`
	TrackingMessage  string  `json:"tracking_message"`
	UpdatedAt        string  `json:"updated_at"`
}

type ShipInput struct {
	Note string `json:"note"`
}
