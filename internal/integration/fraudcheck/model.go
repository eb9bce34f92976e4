package fraudcheck

type Risk string

const (
	RiskLow     Risk = "low"
	RiskMedium  Risk = "medium"
	RiskHigh    Risk = "high"
	RiskUnknown Risk = "unknown"
)

// CourierStat is the delivery history of one courier for a phone number.
type CourierStat struct {
	Courier      string  `json:"courier"`
	TotalParcel  int     `json:"totalParcel"`
	SuccessCount int     `json:"successParcel"`
	CancelCount  int     `json:"cancelledParcel"`
	SuccessRatio float64 `json:"successRatio"`
}

type Result struct {
	Phone        string        `json:"phone"`
	TotalParcel  int           `json:"totalParcel"`
	SuccessCount int           `json:"successParcel"`
	CancelCount  int           `json:"cancelledParcel"`
	SuccessRatio float64       `json:"successRatio"`
	Risk         Risk          `json:"risk"`
	BelowMinimum bool          `json:"belowMinimum"`
	Couriers     []CourierStat `json:"couriers"`
}

type providerStat struct {
	Name            string  `json:"name"`
	TotalParcel     int     `json:"total_parcel"`
	SuccessParcel   int     `json:"success_parcel"`
	CancelledParcel int     `json:"cancelled_parcel"`
	SuccessRatio    float64 `json:"success_ratio"`
}

type providerResponse struct {
	Status      string                  `json:"status"`
	CourierData map[string]providerStat `json:"courierData"`
}
