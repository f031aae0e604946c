package api

// TrackingEvent is one scan in a shipment's history.
type TrackingEvent struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// TrackingResponse is returned by GET /shipping/track/:orderID.
type TrackingResponse struct {
	OrderID           string          `json:"order_id"`
	CurrentStatus     string          `json:"current_status"`
	CourierName       string          `json:"courier_name"`
	TrackingNumber    string          `json:"awb_code"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty"`
	Events            []TrackingEvent `json:"events,omitempty"`
}

// LabelResponse carries the generated shipping label.
type LabelResponse struct {
	LabelURL string `json:"label_url"`
}

// RateRequest quotes shipping rates between two postcodes.
type RateRequest struct {
	PickupPostcode   string  `json:"pickup_postcode"`
	DeliveryPostcode string  `json:"delivery_postcode"`
	Weight           float64 `json:"weight"`
	COD              bool    `json:"cod"`
}

// CourierRate is one courier's quote.
type CourierRate struct {
	CourierName           string  `json:"courier_name"`
	Rate                  float64 `json:"rate"`
	EstimatedDeliveryDays int     `json:"estimated_delivery_days"`
	CODAvailable          bool    `json:"cod_available"`
}

// RateResponse is returned by POST /shipping/rates.
type RateResponse struct {
	AvailableCourierCompanies []CourierRate `json:"available_courier_companies"`
}

// ServiceabilityRequest checks whether a destination is deliverable.
type ServiceabilityRequest struct {
	PickupPostcode   string `json:"pickup_postcode"`
	DeliveryPostcode string `json:"delivery_postcode"`
}

// ServiceabilityResponse is returned by POST /shipping/serviceability.
type ServiceabilityResponse struct {
	IsServiceable         bool `json:"is_serviceable"`
	EstimatedDeliveryDays int  `json:"estimated_delivery_days"`
}
