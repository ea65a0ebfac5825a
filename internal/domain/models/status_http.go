package models

// StatusRequest filters the session status endpoint to one market.
type StatusRequest struct {
	Market string `query:"market" json:"market" validate:"omitempty,oneof=tokyo london newyork"`
}
