package handler

import "time"

type recordCalculationRequest struct {
	Value   float64 `json:"value"   validate:"required,gt=0"`
	Details string  `json:"details"`
}

type calculationResponse struct {
	ID      int64     `json:"id"`
	Value   float64   `json:"value"`
	Details string    `json:"details,omitempty"`
	Date    time.Time `json:"date"`
}
