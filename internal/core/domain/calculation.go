package domain

import "time"

// CalculationKind distinguishes the two dashboard record types.
type CalculationKind string

const (
	CalcCarbon CalculationKind = "carbon"
	CalcEnergy CalculationKind = "energy"
)

// Calculation is one dashboard record owned by a user: either a carbon-output
// estimate (kg CO2) or an energy-usage estimate (kWh), depending on Kind.
type Calculation struct {
	ID      int64           `json:"id"`
	UserID  int64           `json:"user_id"`
	Kind    CalculationKind `json:"kind"`
	Value   float64         `json:"value"`
	Details string          `json:"details,omitempty"`
	Date    time.Time       `json:"date"`
}
