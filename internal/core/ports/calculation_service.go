package ports

import (
	"context"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

type CalculationService interface {
	Record(ctx context.Context, userID int64, kind domain.CalculationKind, value float64, details string) (*domain.Calculation, error)
	History(ctx context.Context, userID int64, kind domain.CalculationKind) ([]domain.Calculation, error)
}
