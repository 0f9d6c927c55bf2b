package ports

import (
	"context"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

// CalculationRepository defines the interface for dashboard record persistence.
type CalculationRepository interface {
	Insert(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error)
	ListByUser(ctx context.Context, userID int64, kind domain.CalculationKind) ([]domain.Calculation, error)
}
