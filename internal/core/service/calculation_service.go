package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
	"github.com/ecotrack/ecotrack-api/internal/core/ports"
)

type CalculationService struct {
	repo   ports.CalculationRepository
	logger zerolog.Logger
}

func NewCalculationService(repo ports.CalculationRepository, logger zerolog.Logger) *CalculationService {
	return &CalculationService{repo: repo, logger: logger}
}

// Record stores one dashboard calculation for the authenticated user. The
// user id comes from the verified token, never from the request body.
func (s *CalculationService) Record(ctx context.Context, userID int64, kind domain.CalculationKind, value float64, details string) (*domain.Calculation, error) {
	calc := &domain.Calculation{
		UserID:  userID,
		Kind:    kind,
		Value:   value,
		Details: details,
		Date:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, calc)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", userID).Str("kind", string(kind)).Msg("calculation recorded")
	return created, nil
}

func (s *CalculationService) History(ctx context.Context, userID int64, kind domain.CalculationKind) ([]domain.Calculation, error) {
	return s.repo.ListByUser(ctx, userID, kind)
}
