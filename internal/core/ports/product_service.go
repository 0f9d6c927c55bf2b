package ports

import (
	"context"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

type ProductService interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
}
