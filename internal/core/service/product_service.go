package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
	"github.com/ecotrack/ecotrack-api/internal/core/ports"
)

// CatalogCache is an optional read-through cache for the product listing.
type CatalogCache interface {
	GetList(ctx context.Context) ([]domain.Product, bool)
	SetList(ctx context.Context, products []domain.Product)
	Invalidate(ctx context.Context)
}

type ProductService struct {
	repo   ports.ProductRepository
	cache  CatalogCache
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache CatalogCache, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, logger: logger}
}

func (s *ProductService) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	created, err := s.repo.Insert(ctx, product)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info().Int64("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

// List serves the catalog from cache when possible. Cache failures degrade to
// a repository read; they are never surfaced to the caller.
func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		if products, ok := s.cache.GetList(ctx); ok {
			return products, nil
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, products)
	}
	return products, nil
}
