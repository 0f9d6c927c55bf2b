package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ecotrack/ecotrack-api/internal/core/domain"
)

type stubProductRepo struct {
	nextID   int64
	products []domain.Product
	listed   int
}

func (r *stubProductRepo) Insert(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.nextID++
	clone := *product
	clone.ID = r.nextID
	r.products = append(r.products, clone)
	return &clone, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.listed++
	return r.products, nil
}

type fakeCache struct {
	entries     []domain.Product
	populated   bool
	invalidated int
}

func (c *fakeCache) GetList(context.Context) ([]domain.Product, bool) {
	if !c.populated {
		return nil, false
	}
	return c.entries, true
}

func (c *fakeCache) SetList(_ context.Context, products []domain.Product) {
	c.entries = products
	c.populated = true
}

func (c *fakeCache) Invalidate(context.Context) {
	c.entries = nil
	c.populated = false
	c.invalidated++
}

func TestProductService_ListPopulatesAndHitsCache(t *testing.T) {
	repo := &stubProductRepo{}
	cache := &fakeCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.Product{Name: "panel", Price: 100}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("first list failed: %v", err)
	}
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("second list failed: %v", err)
	}
	if repo.listed != 1 {
		t.Fatalf("expected exactly one repository read, got %d", repo.listed)
	}
}

func TestProductService_CreateInvalidatesCache(t *testing.T) {
	repo := &stubProductRepo{}
	cache := &fakeCache{}
	svc := NewProductService(repo, cache, zerolog.Nop())

	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), &domain.Product{Name: "battery", Price: 50}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidated != 1 {
		t.Fatalf("expected cache invalidation on create, got %d", cache.invalidated)
	}

	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "battery" {
		t.Fatalf("stale listing after create: %+v", products)
	}
}

func TestProductService_NilCacheIsOptional(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), &domain.Product{Name: "inverter", Price: 300}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	products, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected one product, got %d", len(products))
	}
}
