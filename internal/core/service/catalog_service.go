package service

import (
	"context"

	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

// CatalogService exposes the plain CRUD surface over the services, reviews,
// and products collections. No business rules apply here.
type CatalogService struct {
	services ports.CatalogRepository
	reviews  ports.CatalogRepository
	products ports.CatalogRepository
}

func NewCatalogService(services, reviews, products ports.CatalogRepository) *CatalogService {
	return &CatalogService{services: services, reviews: reviews, products: products}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]domain.Document, error) {
	return s.services.FindAll(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id string) (domain.Document, error) {
	return s.services.FindByID(ctx, id)
}

func (s *CatalogService) ListReviews(ctx context.Context) ([]domain.Document, error) {
	return s.reviews.FindAll(ctx)
}

func (s *CatalogService) AddReview(ctx context.Context, review domain.Document) (domain.Document, error) {
	return s.reviews.Insert(ctx, review)
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Document, error) {
	return s.products.FindAll(ctx)
}

func (s *CatalogService) AddProduct(ctx context.Context, product domain.Document) (domain.Document, error) {
	return s.products.Insert(ctx, product)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) (int64, error) {
	return s.products.DeleteByID(ctx, id)
}
