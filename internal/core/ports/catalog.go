package ports

import (
	"context"

	"github.com/partsline/manufacturer-api/internal/core/domain"
)

// CatalogRepository is the generic persistence surface shared by the
// services, reviews, and products collections: flat documents, no invariants.
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Document, error)
	// FindByID returns one document by its hex id. A malformed id surfaces as
	// domain.ErrInvalidID, a missing document as domain.ErrDocumentNotFound.
	FindByID(ctx context.Context, id string) (domain.Document, error)
	Insert(ctx context.Context, doc domain.Document) (domain.Document, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// CatalogService exposes the plain CRUD operations of the public catalog.
type CatalogService interface {
	ListServices(ctx context.Context) ([]domain.Document, error)
	GetService(ctx context.Context, id string) (domain.Document, error)
	ListReviews(ctx context.Context) ([]domain.Document, error)
	AddReview(ctx context.Context, review domain.Document) (domain.Document, error)
	ListProducts(ctx context.Context) ([]domain.Document, error)
	AddProduct(ctx context.Context, product domain.Document) (domain.Document, error)
	DeleteProduct(ctx context.Context, id string) (int64, error)
}
