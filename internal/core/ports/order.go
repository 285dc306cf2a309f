package ports

import (
	"context"

	"github.com/partsline/manufacturer-api/internal/core/domain"
)

// OrderRepository defines persistence operations over the orders collection.
type OrderRepository interface {
	// FindByPartsAndEmail returns the order matching the (partsName, email)
	// pair, or domain.ErrOrderNotFound.
	FindByPartsAndEmail(ctx context.Context, partsName, email string) (domain.Document, error)
	// Insert persists the order and returns it with its assigned _id.
	// A unique-index violation on (partsName, email) surfaces as
	// domain.ErrDuplicateOrder.
	Insert(ctx context.Context, order domain.Document) (domain.Document, error)
	FindByEmail(ctx context.Context, email string) ([]domain.Document, error)
	// Delete removes one order by its hex id and reports how many documents
	// were removed. A malformed id surfaces as domain.ErrInvalidID.
	Delete(ctx context.Context, id string) (int64, error)
}

// SubmitOrderInput carries a proposed order into the intake service.
// PartsName and Email are the uniqueness key; Fields is the full document as
// submitted, stored verbatim.
type SubmitOrderInput struct {
	PartsName string
	Email     string
	Fields    domain.Document
}

// SubmitOrderResult reports the intake decision. Accepted=false is a normal
// outcome, not an error: Record then holds the pre-existing order.
type SubmitOrderResult struct {
	Accepted bool
	Record   domain.Document
}

// OrderService accepts, lists, and deletes orders while enforcing that the
// same part may not be ordered twice by the same requester.
type OrderService interface {
	Submit(ctx context.Context, in SubmitOrderInput) (*SubmitOrderResult, error)
	ListForRequester(ctx context.Context, email string) ([]domain.Document, error)
	Delete(ctx context.Context, id string) (int64, error)
}
