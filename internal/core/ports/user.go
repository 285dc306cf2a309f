package ports

import (
	"context"

	"github.com/partsline/manufacturer-api/internal/core/domain"
)

// UpdateOutcome mirrors the write acknowledgement the document store reports
// for an update or upsert.
type UpdateOutcome struct {
	Matched    int64  `json:"matched"`
	Modified   int64  `json:"modified"`
	UpsertedID string `json:"upsertedId,omitempty"`
}

// UserRepository defines persistence operations over the users collection.
type UserRepository interface {
	// FindByEmail returns the identity for email, or domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.Document, error)
	// Upsert merges fields into the document keyed by email ($set semantics:
	// supplied keys overwrite, absent keys are left untouched).
	Upsert(ctx context.Context, email string, fields domain.Document) (UpdateOutcome, error)
	// SetRole overwrites the role field of an existing identity.
	SetRole(ctx context.Context, email, role string) (UpdateOutcome, error)
}

// UpsertProfileResult carries the store acknowledgement plus the fresh token
// issued for the upserted identity.
type UpsertProfileResult struct {
	Outcome UpdateOutcome
	Token   string
}

// UserService is the role authority: it answers and mutates admin status and
// owns profile upserts (which double as login, since each one mints a token).
type UserService interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
	// Promote grants the admin role to targetEmail. The requester identity
	// must exist; its own role is not consulted.
	Promote(ctx context.Context, requesterEmail, targetEmail string) (UpdateOutcome, error)
	UpsertProfile(ctx context.Context, email string, fields domain.Document) (*UpsertProfileResult, error)
	ListUsers(ctx context.Context) ([]domain.Document, error)
}
