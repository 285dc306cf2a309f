package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

// OrderDeduper abstracts the advisory duplicate-order marker (Redis). Marks
// expire on their own; MongoDB remains the authority on uniqueness.
type OrderDeduper interface {
	IsDuplicate(ctx context.Context, partsName, email string) (bool, error)
	Mark(ctx context.Context, partsName, email string) error
}

// OrderService enforces the intake rule: the same part may not be ordered
// twice by the same requester. A duplicate submission is answered with the
// original record, not an error.
type OrderService struct {
	repo  ports.OrderRepository
	dedup OrderDeduper
	log   zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, dedup OrderDeduper, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, dedup: dedup, log: log}
}

// Submit records the order unless one already exists for the same
// (partsName, email) pair. The pre-insert lookup is a fast path; the unique
// index on the orders collection is what actually closes the race, so a
// duplicate-key error on insert is resolved to the winning record.
func (s *OrderService) Submit(ctx context.Context, in ports.SubmitOrderInput) (*ports.SubmitOrderResult, error) {
	if hit, err := s.dedup.IsDuplicate(ctx, in.PartsName, in.Email); err != nil {
		s.log.Warn().Err(err).Str("email", in.Email).Msg("dedup check failed, falling back to store")
	} else if hit {
		existing, err := s.repo.FindByPartsAndEmail(ctx, in.PartsName, in.Email)
		if err == nil {
			return &ports.SubmitOrderResult{Accepted: false, Record: existing}, nil
		}
		if !errors.Is(err, domain.ErrOrderNotFound) {
			return nil, err
		}
		// stale mark, e.g. the order was deleted after being marked
		s.log.Debug().Str("email", in.Email).Str("parts", in.PartsName).Msg("stale dedup mark ignored")
	}

	existing, err := s.repo.FindByPartsAndEmail(ctx, in.PartsName, in.Email)
	if err == nil {
		return &ports.SubmitOrderResult{Accepted: false, Record: existing}, nil
	}
	if !errors.Is(err, domain.ErrOrderNotFound) {
		return nil, err
	}

	inserted, err := s.repo.Insert(ctx, in.Fields)
	if errors.Is(err, domain.ErrDuplicateOrder) {
		// lost a concurrent race; the unique index rejected the insert
		winner, ferr := s.repo.FindByPartsAndEmail(ctx, in.PartsName, in.Email)
		if ferr != nil {
			return nil, fmt.Errorf("resolve duplicate order: %w", ferr)
		}
		return &ports.SubmitOrderResult{Accepted: false, Record: winner}, nil
	}
	if err != nil {
		return nil, err
	}

	if markErr := s.dedup.Mark(ctx, in.PartsName, in.Email); markErr != nil {
		s.log.Warn().Err(markErr).Str("email", in.Email).Msg("failed to set dedup mark")
	}

	s.log.Info().Str("email", in.Email).Str("parts", in.PartsName).Msg("order accepted")
	return &ports.SubmitOrderResult{Accepted: true, Record: inserted}, nil
}

// ListForRequester returns the orders placed by email, in no guaranteed order.
func (s *OrderService) ListForRequester(ctx context.Context, email string) ([]domain.Document, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Delete removes one order by id. No ownership check is performed.
func (s *OrderService) Delete(ctx context.Context, id string) (int64, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.log.Info().Str("order_id", id).Int64("deleted", deleted).Msg("order deleted")
	return deleted, nil
}
