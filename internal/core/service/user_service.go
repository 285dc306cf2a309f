package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/partsline/manufacturer-api/internal/core/domain"
	"github.com/partsline/manufacturer-api/internal/core/ports"
)

// UserService is the role authority. It decides admin status, grants the
// admin role, and owns profile upserts (each of which mints a fresh token,
// doubling as login).
type UserService struct {
	repo   ports.UserRepository
	tokens ports.TokenService
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, tokens ports.TokenService, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, tokens: tokens, log: log}
}

// IsAdmin reports whether the identity for email holds the admin role.
// A missing identity is a lookup failure, never a silent false.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// Promote grants the admin role to targetEmail. The requester identity must
// exist in the store; its own role is deliberately not consulted, matching
// the published behavior of this API.
func (s *UserService) Promote(ctx context.Context, requesterEmail, targetEmail string) (ports.UpdateOutcome, error) {
	if _, err := s.repo.FindByEmail(ctx, requesterEmail); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("requester", requesterEmail).Msg("promotion denied: requester has no identity")
			return ports.UpdateOutcome{}, domain.ErrForbidden
		}
		return ports.UpdateOutcome{}, err
	}

	outcome, err := s.repo.SetRole(ctx, targetEmail, domain.RoleAdmin)
	if err != nil {
		return ports.UpdateOutcome{}, err
	}

	s.log.Info().
		Str("requester", requesterEmail).
		Str("target", targetEmail).
		Msg("admin role granted")
	return outcome, nil
}

// UpsertProfile merges fields into the identity document keyed by email and
// issues a fresh token for it.
func (s *UserService) UpsertProfile(ctx context.Context, email string, fields domain.Document) (*ports.UpsertProfileResult, error) {
	outcome, err := s.repo.Upsert(ctx, email, fields)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(email)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", email).Bool("created", outcome.UpsertedID != "").Msg("profile upserted")
	return &ports.UpsertProfileResult{Outcome: outcome, Token: token}, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.Document, error) {
	return s.repo.FindAll(ctx)
}
