package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

// AssignationService drives the Unassigned → Active → Unassigned
// lifecycle. Every transition appends an audit log entry in the same
// transaction as the row it describes.
type AssignationService struct {
	repo     ports.AssignationRepository
	users    ports.UserRepository
	accounts ports.AccountRepository
	logger   zerolog.Logger
}

func NewAssignationService(
	repo ports.AssignationRepository,
	users ports.UserRepository,
	accounts ports.AccountRepository,
	logger zerolog.Logger,
) *AssignationService {
	return &AssignationService{repo: repo, users: users, accounts: accounts, logger: logger}
}

// RegisterAssignation activates an assignation after verifying the
// account and user exist and the user has no active assignation. The
// uniqueness pre-check is backed by a partial unique index in the store,
// so two concurrent calls cannot both commit.
func (s *AssignationService) RegisterAssignation(ctx context.Context, userID, accountID int64) (*domain.Assignation, error) {
	if _, err := s.accounts.FindByID(ctx, accountID); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}

	active, err := s.repo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(active) > 0 {
		return nil, domain.ErrUserAlreadyAssigned
	}

	assignation, err := s.repo.Create(ctx, userID, accountID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("assignation_id", assignation.ID).
		Int64("user_id", userID).
		Int64("account_id", accountID).
		Msg("assignation registered")
	return assignation, nil
}

func (s *AssignationService) Assignations(ctx context.Context, filter ports.ListAssignationsFilter) ([]domain.Assignation, error) {
	return s.repo.List(ctx, filter)
}

// TerminateAssignation soft-deletes: status=false, endDate=now, plus the
// REMOVED audit entry. A missing id mutates nothing.
func (s *AssignationService) TerminateAssignation(ctx context.Context, id int64) (*domain.Assignation, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	terminated, err := s.repo.Terminate(ctx, id, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("assignation_id", terminated.ID).
		Int64("user_id", terminated.UserID).
		Msg("assignation terminated")
	return terminated, nil
}
