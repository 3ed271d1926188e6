package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

// AccountService enforces the cross-entity invariants on the account
// write paths: a responsible user may back at most one non-archived
// account, and every reference must resolve before a row is written.
type AccountService struct {
	repo    ports.AccountRepository
	users   ports.UserRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewAccountService(
	repo ports.AccountRepository,
	users ports.UserRepository,
	clients ports.ClientRepository,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{repo: repo, users: users, clients: clients, logger: logger}
}

// RegisterAccount validates and persists a new account. Check order
// matters for the error the caller sees: responsibility uniqueness,
// then user existence, then client existence.
func (s *AccountService) RegisterAccount(ctx context.Context, input ports.RegisterAccountInput) (*domain.Account, error) {
	if err := s.checkResponsible(ctx, input.ResponsibleID); err != nil {
		return nil, err
	}

	if _, err := s.clients.FindByID(ctx, input.ClientID); err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:          input.Name,
		Key:           domain.DeriveKey(input.Name),
		ClientID:      input.ClientID,
		ResponsibleID: input.ResponsibleID,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("account_id", created.ID).
		Int64("client_id", created.ClientID).
		Int64("responsible_id", created.ResponsibleID).
		Msg("account registered")
	return created, nil
}

func (s *AccountService) Account(ctx context.Context, id int64) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) Accounts(ctx context.Context, page ports.Page) ([]domain.Account, error) {
	return s.repo.List(ctx, page)
}

// EditAccount applies a partial update. The cross-entity checks run only
// for fields the patch actually carries; a name change re-derives the key.
func (s *AccountService) EditAccount(ctx context.Context, id int64, patch ports.AccountPatch) (*domain.Account, error) {
	if patch.ResponsibleID != nil {
		if err := s.checkResponsible(ctx, *patch.ResponsibleID); err != nil {
			return nil, err
		}
	}

	if patch.ClientID != nil {
		if _, err := s.clients.FindByID(ctx, *patch.ClientID); err != nil {
			return nil, err
		}
	}

	if patch.Name != nil {
		key := domain.DeriveKey(*patch.Name)
		patch.Key = &key
	}

	return s.repo.Update(ctx, id, patch)
}

// EditAccountArchived flips the archived flag unconditionally; active
// assignations are deliberately not cascade-checked.
func (s *AccountService) EditAccountArchived(ctx context.Context, id int64, archived bool) (*domain.Account, error) {
	return s.repo.UpdateArchived(ctx, id, archived)
}

// checkResponsible fails when the user already backs a non-archived
// account or does not exist. The partial unique index on
// accounts(responsible_id) is the race-proof authority; this pre-check
// exists for the precise error.
func (s *AccountService) checkResponsible(ctx context.Context, responsibleID int64) error {
	_, err := s.repo.FindByResponsible(ctx, responsibleID)
	switch {
	case err == nil:
		return domain.ErrResponsibleAssigned
	case !errors.Is(err, domain.ErrAccountNotFound):
		return err
	}

	if _, err := s.users.FindByID(ctx, responsibleID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResponsibleNotFound
		}
		return err
	}
	return nil
}
