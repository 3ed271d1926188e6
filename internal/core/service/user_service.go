package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

// UserService implements user lifecycle use-cases. Registration never
// takes a password: it issues a reset token and queues its delivery so
// the user sets the first password through the reset flow.
type UserService struct {
	repo       ports.UserRepository
	tokens     ports.PasswordTokenRepository
	notifier   ports.ResetNotifier
	principals ports.PrincipalInvalidator
	resetTTL   time.Duration
	logger     zerolog.Logger
}

func NewUserService(
	repo ports.UserRepository,
	tokens ports.PasswordTokenRepository,
	notifier ports.ResetNotifier,
	principals ports.PrincipalInvalidator,
	resetTTL time.Duration,
	logger zerolog.Logger,
) *UserService {
	if resetTTL <= 0 {
		resetTTL = 24 * time.Hour
	}
	return &UserService{
		repo:       repo,
		tokens:     tokens,
		notifier:   notifier,
		principals: principals,
		resetTTL:   resetTTL,
		logger:     logger,
	}
}

func (s *UserService) RegisterUser(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	user := &domain.User{
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Enabled:   true,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token := &domain.PasswordToken{
		ID:             uuid.NewString(),
		UserID:         created.ID,
		ExpirationDate: time.Now().UTC().Add(s.resetTTL),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		// The user exists; a failed token can be re-issued via reset.
		s.logger.Error().Err(err).Int64("user_id", created.ID).Msg("failed to issue initial password token")
		return created, nil
	}

	s.notifier.EnqueueReset(ports.ResetNotification{
		Email:     created.Email,
		TokenID:   token.ID,
		ExpiresAt: token.ExpirationDate,
	})

	s.logger.Info().Int64("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *UserService) User(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) Users(ctx context.Context, page ports.Page) ([]domain.User, error) {
	return s.repo.List(ctx, page)
}

func (s *UserService) EditUser(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	if patch.Empty() {
		return s.repo.FindByID(ctx, id)
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *UserService) EditUserEnabled(ctx context.Context, id int64, enabled bool) (*domain.User, error) {
	updated, err := s.repo.UpdateEnabled(ctx, id, enabled)
	if err != nil {
		return nil, err
	}

	// Drop the cached principal so the flag takes effect on the next
	// request instead of after the cache TTL.
	if err := s.principals.Invalidate(ctx, updated.ID); err != nil {
		s.logger.Warn().Err(err).Int64("user_id", updated.ID).Msg("failed to invalidate cached principal")
	}
	return updated, nil
}
