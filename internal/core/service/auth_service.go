package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

// AuthService implements login, the password-reset flow, and principal
// resolution.
type AuthService struct {
	users      ports.UserRepository
	tokens     ports.PasswordTokenRepository
	roles      ports.RoleRepository
	notifier   ports.ResetNotifier
	jwtSecret  string
	sessionTTL time.Duration
	resetTTL   time.Duration
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	tokens ports.PasswordTokenRepository,
	roles ports.RoleRepository,
	notifier ports.ResetNotifier,
	jwtSecret string,
	sessionTTL, resetTTL time.Duration,
	bcryptCost int,
	logger zerolog.Logger,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	if resetTTL <= 0 {
		resetTTL = 24 * time.Hour
	}
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		roles:      roles,
		notifier:   notifier,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		resetTTL:   resetTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Login validates credentials and issues an HS256 session token carrying
// the user id and email. An unknown email and a wrong password collapse
// into the same error so callers cannot probe for accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !user.Enabled {
		return "", domain.ErrUserDisabled
	}

	if user.PasswordHash == nil ||
		bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.sessionTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("login succeeded")
	return token, nil
}

// ResetPassword issues a fresh token for the user behind email and
// queues its delivery. Earlier tokens stay live until they expire.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token := &domain.PasswordToken{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		ExpirationDate: time.Now().UTC().Add(s.resetTTL),
	}
	if err := s.tokens.Create(ctx, token); err != nil {
		return err
	}

	s.notifier.EnqueueReset(ports.ResetNotification{
		Email:     user.Email,
		TokenID:   token.ID,
		ExpiresAt: token.ExpirationDate,
	})

	s.logger.Info().Int64("user_id", user.ID).Msg("password reset issued")
	return nil
}

// UpdatePassword consumes a reset token: hash the new password, store it,
// then expire the token so it cannot be replayed. An expired or unknown
// token mutates nothing.
func (s *AuthService) UpdatePassword(ctx context.Context, password, tokenID string) error {
	token, err := s.tokens.FindByID(ctx, tokenID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if token.Expired(now) {
		return domain.ErrTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return err
	}

	if err := s.users.UpdatePassword(ctx, token.UserID, string(hash)); err != nil {
		return err
	}

	if err := s.tokens.Expire(ctx, token.ID, now); err != nil {
		// The password is already updated; the token will still die at its
		// natural expiry.
		s.logger.Warn().Err(err).Str("token_id", token.ID).Msg("failed to expire consumed token")
	}

	s.logger.Info().Int64("user_id", token.UserID).Msg("password updated")
	return nil
}

func (s *AuthService) Roles(ctx context.Context, page ports.Page) ([]domain.Role, error) {
	return s.roles.List(ctx, page)
}
