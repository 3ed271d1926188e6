package ports

import (
	"context"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// RegisterUserInput carries the data needed to register a user. The
// password is never part of registration; a reset token is issued
// instead so the user sets it through the reset flow.
type RegisterUserInput struct {
	Email     string
	FirstName *string
	LastName  *string
}

// UserService defines use-case operations for users.
type UserService interface {
	RegisterUser(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	User(ctx context.Context, id int64) (*domain.User, error)
	Users(ctx context.Context, page Page) ([]domain.User, error)
	EditUser(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	EditUserEnabled(ctx context.Context, id int64, enabled bool) (*domain.User, error)
}
