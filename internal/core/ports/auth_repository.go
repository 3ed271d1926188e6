package ports

import (
	"context"
	"time"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// RoleRepository defines read operations over the role catalogue.
type RoleRepository interface {
	List(ctx context.Context, page Page) ([]domain.Role, error)
}

// PasswordTokenRepository persists one-time reset tokens. Tokens are
// never deleted; consumption rewrites the expiration date.
type PasswordTokenRepository interface {
	Create(ctx context.Context, token *domain.PasswordToken) error
	FindByID(ctx context.Context, id string) (*domain.PasswordToken, error)
	Expire(ctx context.Context, id string, at time.Time) error
}
