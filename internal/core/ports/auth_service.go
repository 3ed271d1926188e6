package ports

import (
	"context"
	"time"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// AuthService defines authentication and role use-cases.
type AuthService interface {
	// Login validates credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, error)
	// ResetPassword issues a new reset token and queues its delivery.
	ResetPassword(ctx context.Context, email string) error
	// UpdatePassword consumes a reset token and stores the new password.
	UpdatePassword(ctx context.Context, password, tokenID string) error
	Roles(ctx context.Context, page Page) ([]domain.Role, error)
}

// ResetNotification is a queued password-reset delivery job.
type ResetNotification struct {
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// ResetNotifier hands reset notifications to the delivery pipeline.
// Enqueueing must not block the request path beyond buffer capacity.
type ResetNotifier interface {
	EnqueueReset(n ResetNotification)
}
