package ports

import (
	"context"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// UserPatch is a partial profile update. A nil field means "not
// supplied" and leaves the column untouched, so a present-but-empty
// value can still clear it.
type UserPatch struct {
	FirstName    *string
	LastName     *string
	TechSkills   *string
	ResumeLink   *string
	EnglishLevel *domain.EnglishLevel
}

// Empty reports whether the patch carries no fields at all.
func (p UserPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.TechSkills == nil &&
		p.ResumeLink == nil && p.EnglishLevel == nil
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID never includes the password hash.
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// FindByEmail includes the password hash; used by credential checks only.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page Page) ([]domain.User, error)
	Update(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	UpdateEnabled(ctx context.Context, id int64, enabled bool) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	// FindPrincipal loads a user with its roles and their permission sets,
	// the shape consumed by the authorization middleware.
	FindPrincipal(ctx context.Context, id int64) (*domain.Principal, error)
}

// PrincipalInvalidator drops a cached principal after a change that
// affects authorization, so the change does not wait out the cache TTL.
type PrincipalInvalidator interface {
	Invalidate(ctx context.Context, userID int64) error
}
