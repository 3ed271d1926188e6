package ports

import (
	"context"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// AccountPatch is a partial account update. Cross-entity checks in the
// service run only for the fields that are present.
type AccountPatch struct {
	Name          *string
	Key           *string
	ClientID      *int64
	ResponsibleID *int64
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id int64) (*domain.Account, error)
	// FindByResponsible returns the non-archived account the user is
	// responsible for, or domain.ErrAccountNotFound when there is none.
	FindByResponsible(ctx context.Context, responsibleID int64) (*domain.Account, error)
	List(ctx context.Context, page Page) ([]domain.Account, error)
	Update(ctx context.Context, id int64, patch AccountPatch) (*domain.Account, error)
	UpdateArchived(ctx context.Context, id int64, archived bool) (*domain.Account, error)
}
