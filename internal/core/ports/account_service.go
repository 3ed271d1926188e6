package ports

import (
	"context"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// RegisterAccountInput carries the data needed to register an account.
type RegisterAccountInput struct {
	Name          string
	ClientID      int64
	ResponsibleID int64
}

// AccountService defines use-case operations for accounts.
type AccountService interface {
	RegisterAccount(ctx context.Context, input RegisterAccountInput) (*domain.Account, error)
	Account(ctx context.Context, id int64) (*domain.Account, error)
	Accounts(ctx context.Context, page Page) ([]domain.Account, error)
	EditAccount(ctx context.Context, id int64, patch AccountPatch) (*domain.Account, error)
	EditAccountArchived(ctx context.Context, id int64, archived bool) (*domain.Account, error)
}
