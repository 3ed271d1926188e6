package ports

import (
	"context"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// ClientPatch is a partial client update. Key is filled by the service
// whenever Name is present; handlers never set it directly.
type ClientPatch struct {
	Name *string
	Key  *string
}

// ClientRepository defines persistence operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context, page Page) ([]domain.Client, error)
	Update(ctx context.Context, id int64, patch ClientPatch) (*domain.Client, error)
	UpdateArchived(ctx context.Context, id int64, archived bool) (*domain.Client, error)
}
