package ports

import (
	"context"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// ClientService defines use-case operations for clients.
type ClientService interface {
	RegisterClient(ctx context.Context, name string) (*domain.Client, error)
	Client(ctx context.Context, id int64) (*domain.Client, error)
	Clients(ctx context.Context, page Page) ([]domain.Client, error)
	EditClient(ctx context.Context, id int64, patch ClientPatch) (*domain.Client, error)
	EditClientArchived(ctx context.Context, id int64, archived bool) (*domain.Client, error)
}
