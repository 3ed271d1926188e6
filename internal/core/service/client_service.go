package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

// ClientService implements the client registry use-cases.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// RegisterClient persists a client under the key derived from its name.
func (s *ClientService) RegisterClient(ctx context.Context, name string) (*domain.Client, error) {
	client := &domain.Client{
		Name: name,
		Key:  domain.DeriveKey(name),
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("client_id", created.ID).Str("key", created.Key).Msg("client registered")
	return created, nil
}

func (s *ClientService) Client(ctx context.Context, id int64) (*domain.Client, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ClientService) Clients(ctx context.Context, page ports.Page) ([]domain.Client, error) {
	return s.repo.List(ctx, page)
}

// EditClient applies a partial update; a name change re-derives the key.
func (s *ClientService) EditClient(ctx context.Context, id int64, patch ports.ClientPatch) (*domain.Client, error) {
	if patch.Name != nil {
		key := domain.DeriveKey(*patch.Name)
		patch.Key = &key
	}
	return s.repo.Update(ctx, id, patch)
}

// EditClientArchived flips the archived flag. Archiving deliberately does
// not check for dependent accounts or active assignations.
func (s *ClientService) EditClientArchived(ctx context.Context, id int64, archived bool) (*domain.Client, error) {
	return s.repo.UpdateArchived(ctx, id, archived)
}
