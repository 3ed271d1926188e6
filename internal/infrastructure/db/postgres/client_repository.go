package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

const clientColumns = "id, key, name, archived"

type ClientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (key, name)
		VALUES ($1, $2)
		RETURNING ` + clientColumns
	var created domain.Client
	if err := r.db.GetContext(ctx, &created, query, client.Key, client.Name); err != nil {
		return nil, mapConstraintError(err)
	}
	return &created, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &client, nil
}

func (r *ClientRepository) List(ctx context.Context, page ports.Page) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY id OFFSET $1 LIMIT $2`
	var clients []domain.Client
	if err := r.db.SelectContext(ctx, &clients, query, page.Skip, page.Take); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) Update(ctx context.Context, id int64, patch ports.ClientPatch) (*domain.Client, error) {
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Key != nil {
		args = append(args, *patch.Key)
		sets = append(sets, fmt.Sprintf("key = $%d", len(args)))
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE clients SET %s WHERE id = $%d RETURNING "+clientColumns,
		strings.Join(sets, ", "), len(args),
	)

	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, mapConstraintError(err)
	}
	return &client, nil
}

func (r *ClientRepository) UpdateArchived(ctx context.Context, id int64, archived bool) (*domain.Client, error) {
	query := `UPDATE clients SET archived = $2 WHERE id = $1 RETURNING ` + clientColumns
	var client domain.Client
	if err := r.db.GetContext(ctx, &client, query, id, archived); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("update client archived: %w", err)
	}
	return &client, nil
}
