package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

type RoleRepository struct {
	db *sqlx.DB
}

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

type roleRow struct {
	ID            int64   `db:"id"`
	Key           string  `db:"key"`
	Title         *string `db:"title"`
	Description   *string `db:"description"`
	PermissionID  *int64  `db:"permission_id"`
	PermissionKey *string `db:"permission_key"`
}

// List returns the role page with permissions attached. The page bounds
// apply to roles, not to the joined permission rows.
func (r *RoleRepository) List(ctx context.Context, page ports.Page) ([]domain.Role, error) {
	query := `
		SELECT r.id, r.key, r.title, r.description,
		       p.id AS permission_id, p.key AS permission_key
		FROM (
			SELECT id, key, title, description
			FROM roles
			ORDER BY id
			OFFSET $1 LIMIT $2
		) r
		LEFT JOIN role_permissions rp ON rp.role_id = r.id
		LEFT JOIN permissions p ON p.id = rp.permission_id
		ORDER BY r.id, p.id`

	var rows []roleRow
	if err := r.db.SelectContext(ctx, &rows, query, page.Skip, page.Take); err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}

	roles := make([]domain.Role, 0, len(rows))
	index := make(map[int64]int, len(rows))
	for _, row := range rows {
		position, seen := index[row.ID]
		if !seen {
			roles = append(roles, domain.Role{
				ID:          row.ID,
				Key:         row.Key,
				Title:       row.Title,
				Description: row.Description,
			})
			position = len(roles) - 1
			index[row.ID] = position
		}
		if row.PermissionID != nil {
			roles[position].Permissions = append(roles[position].Permissions, domain.Permission{
				ID:  *row.PermissionID,
				Key: *row.PermissionKey,
			})
		}
	}
	return roles, nil
}
