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

// userColumns deliberately excludes password; only FindByEmail reads it.
const userColumns = "id, email, first_name, last_name, tech_skills, resume_link, english_level, enabled"

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, first_name, last_name, enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	var created domain.User
	err := r.db.GetContext(ctx, &created, query, user.Email, user.FirstName, user.LastName, user.Enabled)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	return &created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + `, password FROM users WHERE email = $1`
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) List(ctx context.Context, page ports.Page) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id OFFSET $1 LIMIT $2`
	var users []domain.User
	if err := r.db.SelectContext(ctx, &users, query, page.Skip, page.Take); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Update builds the SET clause only from fields the patch carries.
func (r *UserRepository) Update(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	sets := make([]string, 0, 5)
	args := make([]interface{}, 0, 6)

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.TechSkills != nil {
		add("tech_skills", *patch.TechSkills)
	}
	if patch.ResumeLink != nil {
		add("resume_link", *patch.ResumeLink)
	}
	if patch.EnglishLevel != nil {
		add("english_level", string(*patch.EnglishLevel))
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE users SET %s WHERE id = $%d RETURNING "+userColumns,
		strings.Join(sets, ", "), len(args),
	)

	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, mapConstraintError(err)
	}
	return &user, nil
}

func (r *UserRepository) UpdateEnabled(ctx context.Context, id int64, enabled bool) (*domain.User, error) {
	query := `UPDATE users SET enabled = $2 WHERE id = $1 RETURNING ` + userColumns
	var user domain.User
	if err := r.db.GetContext(ctx, &user, query, id, enabled); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user enabled: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET password = $2 WHERE id = $1`, id, hash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

type principalRoleRow struct {
	RoleID          int64          `db:"role_id"`
	RoleKey         string         `db:"role_key"`
	RoleTitle       *string        `db:"role_title"`
	RoleDescription *string        `db:"role_description"`
	PermissionID    sql.NullInt64  `db:"permission_id"`
	PermissionKey   sql.NullString `db:"permission_key"`
}

// FindPrincipal loads the user plus its roles with permission sets, the
// shape the authorization middleware consumes.
func (r *UserRepository) FindPrincipal(ctx context.Context, id int64) (*domain.Principal, error) {
	user, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT r.id          AS role_id,
		       r.key         AS role_key,
		       r.title       AS role_title,
		       r.description AS role_description,
		       p.id          AS permission_id,
		       p.key         AS permission_key
		FROM user_roles ur
		JOIN roles r ON r.id = ur.role_id
		LEFT JOIN role_permissions rp ON rp.role_id = r.id
		LEFT JOIN permissions p ON p.id = rp.permission_id
		WHERE ur.user_id = $1
		ORDER BY r.id, p.id`
	var rows []principalRoleRow
	if err := r.db.SelectContext(ctx, &rows, query, id); err != nil {
		return nil, fmt.Errorf("load principal roles: %w", err)
	}

	principal := &domain.Principal{User: *user}
	var current *domain.Role
	for _, row := range rows {
		if current == nil || current.ID != row.RoleID {
			principal.Roles = append(principal.Roles, domain.Role{
				ID:          row.RoleID,
				Key:         row.RoleKey,
				Title:       row.RoleTitle,
				Description: row.RoleDescription,
			})
			current = &principal.Roles[len(principal.Roles)-1]
		}
		if row.PermissionID.Valid {
			current.Permissions = append(current.Permissions, domain.Permission{
				ID:  row.PermissionID.Int64,
				Key: row.PermissionKey.String,
			})
		}
	}
	return principal, nil
}
