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

const accountColumns = "id, key, name, client_id, responsible_id, archived"

type AccountRepository struct {
	db *sqlx.DB
}

func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (key, name, client_id, responsible_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + accountColumns
	var created domain.Account
	err := r.db.GetContext(ctx, &created, query,
		account.Key, account.Name, account.ClientID, account.ResponsibleID)
	if err != nil {
		return nil, mapConstraintError(err)
	}
	return &created, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

// FindByResponsible scans only non-archived accounts; an archived
// account frees the user for a new responsibility.
func (r *AccountRepository) FindByResponsible(ctx context.Context, responsibleID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE responsible_id = $1 AND NOT archived`
	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, responsibleID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by responsible: %w", err)
	}
	return &account, nil
}

func (r *AccountRepository) List(ctx context.Context, page ports.Page) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id OFFSET $1 LIMIT $2`
	var accounts []domain.Account
	if err := r.db.SelectContext(ctx, &accounts, query, page.Skip, page.Take); err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

func (r *AccountRepository) Update(ctx context.Context, id int64, patch ports.AccountPatch) (*domain.Account, error) {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Key != nil {
		add("key", *patch.Key)
	}
	if patch.ClientID != nil {
		add("client_id", *patch.ClientID)
	}
	if patch.ResponsibleID != nil {
		add("responsible_id", *patch.ResponsibleID)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE accounts SET %s WHERE id = $%d RETURNING "+accountColumns,
		strings.Join(sets, ", "), len(args),
	)

	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, mapConstraintError(err)
	}
	return &account, nil
}

func (r *AccountRepository) UpdateArchived(ctx context.Context, id int64, archived bool) (*domain.Account, error) {
	query := `UPDATE accounts SET archived = $2 WHERE id = $1 RETURNING ` + accountColumns
	var account domain.Account
	if err := r.db.GetContext(ctx, &account, query, id, archived); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, mapConstraintError(err)
	}
	return &account, nil
}
