package postgres

import (
	"errors"

	"github.com/lib/pq"

	"github.com/staffhub/admin-api/internal/core/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapConstraintError translates pq constraint violations into the domain
// errors the service boundary raises for the same condition, so a race
// that slips past a pre-check surfaces identically.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case codeUniqueViolation:
		switch pqErr.Constraint {
		case "users_email_key":
			return domain.ErrEmailRegistered
		case "clients_key_key", "clients_name_key":
			return domain.ErrClientExists
		case "accounts_key_key":
			return domain.ErrAccountExists
		case "accounts_responsible_active_key":
			return domain.ErrResponsibleAssigned
		case "assignations_user_active_key":
			return domain.ErrUserAlreadyAssigned
		}
	case codeForeignKeyViolation:
		switch pqErr.Constraint {
		case "accounts_client_id_fkey":
			return domain.ErrClientNotFound
		case "accounts_responsible_id_fkey":
			return domain.ErrResponsibleNotFound
		case "account_assignations_user_id_fkey", "password_tokens_user_id_fkey":
			return domain.ErrUserNotFound
		case "account_assignations_account_id_fkey":
			return domain.ErrAccountNotFound
		}
	}
	return err
}
