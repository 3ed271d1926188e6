package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

const assignationColumns = "id, user_id, account_id, start_date, end_date, status"

type AssignationRepository struct {
	db *sqlx.DB
}

func NewAssignationRepository(db *sqlx.DB) *AssignationRepository {
	return &AssignationRepository{db: db}
}

// Create inserts the assignation and its ASSIGNED audit entry in one
// transaction. The partial unique index on (user_id) WHERE status turns
// a lost race into domain.ErrUserAlreadyAssigned.
func (r *AssignationRepository) Create(ctx context.Context, userID, accountID int64, start time.Time) (*domain.Assignation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin create assignation: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var created domain.Assignation
	err = tx.GetContext(ctx, &created, `
		INSERT INTO account_assignations (user_id, account_id, start_date, status)
		VALUES ($1, $2, $3, TRUE)
		RETURNING `+assignationColumns,
		userID, accountID, start)
	if err != nil {
		return nil, mapConstraintError(err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO account_assignations_logs (assignation_id, user_id, type, date)
		VALUES ($1, $2, $3, $4)`,
		created.ID, userID, domain.LogAssigned, start)
	if err != nil {
		return nil, fmt.Errorf("append assignation log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create assignation: %w", err)
	}
	return &created, nil
}

func (r *AssignationRepository) FindByID(ctx context.Context, id int64) (*domain.Assignation, error) {
	query := `SELECT ` + assignationColumns + ` FROM account_assignations WHERE id = $1`
	var assignation domain.Assignation
	if err := r.db.GetContext(ctx, &assignation, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssignationNotFound
		}
		return nil, fmt.Errorf("find assignation: %w", err)
	}
	return &assignation, nil
}

func (r *AssignationRepository) FindActiveByUser(ctx context.Context, userID int64) ([]domain.Assignation, error) {
	query := `SELECT ` + assignationColumns + ` FROM account_assignations WHERE user_id = $1 AND status`
	var assignations []domain.Assignation
	if err := r.db.SelectContext(ctx, &assignations, query, userID); err != nil {
		return nil, fmt.Errorf("find active assignations: %w", err)
	}
	return assignations, nil
}

// Terminate flips the row inactive and appends the REMOVED audit entry
// in one transaction. A missing id mutates nothing.
func (r *AssignationRepository) Terminate(ctx context.Context, id int64, at time.Time) (*domain.Assignation, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin terminate assignation: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var terminated domain.Assignation
	err = tx.GetContext(ctx, &terminated, `
		UPDATE account_assignations
		SET status = FALSE, end_date = $2
		WHERE id = $1
		RETURNING `+assignationColumns,
		id, at)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAssignationNotFound
		}
		return nil, fmt.Errorf("terminate assignation: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO account_assignations_logs (assignation_id, user_id, type, date)
		VALUES ($1, $2, $3, $4)`,
		terminated.ID, terminated.UserID, domain.LogRemoved, at)
	if err != nil {
		return nil, fmt.Errorf("append assignation log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit terminate assignation: %w", err)
	}
	return &terminated, nil
}

// sortColumns whitelists the sortable fields; anything else falls back
// to the endDate default.
var sortColumns = map[string]string{
	ports.SortByUserName:    "u.first_name",
	ports.SortByAccountName: "ac.name",
	ports.SortByStartDate:   "a.start_date",
	ports.SortByEndDate:     "a.end_date",
}

type assignationRow struct {
	ID        int64      `db:"id"`
	UserID    int64      `db:"user_id"`
	AccountID int64      `db:"account_id"`
	StartDate time.Time  `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	Status    bool       `db:"status"`

	UEmail        *string              `db:"u_email"`
	UFirstName    *string              `db:"u_first_name"`
	ULastName     *string              `db:"u_last_name"`
	UTechSkills   *string              `db:"u_tech_skills"`
	UResumeLink   *string              `db:"u_resume_link"`
	UEnglishLevel *domain.EnglishLevel `db:"u_english_level"`
	UEnabled      *bool                `db:"u_enabled"`

	ACKey           *string `db:"ac_key"`
	ACName          *string `db:"ac_name"`
	ACClientID      *int64  `db:"ac_client_id"`
	ACResponsibleID *int64  `db:"ac_responsible_id"`
	ACArchived      *bool   `db:"ac_archived"`
}

func (r *AssignationRepository) List(ctx context.Context, filter ports.ListAssignationsFilter) ([]domain.Assignation, error) {
	columns := "a.id, a.user_id, a.account_id, a.start_date, a.end_date, a.status"
	if filter.PopulateInfo {
		columns += `,
			u.email AS u_email, u.first_name AS u_first_name, u.last_name AS u_last_name,
			u.tech_skills AS u_tech_skills, u.resume_link AS u_resume_link,
			u.english_level AS u_english_level, u.enabled AS u_enabled,
			ac.key AS ac_key, ac.name AS ac_name, ac.client_id AS ac_client_id,
			ac.responsible_id AS ac_responsible_id, ac.archived AS ac_archived`
	}

	where := make([]string, 0, 6)
	args := make([]interface{}, 0, 8)
	add := func(clause string, value interface{}) {
		args = append(args, value)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.UserName != "" {
		args = append(args, "%"+filter.UserName+"%")
		where = append(where, fmt.Sprintf("(u.first_name ILIKE $%d OR u.last_name ILIKE $%d)", len(args), len(args)))
	}
	if filter.AccountName != "" {
		add("ac.name LIKE $%d", "%"+filter.AccountName+"%")
	}
	if filter.MinStartDate != nil {
		add("a.start_date >= $%d", *filter.MinStartDate)
	}
	if filter.MaxStartDate != nil {
		add("a.start_date <= $%d", *filter.MaxStartDate)
	}
	if filter.MinEndDate != nil {
		add("a.end_date >= $%d", *filter.MinEndDate)
	}
	if filter.MaxEndDate != nil {
		add("a.end_date <= $%d", *filter.MaxEndDate)
	}

	query := `
		SELECT ` + columns + `
		FROM account_assignations a
		JOIN users u ON u.id = a.user_id
		JOIN accounts ac ON ac.id = a.account_id`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}

	sortColumn, ok := sortColumns[filter.SortBy]
	if !ok {
		sortColumn = sortColumns[ports.SortByEndDate]
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}
	query += fmt.Sprintf("\n\t\tORDER BY %s %s", sortColumn, direction)

	args = append(args, filter.Page.Skip)
	query += fmt.Sprintf("\n\t\tOFFSET $%d", len(args))
	args = append(args, filter.Page.Take)
	query += fmt.Sprintf(" LIMIT $%d", len(args))

	var rows []assignationRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list assignations: %w", err)
	}

	assignations := make([]domain.Assignation, 0, len(rows))
	for _, row := range rows {
		assignation := domain.Assignation{
			ID:        row.ID,
			UserID:    row.UserID,
			AccountID: row.AccountID,
			StartDate: row.StartDate,
			EndDate:   row.EndDate,
			Status:    row.Status,
		}
		if filter.PopulateInfo {
			assignation.User = &domain.User{
				ID:           row.UserID,
				Email:        deref(row.UEmail),
				FirstName:    row.UFirstName,
				LastName:     row.ULastName,
				TechSkills:   row.UTechSkills,
				ResumeLink:   row.UResumeLink,
				EnglishLevel: row.UEnglishLevel,
				Enabled:      row.UEnabled != nil && *row.UEnabled,
			}
			assignation.Account = &domain.Account{
				ID:            row.AccountID,
				Key:           deref(row.ACKey),
				Name:          deref(row.ACName),
				ClientID:      derefInt(row.ACClientID),
				ResponsibleID: derefInt(row.ACResponsibleID),
				Archived:      row.ACArchived != nil && *row.ACArchived,
			}
		}
		assignations = append(assignations, assignation)
	}
	return assignations, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int64) int64 {
	if i == nil {
		return 0
	}
	return *i
}
