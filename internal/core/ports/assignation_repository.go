package ports

import (
	"context"
	"time"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// Assignation sort fields accepted by ListAssignationsFilter.SortBy.
const (
	SortByUserName    = "userName"
	SortByAccountName = "accountName"
	SortByStartDate   = "startDate"
	SortByEndDate     = "endDate"
)

// ListAssignationsFilter carries all query parameters for listing
// assignations. Zero values mean "no filter"; date bounds are inclusive.
type ListAssignationsFilter struct {
	UserName     string // case-insensitive substring over first/last name
	AccountName  string // substring over account name
	MinStartDate *time.Time
	MaxStartDate *time.Time
	MinEndDate   *time.Time
	MaxEndDate   *time.Time
	SortBy       string // one of the SortBy* constants; default endDate
	SortOrder    string // "asc" or "desc"; default desc
	PopulateInfo bool   // join and inline the related user and account
	Page         Page
}

// AssignationRepository defines persistence operations for assignations.
// Create and Terminate also append the audit log entry inside the same
// transaction; the log is append-only.
type AssignationRepository interface {
	Create(ctx context.Context, userID, accountID int64, start time.Time) (*domain.Assignation, error)
	FindByID(ctx context.Context, id int64) (*domain.Assignation, error)
	// FindActiveByUser returns assignations with status=true for the user.
	FindActiveByUser(ctx context.Context, userID int64) ([]domain.Assignation, error)
	List(ctx context.Context, filter ListAssignationsFilter) ([]domain.Assignation, error)
	Terminate(ctx context.Context, id int64, at time.Time) (*domain.Assignation, error)
}
