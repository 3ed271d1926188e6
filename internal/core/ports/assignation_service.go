package ports

import (
	"context"

	"github.com/staffhub/admin-api/internal/core/domain"
)

// AssignationService defines use-case operations for assignations.
type AssignationService interface {
	RegisterAssignation(ctx context.Context, userID, accountID int64) (*domain.Assignation, error)
	Assignations(ctx context.Context, filter ListAssignationsFilter) ([]domain.Assignation, error)
	// TerminateAssignation soft-deletes: status=false, endDate=now, plus a
	// REMOVED audit entry.
	TerminateAssignation(ctx context.Context, id int64) (*domain.Assignation, error)
}
