package domain

import "time"

// AssignationLogType is the event kind recorded in the audit trail.
type AssignationLogType string

const (
	LogAssigned AssignationLogType = "ASSIGNED"
	LogRemoved  AssignationLogType = "REMOVED"
)

// Assignation links a user to an account for a period of time. Active
// means Status is true; at most one active assignation may exist per
// user, which the store enforces with a partial unique index.
type Assignation struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	AccountID int64      `json:"accountId" db:"account_id"`
	StartDate time.Time  `json:"startDate" db:"start_date"`
	EndDate   *time.Time `json:"endDate,omitempty" db:"end_date"`
	Status    bool       `json:"status" db:"status"`

	// Populated only when the caller asked for joined info.
	User    *User    `json:"user,omitempty" db:"-"`
	Account *Account `json:"account,omitempty" db:"-"`
}

// AssignationLog is one append-only audit entry. Rows are only ever
// inserted, never updated.
type AssignationLog struct {
	ID            int64              `json:"id" db:"id"`
	AssignationID int64              `json:"assignationId" db:"assignation_id"`
	UserID        int64              `json:"userId" db:"user_id"`
	Type          AssignationLogType `json:"type" db:"type"`
	Date          time.Time          `json:"date" db:"date"`
}
