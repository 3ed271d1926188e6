package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/domain"
)

func newAssignationFixture() (*AssignationService, *stubAssignationRepo, *stubUserRepo, *stubAccountRepo) {
	assignations := newStubAssignationRepo()
	users := newStubUserRepo()
	accounts := newStubAccountRepo()
	svc := NewAssignationService(assignations, users, accounts, zerolog.Nop())
	return svc, assignations, users, accounts
}

func TestAssignationService_Register_Success(t *testing.T) {
	svc, repo, users, accounts := newAssignationFixture()
	users.add(domain.User{ID: 1, Email: "dev@example.com", Enabled: true})
	accounts.add(domain.Account{ID: 10, Name: "Acme Payments", Key: "acme-payments", ClientID: 1, ResponsibleID: 2})

	assignation, err := svc.RegisterAssignation(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RegisterAssignation returned error: %v", err)
	}
	if !assignation.Status {
		t.Fatalf("expected active assignation")
	}
	if assignation.StartDate.IsZero() {
		t.Fatalf("expected startDate to be set")
	}
	if len(repo.logs) != 1 || repo.logs[0].Type != domain.LogAssigned || repo.logs[0].UserID != 1 {
		t.Fatalf("expected one ASSIGNED log entry, got %+v", repo.logs)
	}
}

func TestAssignationService_Register_AccountNotFound(t *testing.T) {
	svc, repo, users, _ := newAssignationFixture()
	users.add(domain.User{ID: 1, Email: "dev@example.com", Enabled: true})

	_, err := svc.RegisterAssignation(context.Background(), 1, 99)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if len(repo.rows) != 0 || len(repo.logs) != 0 {
		t.Fatalf("expected no side effects, got rows=%d logs=%d", len(repo.rows), len(repo.logs))
	}
}

func TestAssignationService_Register_UserNotFound(t *testing.T) {
	svc, repo, _, accounts := newAssignationFixture()
	accounts.add(domain.Account{ID: 10, Name: "Acme", Key: "acme", ClientID: 1, ResponsibleID: 2})

	_, err := svc.RegisterAssignation(context.Background(), 1, 10)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(repo.rows) != 0 || len(repo.logs) != 0 {
		t.Fatalf("expected no side effects, got rows=%d logs=%d", len(repo.rows), len(repo.logs))
	}
}

func TestAssignationService_Register_AlreadyAssigned(t *testing.T) {
	svc, repo, users, accounts := newAssignationFixture()
	users.add(domain.User{ID: 1, Email: "dev@example.com", Enabled: true})
	accounts.add(domain.Account{ID: 10, Name: "Acme", Key: "acme", ClientID: 1, ResponsibleID: 2})
	accounts.add(domain.Account{ID: 11, Name: "Other", Key: "other", ClientID: 1, ResponsibleID: 3})

	if _, err := svc.RegisterAssignation(context.Background(), 1, 10); err != nil {
		t.Fatalf("first assignation failed: %v", err)
	}

	_, err := svc.RegisterAssignation(context.Background(), 1, 11)
	if !errors.Is(err, domain.ErrUserAlreadyAssigned) {
		t.Fatalf("expected ErrUserAlreadyAssigned, got %v", err)
	}
	// No partial side effect from the rejected call.
	if len(repo.rows) != 1 || len(repo.logs) != 1 {
		t.Fatalf("expected one row and one log, got rows=%d logs=%d", len(repo.rows), len(repo.logs))
	}
}

func TestAssignationService_Terminate_Success(t *testing.T) {
	svc, repo, users, accounts := newAssignationFixture()
	users.add(domain.User{ID: 1, Email: "dev@example.com", Enabled: true})
	accounts.add(domain.Account{ID: 10, Name: "Acme", Key: "acme", ClientID: 1, ResponsibleID: 2})

	created, err := svc.RegisterAssignation(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("RegisterAssignation failed: %v", err)
	}

	terminated, err := svc.TerminateAssignation(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("TerminateAssignation returned error: %v", err)
	}
	if terminated.Status {
		t.Fatalf("expected status=false after termination")
	}
	if terminated.EndDate == nil {
		t.Fatalf("expected endDate to be set")
	}
	if len(repo.logs) != 2 || repo.logs[1].Type != domain.LogRemoved {
		t.Fatalf("expected a REMOVED log entry, got %+v", repo.logs)
	}
}

func TestAssignationService_Terminate_NotFound(t *testing.T) {
	svc, repo, _, _ := newAssignationFixture()

	_, err := svc.TerminateAssignation(context.Background(), 404)
	if !errors.Is(err, domain.ErrAssignationNotFound) {
		t.Fatalf("expected ErrAssignationNotFound, got %v", err)
	}
	if len(repo.logs) != 0 {
		t.Fatalf("expected no mutation, got logs=%+v", repo.logs)
	}
}

func TestAssignationService_ReassignAfterTermination(t *testing.T) {
	svc, _, users, accounts := newAssignationFixture()
	users.add(domain.User{ID: 1, Email: "dev@example.com", Enabled: true})
	accounts.add(domain.Account{ID: 10, Name: "Acme", Key: "acme", ClientID: 1, ResponsibleID: 2})
	accounts.add(domain.Account{ID: 11, Name: "Other", Key: "other", ClientID: 1, ResponsibleID: 3})

	first, err := svc.RegisterAssignation(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("first assignation failed: %v", err)
	}
	if _, err := svc.RegisterAssignation(context.Background(), 1, 11); !errors.Is(err, domain.ErrUserAlreadyAssigned) {
		t.Fatalf("expected ErrUserAlreadyAssigned, got %v", err)
	}
	if _, err := svc.TerminateAssignation(context.Background(), first.ID); err != nil {
		t.Fatalf("termination failed: %v", err)
	}
	if _, err := svc.RegisterAssignation(context.Background(), 1, 11); err != nil {
		t.Fatalf("reassignment after termination should succeed: %v", err)
	}
}
