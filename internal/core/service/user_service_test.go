package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

func newUserFixture() (*UserService, *stubUserRepo, *stubTokenRepo, *stubNotifier) {
	svc, users, tokens, notifier, _ := newUserFixtureWithCache()
	return svc, users, tokens, notifier
}

func newUserFixtureWithCache() (*UserService, *stubUserRepo, *stubTokenRepo, *stubNotifier, *stubInvalidator) {
	users := newStubUserRepo()
	tokens := newStubTokenRepo()
	notifier := &stubNotifier{}
	principals := &stubInvalidator{}
	svc := NewUserService(users, tokens, notifier, principals, 24*time.Hour, zerolog.Nop())
	return svc, users, tokens, notifier, principals
}

func TestUserService_Register_IssuesResetToken(t *testing.T) {
	svc, _, tokens, notifier := newUserFixture()

	user, err := svc.RegisterUser(context.Background(), ports.RegisterUserInput{
		Email:     "john@example.com",
		FirstName: strptr("John"),
		LastName:  strptr("Wick"),
	})
	if err != nil {
		t.Fatalf("RegisterUser returned error: %v", err)
	}
	if !user.Enabled {
		t.Fatalf("expected new user to be enabled")
	}
	if user.PasswordHash != nil {
		t.Fatalf("new user must not carry a password")
	}
	if len(tokens.tokens) != 1 {
		t.Fatalf("expected a reset token, got %d", len(tokens.tokens))
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Email != "john@example.com" {
		t.Fatalf("expected a queued reset notification, got %+v", notifier.sent)
	}
	for _, tok := range tokens.tokens {
		if tok.UserID != user.ID {
			t.Fatalf("token issued for wrong user: %+v", tok)
		}
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	if _, err := svc.RegisterUser(context.Background(), ports.RegisterUserInput{Email: "john@example.com"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.RegisterUser(context.Background(), ports.RegisterUserInput{Email: "john@example.com"}); !errors.Is(err, domain.ErrEmailRegistered) {
		t.Fatalf("expected ErrEmailRegistered, got %v", err)
	}
}

func TestUserService_EditUser_PartialPatch(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	users.add(domain.User{ID: 1, Email: "john@example.com", FirstName: strptr("John"), Enabled: true})

	level := domain.LevelB2
	updated, err := svc.EditUser(context.Background(), 1, ports.UserPatch{
		TechSkills:   strptr("Go, Postgres"),
		EnglishLevel: &level,
	})
	if err != nil {
		t.Fatalf("EditUser returned error: %v", err)
	}
	if updated.TechSkills == nil || *updated.TechSkills != "Go, Postgres" {
		t.Fatalf("expected techSkills to be updated, got %+v", updated)
	}
	if updated.FirstName == nil || *updated.FirstName != "John" {
		t.Fatalf("untouched field must survive the patch, got %+v", updated)
	}
}

func TestUserService_EditUser_EmptyPatchIsNoop(t *testing.T) {
	svc, users, _, _ := newUserFixture()
	users.add(domain.User{ID: 1, Email: "john@example.com", Enabled: true})

	got, err := svc.EditUser(context.Background(), 1, ports.UserPatch{})
	if err != nil {
		t.Fatalf("EditUser returned error: %v", err)
	}
	if got.Email != "john@example.com" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserService_EditUserEnabled(t *testing.T) {
	svc, users, _, _, principals := newUserFixtureWithCache()
	users.add(domain.User{ID: 1, Email: "john@example.com", Enabled: true})

	updated, err := svc.EditUserEnabled(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("EditUserEnabled returned error: %v", err)
	}
	if updated.Enabled {
		t.Fatalf("expected user to be disabled")
	}
	if len(principals.invalidated) != 1 || principals.invalidated[0] != 1 {
		t.Fatalf("expected cached principal for user 1 to be invalidated, got %v", principals.invalidated)
	}
}

func TestUserService_EditUserEnabled_CacheErrorIsNotFatal(t *testing.T) {
	svc, users, _, _, principals := newUserFixtureWithCache()
	principals.err = errors.New("redis down")
	users.add(domain.User{ID: 1, Email: "john@example.com", Enabled: true})

	updated, err := svc.EditUserEnabled(context.Background(), 1, false)
	if err != nil {
		t.Fatalf("EditUserEnabled returned error: %v", err)
	}
	if updated.Enabled {
		t.Fatalf("expected user to be disabled")
	}
}

func TestUserService_EditUser_NotFound(t *testing.T) {
	svc, _, _, _ := newUserFixture()

	if _, err := svc.EditUser(context.Background(), 42, ports.UserPatch{FirstName: strptr("X")}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
