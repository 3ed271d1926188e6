package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/staffhub/admin-api/internal/core/domain"
	"github.com/staffhub/admin-api/internal/core/ports"
)

func TestClientService_Register_DerivesKey(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	client, err := svc.RegisterClient(context.Background(), "  Acme  Systems ")
	if err != nil {
		t.Fatalf("RegisterClient returned error: %v", err)
	}
	if client.Key != "acme-systems" {
		t.Fatalf("expected key acme-systems, got %q", client.Key)
	}
	if client.Name != "  Acme  Systems " {
		t.Fatalf("display name must be stored untouched, got %q", client.Name)
	}
}

func TestClientService_Register_Duplicate(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	if _, err := svc.RegisterClient(context.Background(), "Acme"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.RegisterClient(context.Background(), "Acme"); !errors.Is(err, domain.ErrClientExists) {
		t.Fatalf("expected ErrClientExists, got %v", err)
	}
}

func TestClientService_Edit_NameRederivesKey(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())
	client, _ := svc.RegisterClient(context.Background(), "Acme")

	updated, err := svc.EditClient(context.Background(), client.ID, ports.ClientPatch{Name: strptr("Acme Global")})
	if err != nil {
		t.Fatalf("EditClient returned error: %v", err)
	}
	if updated.Key != "acme-global" {
		t.Fatalf("expected re-derived key acme-global, got %q", updated.Key)
	}
}

func TestClientService_EditArchived(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, zerolog.Nop())
	client, _ := svc.RegisterClient(context.Background(), "Acme")

	updated, err := svc.EditClientArchived(context.Background(), client.ID, true)
	if err != nil {
		t.Fatalf("EditClientArchived returned error: %v", err)
	}
	if !updated.Archived {
		t.Fatalf("expected client to be archived")
	}
}

func TestClientService_Get_NotFound(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), zerolog.Nop())

	if _, err := svc.Client(context.Background(), 9); !errors.Is(err, domain.ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}
