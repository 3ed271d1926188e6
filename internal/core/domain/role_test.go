package domain

import "testing"

func rolesWith(keys ...string) []Role {
	perms := make([]Permission, 0, len(keys))
	for i, k := range keys {
		perms = append(perms, Permission{ID: int64(i + 1), Key: k})
	}
	return []Role{{ID: 1, Key: "admin", Permissions: perms}}
}

func TestAuthorize_Allows(t *testing.T) {
	roles := rolesWith(PermAssignationsRead, PermAssignationsCreate)
	if !Authorize(PermAssignationsCreate, roles, true) {
		t.Fatalf("expected allow when a role carries the required key")
	}
}

func TestAuthorize_AllowsFromAnyRole(t *testing.T) {
	roles := []Role{
		{Key: "viewer", Permissions: []Permission{{Key: PermRolesRead}}},
		{Key: "staffing", Permissions: []Permission{{Key: PermAssignationsUpdate}}},
	}
	if !Authorize(PermAssignationsUpdate, roles, true) {
		t.Fatalf("expected allow when the key lives in a later role")
	}
}

func TestAuthorize_DeniesMissingKey(t *testing.T) {
	roles := rolesWith(PermAssignationsRead)
	if Authorize(PermAssignationsCreate, roles, true) {
		t.Fatalf("expected deny when no role carries the required key")
	}
}

func TestAuthorize_DeniesEmptyRequirement(t *testing.T) {
	roles := rolesWith(PermAssignationsRead)
	if Authorize("", roles, true) {
		t.Fatalf("expected deny for an undeclared requirement")
	}
}

func TestAuthorize_DeniesDisabledCaller(t *testing.T) {
	roles := rolesWith(PermAssignationsRead)
	if Authorize(PermAssignationsRead, roles, false) {
		t.Fatalf("expected deny for a disabled caller even with the key present")
	}
}

func TestAuthorize_DeniesNoRoles(t *testing.T) {
	if Authorize(PermAssignationsRead, nil, true) {
		t.Fatalf("expected deny for a caller without roles")
	}
}
