package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := New(Config{
		Mode:      ModeLocal,
		Issuer:    "nutrivida-test",
		Audience:  "nutrivida-app",
		AccessTTL: 15 * time.Minute,
	}, NewLocalKeys())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	tok, err := m.IssueAccess(userID, RolePatient, &sessionID)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != RolePatient {
		t.Errorf("Role = %q, want %q", claims.Role, RolePatient)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sessionID)
	}
	if claims.IsExpired() {
		t.Error("fresh access token reported as expired")
	}
}

func TestRefreshTokenCarriesType(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.Must(uuid.NewV7())
	sessionID := uuid.Must(uuid.NewV7())

	tok, err := m.IssueRefresh(userID, RoleNutritionist, &sessionID)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if claims.Role != RoleNutritionist {
		t.Errorf("Role = %q, want %q", claims.Role, RoleNutritionist)
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	issuer := newTestManager(t)
	verifier := newTestManager(t) // different symmetric key

	tok, err := issuer.IssueAccess(uuid.Must(uuid.NewV7()), RolePatient, nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := verifier.Verify(tok); err == nil {
		t.Error("Verify accepted a token issued with a different key")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t)

	for _, tok := range []string{"", "not-a-token", "v4.local.AAAA"} {
		if _, err := m.Verify(tok); err == nil {
			t.Errorf("Verify(%q) accepted garbage", tok)
		}
	}
}
