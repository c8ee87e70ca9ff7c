package pasetotoken

import (
	"testing"
	"time"

	paseto "aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
)

func newTestManager(t *testing.T, cfg Config) *Manager {
	t.Helper()
	m, err := New(cfg, paseto.NewV4SymmetricKey())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return m
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t, Config{Issuer: "mindchat", Audience: "mindchat-web"})

	userID := uuid.New()
	sessionID := uuid.New()

	tok, err := m.IssueAccess(userID, &sessionID, "patient")
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %v", claims.SessionID, sessionID)
	}
	if claims.Role != "patient" {
		t.Errorf("Role = %q, want %q", claims.Role, "patient")
	}
	if claims.IsExpired() {
		t.Error("fresh token should not be expired")
	}
}

func TestIssueRefreshWithoutSession(t *testing.T) {
	m := newTestManager(t, Config{Issuer: "mindchat", Audience: "mindchat-web"})

	tok, err := m.IssueRefresh(uuid.New(), nil, "psychologist")
	if err != nil {
		t.Fatalf("IssueRefresh() error = %v", err)
	}

	claims, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if claims.SessionID != nil {
		t.Errorf("SessionID = %v, want nil", claims.SessionID)
	}
	if claims.Role != "psychologist" {
		t.Errorf("Role = %q, want %q", claims.Role, "psychologist")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	a := newTestManager(t, Config{Issuer: "mindchat", Audience: "mindchat-web"})
	b := newTestManager(t, Config{Issuer: "mindchat", Audience: "mindchat-web"})

	tok, err := a.IssueAccess(uuid.New(), nil, "patient")
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := b.Verify(tok); err == nil {
		t.Error("Verify() should fail for a token encrypted with another key")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := newTestManager(t, Config{Issuer: "mindchat", Audience: "mindchat-web"})
	// Shrink the TTL after construction so the token is already stale.
	m.cfg.AccessTTL = -time.Minute

	tok, err := m.IssueAccess(uuid.New(), nil, "patient")
	if err != nil {
		t.Fatalf("IssueAccess() error = %v", err)
	}

	if _, err := m.Verify(tok); err == nil {
		t.Error("Verify() should fail for an expired token")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := newTestManager(t, Config{Issuer: "mindchat", Audience: "mindchat-web"})

	for _, tok := range []string{"", "v4.local.garbage", "not-a-token"} {
		if _, err := m.Verify(tok); err == nil {
			t.Errorf("Verify(%q) should fail", tok)
		}
	}
}

func TestNewRequiresIssuerAndAudience(t *testing.T) {
	if _, err := New(Config{Audience: "a"}, paseto.NewV4SymmetricKey()); err == nil {
		t.Error("New() should fail without issuer")
	}
	if _, err := New(Config{Issuer: "i"}, paseto.NewV4SymmetricKey()); err == nil {
		t.Error("New() should fail without audience")
	}
}
