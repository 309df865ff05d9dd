package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/drgilson/gascrm-backend/pkg/config"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret: "secret",
		Issuer: "gascrm",
		TTL:    time.Hour,
	}
}

func TestMintAndParseSessionToken(t *testing.T) {
	cfg := testSessionConfig()
	now := time.Now().UTC()

	token, err := MintSessionToken(cfg, now, 42, "sess-1")
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	claims, err := ParseSessionToken(cfg, token)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", claims.UserID)
	}
	if claims.ID != "sess-1" {
		t.Fatalf("expected jti sess-1, got %q", claims.ID)
	}
}

func TestMintGeneratesSessionIDWhenMissing(t *testing.T) {
	token, err := MintSessionToken(testSessionConfig(), time.Now().UTC(), 1, "")
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}
	claims, err := ParseSessionToken(testSessionConfig(), token)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}
	if strings.TrimSpace(claims.ID) == "" {
		t.Fatal("expected generated jti")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := MintSessionToken(testSessionConfig(), time.Now().UTC(), 1, "sess")
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	other := testSessionConfig()
	other.Secret = "different"
	if _, err := ParseSessionToken(other, token); err == nil {
		t.Fatal("expected signature mismatch to fail")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	cfg := testSessionConfig()
	token, err := MintSessionToken(cfg, time.Now().UTC().Add(-2*time.Hour), 1, "sess")
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}
	if _, err := ParseSessionToken(cfg, token); err == nil {
		t.Fatal("expected expired token to fail")
	}
}
