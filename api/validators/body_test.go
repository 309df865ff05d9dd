package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
)

type loginBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"dono@gas.com","senha":"s3cre7"}`))
	var body loginBody
	if err := DecodeJSONBody(req, &body); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body.Email != "dono@gas.com" || body.Password != "s3cre7" {
		t.Fatalf("unexpected decode result: %+v", body)
	}
}

func TestDecodeJSONBodyRejectsUnknownFields(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"dono@gas.com","senha":"x","extra":true}`))
	var body loginBody
	err := DecodeJSONBody(req, &body)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestDecodeJSONBodyValidationDetailsUseJSONTags(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
	var body loginBody
	err := DecodeJSONBody(req, &body)
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected field details, got %T", typed.Details())
	}
	if _, ok := details["senha"]; !ok {
		t.Fatalf("expected senha detail, got %v", details)
	}
	if _, ok := details["email"]; !ok {
		t.Fatalf("expected email detail, got %v", details)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  Botijão 13kg  ", 0); got != "Botijão 13kg" {
		t.Fatalf("unexpected trim result %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("unexpected clamp result %q", got)
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Dono@Gas.COM "); got != "dono@gas.com" {
		t.Fatalf("unexpected normalization %q", got)
	}
}
