package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/drgilson/gascrm-backend/api/middleware"
	"github.com/drgilson/gascrm-backend/internal/auth"
	"github.com/drgilson/gascrm-backend/internal/users"
	"github.com/drgilson/gascrm-backend/pkg/config"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
)

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:     "secret",
		Issuer:     "gascrm",
		TTL:        time.Hour,
		CookieName: "gascrm_session",
	}
}

type stubAuthService struct {
	loginResp *auth.LoginResponse
	loginErr  error
	user      *users.UserDTO
	userErr   error
	revoked   []string
}

func (s *stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	return s.loginResp, s.loginErr
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	s.revoked = append(s.revoked, sessionID)
	return nil
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID int64) (*users.UserDTO, error) {
	return s.user, s.userErr
}

func TestAuthLoginSetsSessionCookie(t *testing.T) {
	user := &users.UserDTO{ID: 3, Name: "Gilson", Email: "dono@gas.com", Level: "admin"}
	svc := &stubAuthService{loginResp: &auth.LoginResponse{
		Message:   "Login realizado com sucesso",
		User:      user,
		SessionID: "sess-1",
	}}

	handler := AuthLogin(svc, testSessionConfig(), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(`{"email":"dono@gas.com","senha":"forte"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	cookies := resp.Result().Cookies()
	var session *http.Cookie
	for _, c := range cookies {
		if c.Name == "gascrm_session" {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatal("expected session cookie")
	}
	if !session.HttpOnly {
		t.Fatal("session cookie must be http-only")
	}

	var envelope struct {
		Data struct {
			Message string         `json:"mensagem"`
			User    *users.UserDTO `json:"usuario"`
		} `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.User == nil || envelope.Data.User.ID != 3 {
		t.Fatalf("unexpected user payload %+v", envelope.Data.User)
	}
	if strings.Contains(resp.Body.String(), "sess-1") {
		t.Fatal("session id must not leak into the body")
	}
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: pkgerrors.New(pkgerrors.CodeUnauthorized, "Email ou senha incorretos")}
	handler := AuthLogin(svc, testSessionConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte(`{"email":"dono@gas.com","senha":"x"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if len(resp.Result().Cookies()) != 0 {
		t.Fatal("failed login must not set cookies")
	}
}

func TestAuthLogoutClearsCookieAndRevokes(t *testing.T) {
	cfg := testSessionConfig()
	svc := &stubAuthService{}
	handler := AuthLogout(svc, cfg, nil)

	rec := httptest.NewRecorder()
	if err := setSessionCookie(rec, cfg, 3, "sess-1"); err != nil {
		t.Fatalf("mint cookie: %v", err)
	}
	minted := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(minted)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if len(svc.revoked) != 1 || svc.revoked[0] != "sess-1" {
		t.Fatalf("expected sess-1 revoked, got %v", svc.revoked)
	}

	var cleared *http.Cookie
	for _, c := range resp.Result().Cookies() {
		if c.Name == cfg.CookieName {
			cleared = c
		}
	}
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Fatalf("expected expired cookie, got %+v", cleared)
	}
}

func TestAuthLogoutWithoutCookieStillSucceeds(t *testing.T) {
	svc := &stubAuthService{}
	handler := AuthLogout(svc, testSessionConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAuthCurrentUser(t *testing.T) {
	user := &users.UserDTO{ID: 3, Name: "Gilson", Email: "dono@gas.com", Level: "admin"}
	svc := &stubAuthService{user: user}
	handler := AuthCurrentUser(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/usuario-atual", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), 3))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data users.UserDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.ID != 3 || envelope.Data.Level != "admin" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestAuthCurrentUserMissingContext(t *testing.T) {
	handler := AuthCurrentUser(&stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/usuario-atual", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
