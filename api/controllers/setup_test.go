package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drgilson/gascrm-backend/internal/setup"
	"github.com/drgilson/gascrm-backend/internal/users"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
)

type stubSetupService struct {
	status     *setup.StatusResponse
	createResp *setup.CreateAdminResponse
	createErr  error
}

func (s *stubSetupService) VerifyStatus(ctx context.Context) *setup.StatusResponse {
	return s.status
}

func (s *stubSetupService) CreateAdmin(ctx context.Context, req setup.CreateAdminRequest) (*setup.CreateAdminResponse, error) {
	return s.createResp, s.createErr
}

func TestSetupVerify(t *testing.T) {
	svc := &stubSetupService{status: &setup.StatusResponse{Configured: true}}
	handler := SetupVerify(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/setup/verificar", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data setup.StatusResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Data.Configured {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestSetupCreateAdminSetsCookie(t *testing.T) {
	svc := &stubSetupService{createResp: &setup.CreateAdminResponse{
		Message:   "Administrador criado com sucesso",
		User:      &users.UserDTO{ID: 1, Name: "Gilson", Email: "dono@gas.com", Level: "admin"},
		SessionID: "sess-1",
	}}
	handler := SetupCreateAdmin(svc, testSessionConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/setup/criar-admin", bytes.NewReader([]byte(`{"nome":"Gilson","email":"dono@gas.com","senha":"forte"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	found := false
	for _, c := range resp.Result().Cookies() {
		if c.Name == "gascrm_session" && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected session cookie after bootstrap")
	}
}

func TestSetupCreateAdminConflict(t *testing.T) {
	svc := &stubSetupService{createErr: pkgerrors.New(pkgerrors.CodeConflict, "Sistema já configurado")}
	handler := SetupCreateAdmin(svc, testSessionConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/setup/criar-admin", bytes.NewReader([]byte(`{"nome":"Gilson","email":"dono@gas.com","senha":"forte"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d", resp.Code)
	}
}

func TestSetupCreateAdminValidatesBody(t *testing.T) {
	handler := SetupCreateAdmin(&stubSetupService{}, testSessionConfig(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/setup/criar-admin", bytes.NewReader([]byte(`{"nome":"Gilson"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
