package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/drgilson/gascrm-backend/internal/customers"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
)

type stubCustomersService struct {
	list      []customers.CustomerDTO
	listErr   error
	created   *customers.MutationResponse
	createErr error
	updated   *customers.MutationResponse
	updateErr error
	deleted   *customers.MutationResponse
	deleteErr error

	updateID int64
	deleteID int64
}

func (s *stubCustomersService) List(ctx context.Context) ([]customers.CustomerDTO, error) {
	return s.list, s.listErr
}

func (s *stubCustomersService) Create(ctx context.Context, req customers.CreateCustomerRequest) (*customers.MutationResponse, error) {
	return s.created, s.createErr
}

func (s *stubCustomersService) Update(ctx context.Context, id int64, req customers.UpdateCustomerRequest) (*customers.MutationResponse, error) {
	s.updateID = id
	return s.updated, s.updateErr
}

func (s *stubCustomersService) Delete(ctx context.Context, id int64) (*customers.MutationResponse, error) {
	s.deleteID = id
	return s.deleted, s.deleteErr
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCustomersListEnvelope(t *testing.T) {
	svc := &stubCustomersService{list: []customers.CustomerDTO{{ID: 1, Name: "Maria", Phone: "1", CycleDays: 30}}}
	handler := CustomersList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []customers.CustomerDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Maria" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestCustomersCreate(t *testing.T) {
	svc := &stubCustomersService{created: &customers.MutationResponse{Message: "Cliente criado com sucesso", ID: 9}}
	handler := CustomersCreate(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/clientes", bytes.NewReader([]byte(`{"nome":"Maria","telefone":"88999990000"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d", resp.Code)
	}
}

func TestCustomersCreateMissingRequiredFields(t *testing.T) {
	svc := &stubCustomersService{}
	handler := CustomersCreate(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/clientes", bytes.NewReader([]byte(`{"nome":"Maria"}`)))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCustomersUpdateParsesID(t *testing.T) {
	svc := &stubCustomersService{updated: &customers.MutationResponse{Message: "Cliente atualizado com sucesso"}}
	handler := CustomersUpdate(svc, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/clientes/7", bytes.NewReader([]byte(`{"telefone":"2"}`)))
	req = withURLParam(req, "id", "7")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.updateID != 7 {
		t.Fatalf("expected id 7, got %d", svc.updateID)
	}
}

func TestCustomersUpdateRejectsBadID(t *testing.T) {
	handler := CustomersUpdate(&stubCustomersService{}, nil)

	req := httptest.NewRequest(http.MethodPut, "/api/clientes/abc", bytes.NewReader([]byte(`{}`)))
	req = withURLParam(req, "id", "abc")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCustomersDeleteNotFound(t *testing.T) {
	svc := &stubCustomersService{deleteErr: pkgerrors.New(pkgerrors.CodeNotFound, "Cliente não encontrado")}
	handler := CustomersDelete(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/clientes/99", nil)
	req = withURLParam(req, "id", "99")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
	if svc.deleteID != 99 {
		t.Fatalf("expected id 99, got %d", svc.deleteID)
	}
}
