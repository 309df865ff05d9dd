package customers

import (
	"fmt"
	"strings"
	"time"

	"github.com/drgilson/gascrm-backend/pkg/db/models"
)

const purchaseDateLayout = "2006-01-02"

// CustomerDTO is the list/detail transport shape. ultima_compra renders as an
// ISO date or null, criado_em as an ISO datetime.
type CustomerDTO struct {
	ID           int64   `json:"id"`
	Name         string  `json:"nome"`
	Phone        string  `json:"telefone"`
	Address      string  `json:"endereco"`
	CycleDays    int     `json:"ciclo_dias"`
	LastPurchase *string `json:"ultima_compra"`
	Notes        string  `json:"observacoes"`
	CreatedAt    string  `json:"criado_em"`
}

// CreateCustomerRequest is the creation payload. Optional fields fall back to
// the same defaults the storage layer declares.
type CreateCustomerRequest struct {
	Name         string `json:"nome" validate:"required"`
	Phone        string `json:"telefone" validate:"required"`
	Address      string `json:"endereco"`
	CycleDays    *int   `json:"ciclo_dias" validate:"omitempty,min=1"`
	LastPurchase string `json:"ultima_compra"`
	Notes        string `json:"observacoes"`
}

// UpdateCustomerRequest is an explicit patch: only fields present in the JSON
// body are applied. A null is treated like an absent field.
type UpdateCustomerRequest struct {
	Name         *string `json:"nome"`
	Phone        *string `json:"telefone"`
	Address      *string `json:"endereco"`
	CycleDays    *int    `json:"ciclo_dias" validate:"omitempty,min=1"`
	LastPurchase *string `json:"ultima_compra"`
	Notes        *string `json:"observacoes"`
}

// MutationResponse is the create/update/delete acknowledgement.
type MutationResponse struct {
	Message string `json:"mensagem"`
	ID      int64  `json:"id,omitempty"`
}

func FromModel(c *models.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}

	var lastPurchase *string
	if c.LastPurchase != nil {
		formatted := c.LastPurchase.Format(purchaseDateLayout)
		lastPurchase = &formatted
	}

	return &CustomerDTO{
		ID:           c.ID,
		Name:         c.Name,
		Phone:        c.Phone,
		Address:      c.Address,
		CycleDays:    c.CycleDays,
		LastPurchase: lastPurchase,
		Notes:        c.Notes,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}

// parsePurchaseDate accepts a plain ISO date or a full RFC3339 timestamp,
// keeping only the date part.
func parsePurchaseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if t, err := time.Parse(purchaseDateLayout, trimmed); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}
