package messages

import (
	"time"

	"github.com/drgilson/gascrm-backend/pkg/db/models"
)

// SendRequest is the bulk-send payload. The service validates it so the
// legacy error messages are preserved.
type SendRequest struct {
	CustomerIDs []int64 `json:"clientes_ids"`
	Text        string  `json:"texto"`
}

// SendResponse summarizes a bulk send: how many rows were recorded and the
// per-id errors for customers that could not be resolved.
type SendResponse struct {
	Message string   `json:"mensagem"`
	Sent    int      `json:"enviadas"`
	Errors  []string `json:"erros"`
}

// MessageDTO is the history transport shape.
type MessageDTO struct {
	ID         int64  `json:"id"`
	CustomerID *int64 `json:"cliente_id"`
	Text       string `json:"texto"`
	SentAt     string `json:"enviada_em"`
	Status     string `json:"status"`
}

func FromModel(m *models.Message) *MessageDTO {
	if m == nil {
		return nil
	}
	return &MessageDTO{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Text:       m.Text,
		SentAt:     m.SentAt.Format(time.RFC3339),
		Status:     m.Status,
	}
}
