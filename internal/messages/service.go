package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/drgilson/gascrm-backend/pkg/db/models"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
)

// PlaceholderName is the literal token replaced by the customer name in
// outgoing templates.
const PlaceholderName = "[NOME]"

// Service defines the behavior needed by the messages controller.
type Service interface {
	Send(ctx context.Context, req SendRequest) (*SendResponse, error)
	History(ctx context.Context) ([]MessageDTO, error)
}

type service struct {
	repo         repository
	customers    customerFinder
	historyLimit int
}

type repository interface {
	CreateBatch(ctx context.Context, msgs []models.Message) error
	ListRecent(ctx context.Context, limit int) ([]models.Message, error)
}

type customerFinder interface {
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
}

// ServiceParams bundles the dependencies required to build a messages service.
type ServiceParams struct {
	Repo         repository
	Customers    customerFinder
	HistoryLimit int
}

// NewService constructs a messages service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("messages repository is required")
	}
	if params.Customers == nil {
		return nil, fmt.Errorf("customer finder is required")
	}
	limit := params.HistoryLimit
	if limit <= 0 {
		limit = 100
	}
	return &service{repo: params.Repo, customers: params.Customers, historyLimit: limit}, nil
}

// Send resolves each customer id, personalizes the template and records one
// row per resolved customer. Unknown ids become per-item errors; resolution
// ignores the active flag so a just-deactivated customer can still be
// messaged. All rows commit as one unit.
func (s *service) Send(ctx context.Context, req SendRequest) (*SendResponse, error) {
	if len(req.CustomerIDs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Nenhum cliente selecionado")
	}
	if req.Text == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Mensagem vazia")
	}

	var (
		rows     []models.Message
		sendErrs []string
	)
	for _, id := range req.CustomerIDs {
		customer, err := s.customers.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				sendErrs = append(sendErrs, fmt.Sprintf("Cliente %d não encontrado", id))
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find customer")
		}

		customerID := customer.ID
		rows = append(rows, models.Message{
			CustomerID: &customerID,
			Text:       strings.ReplaceAll(req.Text, PlaceholderName, customer.Name),
			Status:     models.MessageStatusSent,
		})
	}

	if err := s.repo.CreateBatch(ctx, rows); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "record messages")
	}

	if sendErrs == nil {
		sendErrs = []string{}
	}
	return &SendResponse{
		Message: fmt.Sprintf("%d mensagens enviadas", len(rows)),
		Sent:    len(rows),
		Errors:  sendErrs,
	}, nil
}

func (s *service) History(ctx context.Context) ([]MessageDTO, error) {
	msgs, err := s.repo.ListRecent(ctx, s.historyLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list messages")
	}
	dtos := make([]MessageDTO, 0, len(msgs))
	for i := range msgs {
		dtos = append(dtos, *FromModel(&msgs[i]))
	}
	return dtos, nil
}
