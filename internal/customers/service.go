package customers

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/drgilson/gascrm-backend/pkg/db/models"
	pkgerrors "github.com/drgilson/gascrm-backend/pkg/errors"
)

const customerNotFoundMessage = "Cliente não encontrado"

// Service defines the behavior needed by the customers controller.
type Service interface {
	List(ctx context.Context) ([]CustomerDTO, error)
	Create(ctx context.Context, req CreateCustomerRequest) (*MutationResponse, error)
	Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*MutationResponse, error)
	Delete(ctx context.Context, id int64) (*MutationResponse, error)
}

type service struct {
	repo repository
}

type repository interface {
	ListActive(ctx context.Context) ([]models.Customer, error)
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Save(ctx context.Context, customer *models.Customer) error
	SoftDelete(ctx context.Context, id int64) (bool, error)
}

// NewService constructs a customers service over the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]CustomerDTO, error) {
	customers, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list customers")
	}
	dtos := make([]CustomerDTO, 0, len(customers))
	for i := range customers {
		dtos = append(dtos, *FromModel(&customers[i]))
	}
	return dtos, nil
}

func (s *service) Create(ctx context.Context, req CreateCustomerRequest) (*MutationResponse, error) {
	customer := &models.Customer{
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		CycleDays: 30,
		Notes:     req.Notes,
		IsActive:  true,
	}
	if req.CycleDays != nil {
		customer.CycleDays = *req.CycleDays
	}
	if req.LastPurchase != "" {
		parsed, err := parsePurchaseDate(req.LastPurchase)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "data de última compra inválida")
		}
		customer.LastPurchase = &parsed
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create customer")
	}
	return &MutationResponse{Message: "Cliente criado com sucesso", ID: customer.ID}, nil
}

// Update applies only the fields present in the patch. Last purchase follows
// the legacy contract: it is applied only when a non-empty value arrives and
// cannot be cleared once set.
func (s *service) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*MutationResponse, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, customerNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "find customer")
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.CycleDays != nil {
		customer.CycleDays = *req.CycleDays
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if req.LastPurchase != nil && *req.LastPurchase != "" {
		parsed, err := parsePurchaseDate(*req.LastPurchase)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "data de última compra inválida")
		}
		customer.LastPurchase = &parsed
	}

	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update customer")
	}
	return &MutationResponse{Message: "Cliente atualizado com sucesso"}, nil
}

func (s *service) Delete(ctx context.Context, id int64) (*MutationResponse, error) {
	found, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete customer")
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, customerNotFoundMessage)
	}
	return &MutationResponse{Message: "Cliente excluído com sucesso"}, nil
}
