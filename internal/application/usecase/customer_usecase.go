package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes.
type CustomerUseCase struct {
	repo     repository.CustomerRepository
	txRunner TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, txRunner TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, txRunner: txRunner}
}

// List devuelve los clientes con su dirección principal, ordenados por
// apellido ascendente.
func (uc *CustomerUseCase) List() ([]dto.CustomerResponse, error) {
	customers, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// GetByID devuelve un cliente con su dirección, o nil si no existe.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	resp := dto.NewCustomerResponse(customer)
	return &resp, nil
}

// Create persiste el cliente junto con su dirección principal en la misma
// transacción.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (dto.ServiceResponse[dto.CustomerResponse], error) {
	now := time.Now().UTC()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		CreatedOn: now,
		UpdatedOn: now,
	}
	customer.PrimaryAddress = &entity.CustomerAddress{
		ID:           uuid.New().String(),
		CustomerID:   customer.ID,
		AddressLine1: in.PrimaryAddress.AddressLine1,
		AddressLine2: in.PrimaryAddress.AddressLine2,
		City:         in.PrimaryAddress.City,
		State:        in.PrimaryAddress.State,
		PostalCode:   in.PrimaryAddress.PostalCode,
		Country:      in.PrimaryAddress.Country,
		CreatedOn:    now,
		UpdatedOn:    now,
	}

	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
		_ repository.OrderRepository,
	) error {
		return customerRepo.Create(customer)
	})
	if err != nil {
		return dto.Fail(dto.NewCustomerResponse(customer), "Error saving customer: "+err.Error(), now), err
	}
	return dto.OK(dto.NewCustomerResponse(customer), "New customer added", now), nil
}

// Delete borra físicamente un cliente y su dirección. La ausencia del ID
// produce un sobre de fallo estructurado, sin tocar el almacén.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) (dto.ServiceResponse[bool], error) {
	now := time.Now().UTC()

	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return dto.Fail(false, "Error deleting customer: "+err.Error(), now), err
	}
	if customer == nil {
		return dto.Fail(false, "Customer to delete not found", now), domainNotFound("customer", id)
	}

	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		_ repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
		_ repository.OrderRepository,
	) error {
		return customerRepo.Delete(id)
	})
	if err != nil {
		return dto.Fail(false, "Error deleting customer: "+err.Error(), now), err
	}
	return dto.OK(true, "Customer deleted", now), nil
}
