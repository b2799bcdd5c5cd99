package dto

import (
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// CreateCustomerRequest entrada para crear un cliente con su dirección principal.
type CreateCustomerRequest struct {
	FirstName      string               `json:"firstName" validate:"required,min=1,max=100"`
	LastName       string               `json:"lastName" validate:"required,min=1,max=100"`
	PrimaryAddress CustomerAddressInput `json:"primaryAddress"`
}

// CustomerAddressInput dirección principal dentro del request de creación.
type CustomerAddressInput struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// CustomerResponse salida de un cliente con su dirección principal.
type CustomerResponse struct {
	ID             string                   `json:"id"`
	FirstName      string                   `json:"firstName"`
	LastName       string                   `json:"lastName"`
	PrimaryAddress *CustomerAddressResponse `json:"primaryAddress,omitempty"`
	CreatedOn      time.Time                `json:"createdOn"`
	UpdatedOn      time.Time                `json:"updatedOn"`
}

// CustomerAddressResponse dirección principal en respuestas.
type CustomerAddressResponse struct {
	ID           string `json:"id"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
}

// NewCustomerResponse mapea la entidad al DTO de salida.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	out := CustomerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CreatedOn: c.CreatedOn,
		UpdatedOn: c.UpdatedOn,
	}
	if c.PrimaryAddress != nil {
		out.PrimaryAddress = &CustomerAddressResponse{
			ID:           c.PrimaryAddress.ID,
			AddressLine1: c.PrimaryAddress.AddressLine1,
			AddressLine2: c.PrimaryAddress.AddressLine2,
			City:         c.PrimaryAddress.City,
			State:        c.PrimaryAddress.State,
			PostalCode:   c.PrimaryAddress.PostalCode,
			Country:      c.PrimaryAddress.Country,
		}
	}
	return out
}
