package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsTaxable   bool            `json:"isTaxable"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	IsTaxable   bool            `json:"isTaxable"`
	IsArchived  bool            `json:"isArchived"`
	CreatedOn   time.Time       `json:"createdOn"`
	UpdatedOn   time.Time       `json:"updatedOn"`
}

// NewProductResponse mapea la entidad al DTO de salida.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		IsTaxable:   p.IsTaxable,
		IsArchived:  p.IsArchived,
		CreatedOn:   p.CreatedOn,
		UpdatedOn:   p.UpdatedOn,
	}
}
