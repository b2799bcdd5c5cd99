package dto

import (
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// GenerateOrderRequest entrada para generar una orden abierta. Del producto
// solo se usa el ID: el caso de uso relee el producto canónico.
type GenerateOrderRequest struct {
	CustomerID string           `json:"customerId" validate:"required"`
	Items      []OrderItemInput `json:"items" validate:"required,min=1"`
}

// OrderItemInput línea del request: producto y cantidad positiva.
type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// OrderResponse salida de una orden con cliente y líneas.
type OrderResponse struct {
	ID         string              `json:"id"`
	CustomerID string              `json:"customerId"`
	Customer   *CustomerResponse   `json:"customer,omitempty"`
	Items      []OrderItemResponse `json:"items"`
	IsPaid     bool                `json:"isPaid"`
	CreatedOn  time.Time           `json:"createdOn"`
	UpdatedOn  time.Time           `json:"updatedOn"`
}

// OrderItemResponse línea de la orden con su producto.
type OrderItemResponse struct {
	ID        string           `json:"id"`
	ProductID string           `json:"productId"`
	Product   *ProductResponse `json:"product,omitempty"`
	Quantity  int              `json:"quantity"`
}

// NewOrderResponse mapea la entidad al DTO de salida.
func NewOrderResponse(o *entity.SalesOrder) OrderResponse {
	out := OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Items:      make([]OrderItemResponse, 0, len(o.Items)),
		IsPaid:     o.IsPaid,
		CreatedOn:  o.CreatedOn,
		UpdatedOn:  o.UpdatedOn,
	}
	if o.Customer != nil {
		c := NewCustomerResponse(o.Customer)
		out.Customer = &c
	}
	for _, item := range o.Items {
		line := OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.Product != nil {
			p := NewProductResponse(item.Product)
			line.Product = &p
		}
		out.Items = append(out.Items, line)
	}
	return out
}
