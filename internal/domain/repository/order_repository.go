package repository

import (
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para SalesOrder.
type OrderRepository interface {
	// Create inserta la orden con sus líneas, preservando el orden de estas.
	Create(order *entity.SalesOrder) error
	// GetByID devuelve la orden sin relaciones cargadas; (nil, nil) si no existe.
	GetByID(id string) (*entity.SalesOrder, error)
	// List devuelve las órdenes con cliente+dirección y líneas+producto.
	List() ([]*entity.SalesOrder, error)
	MarkPaid(id string, updatedOn time.Time) error
}
