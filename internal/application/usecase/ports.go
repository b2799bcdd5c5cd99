package usecase

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que los cambios multi-entidad
// (producto+inventario, descuentos+orden) confirmen o reviertan en bloque.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
