package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para ProductInventory.
// Las lecturas devuelven la fila con su Product cargado; (nil, nil) si no existe.
type InventoryRepository interface {
	Create(inventory *entity.ProductInventory) error
	GetByProductID(productID string) (*entity.ProductInventory, error)
	// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE); usar dentro de una tx.
	GetByIDForUpdate(id string) (*entity.ProductInventory, error)
	// GetByProductIDForUpdate bloquea la fila por producto; usar dentro de una tx.
	GetByProductIDForUpdate(productID string) (*entity.ProductInventory, error)
	// ListCurrent devuelve el inventario vigente, excluyendo productos archivados.
	ListCurrent() ([]*entity.ProductInventory, error)
	Update(inventory *entity.ProductInventory) error
}
