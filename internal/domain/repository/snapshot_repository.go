package repository

import (
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// SnapshotRepository define el puerto para los snapshots de inventario.
// Colección append-only: solo Create y lectura por ventana de tiempo.
type SnapshotRepository interface {
	Create(snapshot *entity.ProductInventorySnapshot) error
	// ListSince devuelve los snapshots con SnapshotTime posterior a since,
	// excluyendo los de productos archivados, con su Product cargado.
	ListSince(since time.Time) ([]*entity.ProductInventorySnapshot, error)
}
