package dto

import (
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// AdjustInventoryRequest entrada para ajustar unidades disponibles.
// Adjustment lleva signo: negativo resta (no hay piso, el stock puede
// quedar bajo cero).
type AdjustInventoryRequest struct {
	ID         string `json:"id" validate:"required"`
	Adjustment int    `json:"adjustment"`
}

// InventoryResponse fila de inventario con su producto.
type InventoryResponse struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"productId"`
	Product        *ProductResponse `json:"product,omitempty"`
	QuantityOnHand int              `json:"quantityOnHand"`
	IdealQuantity  int              `json:"idealQuantity"`
	CreatedOn      time.Time        `json:"createdOn"`
	UpdatedOn      time.Time        `json:"updatedOn"`
}

// SnapshotResponse snapshot puntual del stock de un producto.
type SnapshotResponse struct {
	ID             string           `json:"id"`
	ProductID      string           `json:"productId"`
	Product        *ProductResponse `json:"product,omitempty"`
	QuantityOnHand int              `json:"quantityOnHand"`
	SnapshotTime   time.Time        `json:"snapshotTime"`
}

// NewInventoryResponse mapea la entidad al DTO de salida.
func NewInventoryResponse(inv *entity.ProductInventory) InventoryResponse {
	out := InventoryResponse{
		ID:             inv.ID,
		ProductID:      inv.ProductID,
		QuantityOnHand: inv.QuantityOnHand,
		IdealQuantity:  inv.IdealQuantity,
		CreatedOn:      inv.CreatedOn,
		UpdatedOn:      inv.UpdatedOn,
	}
	if inv.Product != nil {
		p := NewProductResponse(inv.Product)
		out.Product = &p
	}
	return out
}

// NewSnapshotResponse mapea la entidad al DTO de salida.
func NewSnapshotResponse(s *entity.ProductInventorySnapshot) SnapshotResponse {
	out := SnapshotResponse{
		ID:             s.ID,
		ProductID:      s.ProductID,
		QuantityOnHand: s.QuantityOnHand,
		SnapshotTime:   s.SnapshotTime,
	}
	if s.Product != nil {
		p := NewProductResponse(s.Product)
		out.Product = &p
	}
	return out
}
