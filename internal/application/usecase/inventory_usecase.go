package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/logger"
)

// Ventana de historia de snapshots que expone GetSnapshotHistory.
const snapshotWindow = 6 * time.Hour

// InventoryUseCase casos de uso sobre el inventario por producto y sus
// snapshots puntuales.
type InventoryUseCase struct {
	invRepo      repository.InventoryRepository
	snapshotRepo repository.SnapshotRepository
	txRunner     TxRunner
	log          *logger.Logger
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	invRepo repository.InventoryRepository,
	snapshotRepo repository.SnapshotRepository,
	txRunner TxRunner,
	log *logger.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		invRepo:      invRepo,
		snapshotRepo: snapshotRepo,
		txRunner:     txRunner,
		log:          log,
	}
}

// GetCurrent devuelve el inventario vigente con su producto, excluyendo
// productos archivados.
func (uc *InventoryUseCase) GetCurrent() ([]dto.InventoryResponse, error) {
	rows, err := uc.invRepo.ListCurrent()
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryResponse, 0, len(rows))
	for _, inv := range rows {
		out = append(out, dto.NewInventoryResponse(inv))
	}
	return out, nil
}

// GetByProductID devuelve la fila de inventario de un producto, o nil si no
// existe (la ausencia no es error).
func (uc *InventoryUseCase) GetByProductID(productID string) (*dto.InventoryResponse, error) {
	inv, err := uc.invRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, nil
	}
	resp := dto.NewInventoryResponse(inv)
	return &resp, nil
}

// GetSnapshotHistory devuelve los snapshots de las últimas 6 horas,
// excluyendo los de productos archivados.
func (uc *InventoryUseCase) GetSnapshotHistory() ([]dto.SnapshotResponse, error) {
	since := time.Now().UTC().Add(-snapshotWindow)
	rows, err := uc.snapshotRepo.ListSince(since)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SnapshotResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, dto.NewSnapshotResponse(s))
	}
	return out, nil
}

// UpdateUnitsAvailable aplica un ajuste con signo a las unidades disponibles.
// Bloquea la fila dentro de una transacción, suma el ajuste (el stock puede
// quedar negativo) y confirma; después intenta registrar un snapshot del
// valor resultante. El fallo del snapshot se loguea y se traga: la
// corrección del inventario pesa más que la completitud de la historia.
func (uc *InventoryUseCase) UpdateUnitsAvailable(ctx context.Context, id string, adjustment int) (dto.ServiceResponse[*dto.InventoryResponse], error) {
	now := time.Now().UTC()

	var updated *entity.ProductInventory
	err := uc.txRunner.Run(ctx, func(
		_ repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.CustomerRepository,
		_ repository.OrderRepository,
	) error {
		inv, err := inventoryRepo.GetByIDForUpdate(id)
		if err != nil {
			return err
		}
		if inv == nil {
			return domainNotFound("inventory", id)
		}
		inv.QuantityOnHand += adjustment
		inv.UpdatedOn = now
		if err := inventoryRepo.Update(inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return dto.Fail[*dto.InventoryResponse](nil, fmt.Sprintf("Inventory %s not found", id), now), err
		}
		return dto.Fail[*dto.InventoryResponse](nil, fmt.Sprintf("Error updating inventory %s with adjustment of %d", id, adjustment), now), err
	}

	uc.RecordSnapshot(updated, now)

	resp := dto.NewInventoryResponse(updated)
	return dto.OK(&resp, fmt.Sprintf("Inventory %s adjusted", id), now), nil
}

// AdjustInTx aplica un ajuste usando el repositorio de la transacción del
// caller (misma tx, mismo bloqueo de fila). No registra snapshot: eso queda
// en manos del caller una vez confirmada su transacción.
func (uc *InventoryUseCase) AdjustInTx(inventoryRepo repository.InventoryRepository, productID string, adjustment int, now time.Time) (*entity.ProductInventory, error) {
	inv, err := inventoryRepo.GetByProductIDForUpdate(productID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domainNotFound("inventory for product", productID)
	}
	inv.QuantityOnHand += adjustment
	inv.UpdatedOn = now
	if err := inventoryRepo.Update(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// RecordSnapshot registra el snapshot post-ajuste como best-effort: si falla
// solo se loguea, el ajuste de inventario ya quedó confirmado.
func (uc *InventoryUseCase) RecordSnapshot(inv *entity.ProductInventory, now time.Time) {
	snapshot := &entity.ProductInventorySnapshot{
		ID:             uuid.New().String(),
		ProductID:      inv.ProductID,
		QuantityOnHand: inv.QuantityOnHand,
		SnapshotTime:   now,
	}
	if err := uc.snapshotRepo.Create(snapshot); err != nil {
		uc.log.Error().Err(err).
			Str("product_id", inv.ProductID).
			Int("quantity_on_hand", inv.QuantityOnHand).
			Msg("error creando snapshot de inventario")
	}
}
