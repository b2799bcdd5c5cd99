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

// OrderUseCase orquesta las órdenes de venta: por cada línea descuenta stock
// y luego persiste la orden, todo dentro de una sola transacción.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	inventoryUC *InventoryUseCase
	txRunner    TxRunner
	log         *logger.Logger
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	inventoryUC *InventoryUseCase,
	txRunner TxRunner,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		inventoryUC: inventoryUC,
		txRunner:    txRunner,
		log:         log,
	}
}

// GenerateOpenOrder crea una orden abierta. Por cada línea relee el producto
// canónico por ID (cualquier otro dato del cliente se descarta), bloquea su
// fila de inventario y descuenta la cantidad; después inserta la orden con
// sus líneas. Commit o rollback en bloque: si la orden no persiste, los
// descuentos se revierten con ella. Los snapshots se registran después del
// commit, best-effort.
func (uc *OrderUseCase) GenerateOpenOrder(ctx context.Context, in dto.GenerateOrderRequest) (dto.ServiceResponse[*dto.OrderResponse], error) {
	now := time.Now().UTC()

	uc.log.Info().
		Str("customer_id", in.CustomerID).
		Int("items", len(in.Items)).
		Msg("generando nueva orden")

	order := &entity.SalesOrder{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		IsPaid:     false,
		CreatedOn:  now,
		UpdatedOn:  now,
	}

	var adjusted []*entity.ProductInventory
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.CustomerRepository,
		orderRepo repository.OrderRepository,
	) error {
		for _, item := range in.Items {
			product, err := productRepo.GetByID(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domainNotFound("product", item.ProductID)
			}
			inv, err := uc.inventoryUC.AdjustInTx(inventoryRepo, product.ID, -item.Quantity, now)
			if err != nil {
				return err
			}
			adjusted = append(adjusted, inv)
			order.Items = append(order.Items, &entity.SalesOrderItem{
				ID:        uuid.New().String(),
				OrderID:   order.ID,
				ProductID: product.ID,
				Product:   product,
				Quantity:  item.Quantity,
			})
		}
		return orderRepo.Create(order)
	})
	if err != nil {
		uc.log.Error().Err(err).Str("customer_id", in.CustomerID).Msg("error generando la orden")
		if errors.Is(err, domain.ErrNotFound) {
			return dto.Fail[*dto.OrderResponse](nil, "Order item not found: "+err.Error(), now), err
		}
		return dto.Fail[*dto.OrderResponse](nil, "Error generating order: "+err.Error(), now), err
	}

	for _, inv := range adjusted {
		uc.inventoryUC.RecordSnapshot(inv, now)
	}

	resp := dto.NewOrderResponse(order)
	return dto.OK(&resp, "Invoice created", now), nil
}

// GetOrders devuelve las órdenes con cliente+dirección y líneas+producto.
func (uc *OrderUseCase) GetOrders() ([]dto.OrderResponse, error) {
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, dto.NewOrderResponse(o))
	}
	return out, nil
}

// WorkFulfilled marca una orden como pagada y avanza UpdatedOn. Repetirla es
// idempotente en efecto: IsPaid permanece true aunque UpdatedOn avance.
func (uc *OrderUseCase) WorkFulfilled(id string) (dto.ServiceResponse[bool], error) {
	now := time.Now().UTC()

	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return dto.Fail(false, "Error closing order: "+err.Error(), now), err
	}
	if order == nil {
		return dto.Fail(false, "Order to fulfill not found", now), domainNotFound("order", id)
	}

	if err := uc.orderRepo.MarkPaid(id, now); err != nil {
		return dto.Fail(false, "Error closing order: "+err.Error(), now), err
	}
	return dto.OK(true, fmt.Sprintf("Order %s closed: Invoice paid in full.", id), now), nil
}
