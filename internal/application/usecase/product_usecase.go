package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// Nivel objetivo de stock asignado a todo producto nuevo.
const defaultIdealQuantity = 10

// ProductUseCase casos de uso para el catálogo de productos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// List devuelve todos los productos, archivados incluidos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// GetByID devuelve un producto o nil si no existe (la ausencia no es error).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// Create persiste el producto y aprovisiona su fila de inventario
// (QuantityOnHand=0, IdealQuantity=10) en la misma transacción. En fallo el
// sobre devuelve el payload de entrada sin persistir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (dto.ServiceResponse[dto.ProductResponse], error) {
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		IsTaxable:   in.IsTaxable,
		CreatedOn:   now,
		UpdatedOn:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
		_ repository.CustomerRepository,
		_ repository.OrderRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		inventory := &entity.ProductInventory{
			ID:             uuid.New().String(),
			ProductID:      product.ID,
			QuantityOnHand: 0,
			IdealQuantity:  defaultIdealQuantity,
			CreatedOn:      now,
			UpdatedOn:      now,
		}
		return inventoryRepo.Create(inventory)
	})
	if err != nil {
		return dto.Fail(dto.NewProductResponse(product), "Error saving product: "+err.Error(), now), err
	}
	return dto.OK(dto.NewProductResponse(product), "Saved new product", now), nil
}

// Archive archiva el producto (soft-delete, sin reversa). La ausencia del ID
// produce un sobre de fallo explícito, nunca una desreferencia a ciegas.
func (uc *ProductUseCase) Archive(id string) (dto.ServiceResponse[*dto.ProductResponse], error) {
	now := time.Now().UTC()

	product, err := uc.repo.GetByID(id)
	if err != nil {
		return dto.Fail[*dto.ProductResponse](nil, "Error archiving product: "+err.Error(), now), err
	}
	if product == nil {
		return dto.Fail[*dto.ProductResponse](nil, "Product to archive not found", now), domainNotFound("product", id)
	}

	if err := uc.repo.Archive(id, now); err != nil {
		return dto.Fail[*dto.ProductResponse](nil, "Error archiving product: "+err.Error(), now), err
	}
	product.IsArchived = true
	product.UpdatedOn = now
	resp := dto.NewProductResponse(product)
	return dto.OK(&resp, "Archived product", now), nil
}
