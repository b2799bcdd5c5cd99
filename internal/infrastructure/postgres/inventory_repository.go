package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre
// PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventorySelect = `
	SELECT i.id, i.product_id, i.quantity_on_hand, i.ideal_quantity, i.created_on, i.updated_on,
	       p.id, p.name, p.description, p.price, p.is_taxable, p.is_archived, p.created_on, p.updated_on
	FROM product_inventory i
	JOIN products p ON p.id = i.product_id`

// Create persiste la fila de inventario de un producto recién creado.
func (r *InventoryRepo) Create(inventory *entity.ProductInventory) error {
	query := `
		INSERT INTO product_inventory (id, product_id, quantity_on_hand, ideal_quantity, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		inventory.ID, inventory.ProductID, inventory.QuantityOnHand,
		inventory.IdealQuantity, inventory.CreatedOn, inventory.UpdatedOn,
	)
	if err != nil {
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}

// GetByProductID obtiene la fila de inventario de un producto con el
// producto cargado; (nil, nil) si no existe.
func (r *InventoryRepo) GetByProductID(productID string) (*entity.ProductInventory, error) {
	query := inventorySelect + ` WHERE i.product_id = $1 LIMIT 1`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by product: %w", err)
	}
	return inv, nil
}

// GetByIDForUpdate bloquea la fila (SELECT FOR UPDATE) y la devuelve con el
// producto cargado. Usar dentro de una transacción.
func (r *InventoryRepo) GetByIDForUpdate(id string) (*entity.ProductInventory, error) {
	query := inventorySelect + ` WHERE i.id = $1 FOR UPDATE OF i`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return inv, nil
}

// GetByProductIDForUpdate bloquea la fila por producto. Usar dentro de una tx.
func (r *InventoryRepo) GetByProductIDForUpdate(productID string) (*entity.ProductInventory, error) {
	query := inventorySelect + ` WHERE i.product_id = $1 LIMIT 1 FOR UPDATE OF i`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by product for update: %w", err)
	}
	return inv, nil
}

// ListCurrent devuelve el inventario vigente, excluyendo productos archivados.
func (r *InventoryRepo) ListCurrent() ([]*entity.ProductInventory, error) {
	query := inventorySelect + ` WHERE NOT p.is_archived ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductInventory
	for rows.Next() {
		inv, err := scanInventory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Update persiste la cantidad ajustada.
func (r *InventoryRepo) Update(inventory *entity.ProductInventory) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE product_inventory SET quantity_on_hand = $2, updated_on = $3 WHERE id = $1`,
		inventory.ID, inventory.QuantityOnHand, inventory.UpdatedOn,
	)
	if err != nil {
		return fmt.Errorf("update inventory: %w", err)
	}
	return nil
}

func scanInventory(row pgxScanner) (*entity.ProductInventory, error) {
	var inv entity.ProductInventory
	var p entity.Product
	err := row.Scan(
		&inv.ID, &inv.ProductID, &inv.QuantityOnHand, &inv.IdealQuantity, &inv.CreatedOn, &inv.UpdatedOn,
		&p.ID, &p.Name, &p.Description, &p.Price, &p.IsTaxable, &p.IsArchived, &p.CreatedOn, &p.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	inv.Product = &p
	return &inv, nil
}
