package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación del puerto SnapshotRepository sobre PostgreSQL
// (usable con pool o tx). La tabla es append-only.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// Create persiste un snapshot puntual del stock de un producto.
func (r *SnapshotRepo) Create(snapshot *entity.ProductInventorySnapshot) error {
	query := `
		INSERT INTO inventory_snapshots (id, product_id, quantity_on_hand, snapshot_time)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		snapshot.ID, snapshot.ProductID, snapshot.QuantityOnHand, snapshot.SnapshotTime,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// ListSince devuelve los snapshots posteriores a since con su producto,
// excluyendo productos archivados.
func (r *SnapshotRepo) ListSince(since time.Time) ([]*entity.ProductInventorySnapshot, error) {
	query := `
		SELECT s.id, s.product_id, s.quantity_on_hand, s.snapshot_time,
		       p.id, p.name, p.description, p.price, p.is_taxable, p.is_archived, p.created_on, p.updated_on
		FROM inventory_snapshots s
		JOIN products p ON p.id = s.product_id
		WHERE s.snapshot_time > $1 AND NOT p.is_archived
		ORDER BY s.snapshot_time`
	rows, err := r.q.Query(context.Background(), query, since)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	var list []*entity.ProductInventorySnapshot
	for rows.Next() {
		var s entity.ProductInventorySnapshot
		var p entity.Product
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.QuantityOnHand, &s.SnapshotTime,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.IsTaxable, &p.IsArchived, &p.CreatedOn, &p.UpdatedOn,
		); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		s.Product = &p
		list = append(list, &s)
	}
	return list, rows.Err()
}
