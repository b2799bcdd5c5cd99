package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL
// (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta la orden y sus líneas. line_no preserva el orden de las
// líneas. Pasar una tx como Querier para que todo confirme junto.
func (r *OrderRepo) Create(order *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (id, customer_id, is_paid, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.IsPaid, order.CreatedOn, order.UpdatedOn,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i, item := range order.Items {
		query := `
			INSERT INTO sales_order_items (id, order_id, product_id, quantity, line_no)
			VALUES ($1, $2, $3, $4, $5)`
		_, err := r.q.Exec(context.Background(), query,
			item.ID, order.ID, item.ProductID, item.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene la orden sin relaciones cargadas; (nil, nil) si no existe.
func (r *OrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `
		SELECT id, customer_id, is_paid, created_on, updated_on
		FROM sales_orders WHERE id = $1`
	var o entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.IsPaid, &o.CreatedOn, &o.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &o, nil
}

// List devuelve las órdenes con cliente+dirección y líneas+producto, de la
// más reciente a la más antigua.
func (r *OrderRepo) List() ([]*entity.SalesOrder, error) {
	query := `
		SELECT o.id, o.customer_id, o.is_paid, o.created_on, o.updated_on,
		       c.id, c.first_name, c.last_name, c.created_on, c.updated_on,
		       a.id, a.customer_id, a.address_line1, a.address_line2, a.city, a.state,
		       a.postal_code, a.country, a.created_on, a.updated_on
		FROM sales_orders o
		JOIN customers c ON c.id = o.customer_id
		LEFT JOIN customer_addresses a ON a.customer_id = c.id
		ORDER BY o.created_on DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalesOrder
	byID := make(map[string]*entity.SalesOrder)
	for rows.Next() {
		var o entity.SalesOrder
		var c entity.Customer
		var addrID, custID, line1, line2, city, state, postal, country *string
		var addrCreated, addrUpdated *time.Time
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.IsPaid, &o.CreatedOn, &o.UpdatedOn,
			&c.ID, &c.FirstName, &c.LastName, &c.CreatedOn, &c.UpdatedOn,
			&addrID, &custID, &line1, &line2, &city, &state, &postal, &country,
			&addrCreated, &addrUpdated,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if addrID != nil {
			addr := &entity.CustomerAddress{
				ID:           *addrID,
				CustomerID:   deref(custID),
				AddressLine1: deref(line1),
				AddressLine2: deref(line2),
				City:         deref(city),
				State:        deref(state),
				PostalCode:   deref(postal),
				Country:      deref(country),
			}
			if addrCreated != nil {
				addr.CreatedOn = *addrCreated
			}
			if addrUpdated != nil {
				addr.UpdatedOn = *addrUpdated
			}
			c.PrimaryAddress = addr
		}
		o.Customer = &c
		list = append(list, &o)
		byID[o.ID] = &o
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}
	if err := r.loadItems(byID); err != nil {
		return nil, err
	}
	return list, nil
}

// loadItems carga las líneas con su producto para las órdenes dadas.
func (r *OrderRepo) loadItems(orders map[string]*entity.SalesOrder) error {
	ids := make([]string, 0, len(orders))
	for id := range orders {
		ids = append(ids, id)
	}
	query := `
		SELECT i.id, i.order_id, i.product_id, i.quantity,
		       p.id, p.name, p.description, p.price, p.is_taxable, p.is_archived, p.created_on, p.updated_on
		FROM sales_order_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ANY($1)
		ORDER BY i.order_id, i.line_no`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item entity.SalesOrderItem
		var p entity.Product
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.IsTaxable, &p.IsArchived, &p.CreatedOn, &p.UpdatedOn,
		); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		item.Product = &p
		if order, ok := orders[item.OrderID]; ok {
			order.Items = append(order.Items, &item)
		}
	}
	return rows.Err()
}

// MarkPaid marca la orden como pagada y avanza updated_on.
func (r *OrderRepo) MarkPaid(id string, updatedOn time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE sales_orders SET is_paid = TRUE, updated_on = $2 WHERE id = $1`,
		id, updatedOn,
	)
	if err != nil {
		return fmt.Errorf("mark order paid: %w", err)
	}
	return nil
}
