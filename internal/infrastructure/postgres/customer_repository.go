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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación del puerto CustomerRepository sobre PostgreSQL
// (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerSelect = `
	SELECT c.id, c.first_name, c.last_name, c.created_on, c.updated_on,
	       a.id, a.customer_id, a.address_line1, a.address_line2, a.city, a.state,
	       a.postal_code, a.country, a.created_on, a.updated_on
	FROM customers c
	LEFT JOIN customer_addresses a ON a.customer_id = c.id`

// Create persiste el cliente y su dirección principal. Pasar una tx como
// Querier para que ambos inserts confirmen juntos.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, first_name, last_name, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.FirstName, customer.LastName, customer.CreatedOn, customer.UpdatedOn,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	if customer.PrimaryAddress == nil {
		return nil
	}
	addr := customer.PrimaryAddress
	query = `
		INSERT INTO customer_addresses (id, customer_id, address_line1, address_line2, city, state, postal_code, country, created_on, updated_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(context.Background(), query,
		addr.ID, addr.CustomerID, addr.AddressLine1, addr.AddressLine2,
		addr.City, addr.State, addr.PostalCode, addr.Country, addr.CreatedOn, addr.UpdatedOn,
	)
	if err != nil {
		return fmt.Errorf("insert customer address: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente con su dirección; (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := customerSelect + ` WHERE c.id = $1`
	customer, err := scanCustomer(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

// List devuelve los clientes con su dirección, ordenados por apellido
// ascendente.
func (r *CustomerRepo) List() ([]*entity.Customer, error) {
	query := customerSelect + ` ORDER BY c.last_name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var list []*entity.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, customer)
	}
	return list, rows.Err()
}

// Delete borra físicamente el cliente y su dirección. Pasar una tx como
// Querier para que ambos deletes confirmen juntos.
func (r *CustomerRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM customer_addresses WHERE customer_id = $1`, id); err != nil {
		return fmt.Errorf("delete customer address: %w", err)
	}
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// scanCustomer arma el cliente; las columnas de dirección vienen de un LEFT
// JOIN y pueden ser NULL.
func scanCustomer(row pgxScanner) (*entity.Customer, error) {
	var c entity.Customer
	var addrID, custID, line1, line2, city, state, postal, country *string
	var createdOn, updatedOn *time.Time
	err := row.Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.CreatedOn, &c.UpdatedOn,
		&addrID, &custID, &line1, &line2, &city, &state, &postal, &country,
		&createdOn, &updatedOn,
	)
	if err != nil {
		return nil, err
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
		if createdOn != nil {
			addr.CreatedOn = *createdOn
		}
		if updatedOn != nil {
			addr.UpdatedOn = *updatedOn
		}
		c.PrimaryAddress = addr
	}
	return &c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
