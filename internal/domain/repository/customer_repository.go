package repository

import "github.com/jhoicas/backoffice-api/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Create y Delete incluyen la dirección principal (1:1); las lecturas la
// cargan eager.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	// List devuelve los clientes ordenados por apellido ascendente.
	List() ([]*entity.Customer, error)
	Delete(id string) error
}
