package entity

import "time"

// Customer representa un cliente. PrimaryAddress se carga eager en lecturas.
// A diferencia de Product no hay soft-delete: el borrado es físico.
type Customer struct {
	ID             string
	FirstName      string
	LastName       string
	PrimaryAddress *CustomerAddress
	CreatedOn      time.Time
	UpdatedOn      time.Time
}

// CustomerAddress dirección principal del cliente (1:1).
type CustomerAddress struct {
	ID           string
	CustomerID   string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
	CreatedOn    time.Time
	UpdatedOn    time.Time
}
