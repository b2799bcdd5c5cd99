package entity

import "time"

// SalesOrder orden de venta. Ciclo de vida: abierta (IsPaid=false) →
// cumplida (IsPaid=true), una sola dirección, sin cancelación.
type SalesOrder struct {
	ID         string
	CustomerID string
	Customer   *Customer
	Items      []*SalesOrderItem
	IsPaid     bool
	CreatedOn  time.Time
	UpdatedOn  time.Time
}

// SalesOrderItem línea de una orden: producto y cantidad (positiva).
// Inmutable después de crear la orden; pertenece a exactamente una orden.
type SalesOrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Product   *Product
	Quantity  int
}
