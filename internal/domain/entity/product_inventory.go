package entity

import "time"

// ProductInventory stock actual de un producto (relación 1:1 con Product).
// QuantityOnHand es entero con signo: los ajustes pueden dejarlo negativo,
// no hay piso en esta capa. IdealQuantity es el nivel objetivo de stock
// (10 al aprovisionar el producto).
type ProductInventory struct {
	ID             string
	ProductID      string
	Product        *Product
	QuantityOnHand int
	IdealQuantity  int
	CreatedOn      time.Time
	UpdatedOn      time.Time
}

// ProductInventorySnapshot copia inmutable del stock de un producto en un
// instante dado (UTC). Append-only: nunca se actualiza ni se borra.
type ProductInventorySnapshot struct {
	ID             string
	ProductID      string
	Product        *Product
	QuantityOnHand int
	SnapshotTime   time.Time
}
