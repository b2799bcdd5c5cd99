package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// IsArchived es soft-delete: un producto archivado queda fuera de las
// consultas de inventario activo y de snapshots, pero nunca se borra
// físicamente ni se des-archiva.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	IsTaxable   bool
	IsArchived  bool
	CreatedOn   time.Time
	UpdatedOn   time.Time
}
