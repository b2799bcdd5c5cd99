package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

func TestProductCreate_AprovisionaInventario(t *testing.T) {
	env := newTestEnv()

	out, err := env.productUC.Create(context.Background(), dto.CreateProductRequest{
		Name:      "Café molido 500g",
		Price:     decimal.NewFromFloat(12.50),
		IsTaxable: true,
	})
	require.NoError(t, err)
	require.True(t, out.IsSuccess)
	assert.Equal(t, "Saved new product", out.Message)
	assert.NotEmpty(t, out.Data.ID)

	// El producto y su fila de inventario quedan persistidos juntos
	require.Len(t, env.store.products, 1)
	require.Len(t, env.store.inventories, 1)

	inv := inventoryByProduct(env.store, out.Data.ID)
	require.NotNil(t, inv)
	assert.Equal(t, 0, inv.QuantityOnHand)
	assert.Equal(t, 10, inv.IdealQuantity)
}

func TestProductCreate_FalloDevuelveEntradaSinPersistir(t *testing.T) {
	env := newTestEnv()
	env.store.productCreateErr = errors.New("conexión perdida")

	out, err := env.productUC.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Molino manual",
		Price: decimal.NewFromInt(40),
	})
	require.Error(t, err)
	assert.False(t, out.IsSuccess)
	assert.Contains(t, out.Message, "Error saving product")

	// El sobre de fallo devuelve el payload de entrada
	assert.Equal(t, "Molino manual", out.Data.Name)
	assert.True(t, decimal.NewFromInt(40).Equal(out.Data.Price))

	// Nada quedó persistido, ni producto ni inventario
	assert.Empty(t, env.store.products)
	assert.Empty(t, env.store.inventories)
}

func TestProductArchive_NoEncontrado(t *testing.T) {
	env := newTestEnv()

	out, err := env.productUC.Archive("no-existe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, out.IsSuccess)
	assert.Equal(t, "Product to archive not found", out.Message)
	assert.Nil(t, out.Data)
}

func TestProductArchive_SaleDelInventarioNoDelCatalogo(t *testing.T) {
	env := newTestEnv()
	p := seedProduct(env.store, "Prensa francesa", 4)

	out, err := env.productUC.Archive(p.ID)
	require.NoError(t, err)
	require.True(t, out.IsSuccess)
	assert.Equal(t, "Archived product", out.Message)
	require.NotNil(t, out.Data)
	assert.True(t, out.Data.IsArchived)

	// El catálogo sigue listando el producto, ya archivado
	products, err := env.productUC.List()
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].IsArchived)

	// El inventario vigente deja de incluirlo
	current, err := env.inventoryUC.GetCurrent()
	require.NoError(t, err)
	assert.Empty(t, current)
}

func TestProductGetByID_AusenciaSinError(t *testing.T) {
	env := newTestEnv()

	got, err := env.productUC.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got)
}
