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

func TestGenerateOpenOrder_DescuentaPorLinea(t *testing.T) {
	env := newTestEnv()
	pa := seedProduct(env.store, "Café en grano 1kg", 10)
	pb := seedProduct(env.store, "Taza esmaltada", 10)
	c := seedCustomer(env.store, "Marta", "Gil")

	out, err := env.orderUC.GenerateOpenOrder(context.Background(), dto.GenerateOrderRequest{
		CustomerID: c.ID,
		Items: []dto.OrderItemInput{
			{ProductID: pa.ID, Quantity: 3},
			{ProductID: pb.ID, Quantity: 4},
		},
	})
	require.NoError(t, err)
	require.True(t, out.IsSuccess)
	assert.Equal(t, "Invoice created", out.Message)
	require.NotNil(t, out.Data)
	assert.False(t, out.Data.IsPaid)
	require.Len(t, out.Data.Items, 2)

	// Un descuento por línea, con la magnitud de la línea
	assert.Equal(t, []int{-3, -4}, env.store.adjustments)
	assert.Equal(t, 7, inventoryByProduct(env.store, pa.ID).QuantityOnHand)
	assert.Equal(t, 6, inventoryByProduct(env.store, pb.ID).QuantityOnHand)

	// La orden quedó persistida y hay un snapshot por línea ajustada
	require.Len(t, env.store.orders, 1)
	require.Len(t, env.store.snapshots, 2)
	assert.Equal(t, 7, env.store.snapshots[0].QuantityOnHand)
	assert.Equal(t, 6, env.store.snapshots[1].QuantityOnHand)
}

func TestGenerateOpenOrder_RollbackSiLaOrdenNoPersiste(t *testing.T) {
	env := newTestEnv()
	p := seedProduct(env.store, "Tetera de vidrio", 10)
	c := seedCustomer(env.store, "Nora", "Vidal")
	env.store.orderCreateErr = errors.New("insert rechazado")

	out, err := env.orderUC.GenerateOpenOrder(context.Background(), dto.GenerateOrderRequest{
		CustomerID: c.ID,
		Items:      []dto.OrderItemInput{{ProductID: p.ID, Quantity: 5}},
	})
	require.Error(t, err)
	assert.False(t, out.IsSuccess)
	assert.Contains(t, out.Message, "Error generating order")

	// Los descuentos se revierten junto con la orden
	assert.Equal(t, 10, inventoryByProduct(env.store, p.ID).QuantityOnHand)
	assert.Empty(t, env.store.orders)
	assert.Empty(t, env.store.snapshots)
	assert.Empty(t, env.store.adjustments)
}

func TestGenerateOpenOrder_ProductoInexistente(t *testing.T) {
	env := newTestEnv()
	p := seedProduct(env.store, "Cuchara dosificadora", 10)
	c := seedCustomer(env.store, "Raúl", "Serna")

	out, err := env.orderUC.GenerateOpenOrder(context.Background(), dto.GenerateOrderRequest{
		CustomerID: c.ID,
		Items: []dto.OrderItemInput{
			{ProductID: p.ID, Quantity: 2},
			{ProductID: "no-existe", Quantity: 1},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, out.IsSuccess)
	assert.Contains(t, out.Message, "Order item not found")

	// El descuento de la primera línea también se revierte
	assert.Equal(t, 10, inventoryByProduct(env.store, p.ID).QuantityOnHand)
	assert.Empty(t, env.store.orders)
}

func TestWorkFulfilled_Idempotente(t *testing.T) {
	env := newTestEnv()
	p := seedProduct(env.store, "Hervidor cuello de ganso", 10)
	c := seedCustomer(env.store, "Sara", "Luna")

	created, err := env.orderUC.GenerateOpenOrder(context.Background(), dto.GenerateOrderRequest{
		CustomerID: c.ID,
		Items:      []dto.OrderItemInput{{ProductID: p.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	orderID := created.Data.ID

	out, err := env.orderUC.WorkFulfilled(orderID)
	require.NoError(t, err)
	require.True(t, out.IsSuccess)
	assert.Contains(t, out.Message, "Invoice paid in full")
	first := env.store.orders[orderID].UpdatedOn
	assert.True(t, env.store.orders[orderID].IsPaid)

	// La segunda pasada no cambia el estado pagado
	out, err = env.orderUC.WorkFulfilled(orderID)
	require.NoError(t, err)
	require.True(t, out.IsSuccess)
	assert.True(t, env.store.orders[orderID].IsPaid)
	assert.False(t, env.store.orders[orderID].UpdatedOn.Before(first))
}

func TestWorkFulfilled_NoEncontrada(t *testing.T) {
	env := newTestEnv()

	out, err := env.orderUC.WorkFulfilled("no-existe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, out.IsSuccess)
	assert.Equal(t, "Order to fulfill not found", out.Message)
}

func TestFlujoCompleto_OrdenDejaStockNegativo(t *testing.T) {
	env := newTestEnv()
	c := seedCustomer(env.store, "Ana", "Botero")

	created, err := env.productUC.Create(context.Background(), dto.CreateProductRequest{
		Name:  "Cafetera italiana",
		Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	out, err := env.orderUC.GenerateOpenOrder(context.Background(), dto.GenerateOrderRequest{
		CustomerID: c.ID,
		Items:      []dto.OrderItemInput{{ProductID: created.Data.ID, Quantity: 3}},
	})
	require.NoError(t, err)
	require.True(t, out.IsSuccess)

	// Partió de cero unidades, queda en -3 con un único snapshot del valor
	inv, err := env.inventoryUC.GetByProductID(created.Data.ID)
	require.NoError(t, err)
	require.NotNil(t, inv)
	assert.Equal(t, -3, inv.QuantityOnHand)

	require.Len(t, env.store.snapshots, 1)
	assert.Equal(t, -3, env.store.snapshots[0].QuantityOnHand)

	orders, err := env.orderUC.GetOrders()
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.NotNil(t, orders[0].Customer)
	assert.Equal(t, "Botero", orders[0].Customer.LastName)
}
