package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

func TestCustomerList_OrdenadoPorApellido(t *testing.T) {
	env := newTestEnv()
	seedCustomer(env.store, "Laura", "Mora")
	seedCustomer(env.store, "Pedro", "Acosta")
	seedCustomer(env.store, "Julia", "Zapata")

	customers, err := env.customerUC.List()
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Acosta", customers[0].LastName)
	assert.Equal(t, "Mora", customers[1].LastName)
	assert.Equal(t, "Zapata", customers[2].LastName)
}

func TestCustomerCreate_ConDireccionPrincipal(t *testing.T) {
	env := newTestEnv()

	out, err := env.customerUC.Create(context.Background(), dto.CreateCustomerRequest{
		FirstName: "Elena",
		LastName:  "Reyes",
		PrimaryAddress: dto.CustomerAddressInput{
			AddressLine1: "Calle 45 #12-30",
			City:         "Medellín",
			State:        "Antioquia",
			PostalCode:   "050021",
			Country:      "CO",
		},
	})
	require.NoError(t, err)
	require.True(t, out.IsSuccess)
	assert.Equal(t, "New customer added", out.Message)

	got, err := env.customerUC.GetByID(out.Data.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.PrimaryAddress)
	assert.Equal(t, "Calle 45 #12-30", got.PrimaryAddress.AddressLine1)
	assert.Equal(t, "Medellín", got.PrimaryAddress.City)
}

func TestCustomerDelete_NoEncontrado(t *testing.T) {
	env := newTestEnv()
	seedCustomer(env.store, "Iván", "Quintero")

	out, err := env.customerUC.Delete(context.Background(), "no-existe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.False(t, out.IsSuccess)
	assert.Equal(t, "Customer to delete not found", out.Message)
	assert.False(t, out.Data)

	// El almacén no se tocó
	assert.Len(t, env.store.customers, 1)
}

func TestCustomerDelete_Borra(t *testing.T) {
	env := newTestEnv()
	c := seedCustomer(env.store, "Iván", "Quintero")

	out, err := env.customerUC.Delete(context.Background(), c.ID)
	require.NoError(t, err)
	require.True(t, out.IsSuccess)
	assert.Equal(t, "Customer deleted", out.Message)
	assert.True(t, out.Data)

	got, err := env.customerUC.GetByID(c.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
