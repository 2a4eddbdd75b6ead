package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MiNegocio-api/internal/application/dto"
	"github.com/jhoicas/MiNegocio-api/internal/domain"
)

func TestValidate_UsaNombresJSON(t *testing.T) {
	err := dto.Validate(dto.CreateSaleRequest{ProductID: 0, Quantity: 1})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "product_id")

	err = dto.Validate(dto.CreateSaleRequest{ProductID: 3, Quantity: -2})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "quantity")

	assert.NoError(t, dto.Validate(dto.CreateSaleRequest{ProductID: 3, Quantity: 2}))
}

func TestValidate_PunteroACeroCuentaComoEnviado(t *testing.T) {
	zero := 0
	price := decimal.NewFromInt(10)
	in := dto.ProductRequest{Name: "Sal", Quantity: &zero, SalePrice: &price, PurchaseCost: &price}
	assert.NoError(t, dto.Validate(in))

	in.PurchaseCost = nil
	err := dto.Validate(in)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "purchase_cost")
}

func TestValidate_Email(t *testing.T) {
	assert.NoError(t, dto.Validate(dto.LoginRequest{Email: "duena@tienda.mx", Password: "x"}))
	assert.ErrorIs(t, dto.Validate(dto.LoginRequest{Email: "duena", Password: "x"}), domain.ErrInvalidInput)
}

func TestValidateMoney(t *testing.T) {
	for _, ok := range []string{"10", "10.5", "10.05", "10.0500", "-3.25"} {
		assert.NoError(t, dto.ValidateMoney("amount", decimal.RequireFromString(ok)), ok)
	}
	for _, bad := range []string{"10.005", "0.0001", "-1.001"} {
		assert.ErrorIs(t, dto.ValidateMoney("amount", decimal.RequireFromString(bad)), domain.ErrInvalidInput, bad)
	}
}
