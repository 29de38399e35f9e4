package validation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/validation"
	"github.com/jhoicas/catalogo-api/internal/domain"
)

type sample struct {
	Name       string           `json:"name" validate:"notblank"`
	UnitPrice  *decimal.Decimal `json:"unit_price" validate:"required"`
	MerchantID *int64           `json:"merchant_id" label:"Merchant" validate:"required"`
	Nickname   *string          `json:"nickname" validate:"omitnil,notblank"`
}

func TestStruct_MensajesPorCampo(t *testing.T) {
	err := validation.Struct(sample{Name: "   "})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.EqualError(t, err, "Validation failed: Name can't be blank, Unit price can't be blank, Merchant can't be blank")
}

func TestStruct_Valido(t *testing.T) {
	price := decimal.Zero
	id := int64(1)
	assert.NoError(t, validation.Struct(sample{Name: "Butter", UnitPrice: &price, MerchantID: &id}))
}

func TestStruct_PunteroOpcionalEnBlanco(t *testing.T) {
	price := decimal.NewFromInt(3)
	id := int64(1)
	blank := ""
	err := validation.Struct(sample{Name: "Butter", UnitPrice: &price, MerchantID: &id, Nickname: &blank})
	assert.EqualError(t, err, "Validation failed: Nickname can't be blank")
}
