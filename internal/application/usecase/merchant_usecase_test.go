package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

func TestMerchantUseCase_Find(t *testing.T) {
	store := memory.NewStore()
	seedMerchant(t, store, "Willms and Sons")
	seedMerchant(t, store, "Bernhard-Johns")
	seedMerchant(t, store, "Johnston Group")
	uc := usecase.NewMerchantUseCase(store.Merchants())

	res, err := uc.Find(context.Background(), "JOHN")
	require.NoError(t, err)
	assert.Equal(t, "Bernhard-Johns", res.Data.Attributes.Name, "primera coincidencia en orden alfabético")
}

func TestMerchantUseCase_Find_Errores(t *testing.T) {
	store := memory.NewStore()
	seedMerchant(t, store, "Willms and Sons")
	uc := usecase.NewMerchantUseCase(store.Merchants())

	_, err := uc.Find(context.Background(), "   ")
	assert.True(t, errors.Is(err, domain.ErrUnprocessable))
	assert.EqualError(t, err, "Parameter 'name' cannot be empty")

	_, err = uc.Find(context.Background(), "zzz")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.EqualError(t, err, "Merchant not found")
}

func TestMerchantUseCase_GetByID(t *testing.T) {
	store := memory.NewStore()
	m := seedMerchant(t, store, "Schroeder-Jerde")
	uc := usecase.NewMerchantUseCase(store.Merchants())

	res, err := uc.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", res.Data.ID)

	_, err = uc.GetByID(context.Background(), 9)
	assert.EqualError(t, err, "Couldn't find Merchant with 'id'=9")

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Data, 1)
}
