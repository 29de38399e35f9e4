package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func TestItemRepo_Update(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	m := &entity.Merchant{Name: "Schroeder-Jerde"}
	require.NoError(t, s.Merchants().Create(ctx, m))
	it := &entity.Item{Name: "Gold Ring", Description: "d", UnitPrice: decimal.NewFromInt(10), MerchantID: m.ID}
	require.NoError(t, s.Items().Create(ctx, it))

	it.Name = "Silver Ring"
	require.NoError(t, s.Items().Update(ctx, it))

	got, err := s.Items().GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, "Silver Ring", got.Name)
}

func TestItemRepo_Update_FilaEliminada(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	m := &entity.Merchant{Name: "Schroeder-Jerde"}
	require.NoError(t, s.Merchants().Create(ctx, m))
	it := &entity.Item{Name: "Gold Ring", Description: "d", UnitPrice: decimal.NewFromInt(10), MerchantID: m.ID}
	require.NoError(t, s.Items().Create(ctx, it))
	require.NoError(t, s.Items().Delete(ctx, it.ID))

	err := s.Items().Update(ctx, it)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "Couldn't find Item with 'id'=1", err.Error())
	assert.Equal(t, 0, s.Counts()["items"])
}
