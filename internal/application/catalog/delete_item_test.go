package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

// fixture arma un comercio, un cliente y dos ítems (X e Y).
type fixture struct {
	store    *memory.Store
	customer *entity.Customer
	merchant *entity.Merchant
	x, y     *entity.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{store: memory.NewStore()}

	f.merchant = &entity.Merchant{Name: "Schroeder-Jerde"}
	require.NoError(t, f.store.Merchants().Create(ctx, f.merchant))
	f.customer = &entity.Customer{FirstName: "Joey", LastName: "Ondricka"}
	require.NoError(t, f.store.Customers().Create(ctx, f.customer))

	f.x = &entity.Item{Name: "Ring", Description: "Gold", UnitPrice: decimal.NewFromInt(10), MerchantID: f.merchant.ID}
	f.y = &entity.Item{Name: "Necklace", Description: "Silver", UnitPrice: decimal.NewFromInt(20), MerchantID: f.merchant.ID}
	require.NoError(t, f.store.Items().Create(ctx, f.x))
	require.NoError(t, f.store.Items().Create(ctx, f.y))
	return f
}

// invoiceWith crea una factura "shipped" con una línea por ítem.
func (f *fixture) invoiceWith(t *testing.T, items ...*entity.Item) *entity.Invoice {
	t.Helper()
	ctx := context.Background()
	inv := &entity.Invoice{CustomerID: f.customer.ID, MerchantID: f.merchant.ID, Status: entity.InvoiceStatusShipped}
	require.NoError(t, f.store.Invoices().Create(ctx, inv))
	for _, it := range items {
		line := &entity.InvoiceItem{InvoiceID: inv.ID, ItemID: it.ID, Quantity: 1, UnitPrice: it.UnitPrice}
		require.NoError(t, f.store.Invoices().CreateItem(ctx, line))
	}
	return inv
}

func newUseCase(f *fixture) *catalog.DeleteItemUseCase {
	return catalog.NewDeleteItemUseCase(f.store, logger.Nop())
}

func TestDeleteItem_FacturaConUnicaLineaSeElimina(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv := f.invoiceWith(t, f.x)

	plan, err := newUseCase(f).Execute(ctx, f.x.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{inv.ID}, plan.InvoiceIDs)

	item, _ := f.store.Items().GetByID(ctx, f.x.ID)
	assert.Nil(t, item, "el ítem no debe existir")
	got, _ := f.store.Invoices().GetByID(ctx, inv.ID)
	assert.Nil(t, got, "la factura sin líneas debe eliminarse")
	lines, _ := f.store.Invoices().GetItemsByInvoiceID(ctx, inv.ID)
	assert.Empty(t, lines)
}

func TestDeleteItem_FacturaConOtrosItemsSeConserva(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	inv := f.invoiceWith(t, f.x, f.y)

	plan, err := newUseCase(f).Execute(ctx, f.x.ID)
	require.NoError(t, err)
	assert.Empty(t, plan.InvoiceIDs)

	got, _ := f.store.Invoices().GetByID(ctx, inv.ID)
	require.NotNil(t, got, "la factura con otro ítem debe conservarse")
	lines, _ := f.store.Invoices().GetItemsByInvoiceID(ctx, inv.ID)
	require.Len(t, lines, 1)
	assert.Equal(t, f.y.ID, lines[0].ItemID, "solo queda la línea de Y")
}

func TestDeleteItem_MezclaDeFacturas(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	solo := f.invoiceWith(t, f.x)
	shared := f.invoiceWith(t, f.x, f.y)
	other := f.invoiceWith(t, f.y)

	plan, err := newUseCase(f).Execute(ctx, f.x.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{solo.ID}, plan.InvoiceIDs)

	counts := f.store.Counts()
	assert.Equal(t, 2, counts["invoices"])
	assert.Equal(t, 2, counts["invoice_items"], "quedan la línea de Y en shared y en other")

	for _, id := range []int64{shared.ID, other.ID} {
		got, _ := f.store.Invoices().GetByID(ctx, id)
		assert.NotNil(t, got)
	}
}

func TestDeleteItem_InexistenteNoModificaNada(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.invoiceWith(t, f.x)
	before := f.store.Counts()

	_, err := newUseCase(f).Execute(ctx, 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.EqualError(t, err, "Couldn't find Item with 'id'=999")
	assert.Equal(t, before, f.store.Counts())
}

// failingInvoices falla al borrar para comprobar el rollback.
type failingInvoices struct {
	repository.InvoiceRepository
}

func (failingInvoices) Delete(context.Context, int64) error { return errors.New("boom") }

type failingRunner struct{ store *memory.Store }

func (r failingRunner) Run(ctx context.Context, fn func(repository.ItemRepository, repository.InvoiceRepository) error) error {
	return r.store.Run(ctx, func(items repository.ItemRepository, invoices repository.InvoiceRepository) error {
		return fn(items, failingInvoices{invoices})
	})
}

func TestDeleteItem_ErrorRevierteTodo(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.invoiceWith(t, f.x)
	before := f.store.Counts()

	uc := catalog.NewDeleteItemUseCase(failingRunner{store: f.store}, logger.Nop())
	_, err := uc.Execute(ctx, f.x.ID)
	require.Error(t, err)
	assert.Equal(t, before, f.store.Counts(), "sin cambios persistidos")
}
