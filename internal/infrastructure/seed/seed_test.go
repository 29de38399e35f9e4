package seed

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/memory"
)

func memoryRepos(s *memory.Store) Repos {
	return Repos{Merchants: s.Merchants(), Customers: s.Customers(), Items: s.Items(), Invoices: s.Invoices()}
}

// ──────────────────────────── ReadTable / WriteSQL ────────────────────────────

func TestWriteSQL_ItemsEnCentavos(t *testing.T) {
	csvData := "id,name,description,unit_price,merchant_id,created_at,updated_at\n" +
		"4,Item Nemo Facere,Sunt eum id,75107,1,2012-03-27 14:53:59 UTC,2012-03-27 14:53:59 UTC\n" +
		"5,O'Brien,desc,4291,1,2012-03-27 14:53:59 UTC,2012-03-27 14:53:59 UTC\n"

	cols, rows, err := ReadTable(strings.NewReader(csvData), Tables[2], Options{Cents: true})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var out bytes.Buffer
	require.NoError(t, WriteSQL(&out, Tables[2], cols, rows))

	sql := out.String()
	assert.Contains(t, sql, "INSERT INTO items (id, name, description, unit_price, merchant_id, created_at, updated_at) OVERRIDING SYSTEM VALUE VALUES ('4', 'Item Nemo Facere', 'Sunt eum id', 751.07, '1',")
	assert.Contains(t, sql, "'O''Brien'")
	assert.Contains(t, sql, "42.91")
	assert.Contains(t, sql, "setval(pg_get_serial_sequence('items', 'id')")
}

func TestReadTable_Latin1(t *testing.T) {
	// "Peña" en ISO-8859-1: ñ = 0xF1
	csvData := []byte("id,name\n1,Pe\xf1a\n")

	_, rows, err := ReadTable(bytes.NewReader(csvData), Tables[0], Options{Latin1: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Peña", rows[0]["name"])
	assert.Equal(t, "1", rows[0]["id"])
}

func TestReadTable_SinColumnas(t *testing.T) {
	_, _, err := ReadTable(strings.NewReader("foo,bar\n1,2\n"), Tables[0], Options{})
	assert.Error(t, err)
}

func TestReadTable_PrecioInvalido(t *testing.T) {
	_, _, err := ReadTable(strings.NewReader("id,unit_price\n1,abc\n"), Tables[2], Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fila 2, columna unit_price")
}

func TestWriteSQL_SinFilasNoReajustaSecuencia(t *testing.T) {
	cols, rows, err := ReadTable(strings.NewReader("id,name\n"), Tables[0], Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, WriteSQL(&out, Tables[0], cols, rows))
	assert.NotContains(t, out.String(), "setval")
}

// ──────────────────────────── Load ────────────────────────────

func TestLoad_CargaEnMemoriaYTraduceIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	res, err := Load(ctx, "testdata", memoryRepos(store), Options{Cents: true})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"merchants": 2, "customers": 1, "items": 2, "invoices": 2, "invoice_items": 2,
	}, res.Rows)
	assert.Equal(t, store.Counts(), res.Rows)

	items, err := store.Items().List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Item Nemo Facere", items[0].Name)
	assert.True(t, decimal.RequireFromString("42.91").Equal(items[0].UnitPrice))
	assert.Equal(t, "Item Expedita Aliquam", items[1].Name)
	assert.True(t, decimal.RequireFromString("687.23").Equal(items[1].UnitPrice))

	// merchant_id 2 del CSV apunta al segundo comercio creado
	merchant, err := store.Merchants().GetByID(ctx, items[1].MerchantID)
	require.NoError(t, err)
	require.NotNil(t, merchant)
	assert.Equal(t, "Klein Rempel", merchant.Name)

	// la factura 10 del CSV quedó con sus dos líneas; la 11 sin ninguna
	require.Len(t, res.EmptyInvoices, 1)
	empty, err := store.Invoices().GetByID(ctx, res.EmptyInvoices[0])
	require.NoError(t, err)
	require.NotNil(t, empty)
	assert.Equal(t, "pending", empty.Status)
}

func TestLoad_ReferenciaAlmacenExistente(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	dir := t.TempDir()

	// el comercio ya existe en el almacén; solo se cargan ítems
	_, err := Load(ctx, "testdata", memoryRepos(store), Options{})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.csv"),
		[]byte("id,name,description,unit_price,merchant_id\n1,Extra,Otro,10.50,2\n"), 0o644))

	res, err := Load(ctx, dir, memoryRepos(store), Options{})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"items": 1}, res.Rows)
	assert.Equal(t, 3, store.Counts()["items"])
}

func TestLoad_ReferenciaInexistente(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.csv"),
		[]byte("id,name,description,unit_price,merchant_id\n1,Huérfano,Sin comercio,1.00,99\n"), 0o644))

	_, err := Load(context.Background(), dir, memoryRepos(memory.NewStore()), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merchants: no existe el id 99")
}

func TestLoad_DirectorioVacio(t *testing.T) {
	res, err := Load(context.Background(), t.TempDir(), memoryRepos(memory.NewStore()), Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Rows)
	assert.Empty(t, res.EmptyInvoices)
}
