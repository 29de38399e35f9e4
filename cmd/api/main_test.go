package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/pkg/config"
	"github.com/jhoicas/catalogo-api/pkg/logger"
)

func memoryConfig(seedDir string) *config.Config {
	return &config.Config{
		App:   config.AppConfig{Env: "test", Name: "catalogo-api"},
		Store: config.StoreConfig{Driver: config.StoreDriverMemory, SeedDir: seedDir, SeedCents: true},
	}
}

type listDoc struct {
	Data []struct {
		ID         string         `json:"id"`
		Attributes map[string]any `json:"attributes"`
	} `json:"data"`
}

func getList(t *testing.T, app *fiber.App, target string) listDoc {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var doc listDoc
	require.NoError(t, json.Unmarshal(raw, &doc))
	return doc
}

func TestOpenStores_MemoriaCargadaDesdeCSV(t *testing.T) {
	cfg := memoryConfig("testdata/catalog")
	st, err := openStores(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer st.close()

	app := newApp(cfg, st, logger.Nop())

	items := getList(t, app, "/api/v1/items")
	require.Len(t, items.Data, 3)
	assert.Equal(t, "Item Qui Esse", items.Data[0].Attributes["name"])
	assert.EqualValues(t, 751.07, items.Data[0].Attributes["unit_price"])

	merchants := getList(t, app, "/api/v1/merchants")
	assert.Len(t, merchants.Data, 2)

	byMerchant := getList(t, app, "/api/v1/merchants/2/items")
	require.Len(t, byMerchant.Data, 1)
	assert.Equal(t, "Item Ea Voluptatum", byMerchant.Data[0].Attributes["name"])
}

func TestOpenStores_MemoriaSinSeedArrancaVacia(t *testing.T) {
	cfg := memoryConfig("")
	st, err := openStores(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	items := getList(t, newApp(cfg, st, logger.Nop()), "/api/v1/items")
	assert.Empty(t, items.Data)
}

func TestOpenStores_SeedInvalido(t *testing.T) {
	dir := t.TempDir()
	cfg := memoryConfig(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "items.csv"),
		[]byte("id,name,description,unit_price,merchant_id\n1,X,Y,100,42\n"), 0o644))

	_, err := openStores(context.Background(), cfg, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "merchants: no existe el id 42")
}
