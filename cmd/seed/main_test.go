package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/seed"
)

func TestWriteScript_EnvuelveEnTransaccion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "merchants.csv"),
		[]byte("id,name\n1,Schroeder-Jerde\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, writeScript(&out, dir, seed.Options{}))

	sql := out.String()
	assert.True(t, strings.HasPrefix(sql, "-- Generado por cmd/seed\nBEGIN;\n"))
	assert.Contains(t, sql, "INSERT INTO merchants (id, name) OVERRIDING SYSTEM VALUE VALUES ('1', 'Schroeder-Jerde');")
	assert.True(t, strings.HasSuffix(sql, "COMMIT;\n"))
}

func TestRun_EscribeArchivo(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "merchants.csv"),
		[]byte("id,name\n1,Klein Rempel\n"), 0o644))
	outPath := filepath.Join(dir, "seed.sql")

	require.NoError(t, run(dir, outPath, seed.Options{}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "'Klein Rempel'")
	assert.Contains(t, string(data), "COMMIT;")
}

func TestRun_CSVInvalidoDevuelveError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "merchants.csv"),
		[]byte("foo,bar\n1,2\n"), 0o644))

	err := run(dir, filepath.Join(dir, "seed.sql"), seed.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sin columnas reconocidas")
}

func TestRun_SalidaNoCreable(t *testing.T) {
	err := run(t.TempDir(), filepath.Join(t.TempDir(), "no", "existe", "seed.sql"), seed.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crear archivo")
}
