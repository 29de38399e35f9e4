// Package seed lee exportaciones CSV del catálogo (merchants.csv, customers.csv,
// items.csv, invoices.csv, invoice_items.csv). Las filas pueden escribirse como
// script SQL o cargarse en cualquier almacén a través de los puertos de repositorio.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Options controla cómo se interpretan los CSV.
type Options struct {
	Latin1 bool // los archivos están en ISO-8859-1
	Cents  bool // unit_price viene en centavos
}

// Table describe un CSV y las columnas que se copian a la tabla homónima.
type Table struct {
	Name    string
	Columns []string
	money   map[string]bool
}

// Row valores de una fila por columna; solo contiene las columnas presentes en el CSV.
// Las columnas monetarias ya vienen normalizadas con dos decimales.
type Row map[string]string

// Tables en orden de carga según las claves foráneas.
var Tables = []Table{
	{Name: "merchants", Columns: []string{"id", "name", "created_at", "updated_at"}},
	{Name: "customers", Columns: []string{"id", "first_name", "last_name", "created_at", "updated_at"}},
	{Name: "items", Columns: []string{"id", "name", "description", "unit_price", "merchant_id", "created_at", "updated_at"},
		money: map[string]bool{"unit_price": true}},
	{Name: "invoices", Columns: []string{"id", "customer_id", "merchant_id", "status", "created_at", "updated_at"}},
	{Name: "invoice_items", Columns: []string{"id", "item_id", "invoice_id", "quantity", "unit_price", "created_at", "updated_at"},
		money: map[string]bool{"unit_price": true}},
}

// ReadTable lee un CSV con cabecera y devuelve las columnas conocidas de cada fila.
// Devuelve también las columnas encontradas, en el orden de Table.Columns.
func ReadTable(r io.Reader, t Table, opts Options) ([]string, []Row, error) {
	if opts.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("leer cabecera: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	var cols []string
	for _, c := range t.Columns {
		if _, ok := index[c]; ok {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("sin columnas reconocidas")
	}

	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("fila %d: %w", line, err)
		}
		row := make(Row, len(cols))
		for _, c := range cols {
			v := strings.TrimSpace(rec[index[c]])
			if t.money[c] && v != "" {
				if v, err = normalizeMoney(v, opts.Cents); err != nil {
					return nil, nil, fmt.Errorf("fila %d, columna %s: %w", line, c, err)
				}
			}
			row[c] = v
		}
		rows = append(rows, row)
	}
	return cols, rows, nil
}

// ReadDir recorre Tables en orden y llama fn por cada CSV existente en dir.
// Los archivos que falten se omiten.
func ReadDir(dir string, opts Options, fn func(t Table, cols []string, rows []Row) error) error {
	for _, t := range Tables {
		path := filepath.Join(dir, t.Name+".csv")
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("abrir CSV: %w", err)
		}
		cols, rows, err := ReadTable(f, t, opts)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := fn(t, cols, rows); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func normalizeMoney(raw string, cents bool) (string, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", err
	}
	if cents {
		d = d.Shift(-2)
	}
	return d.StringFixed(2), nil
}
