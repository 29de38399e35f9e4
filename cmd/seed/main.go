// seed genera un script SQL a partir de exportaciones CSV del catálogo
// (merchants.csv, customers.csv, items.csv, invoices.csv, invoice_items.csv).
// Los archivos que falten se omiten. Cada CSV lleva cabecera con los nombres de columna.
//
// Uso: go run ./cmd/seed -dir db/data -out seed.sql [-latin1] [-cents]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/seed"
)

func main() {
	dir := flag.String("dir", "db/data", "directorio con los CSV")
	outPath := flag.String("out", "seed.sql", "archivo SQL de salida")
	latin1 := flag.Bool("latin1", false, "los CSV están en ISO-8859-1")
	cents := flag.Bool("cents", false, "unit_price viene en centavos")
	flag.Parse()

	if err := run(*dir, *outPath, seed.Options{Latin1: *latin1, Cents: *cents}); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generado %s\n", *outPath)
}

func run(dir, outPath string, opts seed.Options) (err error) {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("crear archivo: %w", err)
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return writeScript(out, dir, opts)
}

func writeScript(w io.Writer, dir string, opts seed.Options) error {
	fmt.Fprintln(w, "-- Generado por cmd/seed")
	fmt.Fprintln(w, "BEGIN;")
	err := seed.ReadDir(dir, opts, func(t seed.Table, cols []string, rows []seed.Row) error {
		fmt.Printf("%s: %d filas\n", t.Name, len(rows))
		return seed.WriteSQL(w, t, cols, rows)
	})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, "COMMIT;")
	return err
}
