package seed

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

// Repos puertos sobre los que Load crea los registros.
type Repos struct {
	Merchants repository.MerchantRepository
	Customers repository.CustomerRepository
	Items     repository.ItemRepository
	Invoices  repository.InvoiceRepository
}

// Result resume una carga.
type Result struct {
	Rows          map[string]int // filas creadas por tabla
	EmptyInvoices []int64        // facturas creadas que quedaron sin líneas
}

// Load crea los registros de los CSV de dir a través de los repositorios.
// Los ids los asigna el almacén: las referencias entre CSV se traducen con los ids
// nuevos y, si el id no se cargó en esta pasada, se busca tal cual en el almacén.
// Los timestamps del CSV se ignoran.
func Load(ctx context.Context, dir string, repos Repos, opts Options) (Result, error) {
	l := &loader{repos: repos, ids: map[string]map[string]int64{}}
	res := Result{Rows: map[string]int{}}
	err := ReadDir(dir, opts, func(t Table, _ []string, rows []Row) error {
		ids := map[string]int64{}
		l.ids[t.Name] = ids
		for i, row := range rows {
			id, err := l.create(ctx, t.Name, row)
			if err != nil {
				return fmt.Errorf("fila %d: %w", i+2, err)
			}
			if raw := row["id"]; raw != "" {
				ids[raw] = id
			}
			if t.Name == "invoices" {
				l.invoices = append(l.invoices, id)
			}
		}
		res.Rows[t.Name] = len(rows)
		return nil
	})
	if err != nil {
		return res, err
	}

	for _, id := range l.invoices {
		lines, err := repos.Invoices.GetItemsByInvoiceID(ctx, id)
		if err != nil {
			return res, fmt.Errorf("líneas de la factura %d: %w", id, err)
		}
		if len(lines) == 0 {
			res.EmptyInvoices = append(res.EmptyInvoices, id)
		}
	}
	return res, nil
}

type loader struct {
	repos    Repos
	ids      map[string]map[string]int64 // tabla -> id del CSV -> id asignado
	invoices []int64
}

func (l *loader) create(ctx context.Context, table string, row Row) (int64, error) {
	switch table {
	case "merchants":
		m := &entity.Merchant{Name: row["name"]}
		err := l.repos.Merchants.Create(ctx, m)
		return m.ID, err

	case "customers":
		c := &entity.Customer{FirstName: row["first_name"], LastName: row["last_name"]}
		err := l.repos.Customers.Create(ctx, c)
		return c.ID, err

	case "items":
		price, err := money(row["unit_price"])
		if err != nil {
			return 0, err
		}
		merchantID, err := l.ref(ctx, "merchants", row["merchant_id"])
		if err != nil {
			return 0, err
		}
		it := &entity.Item{
			Name:        row["name"],
			Description: row["description"],
			UnitPrice:   price,
			MerchantID:  merchantID,
		}
		err = l.repos.Items.Create(ctx, it)
		return it.ID, err

	case "invoices":
		merchantID, err := l.ref(ctx, "merchants", row["merchant_id"])
		if err != nil {
			return 0, err
		}
		customerID, err := l.ref(ctx, "customers", row["customer_id"])
		if err != nil {
			return 0, err
		}
		status := row["status"]
		if status == "" {
			status = entity.InvoiceStatusPending
		}
		inv := &entity.Invoice{CustomerID: customerID, MerchantID: merchantID, Status: status}
		err = l.repos.Invoices.Create(ctx, inv)
		return inv.ID, err

	case "invoice_items":
		price, err := money(row["unit_price"])
		if err != nil {
			return 0, err
		}
		qty, err := strconv.Atoi(row["quantity"])
		if err != nil {
			return 0, fmt.Errorf("quantity: %w", err)
		}
		invoiceID, err := l.ref(ctx, "invoices", row["invoice_id"])
		if err != nil {
			return 0, err
		}
		itemID, err := l.ref(ctx, "items", row["item_id"])
		if err != nil {
			return 0, err
		}
		line := &entity.InvoiceItem{InvoiceID: invoiceID, ItemID: itemID, Quantity: qty, UnitPrice: price}
		err = l.repos.Invoices.CreateItem(ctx, line)
		return line.ID, err
	}
	return 0, fmt.Errorf("tabla desconocida %q", table)
}

// ref traduce un id del CSV al id del almacén.
func (l *loader) ref(ctx context.Context, table, raw string) (int64, error) {
	if id, ok := l.ids[table][raw]; ok {
		return id, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: id inválido %q", table, raw)
	}
	found, err := l.exists(ctx, table, id)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%s: no existe el id %d", table, id)
	}
	return id, nil
}

func (l *loader) exists(ctx context.Context, table string, id int64) (bool, error) {
	switch table {
	case "merchants":
		m, err := l.repos.Merchants.GetByID(ctx, id)
		return m != nil, err
	case "customers":
		c, err := l.repos.Customers.GetByID(ctx, id)
		return c != nil, err
	case "items":
		it, err := l.repos.Items.GetByID(ctx, id)
		return it != nil, err
	case "invoices":
		inv, err := l.repos.Invoices.GetByID(ctx, id)
		return inv != nil, err
	}
	return false, nil
}

func money(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("unit_price: %w", err)
	}
	return d, nil
}
