package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (customer_id, merchant_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, invoice.CustomerID, invoice.MerchantID, invoice.Status).
		Scan(&invoice.ID, &invoice.CreatedAt, &invoice.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de factura.
func (r *InvoiceRepo) CreateItem(ctx context.Context, line *entity.InvoiceItem) error {
	query := `
		INSERT INTO invoice_items (invoice_id, item_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, line.InvoiceID, line.ItemID, line.Quantity, line.UnitPrice).
		Scan(&line.ID, &line.CreatedAt, &line.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert invoice_item: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `
		SELECT id, customer_id, merchant_id, status, created_at, updated_at
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.CustomerID, &inv.MerchantID, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// GetItemsByInvoiceID devuelve las líneas de una factura.
func (r *InvoiceRepo) GetItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]*entity.InvoiceItem, error) {
	query := `
		SELECT id, invoice_id, item_id, quantity, unit_price, created_at, updated_at
		FROM invoice_items WHERE invoice_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice_items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var l entity.InvoiceItem
		if err := rows.Scan(&l.ID, &l.InvoiceID, &l.ItemID, &l.Quantity, &l.UnitPrice, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// FindInvoicesByItem bloquea las facturas que referencian el ítem y devuelve sus conteos de líneas.
// El bloqueo evita que otra eliminación concurrente deje una factura vacía.
func (r *InvoiceRepo) FindInvoicesByItem(ctx context.Context, itemID int64) ([]entity.InvoiceLineSummary, error) {
	lock := `
		SELECT id FROM invoices
		WHERE id IN (SELECT invoice_id FROM invoice_items WHERE item_id = $1)
		ORDER BY id
		FOR UPDATE`
	if _, err := r.q.Exec(ctx, lock, itemID); err != nil {
		return nil, fmt.Errorf("lock invoices: %w", err)
	}

	query := `
		SELECT invoice_id,
		       COUNT(*) AS total_lines,
		       COUNT(*) FILTER (WHERE item_id = $1) AS item_lines
		FROM invoice_items
		WHERE invoice_id IN (SELECT invoice_id FROM invoice_items WHERE item_id = $1)
		GROUP BY invoice_id
		ORDER BY invoice_id`
	rows, err := r.q.Query(ctx, query, itemID)
	if err != nil {
		return nil, fmt.Errorf("count invoice lines: %w", err)
	}
	defer rows.Close()
	var out []entity.InvoiceLineSummary
	for rows.Next() {
		var s entity.InvoiceLineSummary
		if err := rows.Scan(&s.InvoiceID, &s.TotalLines, &s.ItemLines); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete elimina la factura; invoice_items cae por ON DELETE CASCADE.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
