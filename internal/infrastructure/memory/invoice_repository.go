package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación en memoria de InvoiceRepository.
type InvoiceRepo struct {
	s    *Store
	inTx bool
}

// Create persiste la cabecera; exige comercio y cliente existentes.
func (r *InvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	return r.s.with(r.inTx, func(t *tables) error {
		if _, ok := t.merchants[invoice.MerchantID]; !ok {
			return fmt.Errorf("insert invoice: merchant %d does not exist", invoice.MerchantID)
		}
		if _, ok := t.customers[invoice.CustomerID]; !ok {
			return fmt.Errorf("insert invoice: customer %d does not exist", invoice.CustomerID)
		}
		now := r.s.now()
		invoice.ID = t.next("invoices")
		invoice.CreatedAt, invoice.UpdatedAt = now, now
		cp := *invoice
		t.invoices[cp.ID] = &cp
		return nil
	})
}

// CreateItem persiste una línea; exige factura e ítem existentes.
func (r *InvoiceRepo) CreateItem(_ context.Context, line *entity.InvoiceItem) error {
	return r.s.with(r.inTx, func(t *tables) error {
		if _, ok := t.invoices[line.InvoiceID]; !ok {
			return fmt.Errorf("insert invoice item: invoice %d does not exist", line.InvoiceID)
		}
		if _, ok := t.items[line.ItemID]; !ok {
			return fmt.Errorf("insert invoice item: item %d does not exist", line.ItemID)
		}
		now := r.s.now()
		line.ID = t.next("invoice_items")
		line.CreatedAt, line.UpdatedAt = now, now
		cp := *line
		t.invoiceItems[cp.ID] = &cp
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	var out *entity.Invoice
	err := r.s.with(r.inTx, func(t *tables) error {
		if inv, ok := t.invoices[id]; ok {
			cp := *inv
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetItemsByInvoiceID líneas de la factura ordenadas por id.
func (r *InvoiceRepo) GetItemsByInvoiceID(_ context.Context, invoiceID int64) ([]*entity.InvoiceItem, error) {
	var out []*entity.InvoiceItem
	err := r.s.with(r.inTx, func(t *tables) error {
		for _, id := range sortedIDs(t.invoiceItems) {
			if line := t.invoiceItems[id]; line.InvoiceID == invoiceID {
				cp := *line
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}

// FindInvoicesByItem resume las líneas de cada factura que referencia el ítem.
func (r *InvoiceRepo) FindInvoicesByItem(_ context.Context, itemID int64) ([]entity.InvoiceLineSummary, error) {
	var out []entity.InvoiceLineSummary
	err := r.s.with(r.inTx, func(t *tables) error {
		byInvoice := map[int64]*entity.InvoiceLineSummary{}
		for _, line := range t.invoiceItems {
			s, ok := byInvoice[line.InvoiceID]
			if !ok {
				s = &entity.InvoiceLineSummary{InvoiceID: line.InvoiceID}
				byInvoice[line.InvoiceID] = s
			}
			s.TotalLines++
			if line.ItemID == itemID {
				s.ItemLines++
			}
		}
		for _, id := range sortedIDs(byInvoice) {
			if s := byInvoice[id]; s.ItemLines > 0 {
				out = append(out, *s)
			}
		}
		return nil
	})
	return out, err
}

// Delete elimina la factura y sus líneas.
func (r *InvoiceRepo) Delete(_ context.Context, id int64) error {
	return r.s.with(r.inTx, func(t *tables) error {
		delete(t.invoices, id)
		t.deleteInvoiceItemsWhere(func(line *entity.InvoiceItem) bool { return line.InvoiceID == id })
		return nil
	})
}
