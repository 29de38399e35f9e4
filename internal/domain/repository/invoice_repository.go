package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice y sus líneas.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	CreateItem(ctx context.Context, line *entity.InvoiceItem) error
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	GetItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]*entity.InvoiceItem, error)
	// FindInvoicesByItem devuelve, por cada factura que referencia el ítem, el conteo
	// de líneas totales y de líneas del ítem. Bloquea las facturas dentro de la transacción.
	FindInvoicesByItem(ctx context.Context, itemID int64) ([]entity.InvoiceLineSummary, error)
	// Delete elimina la factura; sus líneas se eliminan en cascada.
	Delete(ctx context.Context, id int64) error
}
