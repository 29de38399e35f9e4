package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem es la línea que une una factura con un ítem.
// UnitPrice es el precio al momento de la venta, no el precio actual del ítem.
type InvoiceItem struct {
	ID        int64
	InvoiceID int64
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InvoiceLineSummary resume las líneas de una factura respecto de un ítem concreto.
type InvoiceLineSummary struct {
	InvoiceID  int64
	TotalLines int // líneas totales de la factura
	ItemLines  int // líneas de la factura que referencian el ítem
}
