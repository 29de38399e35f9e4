package entity

import "time"

// Estados conocidos de una factura. El catálogo no gestiona transiciones.
const (
	InvoiceStatusPending  = "pending"
	InvoiceStatusPackaged = "packaged"
	InvoiceStatusShipped  = "shipped"
)

// Invoice representa la cabecera de una factura (comercio + cliente).
// Una factura sin líneas no debe sobrevivir a la eliminación de su último ítem.
type Invoice struct {
	ID         int64
	CustomerID int64
	MerchantID int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
