package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo del catálogo. Pertenece a exactamente un Merchant.
type Item struct {
	ID          int64
	Name        string
	Description string
	UnitPrice   decimal.Decimal // no negativo
	MerchantID  int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
