package entity

import "time"

// Customer representa un cliente que recibe facturas.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
