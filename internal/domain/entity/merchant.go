package entity

import "time"

// Merchant representa un comercio dueño de ítems.
type Merchant struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
