package memory

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
type CustomerRepo struct {
	s *Store
}

// Create asigna id y timestamps.
func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	return r.s.with(false, func(t *tables) error {
		now := r.s.now()
		customer.ID = t.next("customers")
		customer.CreatedAt, customer.UpdatedAt = now, now
		cp := *customer
		t.customers[cp.ID] = &cp
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.s.with(false, func(t *tables) error {
		if c, ok := t.customers[id]; ok {
			cp := *c
			out = &cp
		}
		return nil
	})
	return out, err
}
