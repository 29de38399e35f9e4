package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// MerchantRepository define el puerto de persistencia para Merchant.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entity.Merchant) error
	// GetByID devuelve (nil, nil) si el id no existe.
	GetByID(ctx context.Context, id int64) (*entity.Merchant, error)
	List(ctx context.Context) ([]*entity.Merchant, error)
	// FindFirstByName busca por subcadena sin distinguir mayúsculas y devuelve
	// la primera coincidencia en orden alfabético, o nil si no hay ninguna.
	FindFirstByName(ctx context.Context, fragment string) (*entity.Merchant, error)
}
