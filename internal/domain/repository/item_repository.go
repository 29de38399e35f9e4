package repository

import (
	"context"

	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	// GetByID devuelve (nil, nil) si el id no existe.
	GetByID(ctx context.Context, id int64) (*entity.Item, error)
	// GetForUpdate igual que GetByID pero bloquea la fila dentro de la transacción.
	GetForUpdate(ctx context.Context, id int64) (*entity.Item, error)
	// Update devuelve NotFound si la fila ya no existe.
	Update(ctx context.Context, item *entity.Item) error
	List(ctx context.Context) ([]*entity.Item, error)
	FindItemsByMerchant(ctx context.Context, merchantID int64) ([]*entity.Item, error)
	// Search aplica un único filtro ya resuelto (nombre o rango de precios).
	Search(ctx context.Context, filter catalog.ItemFilter) ([]*entity.Item, error)
	// Delete elimina el ítem; sus líneas de factura se eliminan en cascada.
	Delete(ctx context.Context, id int64) error
}
