package memory

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación en memoria de ItemRepository.
type ItemRepo struct {
	s    *Store
	inTx bool
}

// Create exige que el comercio exista (equivalente a la FK items.merchant_id).
func (r *ItemRepo) Create(_ context.Context, item *entity.Item) error {
	return r.s.with(r.inTx, func(t *tables) error {
		if _, ok := t.merchants[item.MerchantID]; !ok {
			return fmt.Errorf("insert item: merchant %d does not exist", item.MerchantID)
		}
		now := r.s.now()
		item.ID = t.next("items")
		item.CreatedAt, item.UpdatedAt = now, now
		cp := *item
		t.items[cp.ID] = &cp
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByID(_ context.Context, id int64) (*entity.Item, error) {
	var out *entity.Item
	err := r.s.with(r.inTx, func(t *tables) error {
		if it, ok := t.items[id]; ok {
			cp := *it
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetForUpdate igual que GetByID; el bloqueo lo da el mutex de Run.
func (r *ItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

// Update reemplaza los campos editables del ítem.
func (r *ItemRepo) Update(_ context.Context, item *entity.Item) error {
	return r.s.with(r.inTx, func(t *tables) error {
		cur, ok := t.items[item.ID]
		if !ok {
			return domain.NewNotFound("Item", item.ID)
		}
		if _, ok := t.merchants[item.MerchantID]; !ok {
			return fmt.Errorf("update item: merchant %d does not exist", item.MerchantID)
		}
		cur.Name = item.Name
		cur.Description = item.Description
		cur.UnitPrice = item.UnitPrice
		cur.MerchantID = item.MerchantID
		cur.UpdatedAt = r.s.now()
		item.UpdatedAt = cur.UpdatedAt
		return nil
	})
}

// List devuelve todos los ítems ordenados por id.
func (r *ItemRepo) List(_ context.Context) ([]*entity.Item, error) {
	return r.collect(func(*entity.Item) bool { return true })
}

// FindItemsByMerchant ítems del comercio ordenados por id.
func (r *ItemRepo) FindItemsByMerchant(_ context.Context, merchantID int64) ([]*entity.Item, error) {
	return r.collect(func(it *entity.Item) bool { return it.MerchantID == merchantID })
}

// Search aplica el filtro resuelto con la misma semántica que la consulta SQL.
func (r *ItemRepo) Search(_ context.Context, filter catalog.ItemFilter) ([]*entity.Item, error) {
	return r.collect(filter.Matches)
}

// Delete elimina el ítem y sus líneas de factura.
func (r *ItemRepo) Delete(_ context.Context, id int64) error {
	return r.s.with(r.inTx, func(t *tables) error {
		delete(t.items, id)
		t.deleteInvoiceItemsWhere(func(line *entity.InvoiceItem) bool { return line.ItemID == id })
		return nil
	})
}

func (r *ItemRepo) collect(pred func(*entity.Item) bool) ([]*entity.Item, error) {
	out := []*entity.Item{}
	err := r.s.with(r.inTx, func(t *tables) error {
		for _, id := range sortedIDs(t.items) {
			if it := t.items[id]; pred(it) {
				cp := *it
				out = append(out, &cp)
			}
		}
		return nil
	})
	return out, err
}
