package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

var itemColumns = []string{"id", "name", "description", "unit_price", "merchant_id", "created_at", "updated_at"}

// ItemRepo implementación de ItemRepository (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem. Un merchant_id inexistente se reporta como error de validación.
func (r *ItemRepo) Create(ctx context.Context, item *entity.Item) error {
	ib := sqlbuilder.PostgreSQL.NewInsertBuilder()
	ib.InsertInto("items").
		Cols("name", "description", "unit_price", "merchant_id").
		Values(item.Name, item.Description, item.UnitPrice, item.MerchantID).
		Returning("id", "created_at", "updated_at")

	query, args := ib.Build()
	err := r.q.QueryRow(ctx, query, args...).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NewValidation("Merchant must exist")
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un ítem por ID.
func (r *ItemRepo) GetByID(ctx context.Context, id int64) (*entity.Item, error) {
	return r.getOne(ctx, id, false)
}

// GetForUpdate obtiene el ítem con SELECT ... FOR UPDATE (solo tiene efecto dentro de una tx).
func (r *ItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Item, error) {
	return r.getOne(ctx, id, true)
}

func (r *ItemRepo) getOne(ctx context.Context, id int64, forUpdate bool) (*entity.Item, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(itemColumns...).From("items").Where(sb.Equal("id", id))
	if forUpdate {
		sb.ForUpdate()
	}
	query, args := sb.Build()
	it, err := scanItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// Update reemplaza los campos editables y refresca updated_at.
func (r *ItemRepo) Update(ctx context.Context, item *entity.Item) error {
	ub := sqlbuilder.PostgreSQL.NewUpdateBuilder()
	ub.Update("items").
		Set(
			ub.Assign("name", item.Name),
			ub.Assign("description", item.Description),
			ub.Assign("unit_price", item.UnitPrice),
			ub.Assign("merchant_id", item.MerchantID),
			ub.Assign("updated_at", sqlbuilder.Raw("NOW()")),
		).
		Where(ub.Equal("id", item.ID))

	query, args := ub.Build()
	err := r.q.QueryRow(ctx, query+" RETURNING updated_at", args...).Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewNotFound("Item", item.ID)
		}
		if isForeignKeyViolation(err) {
			return domain.NewValidation("Merchant must exist")
		}
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// List lista todos los ítems por id.
func (r *ItemRepo) List(ctx context.Context) ([]*entity.Item, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(itemColumns...).From("items").OrderBy("id")
	return r.query(ctx, sb, "list items")
}

// FindItemsByMerchant ítems del comercio por id.
func (r *ItemRepo) FindItemsByMerchant(ctx context.Context, merchantID int64) ([]*entity.Item, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(itemColumns...).From("items").Where(sb.Equal("merchant_id", merchantID)).OrderBy("id")
	return r.query(ctx, sb, "list items by merchant")
}

// Search traduce el filtro resuelto a un único predicado SQL.
func (r *ItemRepo) Search(ctx context.Context, filter catalog.ItemFilter) ([]*entity.Item, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select(itemColumns...).From("items")
	switch filter.Mode {
	case catalog.FilterByName:
		sb.Where(fmt.Sprintf("name ILIKE %s", sb.Var(containsPattern(filter.Name))))
	case catalog.FilterByMinPrice:
		sb.Where(sb.GreaterEqualThan("unit_price", filter.MinPrice))
	case catalog.FilterByMaxPrice:
		sb.Where(sb.LessEqualThan("unit_price", filter.MaxPrice))
	case catalog.FilterByPriceRange:
		sb.Where(sb.Between("unit_price", filter.MinPrice, filter.MaxPrice))
	default:
		return nil, fmt.Errorf("search items: unknown filter mode %q", filter.Mode)
	}
	sb.OrderBy("id")
	return r.query(ctx, sb, "search items")
}

// Delete elimina el ítem; invoice_items cae por ON DELETE CASCADE.
func (r *ItemRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (r *ItemRepo) query(ctx context.Context, sb *sqlbuilder.SelectBuilder, op string) ([]*entity.Item, error) {
	query, args := sb.Build()
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := []*entity.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func scanItem(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Name, &it.Description, &it.UnitPrice, &it.MerchantID, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
