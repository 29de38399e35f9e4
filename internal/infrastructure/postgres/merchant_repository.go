package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.MerchantRepository = (*MerchantRepo)(nil)

const merchantColumns = "id, name, created_at, updated_at"

// MerchantRepo implementación de MerchantRepository (usable con pool o tx).
type MerchantRepo struct {
	q Querier
}

// NewMerchantRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMerchantRepository(q Querier) *MerchantRepo {
	return &MerchantRepo{q: q}
}

// Create persiste un comercio y completa id y timestamps.
func (r *MerchantRepo) Create(ctx context.Context, merchant *entity.Merchant) error {
	query := `
		INSERT INTO merchants (name) VALUES ($1)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, merchant.Name).Scan(&merchant.ID, &merchant.CreatedAt, &merchant.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert merchant: %w", err)
	}
	return nil
}

// GetByID obtiene un comercio por ID.
func (r *MerchantRepo) GetByID(ctx context.Context, id int64) (*entity.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id = $1`
	m, err := scanMerchant(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant: %w", err)
	}
	return m, nil
}

// List lista los comercios por id.
func (r *MerchantRepo) List(ctx context.Context) ([]*entity.Merchant, error) {
	rows, err := r.q.Query(ctx, `SELECT `+merchantColumns+` FROM merchants ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Merchant
	for rows.Next() {
		m, err := scanMerchant(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// FindFirstByName primera coincidencia por subcadena (ILIKE) en orden alfabético; nil si no hay.
func (r *MerchantRepo) FindFirstByName(ctx context.Context, fragment string) (*entity.Merchant, error) {
	sb := sqlbuilder.PostgreSQL.NewSelectBuilder()
	sb.Select("id", "name", "created_at", "updated_at").From("merchants")
	sb.Where(fmt.Sprintf("name ILIKE %s", sb.Var(containsPattern(fragment))))
	sb.OrderBy(`name COLLATE "C"`, "id")
	sb.Limit(1)

	query, args := sb.Build()
	m, err := scanMerchant(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find merchant by name: %w", err)
	}
	return m, nil
}

func scanMerchant(row pgx.Row) (*entity.Merchant, error) {
	var m entity.Merchant
	if err := row.Scan(&m.ID, &m.Name, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
