package memory

import (
	"context"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ repository.MerchantRepository = (*MerchantRepo)(nil)

// MerchantRepo implementación en memoria de MerchantRepository.
type MerchantRepo struct {
	s *Store
}

// Create asigna id y timestamps y guarda una copia.
func (r *MerchantRepo) Create(_ context.Context, merchant *entity.Merchant) error {
	return r.s.with(false, func(t *tables) error {
		now := r.s.now()
		merchant.ID = t.next("merchants")
		merchant.CreatedAt, merchant.UpdatedAt = now, now
		m := *merchant
		t.merchants[m.ID] = &m
		return nil
	})
}

// GetByID devuelve (nil, nil) si no existe.
func (r *MerchantRepo) GetByID(_ context.Context, id int64) (*entity.Merchant, error) {
	var out *entity.Merchant
	err := r.s.with(false, func(t *tables) error {
		if m, ok := t.merchants[id]; ok {
			cp := *m
			out = &cp
		}
		return nil
	})
	return out, err
}

// List devuelve todos los comercios ordenados por id.
func (r *MerchantRepo) List(_ context.Context) ([]*entity.Merchant, error) {
	var out []*entity.Merchant
	err := r.s.with(false, func(t *tables) error {
		for _, id := range sortedIDs(t.merchants) {
			cp := *t.merchants[id]
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// FindFirstByName primera coincidencia por subcadena (sin mayúsculas) en orden alfabético.
func (r *MerchantRepo) FindFirstByName(_ context.Context, fragment string) (*entity.Merchant, error) {
	needle := cases.Fold().String(fragment)
	var matches []*entity.Merchant
	err := r.s.with(false, func(t *tables) error {
		for _, m := range t.merchants {
			if strings.Contains(cases.Fold().String(m.Name), needle) {
				cp := *m
				matches = append(matches, &cp)
			}
		}
		return nil
	})
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].ID < matches[j].ID
	})
	return matches[0], nil
}
