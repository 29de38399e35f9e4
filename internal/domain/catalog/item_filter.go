// Package catalog contiene las reglas de dominio del catálogo: la resolución del
// filtro de búsqueda de ítems y la planificación de la eliminación en cascada.
// No depende de la persistencia ni del transporte.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// Errores de entrada de find_all. El mensaje se devuelve al cliente sin cambios.
var (
	ErrFilterMissing           = domain.NewInputError("parameter cannot be empty or missing")
	ErrFilterNameAndBothPrices = domain.NewInputError("cannot send name, minimum price and maximum price")
	ErrFilterNameAndPrice      = domain.NewInputError("cannot send both name and minimum price or maximum price")
	ErrNegativePrice           = domain.NewInputError("price cannot be negative")
)

// FilterMode identifica el único predicado aplicado en una búsqueda.
type FilterMode string

const (
	FilterByName       FilterMode = "name"
	FilterByMinPrice   FilterMode = "min_price"
	FilterByMaxPrice   FilterMode = "max_price"
	FilterByPriceRange FilterMode = "price_range"
)

// FilterParams parámetros crudos de la consulta. nil significa que el parámetro no llegó.
type FilterParams struct {
	Name     *string
	MinPrice *string
	MaxPrice *string
}

// ItemFilter predicado resuelto. Solo los campos del Mode correspondiente tienen valor.
type ItemFilter struct {
	Mode     FilterMode
	Name     string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
}

// filterInput son los parámetros normalizados: recortados y con los vacíos como ausentes.
type filterInput struct {
	name, minPrice, maxPrice string
}

func (in filterInput) hasName() bool { return in.name != "" }
func (in filterInput) hasMin() bool  { return in.minPrice != "" }
func (in filterInput) hasMax() bool  { return in.maxPrice != "" }

// filterRule es una fila de la tabla de decisión.
type filterRule struct {
	when    func(in filterInput) bool
	resolve func(in filterInput) (ItemFilter, error)
}

// itemFilterRules se evalúan en orden; gana la primera cuyo when sea verdadero.
var itemFilterRules = []filterRule{
	{
		when:    func(in filterInput) bool { return !in.hasName() && !in.hasMin() && !in.hasMax() },
		resolve: reject(ErrFilterMissing),
	},
	{
		when:    func(in filterInput) bool { return in.hasName() && in.hasMin() && in.hasMax() },
		resolve: reject(ErrFilterNameAndBothPrices),
	},
	{
		when:    func(in filterInput) bool { return in.hasName() && (in.hasMin() || in.hasMax()) },
		resolve: reject(ErrFilterNameAndPrice),
	},
	{
		when: func(in filterInput) bool { return in.hasName() },
		resolve: func(in filterInput) (ItemFilter, error) {
			return ItemFilter{Mode: FilterByName, Name: in.name}, nil
		},
	},
	{
		when: func(in filterInput) bool { return in.hasMin() && !in.hasMax() },
		resolve: func(in filterInput) (ItemFilter, error) {
			minPrice, err := parsePositivePrice(in.minPrice)
			if err != nil {
				return ItemFilter{}, err
			}
			return ItemFilter{Mode: FilterByMinPrice, MinPrice: minPrice}, nil
		},
	},
	{
		when: func(in filterInput) bool { return in.hasMax() && !in.hasMin() },
		resolve: func(in filterInput) (ItemFilter, error) {
			maxPrice, err := parsePositivePrice(in.maxPrice)
			if err != nil {
				return ItemFilter{}, err
			}
			return ItemFilter{Mode: FilterByMaxPrice, MaxPrice: maxPrice}, nil
		},
	},
	{
		when: func(in filterInput) bool { return in.hasMin() && in.hasMax() },
		resolve: func(in filterInput) (ItemFilter, error) {
			minPrice, err := parsePositivePrice(in.minPrice)
			if err != nil {
				return ItemFilter{}, err
			}
			maxPrice, err := parsePositivePrice(in.maxPrice)
			if err != nil {
				return ItemFilter{}, err
			}
			return ItemFilter{Mode: FilterByPriceRange, MinPrice: minPrice, MaxPrice: maxPrice}, nil
		},
	},
}

// ResolveItemFilter aplica la tabla de decisión a los parámetros de find_all.
// Devuelve exactamente un filtro o un error de entrada (domain.ErrInvalidInput).
func ResolveItemFilter(params FilterParams) (ItemFilter, error) {
	in := filterInput{
		name:     normalize(params.Name),
		minPrice: normalize(params.MinPrice),
		maxPrice: normalize(params.MaxPrice),
	}
	for _, rule := range itemFilterRules {
		if rule.when(in) {
			return rule.resolve(in)
		}
	}
	return ItemFilter{}, ErrFilterMissing
}

// Matches evalúa el filtro contra un ítem en memoria, con la misma semántica que la consulta SQL.
func (f ItemFilter) Matches(item *entity.Item) bool {
	if item == nil {
		return false
	}
	switch f.Mode {
	case FilterByName:
		return strings.Contains(cases.Fold().String(item.Name), cases.Fold().String(f.Name))
	case FilterByMinPrice:
		return item.UnitPrice.GreaterThanOrEqual(f.MinPrice)
	case FilterByMaxPrice:
		return item.UnitPrice.LessThanOrEqual(f.MaxPrice)
	case FilterByPriceRange:
		return item.UnitPrice.GreaterThanOrEqual(f.MinPrice) && item.UnitPrice.LessThanOrEqual(f.MaxPrice)
	}
	return false
}

func reject(err error) func(filterInput) (ItemFilter, error) {
	return func(filterInput) (ItemFilter, error) { return ItemFilter{}, err }
}

func normalize(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// parsePositivePrice exige un número estrictamente positivo.
func parsePositivePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil || !price.IsPositive() {
		return decimal.Zero, ErrNegativePrice
	}
	return price, nil
}
