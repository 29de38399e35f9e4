package catalog_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/domain"
	"github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

func str(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de decisión: combinaciones de parámetros
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveItemFilter_Combinaciones(t *testing.T) {
	cases := []struct {
		name    string
		params  catalog.FilterParams
		mode    catalog.FilterMode
		wantErr error
	}{
		{"sin parámetros", catalog.FilterParams{}, "", catalog.ErrFilterMissing},
		{"name vacío", catalog.FilterParams{Name: str("")}, "", catalog.ErrFilterMissing},
		{"name solo espacios", catalog.FilterParams{Name: str("   ")}, "", catalog.ErrFilterMissing},
		{"name + min + max", catalog.FilterParams{Name: str("ring"), MinPrice: str("1"), MaxPrice: str("5")}, "", catalog.ErrFilterNameAndBothPrices},
		{"name + min", catalog.FilterParams{Name: str("ring"), MinPrice: str("1")}, "", catalog.ErrFilterNameAndPrice},
		{"name + max", catalog.FilterParams{Name: str("ring"), MaxPrice: str("5")}, "", catalog.ErrFilterNameAndPrice},
		{"name + min negativo prioriza combinación", catalog.FilterParams{Name: str("ring"), MinPrice: str("-1")}, "", catalog.ErrFilterNameAndPrice},
		{"solo name", catalog.FilterParams{Name: str("ring")}, catalog.FilterByName, nil},
		{"solo min", catalog.FilterParams{MinPrice: str("10")}, catalog.FilterByMinPrice, nil},
		{"solo max", catalog.FilterParams{MaxPrice: str("10")}, catalog.FilterByMaxPrice, nil},
		{"min + max", catalog.FilterParams{MinPrice: str("1"), MaxPrice: str("10")}, catalog.FilterByPriceRange, nil},
		{"name blanco + min usa min", catalog.FilterParams{Name: str(" "), MinPrice: str("3")}, catalog.FilterByMinPrice, nil},
		{"min vacío cuenta como ausente", catalog.FilterParams{MinPrice: str("")}, "", catalog.ErrFilterMissing},
		{"min cero", catalog.FilterParams{MinPrice: str("0")}, "", catalog.ErrNegativePrice},
		{"min negativo", catalog.FilterParams{MinPrice: str("-4")}, "", catalog.ErrNegativePrice},
		{"max no numérico", catalog.FilterParams{MaxPrice: str("abc")}, "", catalog.ErrNegativePrice},
		{"rango con min negativo", catalog.FilterParams{MinPrice: str("-1"), MaxPrice: str("10")}, "", catalog.ErrNegativePrice},
		{"rango con max negativo", catalog.FilterParams{MinPrice: str("1"), MaxPrice: str("-10")}, "", catalog.ErrNegativePrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := catalog.ResolveItemFilter(tc.params)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tc.wantErr), "error inesperado: %v", err)
				assert.True(t, errors.Is(err, domain.ErrInvalidInput), "debe clasificarse como entrada inválida")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.mode, f.Mode)
		})
	}
}

func TestResolveItemFilter_Mensajes(t *testing.T) {
	_, err := catalog.ResolveItemFilter(catalog.FilterParams{})
	assert.EqualError(t, err, "parameter cannot be empty or missing")

	_, err = catalog.ResolveItemFilter(catalog.FilterParams{Name: str("a"), MinPrice: str("1"), MaxPrice: str("2")})
	assert.EqualError(t, err, "cannot send name, minimum price and maximum price")

	_, err = catalog.ResolveItemFilter(catalog.FilterParams{Name: str("a"), MaxPrice: str("2")})
	assert.EqualError(t, err, "cannot send both name and minimum price or maximum price")

	_, err = catalog.ResolveItemFilter(catalog.FilterParams{MaxPrice: str("-2")})
	assert.EqualError(t, err, "price cannot be negative")
}

func TestResolveItemFilter_RecortaNombreYParseaPrecios(t *testing.T) {
	f, err := catalog.ResolveItemFilter(catalog.FilterParams{Name: str("  Ring ")})
	require.NoError(t, err)
	assert.Equal(t, "Ring", f.Name)

	f, err = catalog.ResolveItemFilter(catalog.FilterParams{MinPrice: str("4.5"), MaxPrice: str(" 99.99 ")})
	require.NoError(t, err)
	assert.True(t, f.MinPrice.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, f.MaxPrice.Equal(decimal.RequireFromString("99.99")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Matches: semántica del predicado
// ──────────────────────────────────────────────────────────────────────────────

func resolve(t *testing.T, params catalog.FilterParams) catalog.ItemFilter {
	t.Helper()
	f, err := catalog.ResolveItemFilter(params)
	require.NoError(t, err)
	return f
}

func TestItemFilter_NombreSinDistinguirMayusculas(t *testing.T) {
	ring := &entity.Item{Name: "Ring"}
	for _, q := range []string{"ring", "RING", "Ri", "iN"} {
		assert.True(t, resolve(t, catalog.FilterParams{Name: str(q)}).Matches(ring), "query %q", q)
	}
	assert.False(t, resolve(t, catalog.FilterParams{Name: str("necklace")}).Matches(ring))
}

func TestItemFilter_LimitesDePrecioInclusivos(t *testing.T) {
	item := &entity.Item{Name: "Ring", UnitPrice: decimal.RequireFromString("10.50")}

	assert.True(t, resolve(t, catalog.FilterParams{MinPrice: str("10.50")}).Matches(item), "min=p incluye")
	assert.False(t, resolve(t, catalog.FilterParams{MinPrice: str("11.50")}).Matches(item), "min=p+1 excluye")

	assert.True(t, resolve(t, catalog.FilterParams{MaxPrice: str("10.50")}).Matches(item), "max=p incluye")
	assert.False(t, resolve(t, catalog.FilterParams{MaxPrice: str("9.50")}).Matches(item), "max=p-1 excluye")

	assert.True(t, resolve(t, catalog.FilterParams{MinPrice: str("10.50"), MaxPrice: str("10.50")}).Matches(item))
	assert.False(t, resolve(t, catalog.FilterParams{MinPrice: str("20"), MaxPrice: str("30")}).Matches(item))
}

func TestItemFilter_RangoInvertidoNoCoincide(t *testing.T) {
	item := &entity.Item{UnitPrice: decimal.NewFromInt(5)}
	f := resolve(t, catalog.FilterParams{MinPrice: str("10"), MaxPrice: str("1")})
	assert.False(t, f.Matches(item))
	assert.False(t, f.Matches(nil))
}
