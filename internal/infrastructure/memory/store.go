// Package memory implementa los puertos de persistencia del catálogo en memoria,
// con las mismas reglas referenciales que el esquema PostgreSQL (cascada de líneas
// de factura al borrar ítems o facturas). Sirve para ejecutar la API sin base de datos
// y como almacén de los tests de casos de uso y handlers.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/entity"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
)

var _ catalog.TxRunner = (*Store)(nil)

// Store guarda todas las tablas detrás de un único mutex.
type Store struct {
	mu   sync.Mutex
	data *tables
	now  func() time.Time
}

type tables struct {
	merchants    map[int64]*entity.Merchant
	items        map[int64]*entity.Item
	customers    map[int64]*entity.Customer
	invoices     map[int64]*entity.Invoice
	invoiceItems map[int64]*entity.InvoiceItem
	seq          map[string]int64
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		data: &tables{
			merchants:    map[int64]*entity.Merchant{},
			items:        map[int64]*entity.Item{},
			customers:    map[int64]*entity.Customer{},
			invoices:     map[int64]*entity.Invoice{},
			invoiceItems: map[int64]*entity.InvoiceItem{},
			seq:          map[string]int64{},
		},
		now: time.Now,
	}
}

// Merchants devuelve el repositorio de comercios sobre el almacén.
func (s *Store) Merchants() *MerchantRepo { return &MerchantRepo{s: s} }

// Items devuelve el repositorio de ítems sobre el almacén.
func (s *Store) Items() *ItemRepo { return &ItemRepo{s: s} }

// Invoices devuelve el repositorio de facturas sobre el almacén.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{s: s} }

// Customers devuelve el repositorio de clientes sobre el almacén.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Run ejecuta fn con repos atados a una "transacción": el mutex se mantiene durante
// todo el callback y, si fn falla, se restaura la copia previa de las tablas.
func (s *Store) Run(ctx context.Context, fn func(
	items repository.ItemRepository,
	invoices repository.InvoiceRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(&ItemRepo{s: s, inTx: true}, &InvoiceRepo{s: s, inTx: true}); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// Counts devuelve el número de filas por tabla (útil para verificar que nada cambió).
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		"merchants":     len(s.data.merchants),
		"items":         len(s.data.items),
		"customers":     len(s.data.customers),
		"invoices":      len(s.data.invoices),
		"invoice_items": len(s.data.invoiceItems),
	}
}

// with toma el mutex salvo que el repo ya esté dentro de Run.
func (s *Store) with(inTx bool, fn func(t *tables) error) error {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	return fn(s.data)
}

func (t *tables) next(table string) int64 {
	t.seq[table]++
	return t.seq[table]
}

func (t *tables) clone() *tables {
	c := &tables{
		merchants:    make(map[int64]*entity.Merchant, len(t.merchants)),
		items:        make(map[int64]*entity.Item, len(t.items)),
		customers:    make(map[int64]*entity.Customer, len(t.customers)),
		invoices:     make(map[int64]*entity.Invoice, len(t.invoices)),
		invoiceItems: make(map[int64]*entity.InvoiceItem, len(t.invoiceItems)),
		seq:          make(map[string]int64, len(t.seq)),
	}
	for k, v := range t.merchants {
		m := *v
		c.merchants[k] = &m
	}
	for k, v := range t.items {
		it := *v
		c.items[k] = &it
	}
	for k, v := range t.customers {
		cu := *v
		c.customers[k] = &cu
	}
	for k, v := range t.invoices {
		inv := *v
		c.invoices[k] = &inv
	}
	for k, v := range t.invoiceItems {
		line := *v
		c.invoiceItems[k] = &line
	}
	for k, v := range t.seq {
		c.seq[k] = v
	}
	return c
}

// deleteInvoiceItemsWhere elimina las líneas que cumplan pred (cascada).
func (t *tables) deleteInvoiceItemsWhere(pred func(*entity.InvoiceItem) bool) {
	for id, line := range t.invoiceItems {
		if pred(line) {
			delete(t.invoiceItems, id)
		}
	}
}

func sortedIDs[T any](m map[int64]T) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
