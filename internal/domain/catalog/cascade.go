package catalog

import (
	"sort"

	"github.com/jhoicas/catalogo-api/internal/domain/entity"
)

// DeletionPlan resultado de la fase de lectura de la eliminación de un ítem:
// las facturas que deben borrarse antes del ítem.
type DeletionPlan struct {
	ItemID     int64
	InvoiceIDs []int64
}

// PlanItemDeletion calcula qué facturas quedarían sin líneas al eliminar el ítem.
// Una factura se elimina cuando todas sus líneas referencian el ítem (con una sola
// línea del ítem, equivale a que la factura tenga exactamente una línea).
// No tiene efectos secundarios.
func PlanItemDeletion(itemID int64, summaries []entity.InvoiceLineSummary) DeletionPlan {
	plan := DeletionPlan{ItemID: itemID}
	for _, s := range summaries {
		if s.ItemLines > 0 && s.TotalLines-s.ItemLines == 0 {
			plan.InvoiceIDs = append(plan.InvoiceIDs, s.InvoiceID)
		}
	}
	sort.Slice(plan.InvoiceIDs, func(i, j int) bool { return plan.InvoiceIDs[i] < plan.InvoiceIDs[j] })
	return plan
}
