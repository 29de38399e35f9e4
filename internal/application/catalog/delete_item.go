package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-api/internal/domain"
	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
	"github.com/jhoicas/catalogo-api/internal/domain/repository"
	"github.com/jhoicas/catalogo-api/pkg/logger"
	"github.com/jhoicas/catalogo-api/pkg/metrics"
)

// DeleteItemUseCase elimina un ítem manteniendo la regla "ninguna factura sin líneas":
// las facturas cuya única línea es el ítem se eliminan antes que el ítem.
type DeleteItemUseCase struct {
	txRunner TxRunner
	log      *logger.Logger
}

// NewDeleteItemUseCase construye el caso de uso.
func NewDeleteItemUseCase(txRunner TxRunner, log *logger.Logger) *DeleteItemUseCase {
	return &DeleteItemUseCase{txRunner: txRunner, log: log}
}

// Execute corre en una sola transacción:
//  1. bloquea el ítem (NotFound si no existe, sin cambios),
//  2. lee el resumen de líneas por factura y planifica (sin efectos),
//  3. elimina las facturas que quedarían vacías,
//  4. elimina el ítem (sus líneas restantes caen en cascada).
func (uc *DeleteItemUseCase) Execute(ctx context.Context, itemID int64) (domaincatalog.DeletionPlan, error) {
	var plan domaincatalog.DeletionPlan
	err := uc.txRunner.Run(ctx, func(
		items repository.ItemRepository,
		invoices repository.InvoiceRepository,
	) error {
		item, err := items.GetForUpdate(ctx, itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NewNotFound("Item", itemID)
		}

		summaries, err := invoices.FindInvoicesByItem(ctx, itemID)
		if err != nil {
			return err
		}
		plan = domaincatalog.PlanItemDeletion(itemID, summaries)

		for _, invoiceID := range plan.InvoiceIDs {
			if err := invoices.Delete(ctx, invoiceID); err != nil {
				return fmt.Errorf("delete invoice %d: %w", invoiceID, err)
			}
		}
		return items.Delete(ctx, itemID)
	})
	if err != nil {
		return domaincatalog.DeletionPlan{}, err
	}

	metrics.ItemsDeletedTotal.Inc()
	metrics.InvoicesCascadedTotal.Add(float64(len(plan.InvoiceIDs)))
	uc.log.Info().
		Int64("item_id", itemID).
		Ints64("invoices_deleted", plan.InvoiceIDs).
		Msg("ítem eliminado")
	return plan, nil
}
