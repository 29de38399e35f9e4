package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC     *usecase.ItemUseCase
	MerchantUC *usecase.MerchantUseCase
	DeleteItem *catalog.DeleteItemUseCase
}

// Router registra las rutas de la API bajo /api/v1.
// Las rutas fijas (find_all, find) van antes que /:id.
func Router(app *fiber.App, deps RouterDeps) {
	v1 := app.Group("/api/v1")

	items := v1.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.DeleteItem)
	items.Get("/find_all", itemHandler.FindAll)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Patch("/:id", itemHandler.Update)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)
	items.Get("/:id/merchant", itemHandler.Merchant)

	merchants := v1.Group("/merchants")
	merchantHandler := NewMerchantHandler(deps.MerchantUC, deps.ItemUC)
	merchants.Get("/find", merchantHandler.Find)
	merchants.Get("/", merchantHandler.List)
	merchants.Get("/:id", merchantHandler.GetByID)
	merchants.Get("/:id/items", merchantHandler.Items)
}
