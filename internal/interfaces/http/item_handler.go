package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/catalog"
	"github.com/jhoicas/catalogo-api/internal/application/dto"
	"github.com/jhoicas/catalogo-api/internal/application/usecase"
	domaincatalog "github.com/jhoicas/catalogo-api/internal/domain/catalog"
)

var errInvalidBody = fiber.NewError(fiber.StatusBadRequest, "Invalid request body")

// ItemHandler maneja las peticiones HTTP para Item.
type ItemHandler struct {
	uc       *usecase.ItemUseCase
	deleteUC *catalog.DeleteItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, deleteUC *catalog.DeleteItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc, deleteUC: deleteUC}
}

// List godoc
// @Summary      Listar ítems
// @Tags         items
// @Produce      json
// @Param        merchant_id  query  int  false  "Filtrar por comercio"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	merchantID, err := optionalID(c, "merchant_id", "Merchant")
	if err != nil {
		return err
	}
	var out *dto.ItemListResponse
	if merchantID != nil {
		out, err = h.uc.ListByMerchant(c.UserContext(), *merchantID)
	} else {
		out, err = h.uc.List(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "Item")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem
// @Description  Acepta {"item": {...}} o el objeto sin envolver.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemEnvelope  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var env dto.CreateItemEnvelope
	if err := c.BodyParser(&env); err != nil {
		return errInvalidBody
	}
	in := env.Item
	if in == nil {
		in = &dto.CreateItemRequest{}
		if err := c.BodyParser(in); err != nil {
			return errInvalidBody
		}
	}
	out, err := h.uc.Create(c.UserContext(), *in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem (parcial)
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del ítem"
// @Param        body  body  dto.UpdateItemEnvelope  true  "Campos a modificar"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [patch]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c, "Item")
	if err != nil {
		return err
	}
	var env dto.UpdateItemEnvelope
	if err := c.BodyParser(&env); err != nil {
		return errInvalidBody
	}
	in := env.Item
	if in == nil {
		in = &dto.UpdateItemRequest{}
		if err := c.BodyParser(in); err != nil {
			return errInvalidBody
		}
	}
	out, err := h.uc.Update(c.UserContext(), id, *in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ítem
// @Description  Elimina también las facturas que quedarían sin líneas.
// @Tags         items
// @Param        id   path  int  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c, "Item")
	if err != nil {
		return err
	}
	if _, err := h.deleteUC.Execute(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Merchant godoc
// @Summary      Comercio del ítem
// @Tags         items
// @Produce      json
// @Param        id   path  int  true  "ID del ítem"
// @Success      200  {object}  dto.MerchantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/items/{id}/merchant [get]
func (h *ItemHandler) Merchant(c *fiber.Ctx) error {
	id, err := pathID(c, "Item")
	if err != nil {
		return err
	}
	out, err := h.uc.Merchant(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// FindAll godoc
// @Summary      Buscar ítems
// @Description  Exactamente uno de: name, min_price, max_price, o min_price junto con max_price.
// @Tags         items
// @Produce      json
// @Param        name       query  string  false  "Subcadena del nombre (sin distinguir mayúsculas)"
// @Param        min_price  query  number  false  "Precio mínimo (inclusivo)"
// @Param        max_price  query  number  false  "Precio máximo (inclusivo)"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/items/find_all [get]
func (h *ItemHandler) FindAll(c *fiber.Ctx) error {
	out, err := h.uc.FindAll(c.UserContext(), domaincatalog.FilterParams{
		Name:     queryParam(c, "name"),
		MinPrice: queryParam(c, "min_price"),
		MaxPrice: queryParam(c, "max_price"),
	})
	if err != nil {
		return err
	}
	return c.JSON(out)
}
