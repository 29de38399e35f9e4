package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-api/internal/application/usecase"
)

// MerchantHandler maneja las peticiones HTTP para Merchant.
type MerchantHandler struct {
	uc     *usecase.MerchantUseCase
	itemUC *usecase.ItemUseCase
}

// NewMerchantHandler construye el handler.
func NewMerchantHandler(uc *usecase.MerchantUseCase, itemUC *usecase.ItemUseCase) *MerchantHandler {
	return &MerchantHandler{uc: uc, itemUC: itemUC}
}

// List godoc
// @Summary      Listar comercios
// @Tags         merchants
// @Produce      json
// @Success      200  {object}  dto.MerchantListResponse
// @Router       /api/v1/merchants [get]
func (h *MerchantHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener comercio por ID
// @Tags         merchants
// @Produce      json
// @Param        id   path  int  true  "ID del comercio"
// @Success      200  {object}  dto.MerchantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/merchants/{id} [get]
func (h *MerchantHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c, "Merchant")
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Find godoc
// @Summary      Buscar comercio por nombre
// @Description  Primera coincidencia (orden alfabético) por subcadena, sin distinguir mayúsculas.
// @Tags         merchants
// @Produce      json
// @Param        name  query  string  true  "Subcadena del nombre"
// @Success      200   {object}  dto.MerchantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/v1/merchants/find [get]
func (h *MerchantHandler) Find(c *fiber.Ctx) error {
	out, err := h.uc.Find(c.UserContext(), c.Query("name"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Items godoc
// @Summary      Ítems de un comercio
// @Tags         merchants
// @Produce      json
// @Param        id   path  int  true  "ID del comercio"
// @Success      200  {object}  dto.ItemListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/merchants/{id}/items [get]
func (h *MerchantHandler) Items(c *fiber.Ctx) error {
	id, err := pathID(c, "Merchant")
	if err != nil {
		return err
	}
	out, err := h.itemUC.ListByMerchant(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}
