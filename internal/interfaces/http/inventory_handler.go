package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP para el inventario.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// GetCurrent godoc
// @Summary      Inventario vigente (excluye archivados)
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.InventoryResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) GetCurrent(c *fiber.Ctx) error {
	out, err := h.uc.GetCurrent()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByProductID godoc
// @Summary      Inventario de un producto
// @Tags         inventory
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.InventoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{productId} [get]
func (h *InventoryHandler) GetByProductID(c *fiber.Ctx) error {
	productID := c.Params("productId")
	out, err := h.uc.GetByProductID(productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "inventario no encontrado"})
	}
	return c.JSON(out)
}

// SnapshotHistory godoc
// @Summary      Historia de snapshots (últimas 6 horas)
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.SnapshotResponse
// @Router       /api/inventory/snapshot [get]
func (h *InventoryHandler) SnapshotHistory(c *fiber.Ctx) error {
	out, err := h.uc.GetSnapshotHistory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Ajustar unidades disponibles (con signo)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustInventoryRequest  true  "ID de inventario y ajuste"
// @Success      200   {object}  dto.ServiceResponse[dto.InventoryResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ServiceResponse[dto.InventoryResponse]
// @Router       /api/inventory [patch]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustInventoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id es requerido"})
	}
	out, err := h.uc.UpdateUnitsAvailable(c.Context(), in.ID, in.Adjustment)
	switch {
	case err == nil:
		return c.JSON(out)
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(out)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
}
