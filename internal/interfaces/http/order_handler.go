package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
	"github.com/jhoicas/backoffice-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP para SalesOrder.
type OrderHandler struct {
	uc *usecase.OrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar órdenes con cliente y líneas
// @Tags         orders
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Router       /api/order [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.GetOrders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Generate godoc
// @Summary      Generar orden abierta (descuenta stock por línea)
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateOrderRequest  true  "Cliente y líneas"
// @Success      201   {object}  dto.ServiceResponse[dto.OrderResponse]
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ServiceResponse[dto.OrderResponse]
// @Router       /api/order [post]
func (h *OrderHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CustomerID == "" || len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customerId e items son requeridos"})
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cada línea requiere productId y quantity positiva"})
		}
	}
	out, err := h.uc.GenerateOpenOrder(c.Context(), in)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(out)
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(out)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
}

// Fulfill godoc
// @Summary      Marcar orden como pagada
// @Tags         orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.ServiceResponse[bool]
// @Failure      404  {object}  dto.ServiceResponse[bool]
// @Router       /api/order/complete/{id} [patch]
func (h *OrderHandler) Fulfill(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.WorkFulfilled(id)
	switch {
	case err == nil:
		return c.JSON(out)
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(out)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(out)
	}
}
