package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/backoffice-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	InventoryUC *usecase.InventoryUseCase
	CustomerUC  *usecase.CustomerUseCase
	OrderUC     *usecase.OrderUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	products := api.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id/archive", productHandler.Archive)

	// /snapshot va antes de /:productId para que no lo capture el parámetro.
	inventory := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Get("/", inventoryHandler.GetCurrent)
	inventory.Patch("/", inventoryHandler.Adjust)
	inventory.Get("/snapshot", inventoryHandler.SnapshotHistory)
	inventory.Get("/:productId", inventoryHandler.GetByProductID)

	customers := api.Group("/customer")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Delete("/:id", customerHandler.Delete)

	orders := api.Group("/order")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Generate)
	orders.Patch("/complete/:id", orderHandler.Fulfill)
}
