package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/product-inventory-api/internal/application/inventory"
	"github.com/jhoicas/product-inventory-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	TagUC       *usecase.TagUseCase
	AdjustStock *inventory.AdjustStockUseCase
	JWTSecret   string // vacío = rutas de escritura sin protección (desarrollo)
}

// Router registra las rutas de la API. Con JWT_SECRET configurado, las
// rutas que mutan estado exigen Bearer Token; las lecturas son públicas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	guard := func(c *fiber.Ctx) error { return c.Next() }
	if deps.JWTSecret != "" {
		guard = AuthMiddleware(deps.JWTSecret)
	}

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.AdjustStock)

	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Get("/:id/movements", inventoryHandler.ListMovements)
	products.Post("/", guard, productHandler.Create)
	products.Patch("/:id", guard, productHandler.Update)
	products.Delete("/:id", guard, productHandler.Delete)

	// Ajuste de stock: transaccional, serializado por producto
	products.Post("/:id/stock", guard, inventoryHandler.AdjustStock)

	tags := api.Group("/tags")
	tagHandler := NewTagHandler(deps.TagUC)
	tags.Post("/", guard, tagHandler.Create)
}
