package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/mm-inventario/internal/application/analytics"
	"github.com/jhoicas/mm-inventario/internal/application/auth"
	"github.com/jhoicas/mm-inventario/internal/application/inventory"
	"github.com/jhoicas/mm-inventario/internal/application/usecase"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	StoreUC       *usecase.StoreUseCase
	ServiceUC     *usecase.ServiceUseCase
	SettingsUC    *usecase.SettingsUseCase
	MovementUC    *inventory.MovementUseCase
	CountUC       *inventory.CountUseCase
	Replenishment *inventory.ReplenishmentUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): la sesión local vive en el snapshot
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)
	warehouses.Delete("/:id", warehouseHandler.Delete)

	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Existencias y movimientos
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.Replenishment)
	protected.Get("/stock", inventoryHandler.Stock)
	protected.Get("/stock/:warehouseId/:productId", inventoryHandler.Quantity)

	invGroup := protected.Group("/inventory")
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
	invGroup.Get("/replenishment-list", inventoryHandler.GetReplenishmentList)

	// Inventarios cíclicos
	counts := invGroup.Group("/counts")
	countHandler := NewCountHandler(deps.CountUC)
	counts.Post("/", countHandler.Create)
	counts.Get("/", countHandler.List)
	counts.Get("/:id", countHandler.GetByID)
	counts.Put("/:id/lines/:productId", countHandler.UpdateLine)
	counts.Post("/:id/close", countHandler.Close)
	counts.Get("/:id/sheet.pdf", countHandler.Sheet)

	// Configuración: guardar el borrador requiere ADMIN
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.Get)
	settings.Get("/draft", settingsHandler.Draft)
	settings.Patch("/draft", settingsHandler.PatchDraft)
	settings.Delete("/draft", settingsHandler.Discard)
	settings.Post("/draft/commit", RequireRole(entity.RoleAdmin), settingsHandler.Commit)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)
}
