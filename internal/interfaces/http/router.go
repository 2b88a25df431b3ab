package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger/internal/application/inventory"
	"github.com/jhoicas/stock-ledger/internal/application/report"
	"github.com/jhoicas/stock-ledger/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	Ledger           *inventory.LedgerUseCase
	MonthlyReport    *report.MonthlyReportUseCase
	AuthUC           *usecase.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API. Lecturas públicas; escrituras con Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	write := []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(usecase.RoleOperator)}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", append(write, productHandler.Create)...)
	products.Put("/:id", append(write, productHandler.Update)...)
	products.Delete("/:id", append(write, productHandler.Delete)...)

	// Inventory movements
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.RegisterMovement, deps.Ledger)
	invGroup.Get("/movements", inventoryHandler.History)
	invGroup.Post("/movements", append(write, inventoryHandler.RegisterMovement)...)
	invGroup.Post("/reconcile", append(write, inventoryHandler.Reconcile)...)

	// Reports
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.MonthlyReport)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/monthly/summary", reportHandler.MonthlySummary)
	reports.Get("/monthly/pdf", reportHandler.MonthlyPDF)
}
