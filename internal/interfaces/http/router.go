package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/oliveiradev/estoque-api/internal/application/auth"
	"github.com/oliveiradev/estoque-api/internal/application/dashboard"
	"github.com/oliveiradev/estoque-api/internal/application/report"
	"github.com/oliveiradev/estoque-api/internal/application/stock"
	"github.com/oliveiradev/estoque-api/internal/application/usecase"
	"github.com/oliveiradev/estoque-api/internal/domain/entity"
	appvalidator "github.com/oliveiradev/estoque-api/pkg/validator"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	PersonUC    *usecase.PersonUseCase
	UserUC      *usecase.UserUseCase
	LedgerUC    *stock.LedgerUseCase
	ReportUC    *report.ReportUseCase
	DashboardUC *dashboard.DashboardUseCase
	Validator   *appvalidator.Validator
	JWTSecret   string
}

// Router registra las rutas de la API.
// Solo /api/auth/login es público; el resto exige Bearer Token, y
// /api/admin/* exige además rol ADMIN.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Validator)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos (protegido)
	products := protected.Group("/produtos")
	productHandler := NewProductHandler(deps.ProductUC, deps.Validator)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Pessoas (protegido)
	people := protected.Group("/pessoas")
	personHandler := NewPersonHandler(deps.PersonUC, deps.Validator)
	people.Post("/", personHandler.Create)
	people.Get("/", personHandler.List)
	people.Get("/:id", personHandler.GetByID)
	people.Put("/:id", personHandler.Update)
	people.Delete("/:id", personHandler.Delete)

	// Estoque (protegido)
	estoque := protected.Group("/estoque")
	stockHandler := NewStockHandler(deps.LedgerUC, deps.ReportUC, deps.Validator)
	estoque.Get("/atual", stockHandler.Panel)
	estoque.Get("/relatorio", stockHandler.StockReport)
	estoque.Get("/produto/:id", stockHandler.GetOnHand)
	estoque.Get("/movimentacoes/export.xml", stockHandler.ExportMovements)
	estoque.Get("/movimentacoes", stockHandler.ListMovements)
	estoque.Post("/movimentacoes", stockHandler.RegisterMovement)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Administración de usuarios (solo ADMIN)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	users := admin.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC, deps.Validator)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
