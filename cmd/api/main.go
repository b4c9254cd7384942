// @title        Estoque API
// @version      1.0
// @description  API de control de estoque: productos, personas, movimientos y usuarios.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in   header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/oliveiradev/estoque-api/internal/application/auth"
	"github.com/oliveiradev/estoque-api/internal/application/dashboard"
	"github.com/oliveiradev/estoque-api/internal/application/report"
	"github.com/oliveiradev/estoque-api/internal/application/stock"
	"github.com/oliveiradev/estoque-api/internal/application/usecase"
	infrapdf "github.com/oliveiradev/estoque-api/internal/infrastructure/pdf"
	"github.com/oliveiradev/estoque-api/internal/infrastructure/postgres"
	infraxml "github.com/oliveiradev/estoque-api/internal/infrastructure/xml"
	httpRouter "github.com/oliveiradev/estoque-api/internal/interfaces/http"
	"github.com/oliveiradev/estoque-api/pkg/config"
	"github.com/oliveiradev/estoque-api/pkg/logger"
	appvalidator "github.com/oliveiradev/estoque-api/pkg/validator"

	_ "github.com/oliveiradev/estoque-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	personRepo := postgres.NewPersonRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	movRepo := postgres.NewStockMovementRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo, movRepo)
	personUC := usecase.NewPersonUseCase(personRepo, movRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	ledgerUC := stock.NewLedgerUseCase(txRunner, productRepo, personRepo, movRepo, stockRepo)
	dashboardUC := dashboard.NewDashboardUseCase(dashboardRepo)
	reportUC := report.NewReportUseCase(
		ledgerUC, productRepo, personRepo,
		infrapdf.NewStockReportGenerator(),
		infraxml.NewMovementExporter(),
	)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Usuario administrador inicial (ADMIN_EMAIL / ADMIN_PASSWORD)
	created, err := userUC.EnsureAdmin(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
	if err != nil {
		log.Fatal().Err(err).Msg("sembrar usuario administrador")
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("usuario administrador creado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Estoque API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		PersonUC:    personUC,
		UserUC:      userUC,
		LedgerUC:    ledgerUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		Validator:   appvalidator.New(),
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
