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
	"github.com/shopspring/decimal"

	"github.com/railops/rake-planner-api/internal/application/planning"
	"github.com/railops/rake-planner-api/internal/domain/costing"
	"github.com/railops/rake-planner-api/internal/infrastructure/postgres"
	httpRouter "github.com/railops/rake-planner-api/internal/interfaces/http"
	"github.com/railops/rake-planner-api/pkg/config"
	"github.com/railops/rake-planner-api/pkg/logger"
)

// Archivo OpenAPI estático servido por el middleware de swagger; el middleware
// hace panic si no existe, así que el archivo viaja con el repo.
const swaggerSpecPath = "./docs/swagger.json"

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

	orderRepo := postgres.NewOrderRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	stockyardRepo := postgres.NewStockyardRepository(pool)
	loadingPointRepo := postgres.NewLoadingPointRepository(pool)
	wagonRepo := postgres.NewWagonRepository(pool)
	rakeRepo := postgres.NewRakeRepository(pool)

	rates := costing.Rates{
		LoadingRatePerUnit:        decimal.NewFromFloat(cfg.Planning.LoadingRatePerUnit),
		TransportRatePerKmWagon:   decimal.NewFromFloat(cfg.Planning.TransportRatePerKmWagon),
		DemurrageRatePerDayWagon:  decimal.NewFromFloat(cfg.Planning.DemurrageRatePerDayWagon),
		DemurrageRatePerHourWagon: decimal.NewFromFloat(cfg.Planning.DemurrageRatePerHourWagon),
		NominalWagonCapacity:      decimal.NewFromFloat(cfg.Planning.NominalWagonCapacity),
	}
	if err := rates.Validate(); err != nil {
		log.Fatal().Err(err).Msg("tarifario inválido")
	}

	planUC := planning.NewPlanUseCase(
		orderRepo, inventoryRepo, stockyardRepo, loadingPointRepo,
		wagonRepo, rakeRepo,
		rates, costing.SyntheticDistance, log,
	)
	demurrageUC := planning.NewDemurrageUseCase(rakeRepo, rates.DemurrageRatePerHourWagon)

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
		FilePath: swaggerSpecPath,
		Path:     "docs",
		Title:    "Rake Planner API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PlanUC:      planUC,
		DemurrageUC: demurrageUC,
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
