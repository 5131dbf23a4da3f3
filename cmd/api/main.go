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
	"github.com/signalee/inventario-api/internal/application/transfer"
	"github.com/signalee/inventario-api/internal/application/usecase"
	infraexcel "github.com/signalee/inventario-api/internal/infrastructure/excel"
	infrapdf "github.com/signalee/inventario-api/internal/infrastructure/pdf"
	"github.com/signalee/inventario-api/internal/infrastructure/postgres"
	httpRouter "github.com/signalee/inventario-api/internal/interfaces/http"
	"github.com/signalee/inventario-api/pkg/config"
	"github.com/signalee/inventario-api/pkg/logger"
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

	orgRepo := postgres.NewOrganizationRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	organizationUC := usecase.NewOrganizationUseCase(orgRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	summaryUC := usecase.NewSummaryUseCase(summaryRepo)
	batchUC := usecase.NewBatchUseCase(productRepo, categoryRepo)

	// Exportación de la tabla: PDF tabular e in-memory workbook Excel
	pdfGenerator := infrapdf.NewMarotoTableGenerator()
	workbookGenerator := infraexcel.NewExcelizeWorkbookGenerator()
	exportUC := transfer.NewExportUseCase(categoryRepo, productRepo, pdfGenerator, workbookGenerator)
	importUC := transfer.NewImportUseCase(productUC)

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
		Title:    "Inventario API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrganizationUC: organizationUC,
		ProductUC:      productUC,
		SummaryUC:      summaryUC,
		BatchUC:        batchUC,
		ExportUC:       exportUC,
		ImportUC:       importUC,
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
