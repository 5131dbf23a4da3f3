package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/signalee/inventario-api/internal/application/transfer"
	"github.com/signalee/inventario-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrganizationUC *usecase.OrganizationUseCase
	ProductUC      *usecase.ProductUseCase
	SummaryUC      *usecase.SummaryUseCase
	BatchUC        *usecase.BatchUseCase
	ExportUC       *transfer.ExportUseCase
	ImportUC       *transfer.ImportUseCase
}

// Router registra las rutas de la API.
// Los segmentos :organizationId y :categoryId llevan nombres, no IDs
// (la URL pública usa los nombres legibles de organización y categoría).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	data := api.Group("/data")

	// Colección de organizaciones
	orgHandler := NewOrganizationHandler(deps.OrganizationUC)
	data.Get("/", orgHandler.List)
	data.Post("/", orgHandler.Create)

	// Resumen por organización (dashboard)
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	data.Get("/:organizationId", summaryHandler.GetByOrganization)

	// CRUD de productos en el ámbito organización/categoría
	scope := data.Group("/:organizationId/:categoryId")
	productHandler := NewProductHandler(deps.ProductUC)
	scope.Get("/", productHandler.List)
	scope.Post("/", productHandler.Create)
	scope.Put("/", productHandler.Update)
	scope.Delete("/", productHandler.Delete)

	// Operaciones en lote de la tabla editable
	batchHandler := NewBatchHandler(deps.BatchUC)
	scope.Post("/batch", batchHandler.CreateAll)
	scope.Delete("/batch", batchHandler.DeleteAll)

	// Exportación e importación de archivos
	transferHandler := NewTransferHandler(deps.ExportUC, deps.ImportUC)
	scope.Get("/export", transferHandler.Export)
	scope.Post("/import", transferHandler.Import)
}
