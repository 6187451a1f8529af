package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/cotizador-api/internal/application/analytics"
	"github.com/jhoicas/cotizador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName    string
	Auth           BasicAuthConfig
	ImportMaxBytes int64
	DashboardUC    *appanalytics.DashboardUseCase
	CatalogUC      *usecase.CatalogUseCase
	ImportUC       *usecase.ImportUseCase
	MergeUC        *usecase.MergeUseCase
	QuoteUC        *usecase.QuoteUseCase
	ExportUC       *usecase.ExportUseCase
	DataUC         *usecase.DataUseCase
}

// Router registra las rutas. Todo lo que no esté bajo PublicPrefixes exige Basic auth.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(BasicAuthMiddleware(deps.Auth))

	// Público
	api := app.Group("/api")
	api.Get("/health", Health(deps.ServiceName))

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	app.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Products
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC)
	products.Get("/", productHandler.List)
	products.Get("/categories", productHandler.Categories)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Post("/:id/copy", productHandler.Copy)
	products.Delete("/:id", productHandler.Delete)

	// Import
	imports := app.Group("/import")
	importHandler := NewImportHandler(deps.ImportUC, deps.ImportMaxBytes)
	imports.Post("/preview", importHandler.Preview)
	imports.Get("/template", importHandler.Template)
	imports.Post("/", importHandler.Import)

	// Merge
	merge := app.Group("/merge")
	mergeHandler := NewMergeHandler(deps.MergeUC)
	merge.Get("/duplicates", mergeHandler.Duplicates)
	merge.Post("/", mergeHandler.Merge)

	// Quotes; las rutas de borradores van antes de /:id
	quotes := app.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	drafts := quotes.Group("/drafts")
	drafts.Post("/", quoteHandler.CreateDraft)
	drafts.Get("/:id", quoteHandler.GetDraft)
	drafts.Delete("/:id", quoteHandler.DiscardDraft)
	drafts.Put("/:id/customer", quoteHandler.SetCustomer)
	drafts.Post("/:id/items", quoteHandler.AddItem)
	drafts.Put("/:id/items/:productId", quoteHandler.SetQuantity)
	drafts.Delete("/:id/items/:productId", quoteHandler.RemoveItem)
	drafts.Post("/:id/submit", quoteHandler.Submit)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Delete("/:id", quoteHandler.Delete)

	// Export
	export := app.Group("/export")
	exportHandler := NewExportHandler(deps.ExportUC)
	export.Get("/products", exportHandler.Products)
	export.Get("/quotes", exportHandler.Quotes)
	export.Get("/quotes/:id", exportHandler.Quote)
	export.Get("/quotes/:id/pdf", exportHandler.QuotePDF)

	// Data
	dataHandler := NewDataHandler(deps.DataUC)
	app.Delete("/data", dataHandler.ClearAll)
}
