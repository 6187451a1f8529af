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
	"github.com/gofiber/fiber/v2/middleware/requestid"

	appanalytics "github.com/jhoicas/cotizador-api/internal/application/analytics"
	"github.com/jhoicas/cotizador-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/cotizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/cotizador-api/pkg/config"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	stores, err := store.Open(ctx, cfg, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer stores.Close()

	importer := spreadsheet.NewImporter()
	exporter := spreadsheet.NewExporter()
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	ucLog := log.Component("usecase")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    cfg.HTTP.ImportMaxBytes + 64*1024,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	app.Static("/static", cfg.App.StaticDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		ServiceName: cfg.App.Name,
		Auth: httpRouter.BasicAuthConfig{
			User:     cfg.Auth.User,
			Password: cfg.Auth.Password,
			Realm:    cfg.Auth.Realm,
		},
		ImportMaxBytes: int64(cfg.HTTP.ImportMaxBytes),
		DashboardUC:    appanalytics.NewDashboardUseCase(stores.Catalog, stores.Quotes),
		CatalogUC:      usecase.NewCatalogUseCase(stores.Catalog),
		ImportUC:       usecase.NewImportUseCase(importer, exporter, stores.Catalog, ucLog),
		MergeUC:        usecase.NewMergeUseCase(stores.Catalog, ucLog),
		QuoteUC:        usecase.NewQuoteUseCase(stores.Catalog, stores.Quotes, stores.Drafts, ucLog),
		ExportUC:       usecase.NewExportUseCase(stores.Catalog, stores.Quotes, exporter, pdfGenerator),
		DataUC:         usecase.NewDataUseCase(stores.Catalog, stores.Quotes, ucLog),
	})

	// Swagger UI: http://localhost:<port>/docs (detrás de Basic auth)
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "Cotizador API",
		}))
	} else {
		log.Warn().Str("file", cfg.App.SwaggerFile).Msg("swagger no disponible")
	}

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
