// seed_catalog carga un catálogo en el almacenamiento configurado (STORE_DRIVER).
// Requiere un almacenamiento persistente (postgres o redis).
//
// Uso: go run ./cmd/seed_catalog [-append] [ruta/productos.xlsx|.csv]
// Sin archivo carga los productos de ejemplo de la plantilla de importación.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/cotizador-api/internal/application/usecase"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/store"
	"github.com/jhoicas/cotizador-api/pkg/config"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

func main() {
	appendMode := flag.Bool("append", false, "agregar al catálogo existente en lugar de reemplazarlo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuración inválida: %v\n", err)
		os.Exit(1)
	}
	if err := checkDriver(cfg.Store.Driver); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	stores, err := store.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}
	defer stores.Close()

	exporter := spreadsheet.NewExporter()
	uc := usecase.NewImportUseCase(spreadsheet.NewImporter(), exporter, stores.Catalog, log)

	name, data, err := source(ctx, uc, flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer origen: %v\n", err)
		os.Exit(1)
	}

	mode := usecase.ImportReplace
	if *appendMode {
		mode = usecase.ImportAppend
	}
	res, err := uc.Import(ctx, name, data, mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Importar %s: %v\n", name, err)
		os.Exit(1)
	}

	fmt.Printf("Cargado %s (%s): %d productos, catálogo con %d\n", name, res.Mode, res.Imported, res.Total)
}

// checkDriver rechaza el almacenamiento en memoria: el catálogo cargado se perdería al terminar el proceso.
func checkDriver(driver string) error {
	switch driver {
	case config.StorePostgres, config.StoreRedis:
		return nil
	case "", config.StoreMemory:
		return fmt.Errorf("STORE_DRIVER=%q no persiste datos; use %s o %s", driver, config.StorePostgres, config.StoreRedis)
	default:
		return fmt.Errorf("STORE_DRIVER desconocido: %q", driver)
	}
}

// source devuelve el archivo indicado o, si no hay ruta, la plantilla con sus filas de ejemplo.
func source(ctx context.Context, uc *usecase.ImportUseCase, path string) (string, []byte, error) {
	if path == "" {
		f, err := uc.Template(ctx)
		if err != nil {
			return "", nil, err
		}
		return f.Name, f.Data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return filepath.Base(path), data, nil
}
