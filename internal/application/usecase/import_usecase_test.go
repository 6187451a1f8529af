package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/cotizador-api/internal/application/usecase"
	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/memory"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

const importCSV = "id,name,category,basePrice,discountRate,taxRate\n" +
	"pen-a,Pen,Stationery,200,,0.1\n" +
	",Goma,Papel,30,5,\n"

func newImportUC(repo *memory.CatalogRepo) *usecase.ImportUseCase {
	parser := spreadsheet.NewImporterWith(clock(), sequence("imp"))
	uc := usecase.NewImportUseCase(parser, spreadsheet.NewExporter(), repo, logger.Nop())
	uc.SetNewID(sequence("rekey"))
	return uc
}

func TestImportPreview_NoGuarda(t *testing.T) {
	repo := memory.NewCatalogRepository(catalogFixture()...)
	uc := newImportUC(repo)

	out, err := uc.Preview(context.Background(), "lista.csv", []byte(importCSV))
	require.NoError(t, err)
	assert.Equal(t, "lista.csv", out.FileName)
	assert.Equal(t, 2, out.Count)
	assert.Equal(t, "imp-1", out.Items[1].ID)

	items, _ := repo.Load(context.Background())
	assert.Len(t, items, 3)
}

func TestImport_ReemplazaPorDefecto(t *testing.T) {
	repo := memory.NewCatalogRepository(catalogFixture()...)
	uc := newImportUC(repo)

	out, err := uc.Import(context.Background(), "lista.csv", []byte(importCSV), "")
	require.NoError(t, err)
	assert.Equal(t, usecase.ImportReplace, out.Mode)
	assert.Equal(t, 2, out.Imported)
	assert.Equal(t, 2, out.Total)

	items, _ := repo.Load(context.Background())
	require.Len(t, items, 2)
	assert.Equal(t, "Pen", items[0].Name)
	assert.True(t, items[0].BasePrice.Equal(d("200")))
	assert.Equal(t, fixedNow, items[0].UpdatedAt)
}

func TestImport_AppendReasignaIDsRepetidos(t *testing.T) {
	repo := memory.NewCatalogRepository(catalogFixture()...)
	uc := newImportUC(repo)

	out, err := uc.Import(context.Background(), "lista.csv", []byte(importCSV), "APPEND")
	require.NoError(t, err)
	assert.Equal(t, usecase.ImportAppend, out.Mode)
	assert.Equal(t, 5, out.Total)

	items, _ := repo.Load(context.Background())
	require.Len(t, items, 5)
	assert.Equal(t, "pen-a", items[0].ID)
	assert.Equal(t, "rekey-1", items[3].ID, "pen-a ya existía")
	assert.Equal(t, "imp-1", items[4].ID)
}

func TestImport_ArchivoInvalidoNoModificaCatalogo(t *testing.T) {
	repo := memory.NewCatalogRepository(catalogFixture()...)
	uc := newImportUC(repo)

	_, err := uc.Import(context.Background(), "lista.xls", []byte("binario"), "")
	assert.ErrorIs(t, err, domain.ErrInvalidFile)

	items, _ := repo.Load(context.Background())
	assert.Len(t, items, 3)
}

func TestImport_ModoDesconocido(t *testing.T) {
	uc := newImportUC(memory.NewCatalogRepository())
	_, err := uc.Import(context.Background(), "lista.csv", []byte(importCSV), "merge")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportTemplate(t *testing.T) {
	uc := newImportUC(memory.NewCatalogRepository())

	file, err := uc.Template(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usecase.TemplateFileName, file.Name)
	assert.NotEmpty(t, file.Data)

	preview, err := uc.Preview(context.Background(), file.Name, file.Data)
	require.NoError(t, err)
	assert.Equal(t, 10, preview.Count)
}
