package spreadsheet_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/infrastructure/spreadsheet"
)

var importTime = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func newImporter() *spreadsheet.Importer {
	n := 0
	return spreadsheet.NewImporterWith(
		func() time.Time { return importTime },
		func() string { n++; return fmt.Sprintf("gen-%d", n) },
	)
}

func xlsxBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// ── importación ──

func TestParse_XLSX_EncabezadosJaponeses(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{"id", "商品名", "カテゴリ", "基本価格", "割引率", "税率"},
		{"p-1", "ボールペン", "文具", 150, 10, 0.08},
		{"", "ノート", "文具", 300, "", ""},
	})

	items, err := newImporter().Parse("catalogo.xlsx", data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "p-1", items[0].ID)
	assert.Equal(t, "ボールペン", items[0].Name)
	assert.True(t, items[0].BasePrice.Equal(dec("150")))
	require.NotNil(t, items[0].DiscountRate)
	assert.True(t, items[0].DiscountRate.Equal(dec("10")))
	assert.True(t, items[0].TaxRate.Equal(dec("0.08")))
	assert.Equal(t, importTime, items[0].UpdatedAt)

	assert.Equal(t, "gen-1", items[1].ID, "sin id se genera uno nuevo")
	assert.Nil(t, items[1].DiscountRate)
	assert.True(t, items[1].TaxRate.Equal(spreadsheet.DefaultTaxRate))
}

func TestParse_EncabezadosSinDistinguirMayusculas(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{" NOMBRE ", "Categoría", "Precio Base", "Descuento (%)", "Tasa de impuesto", "Notas"},
		{"Lámpara", "Hogar", 3500, 20, 0.1, "ignorado"},
	})

	items, err := newImporter().Parse("x.xlsx", data)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Lámpara", items[0].Name)
	assert.Equal(t, "Hogar", items[0].Category)
	assert.True(t, items[0].BasePrice.Equal(dec("3500")))
}

func TestParse_NumerosPermisivos(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{"name", "basePrice", "discountRate", "taxRate"},
		{"A", "¥1,200", "15%", "8%"},
		{"B", "$ 3,500.50", "0", "0"},
		{"C", "abc", "xyz", "n/a"},
	})

	items, err := newImporter().Parse("x.xlsx", data)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, items[0].BasePrice.Equal(dec("1200")))
	assert.True(t, items[0].DiscountRate.Equal(dec("15")))
	assert.True(t, items[0].TaxRate.Equal(dec("0.08")), "un porcentaje de impuesto se pasa a fracción")

	assert.True(t, items[1].BasePrice.Equal(dec("3500.50")))
	assert.Nil(t, items[1].DiscountRate, "descuento cero se considera ausente")
	assert.True(t, items[1].TaxRate.IsZero(), "un impuesto 0 explícito se respeta")

	assert.True(t, items[2].BasePrice.IsZero())
	assert.Nil(t, items[2].DiscountRate)
	assert.True(t, items[2].TaxRate.Equal(spreadsheet.DefaultTaxRate))
}

func TestParse_IDRepetidoRecibeUnoNuevo(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{"id", "name"},
		{"x", "uno"},
		{"x", "dos"},
	})

	items, err := newImporter().Parse("x.xlsx", data)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "x", items[0].ID)
	assert.Equal(t, "gen-1", items[1].ID)
}

func TestParse_OmiteFilasVacias(t *testing.T) {
	data := xlsxBytes(t, [][]any{
		{"name", "basePrice"},
		{"uno", 1},
		{"", ""},
		{"  ", ""},
		{"dos", 2},
	})

	items, err := newImporter().Parse("x.xlsx", data)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "dos", items[1].Name)
}

func TestParse_CSV_UTF8ConBOM(t *testing.T) {
	data := []byte("\xef\xbb\xbfnombre,precio,descuento\n\"Teclado, USB\",\"4,500\",10\n")

	items, err := newImporter().Parse("productos.csv", data)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Teclado, USB", items[0].Name)
	assert.True(t, items[0].BasePrice.Equal(dec("4500")))
}

func TestParse_CSV_ShiftJIS(t *testing.T) {
	src := "商品名,カテゴリ,基本価格\nマウス,IT機器,2000\n"
	encoded, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte(src))
	require.NoError(t, err)

	items, err := newImporter().Parse("datos.CSV", encoded)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "マウス", items[0].Name)
	assert.Equal(t, "IT機器", items[0].Category)
}

// Libro Excel 97-2003 (BIFF8) con textos en la tabla compartida y celdas numéricas.
func TestParse_XLS(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "productos.xls"))
	require.NoError(t, err)

	items, err := newImporter().Parse("productos.xls", data)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "ボールペン", items[0].Name)
	assert.Equal(t, "文房具", items[0].Category)
	assert.True(t, items[0].BasePrice.Equal(dec("120")))
	require.NotNil(t, items[0].DiscountRate)
	assert.True(t, items[0].DiscountRate.Equal(dec("10")))
	assert.True(t, items[0].TaxRate.Equal(dec("0.1")))

	assert.Equal(t, "Cuaderno A4", items[1].Name)
	assert.Equal(t, "Papelería", items[1].Category)
	assert.True(t, items[1].BasePrice.Equal(dec("250.5")))
	assert.Nil(t, items[1].DiscountRate)
	assert.True(t, items[1].TaxRate.Equal(dec("0.08")))
	assert.Equal(t, importTime, items[1].UpdatedAt)
}

func TestParse_ArchivosInvalidos(t *testing.T) {
	cases := map[string]struct {
		name string
		data []byte
	}{
		"vacío":           {"a.xlsx", nil},
		"xls truncado":    {"a.xls", []byte("\xd0\xcf\x11\xe0")},
		"xls que no es":   {"a.xls", []byte("nombre,precio\n")},
		"no es xlsx":      {"a.xlsx", []byte("hola")},
		"sin encabezados": {"a.csv", []byte("foo,bar\n1,2\n")},
		"solo encabezado": {"a.csv", []byte("name,basePrice\n")},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			items, err := newImporter().Parse(tc.name, tc.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidFile)
			assert.Nil(t, items)
		})
	}
}

func TestParseNumber(t *testing.T) {
	v, pct, ok := spreadsheet.ParseNumber(" ¥1 234,500 ")
	require.True(t, ok)
	assert.False(t, pct)
	assert.True(t, v.Equal(dec("1234500")))

	v, pct, ok = spreadsheet.ParseNumber("12.5%")
	require.True(t, ok)
	assert.True(t, pct)
	assert.True(t, v.Equal(dec("12.5")))

	_, _, ok = spreadsheet.ParseNumber("%")
	assert.False(t, ok)
}

// ── exportación ──

func sampleItems() []entity.CatalogItem {
	ten := dec("10")
	return []entity.CatalogItem{
		{ID: "a", Name: "Pen", Category: "Stationery", BasePrice: dec("100"), DiscountRate: &ten, TaxRate: dec("0.1"), UpdatedAt: importTime},
		{ID: "b", Name: "Nota", Category: "Papel", BasePrice: dec("50.5"), TaxRate: dec("0"), UpdatedAt: importTime},
	}
}

func TestCatalog_ExportaYReimporta(t *testing.T) {
	data, err := spreadsheet.NewExporter().Catalog(sampleItems())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{spreadsheet.SheetCatalog}, f.GetSheetList())
	updated, err := f.GetCellValue(spreadsheet.SheetCatalog, "G2")
	require.NoError(t, err)
	assert.Equal(t, "2026-05-04T10:30:00Z", updated)

	items, err := newImporter().Parse("productos.xlsx", data)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].ID)
	assert.Equal(t, "Pen", items[0].Name)
	assert.True(t, items[0].DiscountRate.Equal(dec("10")))
	assert.True(t, items[1].BasePrice.Equal(dec("50.5")))
	assert.Nil(t, items[1].DiscountRate)
	assert.True(t, items[1].TaxRate.IsZero())
}

func TestQuote_Disposicion(t *testing.T) {
	q := entity.Quote{
		ID:           "q1",
		CustomerName: "Acme",
		Items: []entity.QuoteLineItem{
			{ProductID: "a", ProductName: "Pen", Quantity: 2, UnitPrice: dec("90"), Amount: dec("180")},
		},
		Subtotal:  dec("180"),
		Tax:       dec("18"),
		Total:     dec("198"),
		CreatedAt: importTime,
	}

	data, err := spreadsheet.NewExporter().Quote(q)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue(spreadsheet.SheetQuote, cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Cotización", get("A1"))
	assert.Equal(t, "Acme", get("B3"))
	assert.Equal(t, "04/05/2026", get("B4"))
	assert.Equal(t, "Producto", get("A6"))
	assert.Equal(t, "Pen", get("A7"))
	assert.Equal(t, "2", get("C7"))
	assert.Equal(t, "Subtotal:", get("C9"))
	assert.Equal(t, "180", get("D9"))
	assert.Equal(t, "Impuesto (10%):", get("C10"))
	assert.Equal(t, "18", get("D10"))
	assert.Equal(t, "198", get("D11"))

	width, err := f.GetColWidth(spreadsheet.SheetQuote, "A")
	require.NoError(t, err)
	assert.Equal(t, 30.0, width)
}

func TestQuotes_Listado(t *testing.T) {
	quotes := []entity.Quote{
		{ID: "q1", CustomerName: "Acme", Items: make([]entity.QuoteLineItem, 3), Subtotal: dec("100"), Tax: dec("10"), Total: dec("110"), CreatedAt: importTime},
	}

	data, err := spreadsheet.NewExporter().Quotes(quotes)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(spreadsheet.SheetQuotes)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, spreadsheet.QuoteListHeaders, rows[0])
	assert.Equal(t, []string{"q1", "Acme", "04/05/2026", "3", "100", "10", "110"}, rows[1])
}

func TestTemplate_SeReimportaConEjemplos(t *testing.T) {
	data, err := spreadsheet.NewExporter().Template()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{spreadsheet.SheetTemplate}, f.GetSheetList())

	styleID, err := f.GetCellStyle(spreadsheet.SheetTemplate, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)
	assert.Contains(t, strings.ToUpper(strings.Join(style.Fill.Color, ",")), "E3F2FD")

	items, err := newImporter().Parse("plantilla_productos.xlsx", data)
	require.NoError(t, err)
	require.Len(t, items, 10)
	assert.Equal(t, "Engrapadora", items[4].Name)
	assert.Nil(t, items[4].DiscountRate)
}
