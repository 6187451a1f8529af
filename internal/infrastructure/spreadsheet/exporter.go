package spreadsheet

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/internal/domain/quote"
)

// Nombres de hoja de los archivos generados.
const (
	SheetCatalog  = "Productos"
	SheetQuote    = "Cotización"
	SheetQuotes   = "Cotizaciones"
	SheetTemplate = "Plantilla de productos"
)

const dateLayout = "02/01/2006"

// CatalogHeaders columnas del archivo de catálogo, en orden.
var CatalogHeaders = []string{"ID", "Nombre", "Categoría", "Precio base", "Descuento (%)", "Tasa de impuesto", "Actualizado"}

// QuoteListHeaders columnas del listado de cotizaciones.
var QuoteListHeaders = []string{"ID", "Cliente", "Fecha", "Líneas", "Subtotal", "Impuesto", "Total"}

// TemplateHeaders encabezados de la plantilla de importación.
var TemplateHeaders = []string{"Nombre", "Categoría", "Precio base", "Descuento (%)", "Tasa de impuesto"}

// Exporter genera los libros .xlsx de catálogo, cotizaciones y plantilla.
type Exporter struct{}

// NewExporter crea el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Catalog vuelca el catálogo completo en la hoja Productos.
func (e *Exporter) Catalog(items []entity.CatalogItem) ([]byte, error) {
	f, err := newBook(SheetCatalog)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := setRow(f, SheetCatalog, 1, toAny(CatalogHeaders)); err != nil {
		return nil, err
	}
	for i, it := range items {
		var discount any = ""
		if it.DiscountRate != nil {
			discount = num(*it.DiscountRate)
		}
		row := []any{it.ID, it.Name, it.Category, num(it.BasePrice), discount, num(it.TaxRate), it.UpdatedAt.Format(time.RFC3339)}
		if err := setRow(f, SheetCatalog, i+2, row); err != nil {
			return nil, err
		}
	}
	return write(f)
}

// Quote genera la hoja de una cotización: encabezado, tabla de líneas y totales.
func (e *Exporter) Quote(q entity.Quote) ([]byte, error) {
	f, err := newBook(SheetQuote)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows := [][]any{
		{"Cotización"},
		{},
		{"Cliente:", q.CustomerName},
		{"Fecha:", q.CreatedAt.Format(dateLayout)},
		{},
		{"Producto", "Precio unitario", "Cantidad", "Importe"},
	}
	for _, it := range q.Items {
		rows = append(rows, []any{it.ProductName, num(it.UnitPrice), it.Quantity, num(it.Amount)})
	}
	rows = append(rows,
		[]any{},
		[]any{"", "", "Subtotal:", num(q.Subtotal)},
		[]any{"", "", fmt.Sprintf("Impuesto (%s%%):", quote.TaxRate.Shift(2).String()), num(q.Tax)},
		[]any{"", "", "Total:", num(q.Total)},
	)
	for i, r := range rows {
		if len(r) == 0 {
			continue
		}
		if err := setRow(f, SheetQuote, i+1, r); err != nil {
			return nil, err
		}
	}
	if err := setWidths(f, SheetQuote, 30, 14, 10, 14); err != nil {
		return nil, err
	}
	return write(f)
}

// Quotes genera el listado resumido de cotizaciones.
func (e *Exporter) Quotes(quotes []entity.Quote) ([]byte, error) {
	f, err := newBook(SheetQuotes)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := setRow(f, SheetQuotes, 1, toAny(QuoteListHeaders)); err != nil {
		return nil, err
	}
	for i, q := range quotes {
		row := []any{q.ID, q.CustomerName, q.CreatedAt.Format(dateLayout), len(q.Items), num(q.Subtotal), num(q.Tax), num(q.Total)}
		if err := setRow(f, SheetQuotes, i+2, row); err != nil {
			return nil, err
		}
	}
	return write(f)
}

var templateSamples = [][]any{
	{"Bolígrafo (negro)", "Papelería", 150, 10, 0.1},
	{"Bolígrafo (rojo)", "Papelería", 150, 10, 0.1},
	{"Cuaderno A4", "Papelería", 300, 5, 0.1},
	{"Carpeta transparente", "Papelería", 100, 15, 0.1},
	{"Engrapadora", "Papelería", 800, "", 0.1},
	{"Lámpara de escritorio LED", "Electrodomésticos", 3500, 20, 0.1},
	{"Memoria USB 32GB", "Equipos TI", 1200, 25, 0.1},
	{"Mouse inalámbrico", "Equipos TI", 2000, 15, 0.1},
	{"Teclado", "Equipos TI", 4500, 10, 0.1},
	{"Monitor 24 pulgadas", "Equipos TI", 25000, 30, 0.1},
}

// TemplateBlankRows filas vacías que siguen a los ejemplos.
const TemplateBlankRows = 3

// Template genera la plantilla de importación con filas de ejemplo y encabezado resaltado.
func (e *Exporter) Template() ([]byte, error) {
	f, err := newBook(SheetTemplate)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := setRow(f, SheetTemplate, 1, toAny(TemplateHeaders)); err != nil {
		return nil, err
	}
	for i, r := range templateSamples {
		if err := setRow(f, SheetTemplate, i+2, r); err != nil {
			return nil, err
		}
	}
	blank := make([]any, len(TemplateHeaders))
	for i := range blank {
		blank[i] = ""
	}
	for i := 0; i < TemplateBlankRows; i++ {
		if err := setRow(f, SheetTemplate, len(templateSamples)+2+i, blank); err != nil {
			return nil, err
		}
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"E3F2FD"}},
	})
	if err != nil {
		return nil, fmt.Errorf("estilo de encabezado: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(TemplateHeaders), 1)
	if err := f.SetCellStyle(SheetTemplate, "A1", last, style); err != nil {
		return nil, fmt.Errorf("aplicar estilo: %w", err)
	}
	if err := setWidths(f, SheetTemplate, 25, 15, 12, 12, 14); err != nil {
		return nil, err
	}
	return write(f)
}

// ── helpers ──

func newBook(sheet string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("crear hoja %q: %w", sheet, err)
	}
	return f, nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("escribir fila %d: %w", row, err)
	}
	return nil
}

func setWidths(f *excelize.File, sheet string, widths ...float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("ancho de columna %s: %w", col, err)
		}
	}
	return nil
}

func write(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}

// num valor numérico de celda; las hojas guardan números, no texto.
func num(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
