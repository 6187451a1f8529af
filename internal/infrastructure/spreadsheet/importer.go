// Package spreadsheet lee y genera las hojas de cálculo del catálogo y de las cotizaciones
// (excelize para .xlsx, extrame/xls para libros .xls).
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/extrame/xls"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// DefaultTaxRate tasa aplicada cuando la columna de impuesto falta o no es numérica.
var DefaultTaxRate = decimal.New(1, -1)

type field int

const (
	fieldID field = iota
	fieldName
	fieldCategory
	fieldBasePrice
	fieldDiscount
	fieldTax
)

// headerAliases encabezados reconocidos, ya normalizados (minúsculas, sin espacios extremos).
var headerAliases = map[string]field{
	"id":               fieldID,
	"商品名":              fieldName,
	"name":             fieldName,
	"nombre":           fieldName,
	"カテゴリ":             fieldCategory,
	"category":         fieldCategory,
	"categoría":        fieldCategory,
	"categoria":        fieldCategory,
	"基本価格":             fieldBasePrice,
	"baseprice":        fieldBasePrice,
	"precio base":      fieldBasePrice,
	"precio":           fieldBasePrice,
	"割引率":              fieldDiscount,
	"discountrate":     fieldDiscount,
	"descuento":        fieldDiscount,
	"descuento (%)":    fieldDiscount,
	"税率":               fieldTax,
	"taxrate":          fieldTax,
	"impuesto":         fieldTax,
	"tasa de impuesto": fieldTax,
}

// Importer convierte un archivo .xlsx o .csv en productos del catálogo.
type Importer struct {
	now   func() time.Time
	newID func() string
}

// NewImporter crea un importador con reloj real e IDs UUID.
func NewImporter() *Importer {
	return &Importer{now: time.Now, newID: uuid.NewString}
}

// NewImporterWith permite fijar reloj y generador de IDs (tests, semillas).
func NewImporterWith(now func() time.Time, newID func() string) *Importer {
	return &Importer{now: now, newID: newID}
}

// Parse lee la primera hoja del archivo. Cualquier fallo devuelve un error que envuelve
// domain.ErrInvalidFile y ningún producto.
func (imp *Importer) Parse(filename string, data []byte) ([]entity.CatalogItem, error) {
	rows, err := readRows(filename, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFile, err)
	}
	items, err := imp.mapRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFile, err)
	}
	return items, nil
}

func readRows(filename string, data []byte) ([][]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("archivo vacío")
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(data)
	case ".xls":
		return readXLS(data)
	default:
		return readXLSX(data)
	}
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheets[0], err)
	}
	return rows, nil
}

// readXLS lee la primera hoja de un libro Excel 97-2003 (BIFF8).
// El lector puede entrar en pánico con archivos dañados; se convierte en error.
func readXLS(data []byte) (rows [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			rows, err = nil, fmt.Errorf("leer libro .xls: %v", r)
		}
	}()

	wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("abrir libro .xls: %w", err)
	}
	if wb == nil || wb.NumSheets() == 0 {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, row.LastCol())
		for c := row.FirstCol(); c < row.LastCol(); c++ {
			cells[c] = row.Col(c)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

func readCSV(data []byte) ([][]string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	var r io.Reader = bytes.NewReader(data)
	if !utf8.Valid(data) {
		r = transform.NewReader(r, japanese.ShiftJIS.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	return rows, nil
}

func (imp *Importer) mapRows(rows [][]string) ([]entity.CatalogItem, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("falta la fila de encabezados")
	}
	columns := make(map[field]int)
	for i, h := range rows[0] {
		f, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]
		if !ok {
			continue
		}
		if _, dup := columns[f]; !dup {
			columns[f] = i
		}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("ninguna columna reconocida en el encabezado")
	}

	now := imp.now()
	seen := make(map[string]struct{})
	items := make([]entity.CatalogItem, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		cell := func(f field) string {
			i, ok := columns[f]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		id := cell(fieldID)
		if _, dup := seen[id]; id == "" || dup {
			id = imp.newID()
		}
		seen[id] = struct{}{}

		items = append(items, entity.CatalogItem{
			ID:           id,
			Name:         cell(fieldName),
			Category:     cell(fieldCategory),
			BasePrice:    coercePrice(cell(fieldBasePrice)),
			DiscountRate: coerceDiscount(cell(fieldDiscount)),
			TaxRate:      coerceTax(cell(fieldTax)),
			UpdatedAt:    now,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("el archivo no contiene filas de productos")
	}
	return items, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var numberCleaner = strings.NewReplacer(
	" ", "", "\u00a0", "", "\u3000", "",
	",", "", "¥", "", "￥", "", "$", "",
)

// ParseNumber interpreta una celda numérica de forma permisiva: ignora espacios,
// separadores de miles y símbolos de moneda, y un % final (percent = true).
func ParseNumber(s string) (value decimal.Decimal, percent bool, ok bool) {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	if strings.HasSuffix(s, "%") {
		percent = true
		s = strings.TrimSuffix(s, "%")
	}
	if s == "" {
		return decimal.Zero, false, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false, false
	}
	return d, percent, true
}

func coercePrice(s string) decimal.Decimal {
	d, _, ok := ParseNumber(s)
	if !ok || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// coerceDiscount nil si falta, no es numérico, es cero o cae fuera de (0, 100].
func coerceDiscount(s string) *decimal.Decimal {
	d, _, ok := ParseNumber(s)
	if !ok || !d.IsPositive() || d.GreaterThan(decimal.NewFromInt(100)) {
		return nil
	}
	return &d
}

// coerceTax una tasa escrita como porcentaje ("10%") se pasa a fracción. Un 0 explícito se respeta.
func coerceTax(s string) decimal.Decimal {
	d, percent, ok := ParseNumber(s)
	if !ok || d.IsNegative() {
		return DefaultTaxRate
	}
	if percent {
		return d.Div(decimal.NewFromInt(100))
	}
	return d
}
