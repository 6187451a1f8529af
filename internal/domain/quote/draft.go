// Package quote contiene el armado de cotizaciones: borrador con líneas, cálculo de totales
// y emisión de la cotización final.
package quote

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// TaxRate impuesto fijo del 10% sobre el subtotal.
// No usa la tasa por producto (CatalogItem.TaxRate); ver DESIGN.md.
var TaxRate = decimal.New(1, -1)

var (
	ErrCustomerRequired = fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	ErrEmptyDraft       = fmt.Errorf("%w: la cotización no tiene líneas", domain.ErrInvalidInput)
)

// Totals totales de una lista de líneas.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals Subtotal = Σ Amount; Tax = Subtotal × 10%; Total = Subtotal + Tax.
func ComputeTotals(items []entity.QuoteLineItem) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Amount)
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{Subtotal: subtotal, Tax: tax, Total: subtotal.Add(tax)}
}

// Draft cotización en construcción.
type Draft struct {
	ID           string
	CustomerName string
	Items        []entity.QuoteLineItem
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewDraft crea un borrador vacío.
func NewDraft(id string, now time.Time) *Draft {
	return &Draft{ID: id, CreatedAt: now, UpdatedAt: now}
}

func (d *Draft) indexOf(productID string) int {
	for i := range d.Items {
		if d.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem agrega un producto del catálogo. Si ya está en el borrador suma una unidad.
func (d *Draft) AddItem(item entity.CatalogItem) {
	if i := d.indexOf(item.ID); i >= 0 {
		line := &d.Items[i]
		line.Quantity++
		line.Amount = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		return
	}
	unit := item.NetPrice()
	d.Items = append(d.Items, entity.QuoteLineItem{
		ProductID:    item.ID,
		ProductName:  item.Name,
		Quantity:     1,
		UnitPrice:    unit,
		DiscountRate: item.DiscountRate,
		Amount:       unit,
	})
}

// SetQuantity fija la cantidad de una línea; cantidad <= 0 elimina la línea.
// Devuelve false si el producto no está en el borrador.
func (d *Draft) SetQuantity(productID string, quantity int) bool {
	i := d.indexOf(productID)
	if i < 0 {
		return false
	}
	if quantity <= 0 {
		d.Items = append(d.Items[:i], d.Items[i+1:]...)
		return true
	}
	line := &d.Items[i]
	line.Quantity = quantity
	line.Amount = line.UnitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return true
}

// RemoveItem quita la línea del producto. Devuelve false si no existía.
func (d *Draft) RemoveItem(productID string) bool {
	i := d.indexOf(productID)
	if i < 0 {
		return false
	}
	d.Items = append(d.Items[:i], d.Items[i+1:]...)
	return true
}

// Totals totales actuales del borrador.
func (d *Draft) Totals() Totals {
	return ComputeTotals(d.Items)
}

// Submit emite la cotización a partir del borrador y lo deja vacío.
// Requiere nombre de cliente y al menos una línea.
func (d *Draft) Submit(id string, now time.Time) (*entity.Quote, error) {
	name := strings.TrimSpace(d.CustomerName)
	if name == "" {
		return nil, ErrCustomerRequired
	}
	if len(d.Items) == 0 {
		return nil, ErrEmptyDraft
	}
	items := make([]entity.QuoteLineItem, len(d.Items))
	copy(items, d.Items)
	totals := ComputeTotals(items)

	q := &entity.Quote{
		ID:           id,
		CustomerName: name,
		Items:        items,
		Subtotal:     totals.Subtotal,
		Tax:          totals.Tax,
		Total:        totals.Total,
		CreatedAt:    now,
	}

	d.CustomerName = ""
	d.Items = nil
	d.UpdatedAt = now
	return q, nil
}

// Clone copia profunda de las líneas (los punteros de descuento se comparten; son inmutables).
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	c := *d
	c.Items = append([]entity.QuoteLineItem(nil), d.Items...)
	return &c
}
