// Package catalog contiene las reglas de dominio del catálogo de precios:
// agrupación de duplicados, políticas de fusión y filtros de búsqueda.
package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/cotizador-api/internal/domain"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// MergePolicy regla que decide qué registro sobrevive al fusionar un grupo de duplicados.
type MergePolicy string

const (
	KeepFirst        MergePolicy = "keep-first"         // el primero encontrado
	KeepLatest       MergePolicy = "keep-latest"        // mayor UpdatedAt
	KeepHighestPrice MergePolicy = "keep-highest-price" // mayor BasePrice
)

// DefaultMergePolicy política usada cuando el cliente no indica ninguna.
const DefaultMergePolicy = KeepLatest

// ParseMergePolicy valida el nombre de la política. Vacío devuelve DefaultMergePolicy.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch p := MergePolicy(strings.TrimSpace(s)); p {
	case "":
		return DefaultMergePolicy, nil
	case KeepFirst, KeepLatest, KeepHighestPrice:
		return p, nil
	default:
		return "", fmt.Errorf("%w: política de fusión desconocida %q", domain.ErrInvalidInput, s)
	}
}

// KeySeparator separa nombre y categoría dentro de la clave. normalize lo elimina del texto,
// así dos pares distintos nunca producen la misma clave.
const KeySeparator = "\x00"

// Group conjunto de productos que comparten el mismo par nombre-categoría normalizado.
type Group struct {
	Key      string
	Name     string // nombre normalizado
	Category string // categoría normalizada
	Items    []entity.CatalogItem
}

// GroupKey clave de identidad: nombre y categoría en minúsculas y sin espacios en los extremos.
func GroupKey(item entity.CatalogItem) string {
	return Key(item.Name, item.Category)
}

// Key arma la clave del par nombre-categoría.
func Key(name, category string) string {
	return normalize(name) + KeySeparator + normalize(category)
}

// normalize crea un Caser por llamada: cases.Caser no es seguro entre goroutines.
func normalize(s string) string {
	s = strings.ReplaceAll(s, KeySeparator, "")
	return strings.TrimSpace(cases.Lower(language.Und).String(s))
}

// GroupItems particiona el catálogo por GroupKey conservando el orden de primera aparición.
// Cada producto pertenece exactamente a un grupo.
func GroupItems(items []entity.CatalogItem) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, item := range items {
		key := GroupKey(item)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key, Name: normalize(item.Name), Category: normalize(item.Category)})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// FindDuplicates devuelve solo los grupos con más de un miembro.
func FindDuplicates(items []entity.CatalogItem) []Group {
	var dups []Group
	for _, g := range GroupItems(items) {
		if len(g.Items) > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}

// Survivor elige el registro que se conserva. En empates gana el primero encontrado.
// Devuelve false si el grupo está vacío.
func (p MergePolicy) Survivor(items []entity.CatalogItem) (entity.CatalogItem, bool) {
	if len(items) == 0 {
		return entity.CatalogItem{}, false
	}
	keep := items[0]
	switch p {
	case KeepLatest:
		for _, current := range items[1:] {
			if current.UpdatedAt.After(keep.UpdatedAt) {
				keep = current
			}
		}
	case KeepHighestPrice:
		for _, current := range items[1:] {
			if current.BasePrice.GreaterThan(keep.BasePrice) {
				keep = current
			}
		}
	}
	return keep, true
}

// MergeResult resultado de una fusión.
type MergeResult struct {
	Items      []entity.CatalogItem // catálogo resultante, en el orden original
	Survivors  []entity.CatalogItem // un registro por grupo fusionado
	RemovedIDs []string
}

// Merge fusiona los grupos de duplicados cuyas claves están en selected.
// Los registros no sobrevivientes se eliminan; el sobreviviente queda intacto (no se combinan campos).
// Claves que no corresponden a un grupo de duplicados se ignoran.
func Merge(items []entity.CatalogItem, selected []string, policy MergePolicy) MergeResult {
	want := make(map[string]bool, len(selected))
	for _, k := range selected {
		want[k] = true
	}

	removed := make(map[string]bool)
	var res MergeResult
	for _, g := range FindDuplicates(items) {
		if !want[g.Key] {
			continue
		}
		keep, _ := policy.Survivor(g.Items)
		res.Survivors = append(res.Survivors, keep)
		for _, it := range g.Items {
			if it.ID != keep.ID && !removed[it.ID] {
				removed[it.ID] = true
				res.RemovedIDs = append(res.RemovedIDs, it.ID)
			}
		}
	}

	res.Items = make([]entity.CatalogItem, 0, len(items)-len(removed))
	for _, it := range items {
		if !removed[it.ID] {
			res.Items = append(res.Items, it)
		}
	}
	return res
}
