package catalog

import (
	"strings"

	"github.com/jhoicas/cotizador-api/internal/domain/entity"
)

// Filter aplica la búsqueda libre (subcadena sin distinguir mayúsculas en nombre o categoría)
// y el filtro exacto por categoría. Parámetros vacíos no filtran.
func Filter(items []entity.CatalogItem, search, category string) []entity.CatalogItem {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]entity.CatalogItem, 0, len(items))
	for _, it := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(it.Name), term) &&
			!strings.Contains(strings.ToLower(it.Category), term) {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Categories lista de categorías distintas (no vacías) en orden de aparición.
func Categories(items []entity.CatalogItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}

// IndexOf posición del producto con el ID indicado, -1 si no existe.
func IndexOf(items []entity.CatalogItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}
