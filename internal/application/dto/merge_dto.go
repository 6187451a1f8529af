package dto

// DuplicateGroupResponse grupo de productos con el mismo par nombre-categoría.
// Key identifica el grupo en MergeRequest.Groups; Name y Category son para mostrar.
// SurvivorID indica qué producto se conservaría con la política consultada.
type DuplicateGroupResponse struct {
	Key        string                `json:"key"`
	Name       string                `json:"name"`
	Category   string                `json:"category"`
	SurvivorID string                `json:"survivor_id"`
	Items      []CatalogItemResponse `json:"items"`
}

// DuplicatesResponse grupos duplicados del catálogo.
type DuplicatesResponse struct {
	Policy         string                   `json:"policy"`
	Groups         []DuplicateGroupResponse `json:"groups"`
	DuplicateCount int                      `json:"duplicate_count"` // productos que se eliminarían al fusionar todo
}

// MergeRequest fusión de los grupos seleccionados.
type MergeRequest struct {
	Policy string   `json:"policy"`
	Groups []string `json:"groups"`
}

// MergeResponse resultado de la fusión.
type MergeResponse struct {
	Policy     string                `json:"policy"`
	Survivors  []CatalogItemResponse `json:"survivors"`
	RemovedIDs []string              `json:"removed_ids"`
	Total      int                   `json:"total"`
}
