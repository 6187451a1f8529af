package dto

// ImportPreviewResponse productos leídos del archivo, todavía sin guardar.
type ImportPreviewResponse struct {
	FileName string                `json:"file_name"`
	Count    int                   `json:"count"`
	Items    []CatalogItemResponse `json:"items"`
}

// ImportResponse resultado de confirmar una importación.
type ImportResponse struct {
	Mode     string `json:"mode"`     // replace | append
	Imported int    `json:"imported"` // filas del archivo
	Total    int    `json:"total"`    // tamaño del catálogo resultante
}
