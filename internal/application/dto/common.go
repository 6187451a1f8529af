package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FileResponse archivo generado para descarga.
type FileResponse struct {
	Name        string
	ContentType string
	Data        []byte
}

// Tipos de contenido de las descargas.
const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)
