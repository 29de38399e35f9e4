package dto

import "strconv"

// Tipos de recurso JSON:API.
const (
	TypeItem     = "item"
	TypeMerchant = "merchant"
)

// Resource recurso JSON:API: {id, type, attributes}. El id viaja como string.
type Resource[T any] struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes T      `json:"attributes"`
}

// Document envoltorio {"data": ...} para un recurso o una lista de recursos.
type Document[T any] struct {
	Data T `json:"data"`
}

// ErrorObject error JSON:API con status como string ("404") y title con el mensaje.
type ErrorObject struct {
	Status string `json:"status"`
	Title  string `json:"title"`
}

// ErrorResponse cuerpo de error HTTP: {"errors": [...]}.
type ErrorResponse struct {
	Errors []ErrorObject `json:"errors"`
}

// NewErrorResponse construye el cuerpo de error con un único objeto.
func NewErrorResponse(status int, title string) ErrorResponse {
	return ErrorResponse{Errors: []ErrorObject{{Status: strconv.Itoa(status), Title: title}}}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
