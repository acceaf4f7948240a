package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FilterRequest criterios de filtrado tal como llegan en la query string.
// Vacío equivale a "all" (sin restricción).
type FilterRequest struct {
	Year     string `query:"year"`      // "all" | "latest" | año concreto
	ItemType string `query:"item_type"` // "all" | tipo exacto
	Month    string `query:"month"`     // "all" | "1".."12"
	Supplier string `query:"supplier"`  // subcadena, insensible a mayúsculas
}
