package models

// ValidationErrorResponse is the 400 body for fighter requests that fail validation
// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// example: One or more validation errors occurred.
	Title string `json:"title"`
	// example: 400
	Status int `json:"status"`
	// Messages keyed by JSON field name
	Errors map[string][]string `json:"errors"`
}
