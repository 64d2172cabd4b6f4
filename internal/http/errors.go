// Package httpapi exposes the HTTP API layer of the services.
package httpapi

import (
	"encoding/json"
	"net/http"
)

const (
	detailNotFound         = "Not Found"
	detailMethodNotAllowed = "Method Not Allowed"
	detailTooManyRequests  = "Too Many Requests"
	detailInternal         = "Internal Server Error"
	detailProductNotFound  = "Product not found"
	detailBadProductID     = "product_id must be an integer"
)

// jsonError is the single error payload shape of every service.
type jsonError struct {
	Detail string `json:"detail"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes a {"detail": ...} payload with the given status code.
func WriteJSONError(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, jsonError{Detail: detail})
}
