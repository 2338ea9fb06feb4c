package response

import (
	"encoding/json"
	"net/http"
)

// Body is the envelope of every API response.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes {success, message, data?}. success is derived from the status
// code alone; the data key is left out when no data is given.
func JSON(w http.ResponseWriter, status int, message string, data ...any) {
	body := Body{
		Success: status < http.StatusBadRequest,
		Message: message,
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	write(w, status, body)
}

// Error writes an error envelope carrying the error kind.
func Error(w http.ResponseWriter, status int, message, kind string) {
	write(w, status, Body{
		Success: status < http.StatusBadRequest,
		Message: message,
		Error:   kind,
	})
}

// Page wraps list results with their total count.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page,omitempty"`
	PageSize int `json:"page_size,omitempty"`
}

func NewPage[T any](items []T, total, page, pageSize int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Page: page, PageSize: pageSize}
}

func write(w http.ResponseWriter, status int, body Body) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
