// Package error defines the error body returned by every API endpoint.
package error

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Error struct {
	Status  int       `json:"status"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	ErrorID string    `json:"error_id"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
}

func NewError(code ErrorCode, message, errorID string) *Error {
	status := code.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		ErrorID: errorID,
	}
}

// EncodeError writes the error body with the status matching code.
func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	body := NewError(code, message, errorID)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(body.Status)
	return json.NewEncoder(w).Encode(body)
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}
