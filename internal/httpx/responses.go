package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code      string        `json:"code"`
	Message   string        `json:"message"`
	Details   []ErrorDetail `json:"details,omitempty"`
	RequestID string        `json:"requestId,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// DeleteResponse acknowledges a successful delete.
type DeleteResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes an error envelope carrying the request id, if any.
func Error(w http.ResponseWriter, r *http.Request, status int, code, message string, details []ErrorDetail) {
	JSON(w, status, ErrorResponse{Error: ErrorBody{
		Code:      code,
		Message:   message,
		Details:   details,
		RequestID: RequestID(r),
	}})
}

// NotFound writes a 404 for the named entity kind.
func NotFound(w http.ResponseWriter, r *http.Request, kind string) {
	Error(w, r, http.StatusNotFound, "NOT_FOUND", kind+" not found", nil)
}

// Deleted acknowledges the removal of id.
func Deleted(w http.ResponseWriter, id string) {
	JSON(w, http.StatusOK, DeleteResponse{Success: true, ID: id})
}

// Decode reads a JSON request body into v. Unknown fields are ignored.
// The body is read in full first so a size-limit error keeps its type.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return errors.New("request body is empty")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("malformed JSON body: %w", err)
	}
	return nil
}

// DecodeValid decodes the body into v and validates it, writing a 400 and
// returning false on failure.
func DecodeValid(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := Decode(r, v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			Error(w, r, http.StatusRequestEntityTooLarge, "BODY_TOO_LARGE", "request body too large", nil)
			return false
		}
		Error(w, r, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return false
	}
	if details := Validate(v); len(details) > 0 {
		Error(w, r, http.StatusBadRequest, "VALIDATION_FAILED", "request failed validation", details)
		return false
	}
	return true
}
