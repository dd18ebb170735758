// Package resp builds the JSON response envelope shared by every route:
// { "success": bool, "message": string, "data"?: ... }.
package resp

import (
	"encoding/json"
	"net/http"

	"worko/internal/pkg/errs"
	"worko/internal/pkg/logx"
)

// JSONResponse is the envelope returned to clients on every route.
type JSONResponse struct {
	// Success reports whether the operation completed.
	Success bool `json:"success"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Data carries the optional payload of a successful operation.
	Data any `json:"data,omitempty"`
}

// RespondJSON marshals payload and writes it with the given HTTP status.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	body, err := json.Marshal(payload)
	if err != nil {
		logx.Error(err, "failed to encode JSON response", "http_status", httpStatus)
		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(body)
}

// RespondSuccess writes a 200 envelope with the given message and payload.
func RespondSuccess(w http.ResponseWriter, r *http.Request, message string, data any) {
	RespondJSON(w, r, http.StatusOK, JSONResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// RespondError writes the envelope and status carried by customErr.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrInternal)
	}

	RespondJSON(w, r, customErr.Status, JSONResponse{
		Success: false,
		Message: customErr.Message,
	})
}
