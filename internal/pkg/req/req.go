// Package req binds HTTP request bodies to input structs.
package req

import (
	"encoding/json"
	"net/http"
	"strings"

	"worko/internal/pkg/errs"
)

// MaxBodySize caps the request body at 1 MB. Profile payloads are tiny;
// anything larger is not a legitimate request.
const MaxBodySize int64 = 1 << 20

// BindJSON decodes the JSON request body into dst. Unknown fields and
// trailing content are rejected so typos surface as errors instead of
// silently dropped data.
func BindJSON(w http.ResponseWriter, r *http.Request, dst any) *errs.CustomError {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		return errs.NewError(errs.ErrUnsupportedMediaType)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	if decoder.More() {
		return errs.NewError(errs.ErrInvalidJSONFormat)
	}

	return nil
}
