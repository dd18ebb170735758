package handler

import (
	"bytes"
	"io"
	"net/http"

	"worko/internal/pkg/errs"
	"worko/internal/pkg/req"
	"worko/internal/pkg/resp"
	"worko/internal/pkg/validate"
)

// ValidatedBody runs the declarative validation rules of T against the
// request body before the handler executes, short-circuiting with the
// uniform validation error. The body is buffered and restored so the
// handler can bind it again.
func ValidatedBody[T any](next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, req.MaxBodySize))
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidJSONFormat))
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		var input T
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := validate.Struct(input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	}
}
