package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"worko/internal/app/user"
	"worko/internal/pkg/errs"
	"worko/internal/pkg/req"
	"worko/internal/pkg/resp"
	"worko/internal/pkg/validate"
)

// HandleListUsers returns every user record. Any authenticated caller may
// list; there is no role model to gate on.
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := deps.Users.List(r.Context())
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}

		resp.RespondSuccess(w, r, "Users fetched successfully", users)
	}
}

// HandleGetSelf returns the record the auth middleware attached. A nil user
// here means the middleware contract was violated, not a normal miss.
func HandleGetSelf(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u := CurrentUser(r)
		if u == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			return
		}

		resp.RespondSuccess(w, r, "User fetched successfully", u)
	}
}

// HandleGetUserByID looks up an arbitrary user by the Id path parameter.
func HandleGetUserByID(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "Id")
		if idStr == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingUserID))
			return
		}

		id, err := uuid.Parse(idStr)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUserIDFormat))
			return
		}

		u, err := deps.Users.FindByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}

		resp.RespondSuccess(w, r, "User fetched successfully", u)
	}
}

// PutUpdateInput is the replace-update body. Every field is optional; an
// omitted field falls back to its current value.
type PutUpdateInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode" validate:"omitempty,zipcode"`
}

// HandlePutUpdate replaces the authenticated caller's profile. A supplied
// password is hashed and persisted separately before the rest of the
// document is written.
func HandlePutUpdate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := CurrentUser(r)

		var input PutUpdateInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if customErr := validate.Struct(input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		fresh, err := deps.Users.FindByID(r.Context(), current.ID)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}

		if input.Password != "" {
			if err := deps.Users.UpdatePassword(r.Context(), current.ID, input.Password); err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
				return
			}
		}

		params := user.ReplaceParams{
			Email:   fallback(input.Email, fresh.Email),
			Name:    fallback(input.Name, fresh.Name),
			Age:     fresh.Age,
			City:    fallback(input.City, fresh.City),
			ZipCode: fallback(input.ZipCode, fresh.ZipCode),
		}
		if input.Age != 0 {
			params.Age = input.Age
		}

		updated, err := deps.Users.Replace(r.Context(), current.ID, params)
		if err != nil {
			switch {
			case errors.Is(err, user.ErrDuplicateEmail):
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailExists))
			case errors.Is(err, user.ErrNotFound):
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			default:
				resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			}
			return
		}

		resp.RespondSuccess(w, r, "User updated successfully", updated)
	}
}

// PatchUpdateInput is the merge-update body. Pointer fields distinguish
// "absent" from "set to zero value". Password is bound only so its presence
// can be rejected.
type PatchUpdateInput struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Age      *int    `json:"age"`
	City     *string `json:"city"`
	ZipCode  *string `json:"zipCode" validate:"omitempty,zipcode"`
}

// HandlePatchUpdate merges the supplied fields into the authenticated
// caller's profile. Password changes are only permitted via PUT, and the
// store is never reached when one is attempted here.
func HandlePatchUpdate(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := CurrentUser(r)

		var input PatchUpdateInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Password != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrPasswordViaPatch))
			return
		}

		if customErr := validate.Struct(input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		updated, err := deps.Users.Merge(r.Context(), current.ID, user.MergeParams{
			Email:   input.Email,
			Name:    input.Name,
			Age:     input.Age,
			City:    input.City,
			ZipCode: input.ZipCode,
		})
		if err != nil {
			switch {
			case errors.Is(err, user.ErrDuplicateEmail):
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailExists))
			case errors.Is(err, user.ErrNotFound):
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
			default:
				resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			}
			return
		}

		resp.RespondSuccess(w, r, "User updated successfully", updated)
	}
}

// HandleDeleteUser removes the authenticated caller's record. The
// acknowledgment does not depend on whether a record existed.
func HandleDeleteUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := CurrentUser(r)

		if err := deps.Users.Delete(r.Context(), current.ID); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}

		resp.RespondSuccess(w, r, "User deleted successfully", nil)
	}
}

// fallback keeps the current value when the request omitted the field.
func fallback(supplied, current string) string {
	if supplied != "" {
		return supplied
	}
	return current
}
