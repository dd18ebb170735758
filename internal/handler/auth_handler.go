/*
Package handler provides the HTTP handlers, middleware, and routing for the
worko user-account service.
*/
package handler

import (
	"errors"
	"net/http"

	"worko/internal/app/user"
	"worko/internal/pkg/auth/jwt"
	"worko/internal/pkg/errs"
	"worko/internal/pkg/logx"
	"worko/internal/pkg/req"
	"worko/internal/pkg/resp"
)

// RegisterInput is the registration body. Format rules are declarative;
// required-ness is checked in the handler so an absent field reports
// "Missing required fields" rather than the generic validation message.
type RegisterInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
	Name     string `json:"name"`
	Age      int    `json:"age"`
	City     string `json:"city"`
	ZipCode  string `json:"zipCode" validate:"omitempty,zipcode"`
}

// HandleRegister creates a new user account. Email uniqueness is enforced
// by the store's unique index; the violation maps to the conflict message.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Email == "" || input.Password == "" || input.Name == "" ||
			input.Age == 0 || input.City == "" || input.ZipCode == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			return
		}

		created, err := deps.Users.Create(r.Context(), user.CreateParams{
			Email:    input.Email,
			Password: input.Password,
			Name:     input.Name,
			Age:      input.Age,
			City:     input.City,
			ZipCode:  input.ZipCode,
		})
		if err != nil {
			if errors.Is(err, user.ErrDuplicateEmail) {
				logx.Warn("registration conflict: email already exists", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrEmailExists))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}

		if created == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotCreated))
			return
		}

		resp.RespondSuccess(w, r, "User created successfully", created)
	}
}

// LoginInput is the login body.
type LoginInput struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// HandleLogin verifies credentials, issues a session token, and sets it as
// the token cookie. An unknown email is rejected before any password
// comparison runs.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Email == "" || input.Password == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			return
		}

		u, err := deps.Users.FindByEmail(r.Context(), input.Email)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				logx.Warn("login attempt for unknown email", "email", input.Email)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}

		if !u.ComparePassword(input.Password) {
			logx.Warn("login password mismatch", "email", input.Email)
			resp.RespondError(w, r, errs.NewError(errs.ErrIncorrectPassword))
			return
		}

		token, err := u.SignedToken(deps.Config.TokenSecret)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
			return
		}

		setSessionCookie(w, token)
		resp.RespondSuccess(w, r, "User logged in successfully", u)
	}
}

// HandleLogout clears the token cookie. Sessions live entirely in the
// cookie, so there is nothing to revoke server-side.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clearSessionCookie(w)
		resp.RespondSuccess(w, r, "User logged out successfully", nil)
	}
}

func setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(jwt.SessionExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
