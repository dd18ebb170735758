package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"worko/internal/app/user"
	"worko/internal/pkg/auth/jwt"
	"worko/internal/pkg/errs"
	"worko/internal/pkg/logx"
	"worko/internal/pkg/resp"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

type contextKey string

// contextUserKey stores the authenticated *user.User in the request context.
const contextUserKey contextKey = "authenticated_user"

// CurrentUser returns the authenticated user attached by Authenticated, or
// nil on an unauthenticated request.
func CurrentUser(r *http.Request) *user.User {
	u, ok := r.Context().Value(contextUserKey).(*user.User)
	if !ok {
		return nil
	}
	return u
}

// Authenticated gates protected routes. It reads the token cookie, verifies
// the signature, loads the referenced user, and attaches the record to the
// request context. Every verification failure maps to a 401; nothing
// propagates to the generic error path.
func Authenticated(deps *AppDeps) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(TokenCookieName)
			if err != nil || cookie.Value == "" {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			payload, err := jwt.ParseToken(cookie.Value, deps.Config.TokenSecret)
			if err != nil {
				logx.Warn("rejected invalid session token", "error", err.Error())
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			id, err := uuid.Parse(payload.ID)
			if err != nil {
				logx.Warn("session token carries a malformed user id", "id", payload.ID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
				return
			}

			u, err := deps.Users.FindByID(r.Context(), id)
			if err != nil {
				if errors.Is(err, user.ErrNotFound) {
					resp.RespondError(w, r, errs.NewError(errs.ErrAuthUserNotFound))
					return
				}
				resp.RespondError(w, r, errs.NewError(errs.ErrInternal, err))
				return
			}

			ctx := context.WithValue(r.Context(), contextUserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireValidID confirms the authenticated identity carries a well-formed
// store key before a mutating route runs. Post-authentication this always
// holds, so it acts as a defensive guard on the middleware contract.
func RequireValidID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u := CurrentUser(r)
		if u == nil || u.ID == uuid.Nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUserID))
			return
		}

		next.ServeHTTP(w, r)
	})
}
