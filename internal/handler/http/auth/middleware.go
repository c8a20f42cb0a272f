// Package auth provides JWT issuance and verification for the HTTP surface.
// Verified tokens resolve to a caller session that downstream handlers pass
// into the usecases; the editorial rules themselves live in the workflow
// engine, not here.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"newsroom-cms/internal/domain/entity"
	"newsroom-cms/internal/handler/http/respond"
	articleUC "newsroom-cms/internal/usecase/article"

	"github.com/golang-jwt/jwt/v5"
)

type ctxKey string

const ctxCaller ctxKey = "caller"

// CallerFromContext returns the caller session attached by the middleware.
// Absent a session it returns the public caller, so handlers never have to
// distinguish "no middleware" from "anonymous request".
func CallerFromContext(ctx context.Context) articleUC.Caller {
	if caller, ok := ctx.Value(ctxCaller).(articleUC.Caller); ok {
		return caller
	}
	return articleUC.Public
}

// Require is authorization middleware for endpoints that need an
// authenticated principal. It validates the bearer token and attaches the
// caller session to the request context; requests without a valid token get
// 401. Role checks are left to the workflow engine so that an expired role
// never yields a confusing 403 here.
func Require(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := callerFromHeader(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
			return
		}
		ctx := context.WithValue(r.Context(), ctxCaller, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional is authorization middleware for endpoints whose response depends
// on who is asking but which anonymous readers may also hit. A valid bearer
// token attaches the caller session; no token or an invalid one means the
// public caller. Degrading a broken token instead of rejecting it keeps the
// read surface available to anonymous clients that send stale sessions, and
// it can only ever narrow what the response shows.
func Optional(next http.Handler) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			next.ServeHTTP(w, r)
			return
		}
		caller, err := callerFromHeader(header, secret)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), ctxCaller, caller)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireEditor gates endpoints reserved for editors, such as section
// management. It implies Require.
func RequireEditor(next http.Handler) http.Handler {
	return Require(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller := CallerFromContext(r.Context())
		if !checkRolePermission(caller.Role, r.Method, r.URL.Path) {
			RecordForbiddenAttempt(string(caller.Role), r.Method)
			respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func callerFromHeader(authz string, secret []byte) (articleUC.Caller, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return articleUC.Public, errors.New("missing bearer token")
	}
	tokenString := strings.TrimPrefix(authz, prefix)
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return articleUC.Public, errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return articleUC.Public, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return articleUC.Public, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return articleUC.Public, errors.New("invalid sub claim")
	}
	role, ok := claims["role"].(string)
	if !ok {
		return articleUC.Public, errors.New("invalid role claim")
	}
	// An unrecognized role degrades to the public view rather than failing;
	// it can only ever narrow what the caller sees.
	caller := articleUC.Caller{PrincipalID: sub, Role: entity.Role(role)}
	if !caller.Role.Valid() {
		caller.Role = entity.RolePublic
	}
	return caller, nil
}
