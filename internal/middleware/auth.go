package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/clubdeck/api/internal/model"
	"github.com/clubdeck/api/pkg/jwt"
)

const (
	// ClaimsKey carries the validated token claims.
	ClaimsKey contextKey = "claims"
	// UserEmailKey carries the authenticated account's email.
	UserEmailKey contextKey = "userEmail"
)

// AuthService validates access tokens for the Auth middleware.
type AuthService interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// Auth rejects requests without a valid bearer token and stores the caller's
// identity on the request context for the handlers downstream.
func Auth(authService AuthService) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, problem := bearerToken(r)
			if problem != "" {
				model.NewUnauthorizedError(problem).WriteJSON(w)
				return
			}

			claims, err := authService.ValidateAccessToken(token)
			if err != nil {
				model.NewUnauthorizedError(describeTokenError(err)).WriteJSON(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
			ctx = context.WithValue(ctx, ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken pulls the token out of the Authorization header, returning a
// problem description when the header is absent or malformed.
func bearerToken(r *http.Request) (token, problem string) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "missing authorization header"
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", "invalid authorization header format"
	}
	return token, ""
}

func describeTokenError(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token expired"
	case errors.Is(err, jwt.ErrInvalidSignature):
		return "invalid token signature"
	default:
		return "invalid token"
	}
}

// GetUserID returns the authenticated user's id, or "" outside Auth.
func GetUserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

// GetUserEmail returns the authenticated user's email, or "".
func GetUserEmail(ctx context.Context) string {
	email, _ := ctx.Value(UserEmailKey).(string)
	return email
}

// GetClaims returns the full token claims, or nil outside Auth.
func GetClaims(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(ClaimsKey).(*jwt.Claims)
	return claims
}
