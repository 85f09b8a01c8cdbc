// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/astrabot/odin-insight/internal/api/response"
	"github.com/astrabot/odin-insight/internal/apperrors"
)

// KeyVerifier checks a presented API key. Implemented by the settings service.
type KeyVerifier interface {
	VerifyAPIKey(presented string) bool
}

// RequireAPIKey guards destructive or diagnostic endpoints with the
// X-API-Key header. Returns 401 Unauthorized when the key is missing or
// does not match the stored key.
func RequireAPIKey(verifier KeyVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")

			if !verifier.VerifyAPIKey(key) {
				response.RespondError(w, http.StatusUnauthorized, apperrors.ErrInvalidAPIKey.Error(), "")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
