package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/astrabot/odin-insight/internal/api/response"
	"github.com/astrabot/odin-insight/internal/validation"
)

// ValidateAccountIDMiddleware validates that the accountId URL parameter is
// present and well-formed. Account IDs are opaque external identifiers, so
// only emptiness and length are checked.
// Returns 400 Bad Request when the account ID is missing or invalid.
func ValidateAccountIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "accountId")

		if err := validation.ValidateAccountID(accountID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid account ID", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ValidateTokenIDMiddleware validates that the tokenId URL parameter is
// present and well-formed.
// Returns 400 Bad Request when the token ID is missing or invalid.
func ValidateTokenIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenID := chi.URLParam(r, "tokenId")

		if err := validation.ValidateTokenID(tokenID); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid token ID", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
