package middleware

import (
	"github.com/go-chi/cors"
)

// tokenPageOrigin is where the UI runs: it is injected into odin.fun token
// pages, so production cross-origin requests always carry this origin.
const tokenPageOrigin = "https://odin.fun"

// NewCORS creates the CORS middleware. The token-page origin is always
// allowed; configured origins (local development hosts) are added to it.
func NewCORS(extraOrigins []string) *cors.Cors {
	origins := append([]string{tokenPageOrigin}, extraOrigins...)

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		// The only non-simple headers this API reads: JSON bodies and the
		// developer-surface API key.
		AllowedHeaders: []string{"Content-Type", "X-API-Key"},
		MaxAge:         300,
	})
}
