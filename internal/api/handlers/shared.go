package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 1 << 20

// parseJSON decodes a JSON request body into the given request type.
// Unknown fields are rejected so malformed payloads fail at the boundary.
func parseJSON[T any](r *http.Request) (T, error) {
	var req T

	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&req); err != nil {
		return req, fmt.Errorf("invalid JSON body: %w", err)
	}

	return req, nil
}
