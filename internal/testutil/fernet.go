package testutil

import (
	"testing"

	"github.com/fernet/fernet-go"
)

// GenerateFernetKey returns a freshly generated, base64-encoded Fernet key.
func GenerateFernetKey(t *testing.T) string {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}

	return key.Encode()
}
