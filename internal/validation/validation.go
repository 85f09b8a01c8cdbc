package validation

import (
	"fmt"
	"strings"
)

// Common validation errors
var (
	ErrEmptyAccountID = fmt.Errorf("account ID cannot be empty")
	ErrEmptyTokenID   = fmt.Errorf("token ID cannot be empty")
)

// maxIdentifierLength bounds external-system identifiers. The platform's
// principal IDs are well under this; the bound exists to reject junk input.
const maxIdentifierLength = 128

// ValidateAccountID checks an external account identifier. Account IDs are
// opaque external-system strings, so only emptiness and length are checked.
func ValidateAccountID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyAccountID
	}
	if len(id) > maxIdentifierLength {
		return fmt.Errorf("account ID exceeds %d characters", maxIdentifierLength)
	}
	return nil
}

// ValidateTokenID checks an external token identifier.
func ValidateTokenID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyTokenID
	}
	if len(id) > maxIdentifierLength {
		return fmt.Errorf("token ID exceeds %d characters", maxIdentifierLength)
	}
	return nil
}
