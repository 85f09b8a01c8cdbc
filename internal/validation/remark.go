package validation

import (
	"github.com/astrabot/odin-insight/internal/api/request"
)

// maxRemarkLength bounds the remark text.
const maxRemarkLength = 500

// ValidateSaveRemark validates a remark save request.
//
// Required fields:
//   - remark: non-empty, at most 500 characters
//
// The username may be empty; the platform sometimes renders accounts without one.
func ValidateSaveRemark(req request.SaveRemarkRequest) error {
	errors := make(map[string]string)

	if req.Remark == "" {
		errors["remark"] = "remark is required"
	} else if len(req.Remark) > maxRemarkLength {
		errors["remark"] = "remark is too long"
	}

	if len(req.Username) > maxIdentifierLength {
		errors["username"] = "username is too long"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
