package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrRemarkNotFound indicates that no remark exists for the given account.
	ErrRemarkNotFound = errors.New("remark not found")

	// ErrSessionNotFound indicates that no viewing session exists for the given token.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStatsAbsent indicates that the account has no tradable activity for the
	// token under view. This is a signal, not a failure.
	ErrStatsAbsent = errors.New("no activity for this token")

	// ErrLocaleNotFound indicates that the requested language has no catalog.
	ErrLocaleNotFound = errors.New("locale not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrEmptyAccountID indicates a required account identifier is empty or missing.
	ErrEmptyAccountID = errors.New("account ID cannot be empty")

	// ErrEmptyTokenID indicates a required token identifier is empty or missing.
	ErrEmptyTokenID = errors.New("token ID cannot be empty")

	// ErrStatsDisabled indicates statistics display has been switched off in settings.
	ErrStatsDisabled = errors.New("statistics display is disabled")

	// ErrInvalidAPIKey indicates the X-API-Key header is missing or wrong.
	ErrInvalidAPIKey = errors.New("invalid API key")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These indicate that an operation failed, but not due to
// missing entities or validation issues.
var (
	ErrFailedToRetrieveRemarks  = errors.New("failed to retrieve remarks")
	ErrFailedToRetrieveRemark   = errors.New("failed to retrieve remark")
	ErrFailedToSaveRemark       = errors.New("failed to save remark")
	ErrFailedToDeleteRemark     = errors.New("failed to delete remark")
	ErrFailedToImportRemarks    = errors.New("failed to import remarks")
	ErrFailedToRetrieveSettings = errors.New("failed to retrieve settings")
	ErrFailedToUpdateSettings   = errors.New("failed to update settings")
	ErrFailedToRetrieveLogs     = errors.New("failed to retrieve logs")
	ErrFailedToRetrieveStats    = errors.New("failed to retrieve holder statistics")
	ErrFailedToGetVersionInfo   = errors.New("failed to get version information")
)
