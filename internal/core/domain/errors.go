package domain

import "errors"

// Lifecycle and ledger validation failures. All are recoverable, user-facing
// errors surfaced verbatim by the API layer.
var (
	ErrInsufficientCredits   = errors.New("insufficient credits")
	ErrRoleNotSelected       = errors.New("role must be selected first")
	ErrRoleMismatch          = errors.New("role does not permit applying to this mission")
	ErrMissionNotOpen        = errors.New("mission is not open")
	ErrMissionNotInProgress  = errors.New("mission is not in progress")
	ErrDuplicateApplication  = errors.New("already applied to this mission")
	ErrNotAuthorized         = errors.New("not authorized")
	ErrNotAcceptedApplicant  = errors.New("not the accepted applicant")
	ErrApplicationNotFound   = errors.New("application not found")
	ErrMissionNotFound       = errors.New("mission not found")
	ErrNoSubmission          = errors.New("no submitted work found")
	ErrInvalidFeedback       = errors.New("rating must be between 1 and 5")
	ErrInvalidResponseStatus = errors.New("status must be accepted or rejected")
)

// Account and infrastructure sentinels.
var (
	ErrUserExists           = errors.New("user already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidRole          = errors.New("invalid role")
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrVersionConflict signals that a concurrent writer updated the mission
	// aggregate between read and write. Callers re-read and retry.
	ErrVersionConflict = errors.New("mission was modified concurrently")
)
