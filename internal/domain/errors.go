package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrClientNotFound        = errors.New("client not found")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrAdvanceNotFound       = errors.New("advance not found")
	ErrReviewNotFound        = errors.New("review not found")
	ErrAddressNotFound       = errors.New("address not found")
	ErrDependencyNotFound    = errors.New("dependency task not found")
	ErrCrossClientDependency = errors.New("dependency belongs to a different client")
	ErrDependencyCycle       = errors.New("dependency cycle detected")
	ErrTaskBlocked           = errors.New("task is blocked by incomplete dependencies")
	ErrAmbiguousID           = errors.New("ambiguous id prefix")
	ErrNoClientSelected      = errors.New("no client selected (run 'desk client add' first)")
	ErrClientHasRecords      = errors.New("client still has records (use --force to remove them)")
	ErrNotInitialized        = errors.New("desk not initialized (run 'desk init' first)")
	ErrAlreadyInitialized    = errors.New("desk already initialized")
	ErrEmptyDescription      = errors.New("description cannot be empty")
	ErrEmptyName             = errors.New("name cannot be empty")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
	ErrConfigExists          = errors.New("config file already exists")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidPriority       = errors.New("invalid priority")
	ErrInvalidDate           = errors.New("invalid date (want YYYY-MM-DD)")
	ErrInvalidAmount         = errors.New("amount must be a positive number")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")
	ErrInvalidAdvanceType    = errors.New("invalid advance type")
	ErrInvalidReviewKind     = errors.New("invalid review kind (want google or trustpilot)")
	ErrInvalidStars          = errors.New("stars must be between 1 and 5")
	ErrEmptyContent          = errors.New("review content cannot be empty")
	ErrEmptyAddress          = errors.New("address cannot be empty")
)
