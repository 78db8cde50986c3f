package booking

import "errors"

// Typed failures surfaced by the lifecycle manager. Handlers map these to
// HTTP status codes; nothing below the handler layer knows about HTTP.
var (
	ErrNotFound          = errors.New("booking not found")
	ErrItemNotFound      = errors.New("item not found")
	ErrUnauthorized      = errors.New("caller is not allowed to perform this action")
	ErrInvalidTransition = errors.New("status change not permitted from current state")
	ErrInvalidDateRange  = errors.New("start date must be before end date")
	ErrItemUnavailable   = errors.New("item is not available for booking")
	ErrInvalidPhase      = errors.New("damage photos not accepted in current booking status")
	ErrNoPhotos          = errors.New("at least one photo is required")
)
