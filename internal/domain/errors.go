package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Validation errors (all map to HTTP 400)
	ErrMsgEmptySelection     = "selectedItems must not be empty"
	ErrMsgInvalidQuantity    = "item quantity must be a positive whole number"
	ErrMsgInvalidGold        = "gold must be a non-negative number"
	ErrMsgInvalidDate        = "inGameDate is missing or invalid"
	ErrMsgMissingCurrentDate = "currentDate is missing"

	// Catalog errors
	ErrMsgItemNotFound = "item not found"

	// Augmentation errors (never user-facing; always recovered by fallback)
	ErrMsgAugmentationUnavailable = "augmentation unavailable"
	ErrMsgMalformedReport         = "malformed report from augmentation"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// Validation errors
	ErrEmptySelection     = errors.New(ErrMsgEmptySelection)
	ErrInvalidQuantity    = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidGold        = errors.New(ErrMsgInvalidGold)
	ErrInvalidDate        = errors.New(ErrMsgInvalidDate)
	ErrMissingCurrentDate = errors.New(ErrMsgMissingCurrentDate)

	// Catalog errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Augmentation errors
	ErrAugmentationUnavailable = errors.New(ErrMsgAugmentationUnavailable)
	ErrMalformedReport         = errors.New(ErrMsgMalformedReport)
)

// IsValidationError reports whether err is one of the request-shape
// validation errors. These surface to the caller as 4xx and are never
// retried.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptySelection) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidGold) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrMissingCurrentDate)
}
