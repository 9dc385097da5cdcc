package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgItemNotFoundHTTP = "Item not found"
	ErrMsgInvalidItemID    = "Invalid item id"
	ErrMsgInvalidStyle     = "Invalid style '%s'. Valid options: %s"

	ErrMsgCatalogNotLoaded = "catalog not loaded"
)
