package catalog

// Error message formats for the catalog loader
const (
	ErrMsgReadConfigFailed  = "failed to read catalog config: %w"
	ErrMsgParseConfigFailed = "failed to parse catalog config: %w"
	ErrMsgConfigNil         = "config is nil"
	ErrMsgNoItemsDefined    = "no items defined"

	ErrFmtItemEmptyDisplay = "%w: item %d has empty display_name"
	ErrFmtItemBadTier      = "%w: item %d has unknown tier %q"
)
