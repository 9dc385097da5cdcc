package augment

// Retry policy for the external model call. Backoff doubles per attempt.
const (
	maxAttempts    = 2
	baseBackoffMS  = 300
	maxReportBytes = 1 << 20
)

// Fallback reason labels
const (
	ReasonGenerateFailed  = "generate_failed"
	ReasonMalformedReport = "malformed_report"
	ReasonTimeout         = "timeout"
)

// Log messages
const (
	LogMsgAugmentFallback = "augmentation failed, serving rule engine report"
	LogMsgAugmentServed   = "augmented report served"
	LogMsgAugmentCacheHit = "augmented report served from cache"
)
