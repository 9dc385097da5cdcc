package advisor

// Rule evaluation limits
const (
	maxImmediatePoints      = 3
	beginnerStrategicPoints = 1
	investGoldThreshold     = 500
)

// maxItemQuantity bounds a single item's quantity so it always fits an int
// on every platform
const maxItemQuantity = 1<<31 - 1

// In-game calendar day bounds. Days outside the range are clamped, not
// rejected; the day is presentation-only.
const (
	minGameDay = 1
	maxGameDay = 28
)

// Section titles
const (
	titleImmediateActions  = "Priority Actions 🎯"
	titleStrategicPlanning = "Strategic Planning 🗺️"
	titleOptimizationTips  = "Optimization Tips ✨"
	titleExpertFocus       = "Expert Focus 🔬"
)

// Fixed report headings
const (
	profileTitle = "Player Profile"
	footerTitle  = "Strategic Assessment"
)

// reportIDSuffixLength is the number of random hex characters appended to a
// report id after the timestamp.
const reportIDSuffixLength = 8

// Log messages
const (
	LogMsgRequestRejected = "analysis request rejected"
	LogMsgUnresolvedItem  = "selected item not in catalog, using placeholder"
	LogMsgReportGenerated = "report generated"
)
