package logger

// Exported for white-box tests.
var (
	CollectMessages  = collectMessages
	FormatErrorChain = formatErrorChain
)
