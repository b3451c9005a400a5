package logger

var (
	CollectMessages = collectMessages
	FormatChain     = formatChain
)
