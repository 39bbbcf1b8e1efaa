package utils

import "strings"

// AddToLogMessage appends one line to a per-request log buffer. The buffer is
// flushed in a single print when the handler returns, so one request's log
// lines stay together in the output.
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";")
	logMessagesBuilder.WriteString("\n")
}
