package formatting

import (
	"strings"
)

// DefaultDescriptionMaxLen is the default maximum length of the info column.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the minimum maxLen value for TruncateDescription.
// Values smaller than this would not leave room for content plus "...".
const MinTruncateLen = 4

// TruncateDescription collapses all whitespace in s to single spaces and
// shortens the result to maxLen runes, ending it with "..." when cut.
// maxLen is clamped to MinTruncateLen.
func TruncateDescription(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
