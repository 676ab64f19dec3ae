package entity

import "strings"

const (
	conditionMarkerOpen  = `[CONDITION_DETECTED:`
	conditionMarkerClose = `"]`
)

// ExtractCondition removes the first well-formed [CONDITION_DETECTED: "<text>"] marker
// from an assistant reply and returns the cleaned reply with the quoted condition.
// A reply without a well-formed marker, including one with a missing terminator
// or an empty condition, is returned unchanged with a nil condition.
func ExtractCondition(reply string) (string, *string) {
	start := strings.Index(reply, conditionMarkerOpen)
	if start < 0 {
		return reply, nil
	}

	// Any amount of whitespace, including none, may separate the colon from the opening quote.
	rest := reply[start+len(conditionMarkerOpen):]
	trimmed := strings.TrimLeft(rest, " \t")
	if !strings.HasPrefix(trimmed, `"`) {
		return reply, nil
	}
	bodyStart := len(reply) - len(trimmed) + 1
	end := strings.Index(reply[bodyStart:], conditionMarkerClose)
	if end < 0 {
		return reply, nil
	}

	condition := strings.TrimSpace(reply[bodyStart : bodyStart+end])
	if condition == "" {
		return reply, nil
	}

	cleaned := reply[:start] + reply[bodyStart+end+len(conditionMarkerClose):]

	return strings.TrimSpace(cleaned), &condition
}
