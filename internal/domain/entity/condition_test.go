package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCondition(t *testing.T) {
	tests := []struct {
		name          string
		reply         string
		wantText      string
		wantCondition *string
	}{
		{
			name:          "marker at the end",
			reply:         "Keep the area clean and see a vet if it spreads.\n[CONDITION_DETECTED: \"Canine Dermatitis\"]",
			wantText:      "Keep the area clean and see a vet if it spreads.",
			wantCondition: ptr("Canine Dermatitis"),
		},
		{
			name:          "marker in the middle",
			reply:         "Sounds like [CONDITION_DETECTED: \"Otitis\"] an ear issue.",
			wantText:      "Sounds like  an ear issue.",
			wantCondition: ptr("Otitis"),
		},
		{
			name:          "no space after the colon",
			reply:         "Keep her warm. [CONDITION_DETECTED:\"Feline Cold\"]",
			wantText:      "Keep her warm.",
			wantCondition: ptr("Feline Cold"),
		},
		{
			name:          "extra whitespace after the colon",
			reply:         "Rest the paw.\n[CONDITION_DETECTED: \t \"Sprain\"]",
			wantText:      "Rest the paw.",
			wantCondition: ptr("Sprain"),
		},
		{
			name:     "unquoted condition is treated as absent",
			reply:    "Hmm. [CONDITION_DETECTED: Sprain]",
			wantText: "Hmm. [CONDITION_DETECTED: Sprain]",
		},
		{
			name:     "no marker",
			reply:    "Make sure Oscar drinks enough water.",
			wantText: "Make sure Oscar drinks enough water.",
		},
		{
			name:     "missing terminator is treated as absent",
			reply:    "Watch for limping. [CONDITION_DETECTED: \"Sprain",
			wantText: "Watch for limping. [CONDITION_DETECTED: \"Sprain",
		},
		{
			name:     "empty condition is treated as absent",
			reply:    "All good. [CONDITION_DETECTED: \"  \"]",
			wantText: "All good. [CONDITION_DETECTED: \"  \"]",
		},
		{
			name:          "only the first marker is extracted",
			reply:         "[CONDITION_DETECTED: \"Fleas\"] and [CONDITION_DETECTED: \"Ticks\"]",
			wantText:      "and [CONDITION_DETECTED: \"Ticks\"]",
			wantCondition: ptr("Fleas"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, condition := ExtractCondition(tt.reply)

			assert.Equal(t, tt.wantText, text)
			if tt.wantCondition == nil {
				assert.Nil(t, condition)

				return
			}
			require.NotNil(t, condition)
			assert.Equal(t, *tt.wantCondition, *condition)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
