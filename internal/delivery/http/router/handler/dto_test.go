package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want *uint
	}{
		{raw: `{"pet_id": 12}`, want: ptr(uint(12))},
		{raw: `{"pet_id": "12"}`, want: ptr(uint(12))},
		{raw: `{"pet_id": " 12 "}`, want: ptr(uint(12))},
		{raw: `{"pet_id": "12a"}`},
		{raw: `{"pet_id": -1}`},
		{raw: `{"pet_id": 1.5}`},
		{raw: `{"pet_id": true}`},
		{raw: `{"pet_id": {}}`},
		{raw: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			var body struct {
				PetID OptionalID `json:"pet_id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &body))
			assert.Equal(t, tt.want, body.PetID.Ptr())
		})
	}
}
