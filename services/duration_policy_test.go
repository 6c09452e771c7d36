package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationForParty(t *testing.T) {
	cases := []struct {
		name      string
		partySize uint
		want      uint
		wantErr   error
	}{
		{"single guest", 1, 90, nil},
		{"tier boundary three", 3, 90, nil},
		{"small group", 4, 120, nil},
		{"tier boundary seven", 7, 120, nil},
		{"medium group", 8, 150, nil},
		{"tier boundary ten", 10, 150, nil},
		{"large group", 11, 180, nil},
		{"tier boundary fifteen", 15, 180, nil},
		{"party too large", 16, 0, ErrPartyTooLarge},
		{"way too large", 40, 0, ErrPartyTooLarge},
		{"zero party", 0, 0, ErrInvalidPartySize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DurationForParty(tc.partySize)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
