package entities

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocation(t *testing.T) {
	ref := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		tz     string
		offset int
	}{
		{"", 0},
		{"UTC", 0},
		{"gmt", 0},
		{"UTC+3", 3 * 3600},
		{"UTC-05:30", -(5*3600 + 30*60)},
		{"+02:00", 2 * 3600},
		{"Europe/Madrid", 3600}, // CET in January
	}

	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			loc, err := ParseLocation(tt.tz)
			require.NoError(t, err)

			_, offset := ref.In(loc).Zone()
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestParseLocationRejectsGarbage(t *testing.T) {
	for _, tz := range []string{"Mars/Olympus", "UTC+15", "+3:75", "UTC3"} {
		_, err := ParseLocation(tz)
		assert.Error(t, err, tz)
	}
}
