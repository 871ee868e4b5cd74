package appointments

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo24Hour(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		isPM     bool
		expected int
	}{
		{"morning stays", 9, false, 9},
		{"afternoon adds twelve", 1, true, 13},
		{"four pm", 4, true, 16},
		{"noon stays noon", 12, true, 12},
		{"twelve am is kept as written", 12, false, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, To24Hour(tt.hour, tt.isPM))
		})
	}
}

func TestParseSlot(t *testing.T) {
	t.Run("every offered slot parses", func(t *testing.T) {
		expected := [][2]int{{9, 0}, {10, 30}, {13, 0}, {14, 30}, {16, 0}}
		for i, label := range TimeSlots {
			slot, err := ParseSlot(label)
			require.NoError(t, err)
			assert.Equal(t, expected[i][0], slot.Hour, label)
			assert.Equal(t, expected[i][1], slot.Minute, label)
		}
	})

	t.Run("label not offered is rejected", func(t *testing.T) {
		_, err := ParseSlot("11:00 AM - 12:00 PM")
		assert.Error(t, err)
	})

	t.Run("empty label is rejected", func(t *testing.T) {
		_, err := ParseSlot("")
		assert.Error(t, err)
	})
}

func TestScheduledTime(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, loc)

	scheduled, err := ScheduledTime(date, "02:30 PM - 03:30 PM", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 14, 30, 0, 0, loc), scheduled)
	assert.Equal(t, "2024-03-05T07:30:00Z", scheduled.UTC().Format(time.RFC3339))
}
