package utils

import (
	"mime/multipart"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		header  *multipart.FileHeader
		wantErr bool
	}{
		{"missing file", nil, true},
		{"png within limit", &multipart.FileHeader{Filename: "avatar.PNG", Size: 1024}, false},
		{"webp within limit", &multipart.FileHeader{Filename: "avatar.webp", Size: 1024}, false},
		{"too large", &multipart.FileHeader{Filename: "avatar.jpg", Size: 3 << 20}, true},
		{"wrong extension", &multipart.FileHeader{Filename: "avatar.gif", Size: 1024}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.header, 2)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateImageContent(t *testing.T) {
	assert.NoError(t, ValidateImageContent(pngHeader))
	assert.NoError(t, ValidateImageContent([]byte{0xFF, 0xD8, 0xFF, 0xE0}))
	assert.Error(t, ValidateImageContent([]byte("<html><body></body></html>")))
	assert.Error(t, ValidateImageContent([]byte("GIF89a")))
}

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)

	date, err := ParseDate("2024-03-05", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 5, 0, 0, 0, 0, loc), date)

	today, err := ParseDate("", loc)
	require.NoError(t, err)
	assert.Zero(t, today.Hour())
	assert.Equal(t, loc, today.Location())

	_, err = ParseDate("05/03/2024", loc)
	assert.Error(t, err)
}

func TestSameDay(t *testing.T) {
	loc := time.FixedZone("WIB", 7*60*60)
	morning := time.Date(2024, time.March, 5, 1, 0, 0, 0, loc)

	assert.True(t, SameDay(morning, time.Date(2024, time.March, 5, 23, 59, 0, 0, loc)))
	assert.False(t, SameDay(morning, time.Date(2025, time.March, 5, 1, 0, 0, 0, loc)))
	// Same instant, but the UTC calendar date is still March 4.
	assert.False(t, SameDay(morning, morning.UTC()))
}
