package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		want  string
		found bool
	}{
		{"padded", "2023-01-05", "2023-01-05", true},
		{"single digit month and day", "2023-1-5", "2023-1-5", true},
		{"trailing text tolerated", "2023-01-05T12:00:00", "2023-01-05", true},
		{"leading text tolerated", "on 2023-01-05", "2023-01-05", true},
		{"no digits", "next tuesday", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ExtractDate(tt.raw)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2023-1-5")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDate("2019-13-45")
	assert.Error(t, err)
}

func TestFormatDateString(t *testing.T) {
	d := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Thu Jan 05 2023", FormatDateString(d))
}
