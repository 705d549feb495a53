package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDay(t *testing.T) {
	berlin := time.FixedZone("CET", 60*60)
	newYork := time.FixedZone("EST", -5*60*60)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"utc noon", time.Date(2024, 3, 5, 12, 30, 0, 0, time.UTC), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"already midnight", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
		{"offset east crosses back", time.Date(2024, 3, 5, 0, 30, 0, 0, berlin), time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)},
		{"offset west crosses forward", time.Date(2024, 3, 5, 21, 0, 0, 0, newYork), time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)},
		{"end of year", time.Date(2023, 12, 31, 23, 59, 59, 999, time.UTC), time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDay(tt.in)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 3, 5, 1, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)
	c := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
	assert.True(t, SameDay(c, time.Date(2024, 3, 5, 20, 0, 0, 0, time.FixedZone("EST", -5*60*60))))
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), day)

	day, err = ParseDay("2024-03-05T23:30:00-02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), day)

	for _, bad := range []string{"", "   ", "05/03/2024", "2024-13-01", "yesterday"} {
		_, err := ParseDay(bad)
		assert.ErrorIs(t, err, ErrInvalidTimestamp, bad)
	}
}

func TestMonthRange(t *testing.T) {
	start, end := MonthRange(2024, time.February)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), end)

	start, end = MonthRange(2023, time.December)
	assert.Equal(t, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), end)
}
