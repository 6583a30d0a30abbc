package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var wednesday = time.Date(2024, time.January, 3, 9, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, DueHour, 0, 0, 0, time.UTC)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		now    time.Time
		want   time.Time
	}{
		{"bare friday", "Friday", wednesday, day(2024, time.January, 5)},
		{"bare thursday", "thursday", wednesday, day(2024, time.January, 4)},
		{"bare monday", "  MONDAY ", wednesday, day(2024, time.January, 8)},
		{"bare tuesday", "by Tuesday", wednesday, day(2024, time.January, 9)},
		{"same weekday rolls a week", "wednesday", wednesday, day(2024, time.January, 10)},
		{"next tuesday skips the immediate one", "next tuesday", wednesday, day(2024, time.January, 16)},
		{"next friday", "Next Friday", wednesday, day(2024, time.January, 12)},
		{"tomorrow", "tomorrow", wednesday, day(2024, time.January, 4)},
		{"next week", "next week", wednesday, day(2024, time.January, 10)},
		{"weekday wins over tomorrow", "next Friday, not tomorrow", wednesday, day(2024, time.January, 12)},
		{"weekday wins over next week", "next week on thursday", wednesday, day(2024, time.January, 4)},
		{"month boundary", "friday", time.Date(2024, time.January, 29, 8, 0, 0, 0, time.UTC), day(2024, time.February, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.phrase, tt.now)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_FridayOnAFridayMorning(t *testing.T) {
	now := time.Date(2024, time.January, 5, 9, 0, 0, 0, time.UTC)

	got, ok := Resolve("friday", now)
	require.True(t, ok)

	assert.Equal(t, day(2024, time.January, 12), got)
	assert.True(t, got.After(now))
	assert.Equal(t, time.Friday, got.Weekday())
	assert.Equal(t, DueHour, got.Hour())
}

func TestResolve_AlwaysAfterNow(t *testing.T) {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 14*24; i++ {
		now := start.Add(time.Duration(i) * time.Hour)
		got, ok := Resolve("friday", now)
		require.True(t, ok)
		assert.True(t, got.After(now), "now=%s got=%s", now, got)
		assert.Equal(t, time.Friday, got.Weekday())
		assert.Equal(t, DueHour, got.Hour())
	}
}

func TestResolve_KeepsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)
	now := time.Date(2024, time.January, 3, 23, 0, 0, 0, loc)

	got, ok := Resolve("tomorrow", now)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, time.January, 4, DueHour, 0, 0, 0, loc), got)
}

func TestResolve_NoValue(t *testing.T) {
	for _, phrase := range []string{"banana", "", "   ", "null", "Not specified", "saturday", "sunday", "end of month"} {
		t.Run(phrase, func(t *testing.T) {
			_, ok := Resolve(phrase, wednesday)
			assert.False(t, ok)
		})
	}
}

func TestResolvePtr(t *testing.T) {
	assert.Nil(t, ResolvePtr(nil, wednesday))

	banana := "banana"
	assert.Nil(t, ResolvePtr(&banana, wednesday))

	friday := "friday"
	got := ResolvePtr(&friday, wednesday)
	require.NotNil(t, got)
	assert.Equal(t, day(2024, time.January, 5), *got)
}
