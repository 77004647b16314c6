package voice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolveInstantTwelveHourClock(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	day := func(hour, minute int) int64 {
		return time.Date(2025, time.March, 10, hour, minute, 0, 0, time.UTC).UnixMilli()
	}

	cases := []struct {
		norm string
		want int64
	}{
		{"meeting at 9am", day(9, 0)},
		{"meeting at 12pm", day(12, 0)},
		{"meeting at 12am", day(0, 0)},
		{"meeting at 8:30pm", day(20, 30)},
		{"meeting at 11:45am", day(11, 45)},
		{"meeting sometime", day(0, 0)},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, resolveInstant(tc.norm, now), "norm=%q", tc.norm)
	}
}

func TestBaseDateTomorrow(t *testing.T) {
	now := time.Date(2025, time.March, 10, 23, 30, 0, 0, time.UTC)

	d := baseDate("standup tomorrow", now)
	require.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC), d)

	d = baseDate("standup today", now)
	require.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), d)
}

func TestBaseDateExplicitMonth(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	// A date later this month stays in the current year.
	d := baseDate("review on march 15", now)
	require.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), d)

	// A date already past rolls to the next year.
	d = baseDate("review on march 3", now)
	require.Equal(t, time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC), d)

	// A bare month means the 1st.
	d = baseDate("trip in june", now)
	require.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), d)

	// Three-letter abbreviations resolve too.
	d = baseDate("trip on jun 20", now)
	require.Equal(t, time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC), d)
}

func TestResolveDayRange(t *testing.T) {
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)

	start, end := resolveDayRange("any meeting tomorrow", now)
	require.Equal(t, time.Date(2025, time.March, 11, 0, 0, 0, 0, time.UTC).UnixMilli(), start)
	require.Equal(t, time.Date(2025, time.March, 11, 23, 59, 59, 0, time.UTC).UnixMilli(), end)
	require.Less(t, start, end)
}

func TestFormatClockZeroPads(t *testing.T) {
	ms := time.Date(2025, time.March, 10, 9, 5, 0, 0, time.Local).UnixMilli()
	require.Equal(t, "09:05", formatClock(ms))

	ms = time.Date(2025, time.March, 10, 20, 30, 0, 0, time.Local).UnixMilli()
	require.Equal(t, "20:30", formatClock(ms))
}
