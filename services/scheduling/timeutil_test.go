package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synkt/models"
)

func block(start, end time.Time) models.TimeBlock {
	return models.TimeBlock{Start: start, End: end}
}

func TestOverlaps(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	testCases := []struct {
		name     string
		a, b     models.TimeBlock
		expected bool
	}{
		{
			name:     "touching endpoints do not overlap",
			a:        block(at(10, 0), at(11, 0)),
			b:        block(at(11, 0), at(12, 0)),
			expected: false,
		},
		{
			name:     "one minute of overlap",
			a:        block(at(10, 0), at(11, 0)),
			b:        block(at(10, 59), at(11, 30)),
			expected: true,
		},
		{
			name:     "containment",
			a:        block(at(9, 0), at(17, 0)),
			b:        block(at(12, 0), at(13, 0)),
			expected: true,
		},
		{
			name:     "disjoint",
			a:        block(at(8, 0), at(9, 0)),
			b:        block(at(14, 0), at(15, 0)),
			expected: false,
		},
		{
			name:     "identical",
			a:        block(at(10, 0), at(11, 0)),
			b:        block(at(10, 0), at(11, 0)),
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.expected, Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 3, 2, 18, 45, 12, 999, time.UTC)
	got := StartOfDay(in)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), got)

	// No timezone conversion: the day boundary is taken in the value's
	// own location.
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)
	inSydney := time.Date(2026, 3, 2, 1, 30, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, loc), StartOfDay(inSydney))
}

func TestAlignToStride(t *testing.T) {
	stride := 15 * time.Minute

	aligned := time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, aligned, AlignToStride(aligned, stride), "already aligned stays put")

	mid := time.Date(2026, 3, 2, 10, 16, 30, 500, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC), AlignToStride(mid, stride))

	justAfter := time.Date(2026, 3, 2, 10, 0, 0, 1, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 15, 0, 0, time.UTC), AlignToStride(justAfter, stride))
}

func TestZonedHourAndWeekday(t *testing.T) {
	loc, err := time.LoadLocation("Australia/Sydney")
	require.NoError(t, err)

	// 2026-03-06 09:00 UTC is 20:00 Friday in Sydney (AEDT, UTC+11).
	ts := time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)
	hour, weekday := ZonedHourAndWeekday(ts, loc)
	assert.Equal(t, 20, hour)
	assert.Equal(t, time.Friday, weekday)

	hour, weekday = ZonedHourAndWeekday(ts, time.UTC)
	assert.Equal(t, 9, hour)
	assert.Equal(t, time.Friday, weekday)
}

func TestAddHelpers(t *testing.T) {
	base := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC), AddDays(base, 7))
	assert.Equal(t, time.Date(2026, 3, 2, 10, 45, 0, 0, time.UTC), AddMinutes(base, 45))
}
