package scheduling

import (
	"time"

	"synkt/models"
)

// StartOfDay zeroes the clock fields of t in its own location. No
// timezone conversion happens here: this is the storage-key day
// boundary, not a scoring rule. Callers that key storage pass UTC times.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays adds whole calendar days.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// AddMinutes adds whole minutes.
func AddMinutes(t time.Time, minutes int) time.Time {
	return t.Add(time.Duration(minutes) * time.Minute)
}

// Overlaps reports whether two half-open intervals [a.Start, a.End) and
// [b.Start, b.End) intersect. Touching endpoints do not overlap.
func Overlaps(a, b models.TimeBlock) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// ZonedHourAndWeekday converts an absolute timestamp to its wall-clock
// hour and weekday in the given location.
func ZonedHourAndWeekday(t time.Time, loc *time.Location) (int, time.Weekday) {
	local := t.In(loc)
	return local.Hour(), local.Weekday()
}

// AlignToStride rounds t up to the next multiple of stride, zeroing
// seconds and sub-seconds. A t already on the stride is returned as is.
func AlignToStride(t time.Time, stride time.Duration) time.Time {
	aligned := t.Truncate(stride)
	if aligned.Before(t) {
		aligned = aligned.Add(stride)
	}
	return aligned
}
