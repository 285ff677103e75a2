package scheduling

import (
	"time"

	"synkt/models"
)

// UserPolicySource resolves participant ids to user records. A missing
// user is reported as (nil, nil), not an error.
type UserPolicySource interface {
	GetByID(id string) (*models.User, error)
}

// AvailabilitySource supplies per-day busy blocks for a user over a
// date range.
type AvailabilitySource interface {
	GetRange(userID string, start, end time.Time) ([]models.DayAvailability, error)
}

// Engine finds ranked meeting candidates for a set of participants.
type Engine interface {
	// FindBestTimes enumerates candidate slots in [windowStart, windowEnd)
	// for the given participants and duration, and returns them sorted by
	// score descending (ties keep chronological order).
	FindBestTimes(participantIDs []string, windowStart, windowEnd time.Time, durationMinutes int) (*models.BestTimesResult, error)
}

// DefaultSchedulingEngine is the production matching and scoring engine.
// It is a pure computation over fetched data: no state is shared between
// invocations. Now is injectable so tests can pin the clock; it defaults
// to time.Now.
type DefaultSchedulingEngine struct {
	Users        UserPolicySource
	Availability AvailabilitySource
	Policy       Policy
	Now          func() time.Time
}
