package availabilityRepo

import (
	"time"

	"synkt/models"
)

// AvailabilityRepository defines methods for per-day busy-block storage.
// Records are keyed by (userId, day) where day is UTC midnight; the pair
// is unique.
type AvailabilityRepository interface {
	// GetRange retrieves all availability records for the user whose day
	// falls within [start, end], ordered by day ascending.
	GetRange(userID string, start, end time.Time) ([]models.DayAvailability, error)
	// Upsert creates or replaces the record for (userID, day), setting
	// the busy blocks and refreshing lastSyncedAt. Returns the stored
	// record.
	Upsert(userID string, day time.Time, busyBlocks []models.TimeBlock) (*models.DayAvailability, error)
}
