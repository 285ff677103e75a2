package calendar

import (
	"time"

	availabilityRepo "synkt/database/repository/availability"
	"synkt/models"
)

// CalendarService manages per-day busy-block data for users.
type CalendarService interface {
	// GetAvailability returns the user's availability records in [start, end].
	GetAvailability(userID string, start, end time.Time) ([]models.DayAvailability, error)
	// SaveAvailability upserts the busy blocks for one calendar day.
	SaveAvailability(userID string, day time.Time, busyBlocks []models.TimeBlock) (*models.DayAvailability, error)
	// GenerateMockAvailability seeds plausible busy data for the next N days.
	GenerateMockAvailability(userID string, days int) ([]models.DayAvailability, error)
	// SyncCalendar refreshes the user's availability from the external
	// calendar provider. Provider failures degrade to empty busy blocks.
	SyncCalendar(userID string) ([]models.DayAvailability, error)
}

// DefaultCalendarService implements CalendarService.
type DefaultCalendarService struct {
	Repo     availabilityRepo.AvailabilityRepository
	Provider Provider
	// SyncWindowDays bounds how far ahead SyncCalendar refreshes.
	// Zero means the default of 30 days.
	SyncWindowDays int
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultCalendarService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultCalendarService) syncWindowDays() int {
	if s.SyncWindowDays > 0 {
		return s.SyncWindowDays
	}
	return 30
}
