package calendar

import (
	"fmt"
	"time"

	"synkt/models"
	"synkt/services/scheduling"
	"synkt/utils"

	"go.uber.org/zap"
)

// GetAvailability returns the user's availability records in [start, end].
func (s *DefaultCalendarService) GetAvailability(userID string, start, end time.Time) ([]models.DayAvailability, error) {
	return s.Repo.GetRange(userID, start, end)
}

// SaveAvailability upserts the busy blocks for one calendar day. The day
// is normalized to UTC midnight so it lines up with the engine's storage
// keys.
func (s *DefaultCalendarService) SaveAvailability(userID string, day time.Time, busyBlocks []models.TimeBlock) (*models.DayAvailability, error) {
	for _, block := range busyBlocks {
		if !block.Valid() {
			return nil, fmt.Errorf("saveAvailability: %w (start %s, end %s)",
				ErrInvalidTimeBlock, block.Start.Format(time.RFC3339), block.End.Format(time.RFC3339))
		}
	}

	normalized := scheduling.StartOfDay(day.UTC())
	return s.Repo.Upsert(userID, normalized, busyBlocks)
}

// SyncCalendar pulls busy blocks from the external provider for the sync
// window and writes one record per day. A provider failure is logged and
// degraded to "no busy blocks for this period" — it never propagates
// into scoring.
func (s *DefaultCalendarService) SyncCalendar(userID string) ([]models.DayAvailability, error) {
	logger := utils.GetLogger()

	days := s.syncWindowDays()
	start := scheduling.StartOfDay(s.now().UTC())
	end := scheduling.AddDays(start, days)

	blocks, err := s.Provider.GetBusyBlocks(userID, start, end)
	if err != nil {
		logger.Warn("calendar provider sync failed, treating period as free",
			zap.String("userId", userID), zap.Error(err))
		blocks = nil
	}

	results := make([]models.DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		dayStart := scheduling.AddDays(start, i)
		dayEnd := scheduling.AddDays(dayStart, 1)
		window := models.TimeBlock{Start: dayStart, End: dayEnd}

		var dayBlocks []models.TimeBlock
		for _, b := range blocks {
			if scheduling.Overlaps(b, window) {
				dayBlocks = append(dayBlocks, b)
			}
		}

		record, err := s.Repo.Upsert(userID, dayStart, dayBlocks)
		if err != nil {
			return nil, fmt.Errorf("syncCalendar: failed to store day %s: %w",
				dayStart.Format("2006-01-02"), err)
		}
		results = append(results, *record)
	}
	return results, nil
}
