package calendar

import (
	"fmt"
	"math/rand"
	"time"

	"synkt/models"
	"synkt/services/scheduling"
)

// GenerateMockAvailability seeds busy data for the next N days so the
// matching engine can be exercised without a connected calendar. The
// shape mimics a typical week: weekday morning and lunch blocks plus
// random afternoon and evening commitments.
func (s *DefaultCalendarService) GenerateMockAvailability(userID string, days int) ([]models.DayAvailability, error) {
	if days <= 0 {
		days = 7
	}

	today := scheduling.StartOfDay(s.now().UTC())

	results := make([]models.DayAvailability, 0, days)
	for i := 0; i < days; i++ {
		day := scheduling.AddDays(today, i)
		weekday := day.Weekday()
		isWeekday := weekday >= time.Monday && weekday <= time.Friday

		var blocks []models.TimeBlock
		if isWeekday && rand.Float64() > 0.3 {
			blocks = append(blocks, dayBlock(day, 8, 10))
		}
		if isWeekday {
			blocks = append(blocks, dayBlock(day, 12, 13))
		}
		if rand.Float64() > 0.5 {
			blocks = append(blocks, dayBlock(day, 14, 15))
		}
		if rand.Float64() > 0.7 {
			blocks = append(blocks, dayBlock(day, 19, 21))
		}

		record, err := s.Repo.Upsert(userID, day, blocks)
		if err != nil {
			return nil, fmt.Errorf("generateMockAvailability: failed to store day %s: %w",
				day.Format("2006-01-02"), err)
		}
		results = append(results, *record)
	}
	return results, nil
}

// dayBlock builds a busy block spanning [startHour, endHour) on the
// given day.
func dayBlock(day time.Time, startHour, endHour int) models.TimeBlock {
	return models.TimeBlock{
		Start: day.Add(time.Duration(startHour) * time.Hour),
		End:   day.Add(time.Duration(endHour) * time.Hour),
	}
}
