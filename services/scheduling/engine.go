package scheduling

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"synkt/models"
	"synkt/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidDuration is returned when the requested meeting duration is
// not a positive number of minutes.
var ErrInvalidDuration = errors.New("duration must be a positive number of minutes")

// FindBestTimes enumerates candidate slots for the participants within
// the window and returns them ranked by score descending.
//
// Participants that resolve to no user record are dropped, not errored;
// both the resolved and dropped id sets come back on the result. The
// window is clamped to [now+minNotice, now+maxLookahead] before any slot
// is generated.
func (se *DefaultSchedulingEngine) FindBestTimes(participantIDs []string, windowStart, windowEnd time.Time, durationMinutes int) (*models.BestTimesResult, error) {
	logger := utils.GetLogger()

	if durationMinutes <= 0 {
		return nil, fmt.Errorf("findBestTimes: %w (got %d)", ErrInvalidDuration, durationMinutes)
	}

	loc, err := time.LoadLocation(se.Policy.ReferenceTimezone)
	if err != nil {
		return nil, fmt.Errorf("findBestTimes: invalid reference timezone %q: %w", se.Policy.ReferenceTimezone, err)
	}

	resolved, dropped, err := se.resolveParticipants(participantIDs)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		logger.Warn("dropped unresolvable participants", zap.Strings("userIds", dropped))
	}

	now := se.now()
	start, end := se.clampWindow(windowStart, windowEnd, now)

	busyByDay, err := se.fetchAvailability(resolved, start, end)
	if err != nil {
		return nil, err
	}

	result := &models.BestTimesResult{
		Slots:       se.generateSlots(resolved, busyByDay, start, end, durationMinutes, loc),
		ResolvedIDs: userIDs(resolved),
		DroppedIDs:  dropped,
	}

	// Stable sort: slots are generated chronologically, so score ties
	// resolve to the earlier time.
	sort.SliceStable(result.Slots, func(i, j int) bool {
		return result.Slots[i].Score > result.Slots[j].Score
	})

	return result, nil
}

func (se *DefaultSchedulingEngine) now() time.Time {
	if se.Now != nil {
		return se.Now()
	}
	return time.Now()
}

// resolveParticipants maps input ids to user records, preserving input
// order, collapsing duplicates and collecting ids with no record.
func (se *DefaultSchedulingEngine) resolveParticipants(participantIDs []string) ([]models.User, []string, error) {
	var (
		resolved []models.User
		dropped  []string
	)
	seen := make(map[string]bool, len(participantIDs))

	for _, id := range participantIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		user, err := se.Users.GetByID(id)
		if err != nil {
			return nil, nil, fmt.Errorf("findBestTimes: failed to resolve participant %s: %w", id, err)
		}
		if user == nil {
			dropped = append(dropped, id)
			continue
		}
		resolved = append(resolved, *user)
	}
	return resolved, dropped, nil
}

// clampWindow enforces the minimum notice and maximum lookahead bounds.
func (se *DefaultSchedulingEngine) clampWindow(windowStart, windowEnd, now time.Time) (time.Time, time.Time) {
	minStart := now.Add(time.Duration(se.Policy.MinNoticeHours) * time.Hour)
	if windowStart.Before(minStart) {
		windowStart = minStart
	}

	maxEnd := AddDays(now, se.Policy.MaxLookaheadDays)
	if windowEnd.After(maxEnd) {
		windowEnd = maxEnd
	}
	return windowStart, windowEnd
}

// fetchAvailability fans out one fetch per participant. The fetches
// touch disjoint keys, so completion order is irrelevant; each result
// lands in its own index. Records are keyed by UTC day for slot lookup.
func (se *DefaultSchedulingEngine) fetchAvailability(resolved []models.User, start, end time.Time) ([]map[int64][]models.TimeBlock, error) {
	busyByDay := make([]map[int64][]models.TimeBlock, len(resolved))

	var g errgroup.Group
	for i, user := range resolved {
		i, user := i, user
		g.Go(func() error {
			records, err := se.Availability.GetRange(user.ID, start, end)
			if err != nil {
				return fmt.Errorf("findBestTimes: failed to fetch availability for %s: %w", user.ID, err)
			}
			byDay := make(map[int64][]models.TimeBlock, len(records))
			for _, rec := range records {
				byDay[StartOfDay(rec.Day.UTC()).Unix()] = rec.BusyBlocks
			}
			busyByDay[i] = byDay
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return busyByDay, nil
}

// generateSlots walks the clamped window at the policy stride and emits
// every candidate that survives the sleep guard and quorum filter.
func (se *DefaultSchedulingEngine) generateSlots(resolved []models.User, busyByDay []map[int64][]models.TimeBlock, start, end time.Time, durationMinutes int, loc *time.Location) []models.CandidateSlot {
	p := se.Policy
	stride := time.Duration(p.SlotStrideMinutes) * time.Minute
	duration := time.Duration(durationMinutes) * time.Minute

	var slots []models.CandidateSlot
	for t := AlignToStride(start, stride); t.Before(end); t = t.Add(stride) {
		hour, weekday := ZonedHourAndWeekday(t, loc)

		// Never propose meetings in the sleep window, regardless of
		// individual preference.
		if hour >= p.SleepStartHour && hour < p.SleepEndHour {
			continue
		}

		slot := models.TimeBlock{Start: t, End: t.Add(duration)}
		available := se.availableMembers(resolved, busyByDay, slot, hour)

		// Quorum is measured against the resolved participant count.
		if len(resolved) == 0 || float64(len(available)) < p.QuorumRatio*float64(len(resolved)) {
			continue
		}

		score := p.AttendeeWeight * len(available)
		if len(available) == len(resolved) {
			score += p.FullAttendanceBonus
		}
		if (weekday == time.Friday || weekday == time.Saturday) &&
			hour >= p.WeekendEveningStartHour && hour < p.WeekendEveningEndHour {
			score += p.WeekendEveningBonus
		}

		slots = append(slots, models.CandidateSlot{
			SlotStart:        slot.Start,
			SlotEnd:          slot.End,
			StartTimeLabel:   slot.Start.In(loc).Format("15:04"),
			AvailableMembers: available,
			Score:            score,
		})
	}
	return slots
}

// availableMembers resolves each participant's free/busy state for the
// slot independently: work hours make a participant busy; otherwise an
// overlap with any synced busy block does. A participant with no record
// for the slot's day is free — absence of data is not busyness.
func (se *DefaultSchedulingEngine) availableMembers(resolved []models.User, busyByDay []map[int64][]models.TimeBlock, slot models.TimeBlock, referenceHour int) []string {
	dayKey := StartOfDay(slot.Start.UTC()).Unix()

	var available []string
	for i, user := range resolved {
		policy := user.Policy()
		if referenceHour >= policy.WorkStartHour && referenceHour < policy.WorkEndHour {
			continue
		}

		blocked := false
		for _, block := range busyByDay[i][dayKey] {
			if Overlaps(block, slot) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		available = append(available, user.ID)
	}
	return available
}

func userIDs(users []models.User) []string {
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}
