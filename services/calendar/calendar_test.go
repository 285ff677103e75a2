package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synkt/models"
)

// fakeAvailabilityRepo stores records keyed by (userID, day unix).
type fakeAvailabilityRepo struct {
	records map[string]map[int64]models.DayAvailability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{records: make(map[string]map[int64]models.DayAvailability)}
}

func (r *fakeAvailabilityRepo) GetRange(userID string, start, end time.Time) ([]models.DayAvailability, error) {
	var out []models.DayAvailability
	for _, rec := range r.records[userID] {
		if !rec.Day.Before(start) && !rec.Day.After(end) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeAvailabilityRepo) Upsert(userID string, day time.Time, busyBlocks []models.TimeBlock) (*models.DayAvailability, error) {
	if r.records[userID] == nil {
		r.records[userID] = make(map[int64]models.DayAvailability)
	}
	rec := models.DayAvailability{
		UserID:       userID,
		Day:          day,
		BusyBlocks:   busyBlocks,
		LastSyncedAt: time.Now(),
	}
	r.records[userID][day.Unix()] = rec
	return &rec, nil
}

// fakeProvider returns canned blocks or a canned error.
type fakeProvider struct {
	blocks []models.TimeBlock
	err    error
}

func (p *fakeProvider) GetBusyBlocks(userID string, start, end time.Time) ([]models.TimeBlock, error) {
	return p.blocks, p.err
}

var calTestNow = time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC) // Monday

func newCalService(repo *fakeAvailabilityRepo, provider Provider) *DefaultCalendarService {
	return &DefaultCalendarService{
		Repo:           repo,
		Provider:       provider,
		SyncWindowDays: 3,
		Now:            func() time.Time { return calTestNow },
	}
}

func TestSaveAvailability(t *testing.T) {
	t.Run("normalizes the day to UTC midnight", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		svc := newCalService(repo, &fakeProvider{})

		sydney, err := time.LoadLocation("Australia/Sydney")
		require.NoError(t, err)

		// 09:30 local on March 3 in Sydney is 22:30 UTC on March 2.
		day := time.Date(2026, 3, 3, 9, 30, 0, 0, sydney)
		rec, err := svc.SaveAvailability("u1", day, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), rec.Day)
	})

	t.Run("rejects inverted and empty blocks", func(t *testing.T) {
		svc := newCalService(newFakeAvailabilityRepo(), &fakeProvider{})

		day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
		bad := []models.TimeBlock{
			{Start: day.Add(10 * time.Hour), End: day.Add(9 * time.Hour)},
		}
		_, err := svc.SaveAvailability("u1", day, bad)
		assert.ErrorIs(t, err, ErrInvalidTimeBlock)

		zero := []models.TimeBlock{{Start: day, End: day}}
		_, err = svc.SaveAvailability("u1", day, zero)
		assert.ErrorIs(t, err, ErrInvalidTimeBlock)
	})
}

func TestSyncCalendar(t *testing.T) {
	day0 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("slices provider blocks into day records", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		provider := &fakeProvider{blocks: []models.TimeBlock{
			{Start: day0.Add(9 * time.Hour), End: day0.Add(10 * time.Hour)},
			{Start: day0.Add(33 * time.Hour), End: day0.Add(35 * time.Hour)}, // day 1, 9-11
		}}
		svc := newCalService(repo, provider)

		records, err := svc.SyncCalendar("u1")
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Len(t, records[0].BusyBlocks, 1)
		assert.Len(t, records[1].BusyBlocks, 1)
		assert.Empty(t, records[2].BusyBlocks)
		for i, rec := range records {
			assert.Equal(t, day0.AddDate(0, 0, i), rec.Day)
		}
	})

	t.Run("a block spanning midnight lands in both days", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		provider := &fakeProvider{blocks: []models.TimeBlock{
			{Start: day0.Add(23 * time.Hour), End: day0.Add(25 * time.Hour)},
		}}
		svc := newCalService(repo, provider)

		records, err := svc.SyncCalendar("u1")
		require.NoError(t, err)
		assert.Len(t, records[0].BusyBlocks, 1)
		assert.Len(t, records[1].BusyBlocks, 1)
	})

	t.Run("provider failure degrades to free days", func(t *testing.T) {
		repo := newFakeAvailabilityRepo()
		provider := &fakeProvider{err: errors.New("provider unreachable")}
		svc := newCalService(repo, provider)

		records, err := svc.SyncCalendar("u1")
		require.NoError(t, err, "provider failures never propagate")
		require.Len(t, records, 3)
		for _, rec := range records {
			assert.Empty(t, rec.BusyBlocks)
		}
	})
}

func TestGenerateMockAvailability(t *testing.T) {
	repo := newFakeAvailabilityRepo()
	svc := newCalService(repo, &fakeProvider{})

	records, err := svc.GenerateMockAvailability("u1", 14)
	require.NoError(t, err)
	require.Len(t, records, 14)

	for _, rec := range records {
		assert.Equal(t, "u1", rec.UserID)
		assert.Equal(t, rec.Day, rec.Day.UTC().Truncate(24*time.Hour), "days are UTC midnights")

		weekday := rec.Day.Weekday()
		if weekday >= time.Monday && weekday <= time.Friday {
			lunch := false
			for _, b := range rec.BusyBlocks {
				if b.Start.Equal(rec.Day.Add(12*time.Hour)) && b.End.Equal(rec.Day.Add(13*time.Hour)) {
					lunch = true
				}
			}
			assert.True(t, lunch, "weekday %s is missing its lunch block", rec.Day.Format("2006-01-02"))
		}

		for _, b := range rec.BusyBlocks {
			assert.True(t, b.Valid(), "generated block %s-%s is invalid", b.Start, b.End)
			assert.False(t, b.Start.Before(rec.Day))
			assert.False(t, b.End.After(rec.Day.AddDate(0, 0, 1)))
		}
	}
}

func TestGenerateMockAvailability_DefaultDays(t *testing.T) {
	svc := newCalService(newFakeAvailabilityRepo(), &fakeProvider{})

	records, err := svc.GenerateMockAvailability("u1", 0)
	require.NoError(t, err)
	assert.Len(t, records, 7)
}
