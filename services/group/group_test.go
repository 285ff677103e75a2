package group

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	groupRepo "synkt/database/repository/group"
	"synkt/models"
)

// fakeGroupRepo is an in-memory GroupRepository. conflictsLeft makes the
// next N Update calls fail with ErrVersionConflict without persisting.
type fakeGroupRepo struct {
	groups        map[string]models.Group
	conflictsLeft int
	updateCalls   int
}

func newFakeGroupRepo(groups ...models.Group) *fakeGroupRepo {
	repo := &fakeGroupRepo{groups: make(map[string]models.Group)}
	for _, g := range groups {
		repo.groups[g.ID] = g
	}
	return repo
}

func (r *fakeGroupRepo) GetByID(id string) (*models.Group, error) {
	grp, ok := r.groups[id]
	if !ok {
		return nil, nil
	}
	copied := grp
	return &copied, nil
}

func (r *fakeGroupRepo) GetByUserID(userID string) ([]models.Group, error) {
	var out []models.Group
	for _, g := range r.groups {
		if g.CreatedBy == userID {
			out = append(out, g)
			continue
		}
		for _, m := range g.Members {
			if m.UserID == userID {
				out = append(out, g)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeGroupRepo) Create(group *models.Group) error {
	r.groups[group.ID] = *group
	return nil
}

func (r *fakeGroupRepo) Update(group *models.Group) error {
	r.updateCalls++
	if r.conflictsLeft > 0 {
		r.conflictsLeft--
		return groupRepo.ErrVersionConflict
	}
	group.Version++
	r.groups[group.ID] = *group
	return nil
}

func (r *fakeGroupRepo) Delete(id string) error {
	delete(r.groups, id)
	return nil
}

// fakeEngine records its arguments and returns a fixed slot list.
type fakeEngine struct {
	slots []models.CandidateSlot

	gotIDs      []string
	gotStart    time.Time
	gotEnd      time.Time
	gotDuration int
}

func (e *fakeEngine) FindBestTimes(participantIDs []string, windowStart, windowEnd time.Time, durationMinutes int) (*models.BestTimesResult, error) {
	e.gotIDs = participantIDs
	e.gotStart = windowStart
	e.gotEnd = windowEnd
	e.gotDuration = durationMinutes
	return &models.BestTimesResult{Slots: e.slots, ResolvedIDs: participantIDs}, nil
}

var groupTestNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func newService(repo *fakeGroupRepo, engine *fakeEngine) *DefaultGroupService {
	return &DefaultGroupService{
		Repo:   repo,
		Engine: engine,
		Now:    func() time.Time { return groupTestNow },
	}
}

func testGroup(id string, memberIDs ...string) models.Group {
	members := make([]models.GroupMember, 0, len(memberIDs))
	for _, m := range memberIDs {
		members = append(members, models.GroupMember{UserID: m, JoinedAt: groupTestNow})
	}
	return models.Group{
		ID:            id,
		Name:          "board games",
		CreatedBy:     "creator",
		Members:       members,
		MaxMembers:    6,
		ProposedTimes: []models.ProposedTime{},
		Version:       1,
	}
}

func candidate(start time.Time, score int, members ...string) models.CandidateSlot {
	return models.CandidateSlot{
		SlotStart:        start,
		SlotEnd:          start.Add(time.Hour),
		StartTimeLabel:   start.UTC().Format("15:04"),
		AvailableMembers: members,
		Score:            score,
	}
}

func TestCreate(t *testing.T) {
	repo := newFakeGroupRepo()
	svc := newService(repo, &fakeEngine{})

	grp, err := svc.Create("board games", "creator", []string{"a", "b"})
	require.NoError(t, err)
	assert.NotEmpty(t, grp.ID)
	assert.Equal(t, "creator", grp.CreatedBy)
	assert.Len(t, grp.Members, 2)
	assert.Equal(t, 6, grp.MaxMembers)
	assert.Empty(t, grp.ProposedTimes)

	stored, err := repo.GetByID(grp.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newService(newFakeGroupRepo(), &fakeEngine{})

	_, err := svc.GetByID("missing")
	assert.ErrorIs(t, err, ErrGroupNotFound)
}

func TestAddMember(t *testing.T) {
	t.Run("appends a new member", func(t *testing.T) {
		repo := newFakeGroupRepo(testGroup("g1", "a"))
		svc := newService(repo, &fakeEngine{})

		grp, err := svc.AddMember("g1", "b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, grp.MemberIDs())
	})

	t.Run("rejects a duplicate member", func(t *testing.T) {
		repo := newFakeGroupRepo(testGroup("g1", "a"))
		svc := newService(repo, &fakeEngine{})

		_, err := svc.AddMember("g1", "a")
		assert.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("rejects when full", func(t *testing.T) {
		repo := newFakeGroupRepo(testGroup("g1", "a", "b", "c", "d", "e", "f"))
		svc := newService(repo, &fakeEngine{})

		_, err := svc.AddMember("g1", "g")
		assert.ErrorIs(t, err, ErrGroupFull)
	})
}

func TestCalculateBestTimes(t *testing.T) {
	base := time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC)

	t.Run("passes member ids and window to the engine", func(t *testing.T) {
		repo := newFakeGroupRepo(testGroup("g1", "a", "b"))
		engine := &fakeEngine{}
		svc := newService(repo, engine)

		_, err := svc.CalculateBestTimes("g1", 14)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, engine.gotIDs)
		assert.Equal(t, groupTestNow, engine.gotStart)
		assert.Equal(t, groupTestNow.AddDate(0, 0, 14), engine.gotEnd)
		assert.Equal(t, 60, engine.gotDuration)
	})

	t.Run("defaults the horizon to seven days", func(t *testing.T) {
		repo := newFakeGroupRepo(testGroup("g1", "a"))
		engine := &fakeEngine{}
		svc := newService(repo, engine)

		_, err := svc.CalculateBestTimes("g1", 0)
		require.NoError(t, err)
		assert.Equal(t, groupTestNow.AddDate(0, 0, 7), engine.gotEnd)
	})

	t.Run("keeps only the top candidates and resets votes", func(t *testing.T) {
		grp := testGroup("g1", "a", "b")
		grp.ProposedTimes = []models.ProposedTime{{
			Date:      base.AddDate(0, 0, -1),
			StartTime: "18:00",
			Votes:     []models.Vote{{UserID: "a", Vote: models.VoteYes}},
		}}
		repo := newFakeGroupRepo(grp)

		slots := make([]models.CandidateSlot, 0, 7)
		for i := 0; i < 7; i++ {
			slots = append(slots, candidate(base.Add(time.Duration(i)*time.Hour), 1020-i, "a", "b"))
		}
		svc := newService(repo, &fakeEngine{slots: slots})

		updated, err := svc.CalculateBestTimes("g1", 7)
		require.NoError(t, err)
		require.Len(t, updated.ProposedTimes, 5)
		for i, pt := range updated.ProposedTimes {
			assert.Equal(t, slots[i].SlotStart, pt.Date)
			assert.Equal(t, slots[i].StartTimeLabel, pt.StartTime)
			assert.Equal(t, slots[i].AvailableMembers, pt.AvailableMembers)
			assert.Empty(t, pt.Votes, "fresh proposals carry no votes")
		}
	})

	t.Run("missing group", func(t *testing.T) {
		svc := newService(newFakeGroupRepo(), &fakeEngine{})

		_, err := svc.CalculateBestTimes("missing", 7)
		assert.ErrorIs(t, err, ErrGroupNotFound)
	})
}

func TestVote(t *testing.T) {
	base := time.Date(2026, 3, 6, 18, 0, 0, 0, time.UTC)

	withProposal := func() models.Group {
		grp := testGroup("g1", "a", "b")
		grp.ProposedTimes = []models.ProposedTime{{
			Date:      base,
			StartTime: "18:00",
			Votes:     []models.Vote{},
		}}
		return grp
	}

	t.Run("records a vote", func(t *testing.T) {
		repo := newFakeGroupRepo(withProposal())
		svc := newService(repo, &fakeEngine{})

		grp, err := svc.Vote("g1", "a", 0, models.VoteYes)
		require.NoError(t, err)
		assert.Equal(t, []models.Vote{{UserID: "a", Vote: models.VoteYes}}, grp.ProposedTimes[0].Votes)
	})

	t.Run("revote replaces the prior vote", func(t *testing.T) {
		repo := newFakeGroupRepo(withProposal())
		svc := newService(repo, &fakeEngine{})

		_, err := svc.Vote("g1", "a", 0, models.VoteYes)
		require.NoError(t, err)
		_, err = svc.Vote("g1", "b", 0, models.VoteMaybe)
		require.NoError(t, err)
		grp, err := svc.Vote("g1", "a", 0, models.VoteNo)
		require.NoError(t, err)

		assert.Equal(t, []models.Vote{
			{UserID: "b", Vote: models.VoteMaybe},
			{UserID: "a", Vote: models.VoteNo},
		}, grp.ProposedTimes[0].Votes)
	})

	t.Run("rejects an unknown vote value", func(t *testing.T) {
		repo := newFakeGroupRepo(withProposal())
		svc := newService(repo, &fakeEngine{})

		_, err := svc.Vote("g1", "a", 0, "perhaps")
		assert.ErrorIs(t, err, ErrInvalidVote)
		assert.Zero(t, repo.updateCalls, "invalid votes never reach the store")
	})

	t.Run("rejects an out-of-range index", func(t *testing.T) {
		repo := newFakeGroupRepo(withProposal())
		svc := newService(repo, &fakeEngine{})

		for _, idx := range []int{-1, 1} {
			_, err := svc.Vote("g1", "a", idx, models.VoteYes)
			assert.ErrorIs(t, err, ErrProposedTimeNotFound)
		}
	})
}

func TestUpdateWithRetry(t *testing.T) {
	t.Run("retries through version conflicts", func(t *testing.T) {
		repo := newFakeGroupRepo(testGroup("g1", "a"))
		repo.conflictsLeft = 2
		svc := newService(repo, &fakeEngine{})

		grp, err := svc.AddMember("g1", "b")
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, grp.MemberIDs())
		assert.Equal(t, 3, repo.updateCalls)
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		repo := newFakeGroupRepo(testGroup("g1", "a"))
		repo.conflictsLeft = 3
		svc := newService(repo, &fakeEngine{})

		_, err := svc.AddMember("g1", "b")
		assert.ErrorIs(t, err, groupRepo.ErrVersionConflict)
	})
}
