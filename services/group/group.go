package group

import (
	"errors"
	"fmt"
	"time"

	groupRepo "synkt/database/repository/group"
	"synkt/models"
	"synkt/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxUpdateAttempts bounds optimistic-concurrency retries on a group's
// read-modify-write cycle.
const maxUpdateAttempts = 3

const (
	defaultDurationMinutes    = 60
	defaultProposedTimesLimit = 5
	defaultCalculationDays    = 7
	defaultMaxMembers         = 6
)

func (s *DefaultGroupService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultGroupService) durationMinutes() int {
	if s.DurationMinutes > 0 {
		return s.DurationMinutes
	}
	return defaultDurationMinutes
}

func (s *DefaultGroupService) proposedTimesLimit() int {
	if s.ProposedTimesLimit > 0 {
		return s.ProposedTimesLimit
	}
	return defaultProposedTimesLimit
}

// Create registers a new group with the given members. The creator is
// not implicitly added; pass their id in memberIDs if they participate.
func (s *DefaultGroupService) Create(name, createdBy string, memberIDs []string) (*models.Group, error) {
	now := s.now()
	members := make([]models.GroupMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		members = append(members, models.GroupMember{
			UserID:   id,
			JoinedAt: now,
		})
	}

	grp := &models.Group{
		ID:            uuid.New().String(),
		Name:          name,
		CreatedBy:     createdBy,
		Members:       members,
		MaxMembers:    defaultMaxMembers,
		ProposedTimes: []models.ProposedTime{},
	}
	if err := s.Repo.Create(grp); err != nil {
		return nil, err
	}
	return grp, nil
}

// GetByID retrieves a group, failing with ErrGroupNotFound if absent.
func (s *DefaultGroupService) GetByID(id string) (*models.Group, error) {
	grp, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if grp == nil {
		return nil, fmt.Errorf("group %s: %w", id, ErrGroupNotFound)
	}
	return grp, nil
}

// GetByUserID retrieves all groups the user created or belongs to.
func (s *DefaultGroupService) GetByUserID(userID string) ([]models.Group, error) {
	return s.Repo.GetByUserID(userID)
}

// AddMember appends a member to the group, respecting its capacity.
func (s *DefaultGroupService) AddMember(groupID, userID string) (*models.Group, error) {
	return s.updateWithRetry(groupID, func(grp *models.Group) error {
		for _, m := range grp.Members {
			if m.UserID == userID {
				return fmt.Errorf("group %s: %w", groupID, ErrAlreadyMember)
			}
		}
		if grp.MaxMembers > 0 && len(grp.Members) >= grp.MaxMembers {
			return fmt.Errorf("group %s: %w", groupID, ErrGroupFull)
		}
		grp.Members = append(grp.Members, models.GroupMember{
			UserID:   userID,
			JoinedAt: s.now(),
		})
		return nil
	})
}

// CalculateBestTimes asks the engine for ranked candidates over the next
// N days and replaces the group's proposed-times list wholesale with the
// top candidates. Existing votes are discarded with the old list.
func (s *DefaultGroupService) CalculateBestTimes(groupID string, days int) (*models.Group, error) {
	logger := utils.GetLogger()

	if days <= 0 {
		days = defaultCalculationDays
	}

	grp, err := s.GetByID(groupID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result, err := s.Engine.FindBestTimes(grp.MemberIDs(), now, now.AddDate(0, 0, days), s.durationMinutes())
	if err != nil {
		return nil, fmt.Errorf("calculateBestTimes: %w", err)
	}
	if len(result.DroppedIDs) > 0 {
		logger.Warn("group members without user records excluded from matching",
			zap.String("groupId", groupID), zap.Strings("userIds", result.DroppedIDs))
	}

	slots := result.Slots
	if limit := s.proposedTimesLimit(); len(slots) > limit {
		slots = slots[:limit]
	}

	proposed := make([]models.ProposedTime, 0, len(slots))
	for _, slot := range slots {
		proposed = append(proposed, models.ProposedTime{
			Date:             slot.SlotStart,
			StartTime:        slot.StartTimeLabel,
			AvailableMembers: slot.AvailableMembers,
			Votes:            []models.Vote{},
		})
	}

	return s.updateWithRetry(groupID, func(grp *models.Group) error {
		grp.ProposedTimes = proposed
		return nil
	})
}

// Vote records a member's vote on a proposed time. A prior vote by the
// same member on that time is removed first, so each member holds at
// most one vote per proposed time.
func (s *DefaultGroupService) Vote(groupID, userID string, timeIndex int, vote string) (*models.Group, error) {
	if !models.IsValidVote(vote) {
		return nil, fmt.Errorf("vote %q: %w", vote, ErrInvalidVote)
	}

	return s.updateWithRetry(groupID, func(grp *models.Group) error {
		if timeIndex < 0 || timeIndex >= len(grp.ProposedTimes) {
			return fmt.Errorf("group %s index %d: %w", groupID, timeIndex, ErrProposedTimeNotFound)
		}

		pt := &grp.ProposedTimes[timeIndex]
		kept := pt.Votes[:0]
		for _, v := range pt.Votes {
			if v.UserID != userID {
				kept = append(kept, v)
			}
		}
		pt.Votes = append(kept, models.Vote{UserID: userID, Vote: vote})
		return nil
	})
}

// updateWithRetry runs a read-modify-write on the group, retrying on
// optimistic-concurrency conflicts. Serialization is per group id; there
// is no global lock.
func (s *DefaultGroupService) updateWithRetry(groupID string, mutate func(*models.Group) error) (*models.Group, error) {
	var lastErr error
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		grp, err := s.GetByID(groupID)
		if err != nil {
			return nil, err
		}

		if err := mutate(grp); err != nil {
			return nil, err
		}

		if err := s.Repo.Update(grp); err != nil {
			if errors.Is(err, groupRepo.ErrVersionConflict) {
				lastErr = err
				continue
			}
			return nil, err
		}
		return grp, nil
	}
	return nil, fmt.Errorf("updateWithRetry: group %s: %w", groupID, lastErr)
}
