package group

import (
	"time"

	groupRepo "synkt/database/repository/group"
	"synkt/models"
	"synkt/services/scheduling"
)

// GroupService manages groups, their proposed meeting times and votes.
type GroupService interface {
	Create(name, createdBy string, memberIDs []string) (*models.Group, error)
	GetByID(id string) (*models.Group, error)
	GetByUserID(userID string) ([]models.Group, error)
	AddMember(groupID, userID string) (*models.Group, error)
	// CalculateBestTimes runs the matching engine over the next N days
	// and replaces the group's proposed times with the top candidates.
	CalculateBestTimes(groupID string, days int) (*models.Group, error)
	// Vote records a member's vote on a proposed time, replacing any
	// prior vote by the same member on that time.
	Vote(groupID, userID string, timeIndex int, vote string) (*models.Group, error)
}

// DefaultGroupService implements GroupService.
type DefaultGroupService struct {
	Repo   groupRepo.GroupRepository
	Engine scheduling.Engine
	// DurationMinutes is the meeting length used when calculating best
	// times; zero means 60.
	DurationMinutes int
	// ProposedTimesLimit caps how many ranked candidates are persisted;
	// zero means 5.
	ProposedTimesLimit int
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}
