package groupRepo

import (
	"errors"

	"synkt/models"
)

// ErrVersionConflict is returned by Update when the group was modified
// since it was read. Callers re-read and retry.
var ErrVersionConflict = errors.New("group was modified concurrently")

// GroupRepository defines methods for group data access.
type GroupRepository interface {
	// GetByID retrieves a group by its unique ID. Returns (nil, nil) when
	// no group exists.
	GetByID(id string) (*models.Group, error)
	// GetByUserID retrieves all groups the user created or belongs to.
	GetByUserID(userID string) ([]models.Group, error)
	// Create inserts a new group record.
	Create(group *models.Group) error
	// Update persists the group, matching on (id, version) and bumping
	// the version. Returns ErrVersionConflict on a stale write.
	Update(group *models.Group) error
	// Delete removes a group record by its ID.
	Delete(id string) error
}
