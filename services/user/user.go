package user

import (
	"fmt"

	userRepo "synkt/database/repository/user"
	"synkt/models"

	"github.com/google/uuid"
)

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Create validates and inserts a new user. An id is assigned when the
// caller leaves it empty.
func (s *DefaultUserService) Create(u *models.User) (*models.User, error) {
	if u.Email == "" || u.Name == "" {
		return nil, fmt.Errorf("%w: email and name are required", ErrInvalidUser)
	}
	if err := validateWorkHours(u.WorkStartHour, u.WorkEndHour); err != nil {
		return nil, err
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Timezone == "" {
		u.Timezone = "UTC"
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByID retrieves a user, failing with ErrUserNotFound if absent.
func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrUserNotFound)
	}
	return u, nil
}

// GetByEmail retrieves a user by email, failing with ErrUserNotFound if
// absent.
func (s *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("user %s: %w", email, ErrUserNotFound)
	}
	return u, nil
}

// Update validates and persists changes to an existing user.
func (s *DefaultUserService) Update(u *models.User) (*models.User, error) {
	if u.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidUser)
	}
	if err := validateWorkHours(u.WorkStartHour, u.WorkEndHour); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// validateWorkHours accepts the zero pair (meaning "use defaults") or a
// same-day window with start before end. Spanning midnight is not
// supported.
func validateWorkHours(start, end int) error {
	if start == 0 && end == 0 {
		return nil
	}
	if start < 0 || end > 24 || start >= end {
		return fmt.Errorf("%w (got %d-%d)", ErrInvalidWorkHours, start, end)
	}
	return nil
}
