package user

import "synkt/models"

// UserService manages user records and exposes the policy lookup the
// matching engine consumes.
type UserService interface {
	Create(u *models.User) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(u *models.User) (*models.User, error)
}
