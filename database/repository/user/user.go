package userRepo

import "grandhaven/models"

// UserRepository defines persistence for guest and employee accounts.
type UserRepository interface {
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	ListByRole(role models.Role) ([]models.User, error)
}
