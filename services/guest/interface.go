package guest

import (
	userRepo "grandhaven/database/repository/user"
	"grandhaven/models"

	"github.com/go-redis/redis/v8"
)

// AuthResult is returned from a successful registration or login.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// GuestService manages guest and employee accounts and their sessions.
type GuestService interface {
	Register(name, email, password, phone string) (*AuthResult, error)
	RegisterEmployee(name, email, password, phone string, role models.Role) (*AuthResult, error)
	Login(email, password string) (*AuthResult, error)
	Logout(token string) error
	GetProfile(id string) (*models.User, error)
	ListEmployees(role models.Role) ([]models.User, error)
}

// DefaultGuestService implements GuestService. Sessions are tracked as token
// hashes in the auth cache so a logout revokes the token before it expires.
type DefaultGuestService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}
