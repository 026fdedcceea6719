package guest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"grandhaven/models"
	"grandhaven/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Register creates a guest account and signs it in.
func (s *DefaultGuestService) Register(name, email, password, phone string) (*AuthResult, error) {
	return s.register(name, email, password, phone, models.RoleGuest)
}

// RegisterEmployee creates a staff-class account. The caller is responsible
// for having checked the admin role at the boundary.
func (s *DefaultGuestService) RegisterEmployee(name, email, password, phone string, role models.Role) (*AuthResult, error) {
	if !role.IsStaff() {
		return nil, utils.ValidationError(fmt.Sprintf("role %q is not an employee role", role))
	}
	return s.register(name, email, password, phone, role)
}

func (s *DefaultGuestService) register(name, email, password, phone string, role models.Role) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, utils.ValidationError("name and email are required")
	}
	if len(password) < 8 {
		return nil, utils.ValidationError("password must be at least 8 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Role:         role,
	}
	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

// Login verifies credentials and issues a session token.
func (s *DefaultGuestService) Login(email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		// Same response for unknown email and bad password.
		return nil, utils.ValidationError("invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, utils.ValidationError("invalid email or password")
	}
	return s.issueToken(user)
}

func (s *DefaultGuestService) issueToken(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user.ID, string(user.Role), tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.AuthCache.Set(ctx, sessionKey(token), user.ID, tokenTTL).Err(); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Logout revokes the session token.
func (s *DefaultGuestService) Logout(token string) error {
	if s.AuthCache == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.AuthCache.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// GetProfile fetches an account by ID.
func (s *DefaultGuestService) GetProfile(id string) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// ListEmployees lists staff accounts by role.
func (s *DefaultGuestService) ListEmployees(role models.Role) ([]models.User, error) {
	if !role.IsStaff() {
		return nil, utils.ValidationError(fmt.Sprintf("role %q is not an employee role", role))
	}
	return s.Repo.ListByRole(role)
}

func sessionKey(token string) string {
	return "session:" + utils.HashToken(token)
}
