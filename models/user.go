package models

import "time"

// Role identifies the actor class an authenticated principal belongs to.
// Authorization is an explicit allowed-role set checked at the route boundary;
// the core services only take a role where it changes transition semantics.
type Role string

const (
	RoleGuest   Role = "guest"
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// StaffRoles is the set of roles allowed to operate on any booking or order.
func StaffRoles() []Role {
	return []Role{RoleStaff, RoleManager, RoleAdmin}
}

// IsStaff reports whether the role belongs to hotel personnel.
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleManager || r == RoleAdmin
}

// User represents a guest or an employee account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
