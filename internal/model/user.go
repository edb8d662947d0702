package model

import "time"

// User roles
const (
	RoleAdmin     = "admin"
	RoleDoctor    = "doctor"
	RoleReception = "reception"
	RoleNurse     = "nurse"
)

// DefaultResetPassword is the fixed value an admin password reset applies.
const DefaultResetPassword = "123456"

// User represents a staff account. Usernames are unique across active and
// deactivated accounts alike; accounts are deactivated rather than deleted.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password"`
	FullName     string    `json:"full_name" db:"full_name"`
	Role         string    `json:"role" db:"role"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type CreateUserRequest struct {
	Username        string `json:"username" binding:"required"`
	FullName        string `json:"full_name" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=admin doctor reception nurse"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	IsActive        *bool  `json:"is_active"`
}

type UpdateUserRequest struct {
	Username *string `json:"username"`
	FullName *string `json:"full_name"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin doctor reception nurse"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	IsActive *bool   `json:"is_active"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed token plus the authenticated identity.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RoleDistribution is one row of the active-users-by-role breakdown.
type RoleDistribution struct {
	Role  string `json:"role" db:"role"`
	Count int    `json:"count" db:"count"`
}

// UserStats summarizes account activity for the users page.
type UserStats struct {
	TotalUsers    int `json:"total_users" db:"total_users"`
	ActiveUsers   int `json:"active_users" db:"active_users"`
	NewUsersMonth int `json:"new_users_month" db:"new_users_month"`
}
