package auth

import (
	"time"

	"github.com/rossim-dev/scoutbase/internal/user"
)

// RegisterRequest is the primary registration payload. Fields are validated
// by hand so the response can name every missing field at once.
type RegisterRequest struct {
	FirstName   string `json:"first_name" example:"Mario"`
	LastName    string `json:"last_name" example:"Rossi"`
	DateOfBirth string `json:"date_of_birth" example:"2008-03-21"`
	Email       string `json:"email" example:"mario@example.com"`
	Password    string `json:"password" example:"password123"`
	Team        string `json:"team,omitempty" example:"US Livorno U17"`
}

// LegacyRegisterRequest is the older registration payload kept behind its
// own endpoint: no date of birth and no age gate.
type LegacyRegisterRequest struct {
	Username string `json:"username" binding:"required" example:"mario_r"`
	Email    string `json:"email" binding:"required,email" example:"mario@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"mario@example.com"`
	Password string `json:"password" example:"password123"`
}

// SessionResponse is returned by register and login on success.
type SessionResponse struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// CheckAuthResponse reports the current session identity to the front end.
type CheckAuthResponse struct {
	Authenticated bool      `json:"authenticated"`
	User          *UserInfo `json:"user,omitempty"`
}

type UserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Team      string    `json:"team"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"created_at"`
}

func FilterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Team:      u.Team,
		Age:       u.Age(),
		CreatedAt: u.CreatedAt,
	}
}
