package user

import (
	"time"

	"gorm.io/gorm"
)

// Roles a user can register with.
const (
	RolePlayer = "player"
	RoleParent = "parent"
	RoleCoach  = "coach"
	RoleScout  = "scout"
)

type User struct {
	gorm.Model
	FirstName   string    `gorm:"size:50;not null" json:"first_name"`
	LastName    string    `gorm:"size:50;not null" json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Email       string    `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	Role        string    `gorm:"size:20;not null" json:"role"`
	Team        string    `gorm:"size:100" json:"team"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Age returns the user's age in whole years as of now.
func (u *User) Age() int {
	return AgeAt(u.DateOfBirth, time.Now())
}

// AgeAt computes age in whole years at the given reference time.
func AgeAt(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}

// ValidRole reports whether r is one of the registration roles.
func ValidRole(r string) bool {
	switch r {
	case RolePlayer, RoleParent, RoleCoach, RoleScout:
		return true
	}
	return false
}
