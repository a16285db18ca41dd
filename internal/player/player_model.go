package player

import (
	"time"

	"gorm.io/gorm"
)

// Player is a scouting profile. Owned by the registering user; ownership is
// checked against the acting user on every read of a specific profile.
type Player struct {
	gorm.Model
	UserID        uint   `gorm:"index;not null" json:"user_id"`
	Name          string `gorm:"size:100;not null" json:"name"`
	Team          string `gorm:"size:100" json:"team"`
	Role          string `gorm:"size:50" json:"role"`
	Goals         int    `gorm:"default:0" json:"goals"`
	Assists       int    `gorm:"default:0" json:"assists"`
	MatchesPlayed int    `gorm:"default:0" json:"matches_played"`
}

// PlayerParent links a player profile to a parent user.
type PlayerParent struct {
	gorm.Model
	PlayerID uint `gorm:"not null;uniqueIndex:idx_player_parent" json:"player_id"`
	ParentID uint `gorm:"not null;uniqueIndex:idx_player_parent" json:"parent_id"`
}

// Access request statuses. Any status may be set by the player's owner;
// there are no enforced transitions between them.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

// AccessRequest is a coach's request to view a player's profile.
type AccessRequest struct {
	gorm.Model
	CoachID  uint   `gorm:"not null;uniqueIndex:idx_coach_player" json:"coach_id"`
	PlayerID uint   `gorm:"not null;uniqueIndex:idx_coach_player" json:"player_id"`
	Status   string `gorm:"size:20;default:pending" json:"status"`
}

func ValidRequestStatus(s string) bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	}
	return false
}

type CreatePlayerRequest struct {
	Name    string `json:"name" binding:"required" example:"Marco Verdi"`
	Team    string `json:"team" binding:"required" example:"AC Pisa U16"`
	Role    string `json:"role" binding:"required" example:"striker"`
	Goals   int    `json:"goals" example:"12"`
	Assists int    `json:"assists" example:"4"`
}

type AddParentRequest struct {
	Email string `json:"email" binding:"required,email" example:"parent@example.com"`
}

type UpdateAccessRequestStatus struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

type PlayerResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Team          string    `json:"team"`
	Role          string    `json:"role"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	MatchesPlayed int       `json:"matches_played"`
	CreatedAt     time.Time `json:"created_at"`
}

func FilterPlayerRecord(p *Player) PlayerResponse {
	return PlayerResponse{
		ID:            p.ID,
		Name:          p.Name,
		Team:          p.Team,
		Role:          p.Role,
		Goals:         p.Goals,
		Assists:       p.Assists,
		MatchesPlayed: p.MatchesPlayed,
		CreatedAt:     p.CreatedAt,
	}
}

func FilterPlayerRecords(players []Player) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, FilterPlayerRecord(&players[i]))
	}
	return out
}
