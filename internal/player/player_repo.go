package player

import (
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/internal/user"
)

type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetPlayerByID(id uint) (*Player, error)
	GetPlayersByUserID(userID uint) ([]Player, error)
	GetAllPlayers() ([]Player, error)
	SearchPlayers(name, team, role string) ([]Player, error)

	GetUserByID(id uint) (*user.User, error)
	GetUserByEmail(email string) (*user.User, error)

	CreateAccessRequest(req *AccessRequest) error
	GetAccessRequestByID(id uint) (*AccessRequest, error)
	GetAccessRequestByPair(coachID, playerID uint) (*AccessRequest, error)
	GetAccessRequestsForUser(userID uint) ([]AccessRequest, error)
	UpdateAccessRequest(req *AccessRequest) error

	CreatePlayerParent(link *PlayerParent) error
	GetPlayerParent(playerID, parentID uint) (*PlayerParent, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) CreatePlayer(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetPlayersByUserID(userID uint) ([]Player, error) {
	var players []Player
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&players).Error
	return players, err
}

func (r *playerRepository) GetAllPlayers() ([]Player, error) {
	var players []Player
	err := r.db.Order("created_at DESC").Find(&players).Error
	return players, err
}

// SearchPlayers filters on any combination of the three fields: substring
// match on name and team, exact match on role. Empty filters are skipped.
func (r *playerRepository) SearchPlayers(name, team, role string) ([]Player, error) {
	query := r.db.Model(&Player{})

	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}
	if team != "" {
		query = query.Where("team ILIKE ?", "%"+team+"%")
	}
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var players []Player
	err := query.Order("created_at DESC").Find(&players).Error
	return players, err
}

func (r *playerRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *playerRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *playerRepository) CreateAccessRequest(req *AccessRequest) error {
	return r.db.Create(req).Error
}

func (r *playerRepository) GetAccessRequestByID(id uint) (*AccessRequest, error) {
	var req AccessRequest
	if err := r.db.First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *playerRepository) GetAccessRequestByPair(coachID, playerID uint) (*AccessRequest, error) {
	var req AccessRequest
	if err := r.db.Where("coach_id = ? AND player_id = ?", coachID, playerID).First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// GetAccessRequestsForUser returns requests the user sent as a coach plus
// requests targeting any player the user owns.
func (r *playerRepository) GetAccessRequestsForUser(userID uint) ([]AccessRequest, error) {
	var requests []AccessRequest
	err := r.db.
		Where("coach_id = ?", userID).
		Or("player_id IN (?)", r.db.Model(&Player{}).Select("id").Where("user_id = ?", userID)).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *playerRepository) UpdateAccessRequest(req *AccessRequest) error {
	return r.db.Save(req).Error
}

func (r *playerRepository) CreatePlayerParent(link *PlayerParent) error {
	return r.db.Create(link).Error
}

func (r *playerRepository) GetPlayerParent(playerID, parentID uint) (*PlayerParent, error) {
	var link PlayerParent
	if err := r.db.Where("player_id = ? AND parent_id = ?", playerID, parentID).First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}
