package video

import (
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/internal/player"
)

type VideoRepository interface {
	CreateVideo(v *Video) error
	GetVideoByID(id uint) (*Video, error)
	GetVideosByPlayerID(playerID uint) ([]Video, error)
	GetPlayerOwnedBy(playerID, userID uint) (*player.Player, error)
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) CreateVideo(v *Video) error {
	return r.db.Create(v).Error
}

func (r *videoRepository) GetVideoByID(id uint) (*Video, error) {
	var v Video
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *videoRepository) GetVideosByPlayerID(playerID uint) ([]Video, error) {
	var videos []Video
	err := r.db.Where("player_id = ?", playerID).Order("created_at DESC").Find(&videos).Error
	return videos, err
}

// GetPlayerOwnedBy fetches a player only when it belongs to the given user.
func (r *videoRepository) GetPlayerOwnedBy(playerID, userID uint) (*player.Player, error) {
	var p player.Player
	if err := r.db.Where("id = ? AND user_id = ?", playerID, userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
