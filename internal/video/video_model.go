package video

import (
	"time"

	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/internal/models"
)

// Storage modes for a video record.
const (
	TypeFile    = "file"
	TypeYouTube = "youtube"
)

// Video records either an uploaded file or an external YouTube link for a
// player. Rows are immutable once created.
type Video struct {
	gorm.Model
	Title       string             `gorm:"size:200;not null" json:"title"`
	Filename    string             `gorm:"size:255" json:"filename,omitempty"`
	VideoURL    string             `gorm:"size:500" json:"video_url,omitempty"`
	VideoType   string             `gorm:"size:20;not null;default:file" json:"video_type"`
	YouTubeID   string             `gorm:"size:20" json:"youtube_id,omitempty"`
	Duration    float64            `json:"duration"`
	Filesize    int64              `json:"filesize"`
	PlayerID    uint               `gorm:"index;not null" json:"player_id"`
	UserID      uint               `gorm:"index;not null" json:"user_id"`
	ActionType  string             `gorm:"size:50" json:"action_type,omitempty"`
	SkillRating *int               `json:"skill_rating,omitempty"`
	Tags        models.StringSlice `gorm:"type:jsonb" json:"tags"`
	Notes       string             `gorm:"type:text" json:"notes,omitempty"`
}

// VideoResponse is the serialized form returned by the upload and list
// endpoints. YouTubeID and Filename are mutually exclusive by type.
type VideoResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	YouTubeID   string    `json:"youtube_id,omitempty"`
	Filename    string    `json:"filename,omitempty"`
	UploadDate  time.Time `json:"upload_date"`
	Duration    float64   `json:"duration,omitempty"`
	Filesize    int64     `json:"filesize,omitempty"`
	ActionType  string    `json:"action_type,omitempty"`
	SkillRating *int      `json:"skill_rating,omitempty"`
	Tags        []string  `json:"tags"`
	Notes       string    `json:"notes,omitempty"`
}

func FilterVideoRecord(v *Video) VideoResponse {
	resp := VideoResponse{
		ID:          v.ID,
		Title:       v.Title,
		Type:        v.VideoType,
		UploadDate:  v.CreatedAt,
		Duration:    v.Duration,
		Filesize:    v.Filesize,
		ActionType:  v.ActionType,
		SkillRating: v.SkillRating,
		Tags:        v.Tags,
		Notes:       v.Notes,
	}
	if v.VideoType == TypeYouTube {
		resp.YouTubeID = v.YouTubeID
	} else {
		resp.Filename = v.Filename
	}
	return resp
}

func FilterVideoRecords(videos []Video) []VideoResponse {
	out := make([]VideoResponse, 0, len(videos))
	for i := range videos {
		out = append(out, FilterVideoRecord(&videos[i]))
	}
	return out
}
