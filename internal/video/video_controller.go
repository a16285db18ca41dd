package video

import (
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/config"
	"github.com/rossim-dev/scoutbase/internal/middleware"
	"github.com/rossim-dev/scoutbase/pkg/responses"
)

type VideoController struct {
	repo   VideoRepository
	config *config.Config
}

func NewVideoController(repo VideoRepository, cfg *config.Config) *VideoController {
	return &VideoController{repo: repo, config: cfg}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// @Summary      Upload a video
// @Description  Attach a video to a player the acting user owns, either as an uploaded file (mp4/webm/ogg) or a YouTube link.
// @Tags         Videos
// @Security     BearerAuth
// @Accept       multipart/form-data
// @Produce      json
// @Param        player_id  path  int  true  "Player ID"
// @Param        title  formData  string  true  "Video title"
// @Param        source_type  formData  string  false  "file or url"  Enums(file, url)
// @Param        video  formData  file  false  "Video file (for source_type=file)"
// @Param        video_url  formData  string  false  "YouTube URL (for source_type=url)"
// @Param        action_type  formData  string  false  "Action shown in the clip"
// @Param        skill_rating  formData  int  false  "Skill rating"
// @Param        tags  formData  string  false  "Comma-separated tags"
// @Param        notes  formData  string  false  "Free-form notes"
// @Success      201  {object} map[string]interface{} "Created video"
// @Failure      400  {object} responses.ErrorResponse
// @Failure      404  {object} responses.ErrorResponse "Player not found or not owned"
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/players/{player_id}/videos [post]
func (vc *VideoController) UploadVideo(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	playerID, ok := parseIDParam(c, "player_id")
	if !ok {
		return
	}

	if _, err := vc.repo.GetPlayerOwnedBy(playerID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.SendError(c, http.StatusNotFound, "Player not found or unauthorized")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}

	title := c.PostForm("title")
	if title == "" {
		responses.BadRequest(c, "Video title is required")
		return
	}

	sourceType := c.DefaultPostForm("source_type", TypeFile)

	var skillRating *int
	if s := c.PostForm("skill_rating"); s != "" {
		if n, convErr := strconv.Atoi(s); convErr == nil {
			skillRating = &n
		}
	}
	var tags []string
	if t := c.PostForm("tags"); t != "" {
		for _, tag := range strings.Split(t, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}

	v := &Video{
		Title:       title,
		PlayerID:    playerID,
		UserID:      actorID,
		ActionType:  c.PostForm("action_type"),
		SkillRating: skillRating,
		Tags:        tags,
		Notes:       c.PostForm("notes"),
	}

	var filePath string
	if sourceType == TypeFile {
		fileHeader, fileErr := c.FormFile("video")
		if fileErr != nil {
			responses.BadRequest(c, "No video file provided")
			return
		}
		if fileHeader.Filename == "" {
			responses.BadRequest(c, "No selected file")
			return
		}
		// All validation happens before any byte is written.
		if !AllowedExtension(fileHeader.Filename) {
			responses.BadRequest(c, "File type not allowed")
			return
		}
		if !AllowedMIMEType(fileHeader.Header.Get("Content-Type")) {
			responses.BadRequest(c, "File content type not allowed")
			return
		}
		if fileHeader.Size > vc.config.Upload.MaxSizeBytes {
			responses.BadRequest(c, "File exceeds the maximum upload size")
			return
		}

		if err := EnsureUploadDir(vc.config.Upload.Dir); err != nil {
			responses.InternalServerError(c, "Could not create upload directory: "+err.Error())
			return
		}

		stored := StoredFilename(fileHeader.Filename)
		filePath = filepath.Join(vc.config.Upload.Dir, stored)
		if err := c.SaveUploadedFile(fileHeader, filePath); err != nil {
			responses.InternalServerError(c, "Could not save file: "+err.Error())
			return
		}

		v.VideoType = TypeFile
		v.Filename = stored
		v.Filesize = fileHeader.Size
	} else {
		videoURL := c.PostForm("video_url")
		if videoURL == "" {
			responses.BadRequest(c, "No video URL provided")
			return
		}
		youtubeID := YouTubeVideoID(videoURL)
		if youtubeID == "" {
			responses.BadRequest(c, "Only YouTube URLs are supported")
			return
		}

		v.VideoType = TypeYouTube
		v.VideoURL = videoURL
		v.YouTubeID = youtubeID
	}

	if err := vc.repo.CreateVideo(v); err != nil {
		// Do not leave orphaned bytes behind a failed insert.
		if filePath != "" {
			if rmErr := os.Remove(filePath); rmErr != nil {
				log.Printf("cleanup of %s failed: %v", filePath, rmErr)
			}
		}
		log.Printf("CreateVideo failed: %v", err)
		responses.InternalServerError(c, err.Error())
		return
	}

	log.Printf("Video record created: %d", v.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Video added successfully",
		"video":   FilterVideoRecord(v),
	})
}

// @Summary      Get a video
// @Description  Streams the bytes of a file-backed video, or returns the stored URL for a YouTube-backed one.
// @Tags         Videos
// @Security     BearerAuth
// @Produce      json
// @Param        player_id  path  int  true  "Player ID"
// @Param        video_id  path  int  true  "Video ID"
// @Success      200  "File stream or {url}"
// @Failure      403  {object} responses.ErrorResponse
// @Failure      404  {object} responses.ErrorResponse
// @Router       /api/players/{player_id}/videos/{video_id} [get]
func (vc *VideoController) GetVideo(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	playerID, ok := parseIDParam(c, "player_id")
	if !ok {
		return
	}
	videoID, ok := parseIDParam(c, "video_id")
	if !ok {
		return
	}

	v, err := vc.repo.GetVideoByID(videoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Video")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}

	if v.PlayerID != playerID || v.UserID != actorID {
		responses.Forbidden(c, "Unauthorized")
		return
	}

	switch v.VideoType {
	case TypeFile:
		c.File(filepath.Join(vc.config.Upload.Dir, v.Filename))
	case TypeYouTube:
		c.JSON(http.StatusOK, gin.H{"url": v.VideoURL})
	default:
		responses.InternalServerError(c, "Unknown video type")
	}
}

// @Summary      List a player's videos
// @Description  All videos for a player the acting user owns, with metadata.
// @Tags         Videos
// @Security     BearerAuth
// @Produce      json
// @Param        player_id  path  int  true  "Player ID"
// @Success      200  {array} VideoResponse
// @Failure      404  {object} responses.ErrorResponse "Player not found or not owned"
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/players/{player_id}/videos [get]
func (vc *VideoController) ListVideos(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	playerID, ok := parseIDParam(c, "player_id")
	if !ok {
		return
	}

	if _, err := vc.repo.GetPlayerOwnedBy(playerID, actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.SendError(c, http.StatusNotFound, "Player not found or unauthorized")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}

	videos, err := vc.repo.GetVideosByPlayerID(playerID)
	if err != nil {
		log.Printf("GetVideosByPlayerID failed: %v", err)
		responses.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, FilterVideoRecords(videos))
}
