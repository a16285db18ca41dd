package player

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/internal/middleware"
	"github.com/rossim-dev/scoutbase/internal/user"
	"github.com/rossim-dev/scoutbase/pkg/responses"
	"github.com/rossim-dev/scoutbase/pkg/validator"
)

type PlayerController struct {
	repo PlayerRepository
}

func NewPlayerController(repo PlayerRepository) *PlayerController {
	return &PlayerController{repo: repo}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		responses.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// @Summary      Create a player profile
// @Description  Create a player owned by the acting user. Goals and assists default to 0.
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        player  body  CreatePlayerRequest  true  "Player details"
// @Success      201  {object} map[string]interface{} "Created player"
// @Failure      400  {object} responses.ErrorResponse "Missing required fields"
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/players [post]
func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Missing required fields",
			"fields": validator.ParseError(err),
		})
		return
	}

	p := &Player{
		UserID:  actorID,
		Name:    req.Name,
		Team:    req.Team,
		Role:    req.Role,
		Goals:   req.Goals,
		Assists: req.Assists,
	}

	if err := pc.repo.CreatePlayer(p); err != nil {
		log.Printf("CreatePlayer failed: %v", err)
		responses.InternalServerError(c, err.Error())
		return
	}

	log.Printf("Player created: %s", p.Name)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Player created successfully",
		"player":  FilterPlayerRecord(p),
	})
}

// @Summary      List my players
// @Description  List player profiles owned by the acting user, newest first.
// @Tags         Players
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array} PlayerResponse
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/players [get]
func (pc *PlayerController) GetMyPlayers(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	players, err := pc.repo.GetPlayersByUserID(actorID)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, FilterPlayerRecords(players))
}

// @Summary      List all players
// @Description  The scouting view: every player profile across all owners, newest first.
// @Tags         Players
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array} PlayerResponse
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/players/all [get]
func (pc *PlayerController) GetAllPlayers(c *gin.Context) {
	players, err := pc.repo.GetAllPlayers()
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, FilterPlayerRecords(players))
}

// @Summary      Search players
// @Description  Case-insensitive substring match on name and team, exact match on role. Filters combine with AND; empty filters are skipped.
// @Tags         Players
// @Produce      json
// @Param        name  query  string  false  "Name substring"
// @Param        team  query  string  false  "Team substring"
// @Param        role  query  string  false  "Exact role"
// @Success      200  {array} PlayerResponse
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/players/search [get]
func (pc *PlayerController) SearchPlayers(c *gin.Context) {
	name := c.Query("name")
	team := c.Query("team")
	role := c.Query("role")

	players, err := pc.repo.SearchPlayers(name, team, role)
	if err != nil {
		log.Printf("SearchPlayers failed: %v", err)
		responses.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, FilterPlayerRecords(players))
}

// @Summary      Get a player
// @Description  Fetch a player profile by ID. Only the owner may view it.
// @Tags         Players
// @Security     BearerAuth
// @Produce      json
// @Param        player_id  path  int  true  "Player ID"
// @Success      200  {object} PlayerResponse
// @Failure      403  {object} responses.ErrorResponse "Not the owner"
// @Failure      404  {object} responses.ErrorResponse
// @Router       /api/players/{player_id} [get]
func (pc *PlayerController) GetPlayer(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	playerID, ok := parseIDParam(c, "player_id")
	if !ok {
		return
	}

	p, err := pc.repo.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Player")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}

	if p.UserID != actorID {
		responses.Forbidden(c, "")
		return
	}

	c.JSON(http.StatusOK, FilterPlayerRecord(p))
}

// @Summary      Request access to a player
// @Description  A coach or scout asks the player's owner for access. One request per (coach, player) pair.
// @Tags         Access requests
// @Security     BearerAuth
// @Produce      json
// @Param        player_id  path  int  true  "Player ID"
// @Success      201  {object} AccessRequest
// @Failure      400  {object} responses.ErrorResponse "Request already exists"
// @Failure      404  {object} responses.ErrorResponse
// @Router       /api/players/{player_id}/access-requests [post]
func (pc *PlayerController) CreateAccessRequest(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	playerID, ok := parseIDParam(c, "player_id")
	if !ok {
		return
	}

	if _, err := pc.repo.GetPlayerByID(playerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Player")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}

	if _, err := pc.repo.GetAccessRequestByPair(actorID, playerID); err == nil {
		responses.BadRequest(c, "Access request already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.InternalServerError(c, err.Error())
		return
	}

	req := &AccessRequest{
		CoachID:  actorID,
		PlayerID: playerID,
		Status:   RequestPending,
	}
	if err := pc.repo.CreateAccessRequest(req); err != nil {
		log.Printf("CreateAccessRequest failed: %v", err)
		responses.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, req)
}

// @Summary      List access requests
// @Description  Requests the acting user sent as a coach plus requests targeting the user's players.
// @Tags         Access requests
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array} AccessRequest
// @Failure      500  {object} responses.ErrorResponse
// @Router       /api/access-requests [get]
func (pc *PlayerController) ListAccessRequests(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	requests, err := pc.repo.GetAccessRequestsForUser(actorID)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, requests)
}

// @Summary      Update an access request
// @Description  The owner of the target player sets the request status. Any of the three statuses may be set.
// @Tags         Access requests
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request_id  path  int  true  "Access request ID"
// @Param        status  body  UpdateAccessRequestStatus  true  "New status"
// @Success      200  {object} AccessRequest
// @Failure      400  {object} responses.ErrorResponse "Unknown status"
// @Failure      403  {object} responses.ErrorResponse "Not the player's owner"
// @Failure      404  {object} responses.ErrorResponse
// @Router       /api/access-requests/{request_id} [put]
func (pc *PlayerController) UpdateAccessRequest(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	requestID, ok := parseIDParam(c, "request_id")
	if !ok {
		return
	}

	var body UpdateAccessRequestStatus
	if err := c.ShouldBindJSON(&body); err != nil {
		responses.BadRequest(c, "Status is required")
		return
	}
	if !ValidRequestStatus(body.Status) {
		responses.BadRequest(c, "Status must be pending, approved or rejected")
		return
	}

	req, err := pc.repo.GetAccessRequestByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Access request")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}

	target, err := pc.repo.GetPlayerByID(req.PlayerID)
	if err != nil {
		responses.InternalServerError(c, err.Error())
		return
	}
	if target.UserID != actorID {
		responses.Forbidden(c, "Only the player's owner can update this request")
		return
	}

	req.Status = body.Status
	if err := pc.repo.UpdateAccessRequest(req); err != nil {
		log.Printf("UpdateAccessRequest failed: %v", err)
		responses.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, req)
}

// @Summary      Link a parent to a player
// @Description  The player's owner links a registered parent user by email. One link per (player, parent) pair.
// @Tags         Players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        player_id  path  int  true  "Player ID"
// @Param        parent  body  AddParentRequest  true  "Parent email"
// @Success      201  {object} PlayerParent
// @Failure      400  {object} responses.ErrorResponse "Not a parent account or already linked"
// @Failure      403  {object} responses.ErrorResponse
// @Failure      404  {object} responses.ErrorResponse
// @Router       /api/players/{player_id}/parents [post]
func (pc *PlayerController) AddParent(c *gin.Context) {
	actorID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	playerID, ok := parseIDParam(c, "player_id")
	if !ok {
		return
	}

	var body AddParentRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		responses.BadRequest(c, "Parent email is required")
		return
	}

	p, err := pc.repo.GetPlayerByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Player")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}
	if p.UserID != actorID {
		responses.Forbidden(c, "")
		return
	}

	parent, err := pc.repo.GetUserByEmail(body.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Parent user")
			return
		}
		responses.InternalServerError(c, err.Error())
		return
	}
	if parent.Role != user.RoleParent {
		responses.BadRequest(c, "User is not a parent account")
		return
	}

	if _, err := pc.repo.GetPlayerParent(playerID, parent.ID); err == nil {
		responses.BadRequest(c, "Parent already linked to this player")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		responses.InternalServerError(c, err.Error())
		return
	}

	link := &PlayerParent{PlayerID: playerID, ParentID: parent.ID}
	if err := pc.repo.CreatePlayerParent(link); err != nil {
		log.Printf("CreatePlayerParent failed: %v", err)
		responses.InternalServerError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, link)
}
