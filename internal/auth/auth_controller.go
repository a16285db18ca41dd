package auth

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/config"
	"github.com/rossim-dev/scoutbase/internal/middleware"
	"github.com/rossim-dev/scoutbase/internal/player"
	"github.com/rossim-dev/scoutbase/internal/user"
	"github.com/rossim-dev/scoutbase/pkg/token"
	"github.com/rossim-dev/scoutbase/utils"
)

// Registration is open to anyone at least this old.
const MinRegistrationAge = 14

const dateLayout = "2006-01-02"

type AuthController struct {
	repo   AuthRepository
	config *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, config: cfg}
}

// establishSession issues a session token for the user and sets it as a
// cookie on the response.
func (ac *AuthController) establishSession(c *gin.Context, u *user.User) error {
	tok, err := token.GenerateSessionToken(u.ID, u.Role, ac.config.Session.Secret, ac.config.Session.ExpiryMinutes)
	if err != nil {
		return fmt.Errorf("session token generation failed: %w", err)
	}
	c.SetCookie(
		ac.config.Session.CookieName,
		tok,
		ac.config.Session.ExpiryMinutes*60,
		"/",
		"",
		false,
		true,
	)
	return nil
}

// @Summary      Register a new user
// @Description  Register with first/last name, date of birth, email and password. Creates an empty player profile and logs the user in.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  RegisterRequest  true  "Registration details"
// @Success      201  {object} SessionResponse "Registration successful"
// @Failure      400  {object} map[string]string "Validation error, underage, or duplicate email"
// @Failure      500  {object} map[string]string "Internal server error"
// @Router       /register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	missing := missingRegisterFields(&req)
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: " + strings.Join(missing, ", ")})
		return
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format"})
		return
	}

	if user.AgeAt(dob, time.Now()) < MinRegistrationAge {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("You must be at least %d years old to register", MinRegistrationAge)})
		return
	}

	email := strings.ToLower(req.Email)
	if _, err := ac.repo.GetUserByEmail(email); !errors.Is(err, gorm.ErrRecordNotFound) {
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	newUser := &user.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: dob,
		Email:       email,
		Password:    hashedPassword,
		Role:        user.RolePlayer,
		Team:        req.Team,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		log.Printf("CreateUser failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user profile"})
		return
	}

	profile := &player.Player{
		UserID: newUser.ID,
		Name:   newUser.FullName(),
		Team:   newUser.Team,
		Role:   user.RolePlayer,
	}
	if err := ac.repo.CreatePlayerProfile(profile); err != nil {
		log.Printf("CreatePlayerProfile failed for user %d: %v", newUser.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user profile"})
		return
	}

	if err := ac.establishSession(c, newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("User registered: %s", newUser.Email)
	c.JSON(http.StatusCreated, SessionResponse{
		Message:  "Registration successful",
		Redirect: "/dashboard",
	})
}

// @Summary      Register a new user (legacy)
// @Description  Older registration path kept for existing clients: username, email and password only, no age check.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body  LegacyRegisterRequest  true  "Registration details"
// @Success      201  {object} SessionResponse "Registration successful"
// @Failure      400  {object} map[string]string "Missing fields or duplicate email"
// @Failure      500  {object} map[string]string "Internal server error"
// @Router       /api/register [post]
func (ac *AuthController) RegisterLegacy(c *gin.Context) {
	var req LegacyRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	email := strings.ToLower(req.Email)
	if _, err := ac.repo.GetUserByEmail(email); !errors.Is(err, gorm.ErrRecordNotFound) {
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error hashing password"})
		return
	}

	newUser := &user.User{
		FirstName: req.Username,
		Email:     email,
		Password:  hashedPassword,
		Role:      user.RolePlayer,
	}

	if err := ac.repo.CreateUser(newUser); err != nil {
		log.Printf("CreateUser failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "User creation failed"})
		return
	}

	if err := ac.establishSession(c, newUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{
		Message:  "Registration successful",
		Redirect: "/",
	})
}

// @Summary      Login
// @Description  Authenticate with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        credentials  body  LoginRequest  true  "Login credentials"
// @Success      200  {object} SessionResponse "Login successful"
// @Failure      400  {object} map[string]string "Missing email or password"
// @Failure      401  {object} map[string]string "Invalid credentials"
// @Failure      500  {object} map[string]string "Internal server error"
// @Router       /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}

	foundUser, err := ac.repo.GetUserByEmail(strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password so the response never
			// reveals which field was wrong.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	if !utils.CheckPassword(foundUser.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := ac.establishSession(c, foundUser); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("User logged in: %s", foundUser.Email)
	c.JSON(http.StatusOK, SessionResponse{
		Message:  "Login successful",
		Redirect: "/dashboard",
	})
}

// @Summary      Logout
// @Description  Clears the session cookie and redirects to the landing page.
// @Tags         Auth
// @Security     BearerAuth
// @Success      302  "Redirect to landing page"
// @Failure      401  {object} map[string]string "No active session"
// @Router       /logout [get]
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(ac.config.Session.CookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// @Summary      Check authentication
// @Description  Reports whether the request carries a valid session and for whom. Used by the front end to gate UI.
// @Tags         Auth
// @Produce      json
// @Success      200  {object} CheckAuthResponse
// @Router       /api/check-auth [get]
func (ac *AuthController) CheckAuth(c *gin.Context) {
	tokenString := middleware.SessionToken(c, ac.config.Session.CookieName)
	if tokenString == "" {
		c.JSON(http.StatusOK, CheckAuthResponse{Authenticated: false})
		return
	}

	claims, err := token.ValidateSessionToken(tokenString, ac.config.Session.Secret)
	if err != nil {
		c.JSON(http.StatusOK, CheckAuthResponse{Authenticated: false})
		return
	}

	u, err := ac.repo.GetUserByID(claims.UserID)
	if err != nil {
		c.JSON(http.StatusOK, CheckAuthResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, CheckAuthResponse{
		Authenticated: true,
		User: &UserInfo{
			Name:  u.FullName(),
			Email: u.Email,
		},
	})
}

func missingRegisterFields(req *RegisterRequest) []string {
	var missing []string
	if req.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if req.LastName == "" {
		missing = append(missing, "last_name")
	}
	if req.DateOfBirth == "" {
		missing = append(missing, "date_of_birth")
	}
	if req.Email == "" {
		missing = append(missing, "email")
	}
	if req.Password == "" {
		missing = append(missing, "password")
	}
	return missing
}
