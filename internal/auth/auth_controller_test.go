package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rossim-dev/scoutbase/config"
	"github.com/rossim-dev/scoutbase/internal/player"
	"github.com/rossim-dev/scoutbase/internal/user"
	"github.com/rossim-dev/scoutbase/pkg/token"
	"github.com/rossim-dev/scoutbase/utils"
)

type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) CreateUser(u *user.User) error {
	args := m.Called(u)
	return args.Error(0)
}

func (m *MockAuthRepository) GetUserByEmail(email string) (*user.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockAuthRepository) GetUserByID(id uint) (*user.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockAuthRepository) CreatePlayerProfile(p *player.Player) error {
	args := m.Called(p)
	return args.Error(0)
}

var _ AuthRepository = (*MockAuthRepository)(nil)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = "test-secret"
	cfg.Session.ExpiryMinutes = 60
	cfg.Session.CookieName = "scoutbase_session"
	return cfg
}

func setupAuthRouter(repo AuthRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ac := NewAuthController(repo, testConfig())
	r.POST("/register", ac.Register)
	r.POST("/api/register", ac.RegisterLegacy)
	r.POST("/login", ac.Login)
	r.GET("/api/check-auth", ac.CheckAuth)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegister_Success(t *testing.T) {
	repo := new(MockAuthRepository)
	repo.On("GetUserByEmail", "mario@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateUser", mock.AnythingOfType("*user.User")).Run(func(args mock.Arguments) {
		args.Get(0).(*user.User).ID = 7
	}).Return(nil)
	repo.On("CreatePlayerProfile", mock.AnythingOfType("*player.Player")).Return(nil)

	w := postJSON(setupAuthRouter(repo), "/register", map[string]string{
		"first_name":    "Mario",
		"last_name":     "Rossi",
		"date_of_birth": "2000-01-01",
		"email":         "Mario@Example.com",
		"password":      "password123",
		"team":          "US Livorno U17",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/dashboard", resp.Redirect)

	// A session cookie is set on successful registration.
	assert.Contains(t, w.Header().Get("Set-Cookie"), "scoutbase_session=")

	repo.AssertCalled(t, "CreatePlayerProfile", mock.MatchedBy(func(p *player.Player) bool {
		return p.UserID == 7 && p.Name == "Mario Rossi"
	}))
}

func TestRegister_Underage(t *testing.T) {
	repo := new(MockAuthRepository)

	dob := time.Now().AddDate(-13, 0, 0).Format("2006-01-02")
	w := postJSON(setupAuthRouter(repo), "/register", map[string]string{
		"first_name":    "Gio",
		"last_name":     "Bianchi",
		"date_of_birth": dob,
		"email":         "gio@example.com",
		"password":      "password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), fmt.Sprintf("at least %d years old", MinRegistrationAge))
	repo.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := new(MockAuthRepository)
	repo.On("GetUserByEmail", "taken@example.com").Return(&user.User{Email: "taken@example.com"}, nil)

	w := postJSON(setupAuthRouter(repo), "/register", map[string]string{
		"first_name":    "Mario",
		"last_name":     "Rossi",
		"date_of_birth": "2000-01-01",
		"email":         "taken@example.com",
		"password":      "password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
	repo.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestRegister_MissingFields(t *testing.T) {
	repo := new(MockAuthRepository)

	w := postJSON(setupAuthRouter(repo), "/register", map[string]string{
		"first_name": "Mario",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
	assert.Contains(t, w.Body.String(), "last_name")
	assert.Contains(t, w.Body.String(), "date_of_birth")
	repo.AssertNotCalled(t, "CreateUser", mock.Anything)
}

func TestRegister_BadDate(t *testing.T) {
	repo := new(MockAuthRepository)

	w := postJSON(setupAuthRouter(repo), "/register", map[string]string{
		"first_name":    "Mario",
		"last_name":     "Rossi",
		"date_of_birth": "01/01/2000",
		"email":         "mario@example.com",
		"password":      "password123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid date format")
}

func TestRegisterLegacy_Success(t *testing.T) {
	repo := new(MockAuthRepository)
	repo.On("GetUserByEmail", "mario@example.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("CreateUser", mock.AnythingOfType("*user.User")).Return(nil)

	w := postJSON(setupAuthRouter(repo), "/api/register", map[string]string{
		"username": "mario_r",
		"email":    "mario@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/", resp.Redirect)

	// The legacy path never creates a player profile.
	repo.AssertNotCalled(t, "CreatePlayerProfile", mock.Anything)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)

	repo := new(MockAuthRepository)
	repo.On("GetUserByEmail", "mario@example.com").Return(&user.User{Email: "mario@example.com", Password: hash}, nil)

	w := postJSON(setupAuthRouter(repo), "/login", map[string]string{
		"email":    "mario@example.com",
		"password": "wrong-password",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockAuthRepository)
	repo.On("GetUserByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	w := postJSON(setupAuthRouter(repo), "/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	})

	// Same generic message as a wrong password.
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
}

func TestLogin_MissingFields(t *testing.T) {
	repo := new(MockAuthRepository)

	w := postJSON(setupAuthRouter(repo), "/login", map[string]string{"email": "mario@example.com"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing email or password")
}

func TestLogin_Success(t *testing.T) {
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	repo := new(MockAuthRepository)
	repo.On("GetUserByEmail", "mario@example.com").Return(&user.User{
		FirstName: "Mario", LastName: "Rossi",
		Email: "mario@example.com", Password: hash, Role: user.RolePlayer,
	}, nil)

	w := postJSON(setupAuthRouter(repo), "/login", map[string]string{
		"email":    "Mario@example.com",
		"password": "password123",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "/dashboard", resp.Redirect)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "scoutbase_session=")
}

func TestCheckAuth_NoSession(t *testing.T) {
	repo := new(MockAuthRepository)

	req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
	w := httptest.NewRecorder()
	setupAuthRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CheckAuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Authenticated)
	assert.Nil(t, resp.User)
}

func TestCheckAuth_WithSession(t *testing.T) {
	cfg := testConfig()
	tok, err := token.GenerateSessionToken(3, user.RolePlayer, cfg.Session.Secret, cfg.Session.ExpiryMinutes)
	require.NoError(t, err)

	repo := new(MockAuthRepository)
	repo.On("GetUserByID", uint(3)).Return(&user.User{
		FirstName: "Mario", LastName: "Rossi", Email: "mario@example.com",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/check-auth", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	setupAuthRouter(repo).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp CheckAuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	require.NotNil(t, resp.User)
	assert.Equal(t, "Mario Rossi", resp.User.Name)
	assert.Equal(t, "mario@example.com", resp.User.Email)
}
