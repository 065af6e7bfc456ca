package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-exchange-backend/internal/api/handlers"
	"campus-exchange-backend/internal/auth"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/mocks"
	"campus-exchange-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockUserServiceInterface
	handler     *handlers.UserHandler
	router      *gin.Engine
	userID      uuid.UUID
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = handlers.NewUserHandler(suite.mockService)
	suite.userID = uuid.New()

	suite.router = gin.New()
	suite.router.POST("/users/register", suite.handler.Register)
	suite.router.POST("/users/login", suite.handler.Login)
	suite.router.POST("/users/logout", suite.handler.Logout)
	suite.router.GET("/profile", fakeAuth(suite.userID), suite.handler.GetProfile)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) makeJSONRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	jsonBytes, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, url, bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

// TestRegister tests registering a new user
func (suite *UserHandlerTestSuite) TestRegister() {
	req := service.RegisterRequest{
		Name:     "Test Student",
		Email:    "student@campus.edu",
		Password: "correct-horse",
		Branch:   "ECE",
		Year:     3,
	}
	response := &service.UserResponse{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
	}

	suite.mockService.EXPECT().
		Register(gomock.Any()).
		Return(response, nil).
		Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/users/register", req)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), req.Email)
}

// TestRegisterEmailTaken tests registering with a taken email
func (suite *UserHandlerTestSuite) TestRegisterEmailTaken() {
	suite.mockService.EXPECT().
		Register(gomock.Any()).
		Return(nil, apperrors.ErrEmailTaken).
		Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/users/register", service.RegisterRequest{
		Name:     "Test Student",
		Email:    "student@campus.edu",
		Password: "correct-horse",
	})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "already exists")
}

// TestLogin tests logging in and receiving the session cookie
func (suite *UserHandlerTestSuite) TestLogin() {
	result := &service.LoginResult{
		Token: "header.payload.signature",
		User: service.CurrentUserView{
			ID:    suite.userID,
			Email: "student@campus.edu",
		},
	}

	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(result, nil).
		Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/users/login", service.LoginRequest{
		Email:    "student@campus.edu",
		Password: "correct-horse",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == auth.CookieName {
			sessionCookie = cookie
		}
	}
	assert.NotNil(suite.T(), sessionCookie)
	assert.Equal(suite.T(), result.Token, sessionCookie.Value)
	assert.True(suite.T(), sessionCookie.HttpOnly)
}

// TestLoginInvalidCredentials tests logging in with bad credentials
func (suite *UserHandlerTestSuite) TestLoginInvalidCredentials() {
	suite.mockService.EXPECT().
		Login(gomock.Any()).
		Return(nil, apperrors.ErrInvalidCredentials).
		Times(1)

	recorder := suite.makeJSONRequest(http.MethodPost, "/users/login", service.LoginRequest{
		Email:    "student@campus.edu",
		Password: "wrong-password",
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "invalid credentials")
}

// TestLoginMissingCredentials tests logging in with empty fields
func (suite *UserHandlerTestSuite) TestLoginMissingCredentials() {
	recorder := suite.makeJSONRequest(http.MethodPost, "/users/login", service.LoginRequest{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "email and password are required")
}

// TestLogout tests logging out clears the session cookie
func (suite *UserHandlerTestSuite) TestLogout() {
	recorder := suite.makeJSONRequest(http.MethodPost, "/users/logout", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	var sessionCookie *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == auth.CookieName {
			sessionCookie = cookie
		}
	}
	assert.NotNil(suite.T(), sessionCookie)
	assert.Empty(suite.T(), sessionCookie.Value)
	assert.Less(suite.T(), sessionCookie.MaxAge, 0)
}

// TestGetProfile tests fetching the caller's profile
func (suite *UserHandlerTestSuite) TestGetProfile() {
	profile := &service.ProfileResponse{
		User: service.UserResponse{
			ID:    suite.userID,
			Name:  "Test Student",
			Email: "student@campus.edu",
		},
	}

	suite.mockService.EXPECT().
		GetProfile(suite.userID).
		Return(profile, nil).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/profile", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.Contains(suite.T(), recorder.Body.String(), "student@campus.edu")
}

// TestGetProfileNotFound tests a profile for a deleted user
func (suite *UserHandlerTestSuite) TestGetProfileNotFound() {
	suite.mockService.EXPECT().
		GetProfile(suite.userID).
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	req, _ := http.NewRequest(http.MethodGet, "/profile", nil)
	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
