package service_test

import (
	"testing"

	"campus-exchange-backend/internal/auth"
	"campus-exchange-backend/internal/database/models"
	apperrors "campus-exchange-backend/internal/errors"
	"campus-exchange-backend/internal/mocks"
	"campus-exchange-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockUserRepo      *mocks.MockUserRepositoryInterface
	mockProjectRepo   *mocks.MockProjectRepositoryInterface
	mockComponentRepo *mocks.MockComponentRepositoryInterface
	authService       *auth.Service
	userService       *service.UserService
	validator         *validator.Validate
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockComponentRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.authService = auth.NewService("test-secret")
	suite.validator = validator.New()

	suite.userService = service.NewUserService(suite.mockUserRepo, suite.mockProjectRepo, suite.mockComponentRepo, suite.authService, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestRegister tests registering a new user
func (suite *UserServiceTestSuite) TestRegister() {
	req := &service.RegisterRequest{
		Name:     "Test Student",
		Email:    "student@campus.edu",
		Password: "correct-horse",
		Branch:   "ECE",
		Year:     3,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			// The stored password must be a hash, never the plaintext
			assert.NotEqual(suite.T(), req.Password, user.Password)
			assert.True(suite.T(), auth.ComparePassword(user.Password, req.Password))
			return nil
		}).
		Times(1)

	response, err := suite.userService.Register(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), req.Email, response.Email)
}

// TestRegisterEmailTaken tests registering with an existing email
func (suite *UserServiceTestSuite) TestRegisterEmailTaken() {
	req := &service.RegisterRequest{
		Name:     "Test Student",
		Email:    "student@campus.edu",
		Password: "correct-horse",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(req.Email).
		Return(&models.User{Email: req.Email}, nil).
		Times(1)

	response, err := suite.userService.Register(req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrEmailTaken)
}

// TestRegisterValidationError tests registering with a short password
func (suite *UserServiceTestSuite) TestRegisterValidationError() {
	req := &service.RegisterRequest{
		Name:     "Test Student",
		Email:    "student@campus.edu",
		Password: "short",
	}

	response, err := suite.userService.Register(req)

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestLogin tests logging in with correct credentials
func (suite *UserServiceTestSuite) TestLogin() {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(suite.T(), err)

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Test Student",
		Email:     "student@campus.edu",
		Password:  hash,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	result, err := suite.userService.Login(&service.LoginRequest{
		Email:    user.Email,
		Password: "correct-horse",
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), result.Token)
	assert.Equal(suite.T(), user.ID, result.User.ID)

	// The issued token must round-trip through validation
	claims, err := suite.authService.ValidateToken(result.Token)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), user.ID.String(), claims.UserID)
}

// TestLoginWrongPassword tests logging in with a wrong password
func (suite *UserServiceTestSuite) TestLoginWrongPassword() {
	hash, err := auth.HashPassword("correct-horse")
	assert.NoError(suite.T(), err)

	user := &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "student@campus.edu",
		Password:  hash,
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail(user.Email).
		Return(user, nil).
		Times(1)

	result, err := suite.userService.Login(&service.LoginRequest{
		Email:    user.Email,
		Password: "wrong-password",
	})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginUnknownEmail tests that an unknown email yields the same error as
// a wrong password
func (suite *UserServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@campus.edu").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.userService.Login(&service.LoginRequest{
		Email:    "nobody@campus.edu",
		Password: "whatever-password",
	})

	assert.Nil(suite.T(), result)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestGetProfile tests aggregating a profile with projects and inventory
func (suite *UserServiceTestSuite) TestGetProfile() {
	userID := uuid.New()
	user := &models.User{
		BaseModel: models.BaseModel{ID: userID},
		Name:      "Test Student",
		Email:     "student@campus.edu",
	}

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(user, nil).
		Times(1)

	suite.mockProjectRepo.EXPECT().
		GetByUserID(userID).
		Return([]models.Project{{Title: "Line Follower Robot"}}, nil).
		Times(1)

	suite.mockComponentRepo.EXPECT().
		GetByUserID(userID).
		Return([]models.Component{{Title: "Arduino Uno R3"}}, nil).
		Times(1)

	profile, err := suite.userService.GetProfile(userID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), userID, profile.User.ID)
	assert.Len(suite.T(), profile.Projects, 1)
	assert.Len(suite.T(), profile.Inventory, 1)
}

// TestGetProfileNotFound tests fetching a missing user's profile
func (suite *UserServiceTestSuite) TestGetProfileNotFound() {
	userID := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(userID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	profile, err := suite.userService.GetProfile(userID)

	assert.Nil(suite.T(), profile)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserNotFound)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
